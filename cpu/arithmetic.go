package cpu

import "fmt"

// opADC handles ADC (add with carry). Decimal mode is not emulated.
// A,Z,C,N,V = A+M+C
func (c *CPU) opADC(inst *Instruction) error {
	value, err := c.GetOperand(inst.Mode)
	if err != nil {
		return fmt.Errorf("ADC failed to get operand: %w", err)
	}

	carry := uint16(0)
	if c.Flag(FlagC) {
		carry = 1
	}
	sum := uint16(c.A) + uint16(value) + carry
	result := byte(sum)

	c.setFlag(FlagC, sum > 0xFF)
	// Overflow when both inputs share a sign the result does not.
	c.setFlag(FlagV, (^(c.A^value))&(c.A^result)&0x80 != 0)
	c.A = result
	c.setNZ(result)
	return nil
}

// opCMP handles CMP. Carry is set when A >= M.
func (c *CPU) opCMP(inst *Instruction) error {
	value, err := c.GetOperand(inst.Mode)
	if err != nil {
		return fmt.Errorf("CMP failed to get operand: %w", err)
	}

	c.setFlag(FlagC, c.A >= value)
	c.setNZ(c.A - value)
	return nil
}

// opINC handles INC (increment memory).
// M,Z,N = M+1
func (c *CPU) opINC(inst *Instruction) error {
	addr, err := c.operandAddress(inst.Mode)
	if err != nil {
		return fmt.Errorf("INC failed to get address: %w", err)
	}

	value := c.Read(addr) + 1
	c.Write(addr, value)
	c.setNZ(value)
	return nil
}
