package cpu

import "fmt"

// opLDA handles LDA in immediate and zero page modes.
// A,Z,N = M
func (c *CPU) opLDA(inst *Instruction) error {
	value, err := c.GetOperand(inst.Mode)
	if err != nil {
		return fmt.Errorf("LDA failed to get operand: %w", err)
	}

	c.A = value
	c.setNZ(value)
	return nil
}

// opSTA handles STA in zero page mode. Flags are unaffected.
func (c *CPU) opSTA(inst *Instruction) error {
	addr, err := c.operandAddress(inst.Mode)
	if err != nil {
		return fmt.Errorf("STA failed to get address: %w", err)
	}

	c.Write(addr, c.A)
	return nil
}
