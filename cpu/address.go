package cpu

import "fmt"

// operandAddress fetches the operand byte of a memory-addressing instruction
// and returns the effective address.
func (c *CPU) operandAddress(mode Mode) (uint16, error) {
	switch mode {
	case ModeZeroPage:
		return uint16(c.fetch()), nil
	}
	return 0, fmt.Errorf("%s mode has no effective address", mode)
}

// GetOperand fetches the value an instruction operates on.
func (c *CPU) GetOperand(mode Mode) (byte, error) {
	switch mode {
	case ModeImmediate:
		return c.fetch(), nil
	case ModeZeroPage:
		addr, err := c.operandAddress(mode)
		if err != nil {
			return 0, err
		}
		return c.Read(addr), nil
	}
	return 0, fmt.Errorf("%s mode has no readable operand", mode)
}
