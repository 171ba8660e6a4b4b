package cpu

// opBCC handles BCC (branch if carry clear).
// A taken branch costs one extra cycle, two if it crosses a page.
func (c *CPU) opBCC(inst *Instruction) error {
	offset := int8(c.fetch())
	if c.Flag(FlagC) {
		return nil
	}

	next := c.PC
	c.PC = uint16(int(next) + int(offset))
	c.Cycles++
	if next&0xFF00 != c.PC&0xFF00 {
		c.Cycles++
	}
	return nil
}
