package cpu

// opBRK handles BRK. There is no interrupt vector to jump through, so BRK
// halts the machine with the B flag set.
func (c *CPU) opBRK(inst *Instruction) error {
	c.setFlag(FlagB, true)
	c.Running = false
	return nil
}

// opNOP does nothing but take its cycles.
func (c *CPU) opNOP(inst *Instruction) error {
	return nil
}
