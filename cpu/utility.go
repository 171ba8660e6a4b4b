package cpu

import (
	"fmt"
	"io"
)

// Read returns the byte at addr.
func (c *CPU) Read(addr uint16) byte {
	return c.Mem[addr]
}

// Write stores val at addr.
func (c *CPU) Write(addr uint16, val byte) {
	c.Mem[addr] = val
}

// fetch reads the byte at PC and advances PC.
func (c *CPU) fetch() byte {
	b := c.Mem[c.PC]
	c.PC++
	return b
}

// setNZ updates the N and Z flags from a result byte.
func (c *CPU) setNZ(value byte) {
	c.setFlag(FlagZ, value == 0)
	c.setFlag(FlagN, value&0x80 != 0)
}

// DumpRegisters writes the register and flag state to w.
func (c *CPU) DumpRegisters(w io.Writer) {
	fmt.Fprintf(w, "A=%02X X=%02X Y=%02X SP=%02X PC=%04X\n", c.A, c.X, c.Y, c.SP, c.PC)
	flags := []byte("nv-bdizc")
	for i := range flags {
		if c.P&(0x80>>i) != 0 && flags[i] != '-' {
			flags[i] -= 'a' - 'A'
		}
	}
	fmt.Fprintf(w, "P=%02X [%s] cycles=%d\n", c.P, flags, c.Cycles)
}
