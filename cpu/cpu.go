package cpu

import "fmt"

// MemSize is the size of the 16-bit address space.
const MemSize = 64 * 1024

// CPU memory and registers.
type CPU struct {
	// A is the accumulator.
	A byte
	// X is the X index register.
	X byte
	// Y is the Y index register.
	Y byte
	// SP is the stack pointer (offset into page 1).
	SP byte
	// PC is the program counter.
	PC uint16
	// P is the processor status register.
	P byte

	// Memory
	Mem [MemSize]byte

	// Cycles count.
	Cycles int
	// Running or not.
	Running bool

	// start and end bound the code placed by LoadCode.
	start, end int
}

// Status register flags.
const (
	// FlagC is carry
	FlagC byte = 1 << 0
	// FlagZ is zero
	FlagZ byte = 1 << 1
	// FlagI is interrupt disable
	FlagI byte = 1 << 2
	// FlagD is decimal mode
	FlagD byte = 1 << 3
	// FlagB is break
	FlagB byte = 1 << 4
	// FlagU is unused and always reads as set
	FlagU byte = 1 << 5
	// FlagV is overflow
	FlagV byte = 1 << 6
	// FlagN is negative
	FlagN byte = 1 << 7
)

// New creates a CPU in its reset state with PC at $0000.
func New() *CPU {
	c := &CPU{}
	c.Reset(0)
	return c
}

// Reset clears registers, flags and memory, and points PC at pc.
func (c *CPU) Reset(pc uint16) {
	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.P = FlagU
	c.PC = pc
	c.Mem = [MemSize]byte{}
	c.Cycles = 0
	c.Running = false
	c.start, c.end = int(pc), int(pc)
}

// LoadCode to specified address and prepare to run it from there.
func (c *CPU) LoadCode(addr uint16, code []byte) error {
	if int(addr)+len(code) > MemSize {
		return fmt.Errorf("program of %d bytes does not fit at $%04X", len(code), addr)
	}

	copy(c.Mem[addr:], code)
	c.PC = addr
	c.start = int(addr)
	c.end = int(addr) + len(code)
	c.Running = true
	return nil
}

// Flag reports whether status flag f is set.
func (c *CPU) Flag(f byte) bool {
	return c.P&f != 0
}

func (c *CPU) setFlag(f byte, on bool) {
	if on {
		c.P |= f
		return
	}
	c.P &^= f
}
