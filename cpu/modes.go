package cpu

// Mode is an addressing mode.
type Mode int

const (
	// ModeImplied takes no operand byte.
	ModeImplied Mode = iota
	// ModeImmediate takes a literal value: #$nn
	ModeImmediate
	// ModeZeroPage takes an address in page zero: $nn
	ModeZeroPage
	// ModeRelative takes a signed displacement from the next instruction.
	ModeRelative
)

// OperandSize returns the number of operand bytes following the opcode.
func (m Mode) OperandSize() int {
	if m == ModeImplied {
		return 0
	}
	return 1
}

func (m Mode) String() string {
	switch m {
	case ModeImplied:
		return "implied"
	case ModeImmediate:
		return "immediate"
	case ModeZeroPage:
		return "zero page"
	case ModeRelative:
		return "relative"
	}
	return "unknown"
}
