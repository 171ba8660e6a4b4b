package assembler

import (
	"errors"
	"fmt"
)

var (
	// ErrInputNotFound is returned when the source file does not exist.
	ErrInputNotFound = errors.New("input file does not exist")
	// ErrUnknownMnemonic is returned for a mnemonic outside the opcode table.
	ErrUnknownMnemonic = errors.New("unknown instruction")
	// ErrUnresolvedLabel is returned when a branch names a label that has not
	// been declared yet. Only backward references can be resolved.
	ErrUnresolvedLabel = errors.New("unresolved label")
	// ErrBranchOutOfRange is returned when a branch target is further than a
	// signed byte can reach.
	ErrBranchOutOfRange = errors.New("branch out of range")
	// ErrMalformedInstruction is returned for an instruction line that does not
	// split into a mnemonic and a single operand.
	ErrMalformedInstruction = errors.New("malformed instruction")
	// ErrMalformedLabel is returned for an empty label or one containing spaces.
	ErrMalformedLabel = errors.New("malformed label")
	// ErrMalformedOperand is returned for operand syntax the instruction cannot use.
	ErrMalformedOperand = errors.New("malformed operand")
	// ErrDuplicateLabel is returned when a label is declared twice.
	ErrDuplicateLabel = errors.New("duplicate label")
	// ErrInvalidLiteral is returned when a hex literal does not parse.
	ErrInvalidLiteral = errors.New("invalid hex literal")
)

// LineError ties an assembly error to the source line that caused it.
type LineError struct {
	// Line is the 1-based line number in the source.
	Line int
	// Text is the cleaned source line, if known.
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v in '%s'", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
