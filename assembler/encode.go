package assembler

import (
	"fmt"

	"github.com/Urethramancer/m6502/cpu"
)

// Encoder turns instruction lines into output slots using an opcode table.
type Encoder struct {
	table *Table
}

// NewEncoder returns an encoder for the given table.
func NewEncoder(t *Table) *Encoder {
	return &Encoder{table: t}
}

// Encode returns the slots for one instruction placed at pc. The addressing
// mode is settled from the operand syntax before the opcode is chosen, so the
// opcode is emitted once and never rewritten.
func (e *Encoder) Encode(line Line, pc int, labels LabelLookup) ([]Slot, error) {
	entry, ok := e.table.Lookup(line.Mnemonic)
	if !ok {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownMnemonic, line.Mnemonic)
	}

	op := ParseOperand(line.Operand)
	src := line.Source()

	// A declared label wins over operand syntax, so any name that can be
	// declared can also be branched to.
	if entry.Mode == cpu.ModeRelative {
		if target, ok := labels.Lookup(op.Raw); ok {
			return encodeBranch(entry, op.Raw, target, pc, src)
		}
	}

	switch op.Kind {
	case OperandZeroPage, OperandImmediate:
		return []Slot{
			Resolved(int(entry.Select(op.Kind)), src),
			Pending(op.Value, src),
		}, nil

	case OperandNone:
		return nil, fmt.Errorf("%w: %s requires an operand", ErrMalformedOperand, entry.Mnemonic)
	}

	if entry.Mode == cpu.ModeRelative {
		return nil, fmt.Errorf("%w '%s': branches can only target labels declared above them", ErrUnresolvedLabel, op.Raw)
	}
	if op.Kind == OperandLabel {
		return nil, fmt.Errorf("%w '%s': labels are only valid as branch targets", ErrMalformedOperand, op.Raw)
	}
	return nil, fmt.Errorf("%w '%s'", ErrMalformedOperand, op.Raw)
}
