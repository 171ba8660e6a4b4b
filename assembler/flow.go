package assembler

import "fmt"

// encodeBranch emits a relative branch to a label declared earlier at
// target. The displacement is taken from the byte after the branch
// instruction, so with the opcode at pc it is target - (pc + 1) - 1.
func encodeBranch(entry Entry, label string, target, pc int, src SourceLine) ([]Slot, error) {
	offset := target - (pc + 1) - 1
	if offset < -128 || offset > 127 {
		return nil, fmt.Errorf("%w: '%s' is %d bytes away", ErrBranchOutOfRange, label, offset)
	}

	return []Slot{
		Resolved(int(entry.Opcode), src),
		Resolved(offset, src),
	}, nil
}
