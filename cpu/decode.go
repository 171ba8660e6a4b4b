package cpu

import (
	"fmt"
)

// Instruction holds the decoded details of one opcode.
type Instruction struct {
	Opcode   byte
	Mnemonic string
	Mode     Mode
	// Cycles is the base cycle count; taken branches add to it.
	Cycles  int
	Handler func(*CPU, *Instruction) error
}

// Length returns the encoded size in bytes, opcode included.
func (i *Instruction) Length() int {
	return 1 + i.Mode.OperandSize()
}

// Decode takes an opcode and returns its Instruction.
func Decode(opcode byte) (*Instruction, error) {
	inst, ok := opcodes[opcode]
	if !ok {
		return nil, fmt.Errorf("unknown or unimplemented instruction: %02X", opcode)
	}
	return inst, nil
}
