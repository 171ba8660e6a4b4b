package disassembler

import (
	"fmt"
	"strings"

	"github.com/Urethramancer/m6502/assembler"
	"github.com/Urethramancer/m6502/cpu"
)

// encodable is the instruction set the assembler accepts.
var encodable = assembler.DefaultTable()

// Instruction represents a single decoded instruction at a specific address.
type Instruction struct {
	Address int
	Op      *cpu.Instruction
	// Bytes holds the opcode followed by any operand bytes.
	Bytes []byte
}

// Operand returns the operand byte, or zero for implied instructions.
func (i *Instruction) Operand() byte {
	if len(i.Bytes) < 2 {
		return 0
	}
	return i.Bytes[1]
}

// Disassemble takes 6502 machine code loaded at $0000 and returns it as
// assembly source. Branches back to an instruction boundary get a generated
// label. Opcodes the assembler cannot encode (NOP, ADC, BRK) are rendered as
// comment lines: the listing still assembles, but only images without them
// come back byte for byte.
func Disassemble(code []byte) (string, error) {
	if len(code) == 0 {
		return "", nil
	}

	// --- STAGE 1: Linear Sweep ---
	instructions, err := sweep(code)
	if err != nil {
		return "", err
	}

	// --- STAGE 2: Branch Targets ---
	labelTargets := findLabels(instructions)

	// --- STAGE 3: Render Final Output ---
	var out strings.Builder
	for _, inst := range instructions {
		if labelTargets[inst.Address] {
			fmt.Fprintf(&out, "%s:\n", labelName(inst.Address))
		}

		text := inst.Op.Mnemonic
		if operands := formatOperand(inst, labelTargets); operands != "" {
			text += " " + operands
		}
		if !encodable.Encodes(inst.Op.Opcode) {
			fmt.Fprintf(&out, "    ; %-10s; $%04X: % X\n", text, inst.Address, inst.Bytes)
			continue
		}
		fmt.Fprintf(&out, "    %-12s; $%04X: % X\n", text, inst.Address, inst.Bytes)
	}

	return out.String(), nil
}

// sweep decodes code front to back, one instruction after another.
func sweep(code []byte) ([]*Instruction, error) {
	var instructions []*Instruction
	for pc := 0; pc < len(code); {
		op, err := cpu.Decode(code[pc])
		if err != nil {
			return nil, fmt.Errorf("at $%04X: %w", pc, err)
		}

		size := op.Length()
		if pc+size > len(code) {
			return nil, fmt.Errorf("at $%04X: %s is missing its operand", pc, op.Mnemonic)
		}

		instructions = append(instructions, &Instruction{
			Address: pc,
			Op:      op,
			Bytes:   code[pc : pc+size],
		})
		pc += size
	}
	return instructions, nil
}

// findLabels returns the addresses that need a label: instruction starts
// targeted by a branch at or after them.
func findLabels(instructions []*Instruction) map[int]bool {
	starts := make(map[int]bool, len(instructions))
	for _, inst := range instructions {
		starts[inst.Address] = true
	}

	labelTargets := make(map[int]bool)
	for _, inst := range instructions {
		if inst.Op.Mode != cpu.ModeRelative {
			continue
		}
		target := branchTarget(inst)
		if target <= inst.Address && starts[target] {
			labelTargets[target] = true
		}
	}
	return labelTargets
}

func formatOperand(inst *Instruction, labelTargets map[int]bool) string {
	switch inst.Op.Mode {
	case cpu.ModeImmediate:
		return fmt.Sprintf("#$%02X", inst.Operand())
	case cpu.ModeZeroPage:
		return fmt.Sprintf("$%02X", inst.Operand())
	case cpu.ModeRelative:
		target := branchTarget(inst)
		if target <= inst.Address && labelTargets[target] {
			return labelName(target)
		}
		// Forward or unaligned targets keep the raw displacement.
		return fmt.Sprintf("$%02X", inst.Operand())
	}
	return ""
}
