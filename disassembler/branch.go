package disassembler

import "fmt"

// branchTarget returns the address a relative branch jumps to.
func branchTarget(inst *Instruction) int {
	return inst.Address + inst.Op.Length() + int(int8(inst.Operand()))
}

func labelName(addr int) string {
	return fmt.Sprintf("L%04X", addr)
}
