package cpu

// Opcodes for the supported instructions.
const (
	OPBRK         = 0x00 // BRK
	OPADC         = 0x69 // ADC #imm
	OPSTA         = 0x85 // STA zp
	OPBCC         = 0x90 // BCC rel
	OPLDAZeroPage = 0xA5 // LDA zp
	OPLDA         = 0xA9 // LDA #imm
	OPCMP         = 0xC9 // CMP #imm
	OPINC         = 0xE6 // INC zp
	OPNOP         = 0xEA // NOP
)

// opcodes maps every supported opcode to its decoded form.
var opcodes = map[byte]*Instruction{
	OPBRK:         {Opcode: OPBRK, Mnemonic: "BRK", Mode: ModeImplied, Cycles: 7, Handler: (*CPU).opBRK},
	OPADC:         {Opcode: OPADC, Mnemonic: "ADC", Mode: ModeImmediate, Cycles: 2, Handler: (*CPU).opADC},
	OPSTA:         {Opcode: OPSTA, Mnemonic: "STA", Mode: ModeZeroPage, Cycles: 3, Handler: (*CPU).opSTA},
	OPBCC:         {Opcode: OPBCC, Mnemonic: "BCC", Mode: ModeRelative, Cycles: 2, Handler: (*CPU).opBCC},
	OPLDAZeroPage: {Opcode: OPLDAZeroPage, Mnemonic: "LDA", Mode: ModeZeroPage, Cycles: 3, Handler: (*CPU).opLDA},
	OPLDA:         {Opcode: OPLDA, Mnemonic: "LDA", Mode: ModeImmediate, Cycles: 2, Handler: (*CPU).opLDA},
	OPCMP:         {Opcode: OPCMP, Mnemonic: "CMP", Mode: ModeImmediate, Cycles: 2, Handler: (*CPU).opCMP},
	OPINC:         {Opcode: OPINC, Mnemonic: "INC", Mode: ModeZeroPage, Cycles: 5, Handler: (*CPU).opINC},
	OPNOP:         {Opcode: OPNOP, Mnemonic: "NOP", Mode: ModeImplied, Cycles: 2, Handler: (*CPU).opNOP},
}
