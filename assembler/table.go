package assembler

import (
	"maps"
	"slices"
	"strings"

	"github.com/Urethramancer/m6502/cpu"
)

// Entry describes how one mnemonic is encoded.
type Entry struct {
	Mnemonic string
	// Opcode is emitted unless an override matches the operand syntax.
	Opcode byte
	// Mode is the addressing mode of Opcode.
	Mode cpu.Mode

	overrides map[OperandKind]byte
}

// WithOverride returns a copy of e that emits opcode instead of e.Opcode
// when the operand is written with the given syntax.
func (e Entry) WithOverride(kind OperandKind, opcode byte) Entry {
	o := make(map[OperandKind]byte, len(e.overrides)+1)
	maps.Copy(o, e.overrides)
	o[kind] = opcode
	e.overrides = o
	return e
}

// Select returns the opcode to emit for an operand of the given syntax.
func (e Entry) Select(kind OperandKind) byte {
	if op, ok := e.overrides[kind]; ok {
		return op
	}
	return e.Opcode
}

// Table is an immutable mnemonic lookup. Lookups ignore case.
type Table struct {
	entries map[string]Entry
}

// NewTable builds a table from entries. A later entry replaces an earlier one
// with the same mnemonic.
func NewTable(entries ...Entry) *Table {
	t := &Table{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		t.entries[strings.ToUpper(e.Mnemonic)] = e
	}
	return t
}

// DefaultTable returns the fixed instruction set: BCC, INC, LDA, STA and CMP.
// LDA is the only mnemonic whose opcode depends on the operand syntax; INC and
// STA are zero page opcodes already.
func DefaultTable() *Table {
	return NewTable(
		Entry{Mnemonic: "BCC", Opcode: cpu.OPBCC, Mode: cpu.ModeRelative},
		Entry{Mnemonic: "INC", Opcode: cpu.OPINC, Mode: cpu.ModeZeroPage},
		Entry{Mnemonic: "LDA", Opcode: cpu.OPLDA, Mode: cpu.ModeImmediate}.
			WithOverride(OperandZeroPage, cpu.OPLDAZeroPage),
		Entry{Mnemonic: "STA", Opcode: cpu.OPSTA, Mode: cpu.ModeZeroPage},
		Entry{Mnemonic: "CMP", Opcode: cpu.OPCMP, Mode: cpu.ModeImmediate},
	)
}

// Lookup finds the entry for a mnemonic.
func (t *Table) Lookup(mnemonic string) (Entry, bool) {
	e, ok := t.entries[strings.ToUpper(mnemonic)]
	return e, ok
}

// Encodes reports whether some entry can emit opcode.
func (t *Table) Encodes(opcode byte) bool {
	for _, e := range t.entries {
		if e.Opcode == opcode {
			return true
		}
		for _, op := range e.overrides {
			if op == opcode {
				return true
			}
		}
	}
	return false
}

// Mnemonics returns the known mnemonics in sorted order.
func (t *Table) Mnemonics() []string {
	return slices.Sorted(maps.Keys(t.entries))
}
