package assembler

import (
	"errors"
	"testing"

	"github.com/Urethramancer/m6502/cpu"
)

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	tests := []struct {
		mnemonic string
		opcode   byte
		mode     cpu.Mode
		zp       byte
	}{
		{"BCC", 0x90, cpu.ModeRelative, 0x90},
		{"INC", 0xE6, cpu.ModeZeroPage, 0xE6},
		{"LDA", 0xA9, cpu.ModeImmediate, 0xA5},
		{"STA", 0x85, cpu.ModeZeroPage, 0x85},
		{"CMP", 0xC9, cpu.ModeImmediate, 0xC9},
	}
	for _, tt := range tests {
		e, ok := table.Lookup(tt.mnemonic)
		if !ok {
			t.Fatalf("%s missing from table", tt.mnemonic)
		}
		if e.Opcode != tt.opcode || e.Mode != tt.mode {
			t.Errorf("%s: got %02X/%s", tt.mnemonic, e.Opcode, e.Mode)
		}
		if got := e.Select(OperandZeroPage); got != tt.zp {
			t.Errorf("%s zero page: got %02X, want %02X", tt.mnemonic, got, tt.zp)
		}
		if got := e.Select(OperandImmediate); got != tt.opcode {
			t.Errorf("%s immediate: got %02X, want %02X", tt.mnemonic, got, tt.opcode)
		}
	}

	if _, ok := table.Lookup("lda"); !ok {
		t.Error("lookup should ignore case")
	}
	if _, ok := table.Lookup("NOP"); ok {
		t.Error("NOP is not part of the instruction set")
	}
	for _, op := range []byte{0x90, 0xE6, 0xA9, 0xA5, 0x85, 0xC9} {
		if !table.Encodes(op) {
			t.Errorf("%02X should be encodable", op)
		}
	}
	for _, op := range []byte{0xEA, 0x69, 0x00} {
		if table.Encodes(op) {
			t.Errorf("%02X should not be encodable", op)
		}
	}
	if got := table.Mnemonics(); len(got) != 5 || got[0] != "BCC" || got[4] != "STA" {
		t.Errorf("mnemonics = %v", got)
	}
}

func TestWithOverrideCopies(t *testing.T) {
	base := Entry{Mnemonic: "LDA", Opcode: 0xA9}
	a := base.WithOverride(OperandZeroPage, 0xA5)
	b := a.WithOverride(OperandZeroPage, 0x00)
	if a.Select(OperandZeroPage) != 0xA5 {
		t.Error("override on a copy leaked into the original")
	}
	if b.Select(OperandZeroPage) != 0x00 || base.Select(OperandZeroPage) != 0xA9 {
		t.Error("overrides not independent")
	}
}

func TestEncode(t *testing.T) {
	enc := NewEncoder(DefaultTable())
	ctx := NewContext()

	slots, err := enc.Encode(Line{Kind: LineInstruction, Number: 1, Mnemonic: "lda", Operand: "$10"}, 0, ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := []Slot{Resolved(0xA5, at(1)), Pending("10", at(1))}
	if len(slots) != 2 || slots[0] != want[0] || slots[1] != want[1] {
		t.Errorf("got %+v, want %+v", slots, want)
	}
}

func TestEncodeBranchUsesCursor(t *testing.T) {
	enc := NewEncoder(DefaultTable())
	ctx := NewContext()
	if err := ctx.Declare("top"); err != nil {
		t.Fatal(err)
	}

	// The cursor passed in decides the displacement, not any slot count.
	for _, pc := range []int{0, 2, 10, 100} {
		slots, err := enc.Encode(Line{Mnemonic: "BCC", Operand: "top"}, pc, ctx)
		if err != nil {
			t.Fatal(err)
		}
		if want := 0 - (pc + 1) - 1; slots[1].Value != want {
			t.Errorf("pc %d: offset %d, want %d", pc, slots[1].Value, want)
		}
		if slots[0].Value != 0x90 {
			t.Errorf("pc %d: opcode %02X", pc, slots[0].Value)
		}
	}
}

func TestEncodeBranchPrefersDeclaredLabel(t *testing.T) {
	enc := NewEncoder(DefaultTable())
	ctx := NewContext()
	for _, name := range []string{".loop", "loop-1", "$10"} {
		if err := ctx.Declare(name); err != nil {
			t.Fatal(err)
		}
	}

	for _, name := range []string{".loop", "loop-1", "$10"} {
		slots, err := enc.Encode(Line{Mnemonic: "BCC", Operand: name}, 2, ctx)
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if slots[1].Kind != SlotResolved || slots[1].Value != -4 {
			t.Errorf("%s: got %+v, want a resolved -4", name, slots[1])
		}
	}

	// Non-branch mnemonics still read $10 as a literal.
	slots, err := enc.Encode(Line{Mnemonic: "STA", Operand: "$10"}, 0, ctx)
	if err != nil || slots[1].Kind != SlotPending {
		t.Errorf("STA $10: %+v, %v", slots, err)
	}
}

func TestEncodeErrors(t *testing.T) {
	enc := NewEncoder(DefaultTable())
	ctx := NewContext()
	tests := []struct {
		mnemonic, operand string
		want              error
	}{
		{"JMP", "$10", ErrUnknownMnemonic},
		{"BCC", "nowhere", ErrUnresolvedLabel},
		{"BCC", ".later", ErrUnresolvedLabel},
		{"STA", "somewhere", ErrMalformedOperand},
		{"STA", "", ErrMalformedOperand},
		{"CMP", "5", ErrMalformedOperand},
	}
	for _, tt := range tests {
		_, err := enc.Encode(Line{Mnemonic: tt.mnemonic, Operand: tt.operand}, 0, ctx)
		if !errors.Is(err, tt.want) {
			t.Errorf("%s %s: got %v, want %v", tt.mnemonic, tt.operand, err, tt.want)
		}
	}
}

func TestContextCursor(t *testing.T) {
	ctx := NewContext()
	if ctx.PC() != 0 {
		t.Fatalf("new context at %d", ctx.PC())
	}
	ctx.Emit(Resolved(0xE6, at(1)), Pending("10", at(1)))
	if err := ctx.Declare("here"); err != nil {
		t.Fatal(err)
	}
	ctx.Emit(Resolved(0x90, at(3)), Resolved(-2, at(3)))

	if ctx.PC() != 4 || len(ctx.Slots()) != 4 {
		t.Errorf("cursor %d, slots %d, want 4", ctx.PC(), len(ctx.Slots()))
	}
	if addr, ok := ctx.Lookup("here"); !ok || addr != 2 {
		t.Errorf("here = %d, %t", addr, ok)
	}
	if err := ctx.Declare("here"); !errors.Is(err, ErrDuplicateLabel) {
		t.Errorf("redeclare: %v", err)
	}
	if addr, _ := ctx.Lookup("here"); addr != 2 {
		t.Error("a failed redeclaration must not move the label")
	}

	labels := ctx.Labels()
	labels["here"] = 99
	if addr, _ := ctx.Lookup("here"); addr != 2 {
		t.Error("Labels must return a copy")
	}
}
