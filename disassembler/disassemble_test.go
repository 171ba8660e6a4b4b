package disassembler_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Urethramancer/m6502/assembler"
	"github.com/Urethramancer/m6502/disassembler"
)

func TestDisassembleLoop(t *testing.T) {
	text, err := disassembler.Disassemble([]byte{0xE6, 0x10, 0x90, 0xFC})
	if err != nil {
		t.Fatal(err)
	}
	want := "L0000:\n" +
		"    INC $10     ; $0000: E6 10\n" +
		"    BCC L0000   ; $0002: 90 FC\n"
	if text != want {
		t.Errorf("got:\n%s\nwant:\n%s", text, want)
	}
}

func TestOperandFormats(t *testing.T) {
	tests := []struct {
		code []byte
		want string
	}{
		{[]byte{0xA9, 0x10}, "LDA #$10"},
		{[]byte{0xA5, 0x10}, "LDA $10"},
		{[]byte{0x85, 0x20}, "STA $20"},
		{[]byte{0xC9, 0x05}, "CMP #$05"},
		{[]byte{0xE6, 0x30}, "INC $30"},
		// Forward branches keep the raw displacement.
		{[]byte{0x90, 0x02, 0xEA, 0xEA}, "BCC $02"},
		// So do branches into the middle of an instruction.
		{[]byte{0xA9, 0x00, 0x90, 0xFD}, "BCC $FD"},
	}
	for _, tt := range tests {
		text, err := disassembler.Disassemble(tt.code)
		if err != nil {
			t.Errorf("% X: %v", tt.code, err)
			continue
		}
		if !strings.Contains(text, "    "+tt.want+" ") {
			t.Errorf("% X: expected %q in:\n%s", tt.code, tt.want, text)
		}
	}
}

func TestUnencodableOpcodesAreComments(t *testing.T) {
	text, err := disassembler.Disassemble([]byte{0xEA, 0xE6, 0x10, 0x69, 0xFF, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	want := "    ; NOP       ; $0000: EA\n" +
		"    INC $10     ; $0001: E6 10\n" +
		"    ; ADC #$FF  ; $0003: 69 FF\n" +
		"    ; BRK       ; $0005: 00\n"
	if text != want {
		t.Errorf("got:\n%s\nwant:\n%s", text, want)
	}
}

func TestDisassembleErrors(t *testing.T) {
	tests := []struct {
		name string
		code []byte
		want string
	}{
		{"UnknownOpcode", []byte{0xEA, 0xFF}, "$0001"},
		{"Truncated", []byte{0xA9, 0x01, 0x85}, "STA is missing its operand"},
	}
	for _, tt := range tests {
		_, err := disassembler.Disassemble(tt.code)
		if err == nil {
			t.Errorf("[%s] expected an error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("[%s] error %q should mention %q", tt.name, err, tt.want)
		}
	}
}

func TestDisassembleEmpty(t *testing.T) {
	text, err := disassembler.Disassemble(nil)
	if err != nil || text != "" {
		t.Errorf("got %q, %v", text, err)
	}
}

// Assembling the disassembly must give back the original image.
func TestRoundTrip(t *testing.T) {
	sources := []string{
		"loop:\nINC $10\nBCC loop\n",
		"LDA #$00\nSTA $10\nloop:\nINC $10\nLDA $10\nCMP #$05\nBCC loop\n",
		"a:\nLDA #$01\nb:\nBCC a\nBCC b\nBCC $04\nSTA $FF\n",
	}
	for _, src := range sources {
		first, err := assembler.New().Assemble(src)
		if err != nil {
			t.Fatalf("assemble %q: %v", src, err)
		}
		text, err := disassembler.Disassemble(first)
		if err != nil {
			t.Fatalf("disassemble % X: %v", first, err)
		}
		second, err := assembler.New().Assemble(text)
		if err != nil {
			t.Fatalf("reassemble:\n%s\nerror: %v", text, err)
		}
		if !bytes.Equal(first, second) {
			t.Errorf("round trip changed the image\nfirst:  % X\nsecond: % X\n%s", first, second, text)
		}
	}
}

// Commented opcodes drop out of the reassembled image; the rest is kept.
func TestRoundTripSkipsUnencodable(t *testing.T) {
	text, err := disassembler.Disassemble([]byte{0xA9, 0x01, 0xEA, 0x85, 0x10})
	if err != nil {
		t.Fatal(err)
	}
	code, err := assembler.New().Assemble(text)
	if err != nil {
		t.Fatalf("reassemble:\n%s\nerror: %v", text, err)
	}
	if want := []byte{0xA9, 0x01, 0x85, 0x10}; !bytes.Equal(code, want) {
		t.Errorf("got % X, want % X", code, want)
	}
}
