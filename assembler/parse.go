package assembler

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	labelSuffix     = ":"
	zeroPageMarker  = "$"
	immediateMarker = "#$"
)

// OperandKind is the addressing syntax an operand was written in.
type OperandKind int

const (
	// OperandNone means no operand text.
	OperandNone OperandKind = iota
	// OperandZeroPage is "$nn".
	OperandZeroPage
	// OperandImmediate is "#$nn".
	OperandImmediate
	// OperandLabel is a bare identifier.
	OperandLabel
	// OperandInvalid is anything else.
	OperandInvalid
)

// Operand represents a parsed instruction operand.
type Operand struct {
	Kind OperandKind
	Raw  string
	// Value holds the hex digits after the marker, or the label name.
	Value string
}

var reLabel = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Classify decides whether a cleaned line declares a label or holds an
// instruction, and splits instructions into mnemonic and operand.
func Classify(sl SourceLine) (Line, error) {
	line := Line{Number: sl.Number, Text: sl.Text}

	if strings.HasSuffix(sl.Text, labelSuffix) {
		name := strings.TrimSpace(strings.TrimSuffix(sl.Text, labelSuffix))
		if name == "" || strings.ContainsAny(name, " \t") {
			return line, fmt.Errorf("%w '%s'", ErrMalformedLabel, name)
		}
		line.Kind = LineLabel
		line.Label = name
		return line, nil
	}

	firstSpace := strings.IndexAny(sl.Text, " \t")
	if firstSpace == -1 {
		return line, fmt.Errorf("%w: expected a mnemonic and an operand", ErrMalformedInstruction)
	}

	line.Kind = LineInstruction
	line.Mnemonic = sl.Text[:firstSpace]
	line.Operand = strings.TrimSpace(sl.Text[firstSpace:])
	if strings.ContainsAny(line.Operand, " \t") {
		return line, fmt.Errorf("%w: unexpected text after operand", ErrMalformedInstruction)
	}
	return line, nil
}

// ParseOperand classifies operand text by its syntax alone.
func ParseOperand(s string) Operand {
	op := Operand{Raw: s}
	switch {
	case s == "":
		op.Kind = OperandNone
	case strings.HasPrefix(s, zeroPageMarker):
		op.Kind = OperandZeroPage
		op.Value = strings.TrimPrefix(s, zeroPageMarker)
	case strings.HasPrefix(s, immediateMarker):
		op.Kind = OperandImmediate
		op.Value = strings.TrimPrefix(s, immediateMarker)
	case reLabel.MatchString(s):
		op.Kind = OperandLabel
		op.Value = s
	default:
		op.Kind = OperandInvalid
	}
	return op
}
