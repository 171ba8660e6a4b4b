package assembler

// LineKind defines the type of a classified source line.
type LineKind int

const (
	// LineInstruction type.
	LineInstruction LineKind = iota
	// LineLabel type.
	LineLabel
)

// Line represents one classified line of assembly source.
type Line struct {
	Kind   LineKind
	Number int
	Text   string
	// Label is set for LineLabel.
	Label string
	// Mnemonic and Operand are set for LineInstruction.
	Mnemonic string
	Operand  string
}

// Source returns the position and text the line was classified from.
func (l Line) Source() SourceLine {
	return SourceLine{Number: l.Number, Text: l.Text}
}
