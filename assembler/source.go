package assembler

import "strings"

const commentMarker = ";"

// SourceLine is one cleaned line of assembly source.
type SourceLine struct {
	// Number is the 1-based line number in the original text.
	Number int
	Text   string
}

// Normalize splits src into lines, drops blank and comment-only lines, and
// strips trailing comments and surrounding whitespace. Order is preserved.
func Normalize(src string) []SourceLine {
	var lines []SourceLine
	for i, line := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}

		if commentIndex := strings.Index(line, commentMarker); commentIndex != -1 {
			line = strings.TrimSpace(line[:commentIndex])
		}
		lines = append(lines, SourceLine{Number: i + 1, Text: line})
	}
	return lines
}
