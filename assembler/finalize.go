package assembler

import "os"

// OutputSuffix is appended to the source path to name the image file.
const OutputSuffix = ".bin"

// OutputPath returns where the image for a source file is written.
func OutputPath(source string) string {
	return source + OutputSuffix
}

// Finalize parses every pending literal and masks every value to 8 bits.
// Negative branch displacements become their two's complement byte here.
func Finalize(slots []Slot) ([]byte, error) {
	image := make([]byte, 0, len(slots))
	for _, s := range slots {
		v := s.Value
		if s.Kind == SlotPending {
			n, err := parseHexLiteral(s.Literal)
			if err != nil {
				return nil, &LineError{Line: s.Line, Text: s.Text, Err: err}
			}
			v = n
		}
		image = append(image, byte(v&0xFF))
	}
	return image, nil
}

// WriteImage writes the image verbatim, with no header or padding.
func WriteImage(path string, image []byte) error {
	return os.WriteFile(path, image, 0o644)
}
