package assembler

import (
	"fmt"
	"strconv"
	"strings"
)

// parseHexLiteral parses hex digits, with an optional sign and 0x prefix,
// and returns the value reduced to its low 8 bits. Any number of digits is
// accepted; only the last two can affect the result.
func parseHexLiteral(s string) (int, error) {
	digits := strings.TrimSpace(s)
	negative := false
	switch {
	case strings.HasPrefix(digits, "-"):
		negative = true
		digits = digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}
	if len(digits) > 2 && (digits[:2] == "0x" || digits[:2] == "0X") {
		digits = digits[2:]
	}

	if digits == "" {
		return 0, fmt.Errorf("%w '%s'", ErrInvalidLiteral, s)
	}
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return 0, fmt.Errorf("%w '%s'", ErrInvalidLiteral, s)
		}
	}

	if len(digits) > 2 {
		digits = digits[len(digits)-2:]
	}
	v, err := strconv.ParseInt(digits, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("%w '%s'", ErrInvalidLiteral, s)
	}
	if negative {
		v = -v
	}
	return int(v) & 0xFF, nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
