package ast

import (
	"strconv"
	"strings"
)

// ParseIntLiteral parses an integer literal as the lexer accepts it:
// decimal, 0b/0o/0x prefixes and '_' separators. A leading zero does not
// switch to octal.
func ParseIntLiteral(text string) (uint64, error) {
	clean := strings.ReplaceAll(text, "_", "")
	if len(clean) > 2 && clean[0] == '0' {
		switch clean[1] {
		case 'b', 'B':
			return strconv.ParseUint(clean[2:], 2, 64)
		case 'o', 'O':
			return strconv.ParseUint(clean[2:], 8, 64)
		case 'x', 'X':
			return strconv.ParseUint(clean[2:], 16, 64)
		}
	}
	return strconv.ParseUint(clean, 10, 64)
}
