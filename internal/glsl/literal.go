package glsl

import (
	"strconv"
	"strings"

	"yasl/internal/ast"
)

// literalText rewrites a literal into GLSL spelling. Digit separators are
// dropped; binary and octal integers become decimal since GLSL has neither
// (a leading 0 would read as octal there). Hex is kept.
func literalText(lit *ast.ExprLitData) string {
	text := strings.ReplaceAll(lit.Text, "_", "")
	if lit.Kind != ast.ExprLitInt {
		return text
	}
	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "0x") {
		return "0x" + text[2:]
	}
	v, err := ast.ParseIntLiteral(text)
	if err != nil {
		return text
	}
	return strconv.FormatUint(v, 10)
}
