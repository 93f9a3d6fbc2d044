package ast

type ExprBinaryOp uint8

const (
	ExprBinaryAdd ExprBinaryOp = iota
	ExprBinarySub
	ExprBinaryMul
	ExprBinaryDiv
	ExprBinaryMod
	ExprBinaryBitAnd
	ExprBinaryBitOr
	ExprBinaryBitXor
	ExprBinaryShiftLeft
	ExprBinaryShiftRight
	ExprBinaryLogicalAnd
	ExprBinaryLogicalOr
	ExprBinaryEq
	ExprBinaryNotEq
	ExprBinaryLess
	ExprBinaryLessEq
	ExprBinaryGreater
	ExprBinaryGreaterEq
)

var binaryOpText = [...]string{
	ExprBinaryAdd:        "+",
	ExprBinarySub:        "-",
	ExprBinaryMul:        "*",
	ExprBinaryDiv:        "/",
	ExprBinaryMod:        "%",
	ExprBinaryBitAnd:     "&",
	ExprBinaryBitOr:      "|",
	ExprBinaryBitXor:     "^",
	ExprBinaryShiftLeft:  "<<",
	ExprBinaryShiftRight: ">>",
	ExprBinaryLogicalAnd: "&&",
	ExprBinaryLogicalOr:  "||",
	ExprBinaryEq:         "==",
	ExprBinaryNotEq:      "!=",
	ExprBinaryLess:       "<",
	ExprBinaryLessEq:     "<=",
	ExprBinaryGreater:    ">",
	ExprBinaryGreaterEq:  ">=",
}

// String returns the operator token text.
func (op ExprBinaryOp) String() string {
	if int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return "?"
}

type ExprUnaryOp uint8

const (
	ExprUnaryMinus ExprUnaryOp = iota
	ExprUnaryNot
)

func (op ExprUnaryOp) String() string {
	switch op {
	case ExprUnaryMinus:
		return "-"
	case ExprUnaryNot:
		return "!"
	}
	return "?"
}

type ExprAssignOp uint8

const (
	ExprAssignPlain ExprAssignOp = iota
	ExprAssignAdd
	ExprAssignSub
	ExprAssignMul
	ExprAssignDiv
	ExprAssignMod
	ExprAssignBitAnd
	ExprAssignBitOr
	ExprAssignBitXor
	ExprAssignShl
	ExprAssignShr
)

var assignOpText = [...]string{
	ExprAssignPlain:  "=",
	ExprAssignAdd:    "+=",
	ExprAssignSub:    "-=",
	ExprAssignMul:    "*=",
	ExprAssignDiv:    "/=",
	ExprAssignMod:    "%=",
	ExprAssignBitAnd: "&=",
	ExprAssignBitOr:  "|=",
	ExprAssignBitXor: "^=",
	ExprAssignShl:    "<<=",
	ExprAssignShr:    ">>=",
}

func (op ExprAssignOp) String() string {
	if int(op) < len(assignOpText) {
		return assignOpText[op]
	}
	return "?"
}

// IsCompound reports whether op is one of the op-assign forms.
func (op ExprAssignOp) IsCompound() bool {
	return op != ExprAssignPlain
}
