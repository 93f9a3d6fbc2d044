package parser

import (
	"yasl/internal/ast"
	"yasl/internal/token"
)

// Приоритеты бинарных операторов (больше = сильнее связывает).
// 'as' связывает сильнее любого бинарного оператора, унарные ещё сильнее.
const (
	precNone = iota
	precOrOr
	precAndAnd
	precCompare
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precAdditive
	precMultiplicative
)

var binaryOps = map[token.Kind]struct {
	prec int
	op   ast.ExprBinaryOp
}{
	token.OrOr:    {precOrOr, ast.ExprBinaryLogicalOr},
	token.AndAnd:  {precAndAnd, ast.ExprBinaryLogicalAnd},
	token.EqEq:    {precCompare, ast.ExprBinaryEq},
	token.BangEq:  {precCompare, ast.ExprBinaryNotEq},
	token.Lt:      {precCompare, ast.ExprBinaryLess},
	token.LtEq:    {precCompare, ast.ExprBinaryLessEq},
	token.Gt:      {precCompare, ast.ExprBinaryGreater},
	token.GtEq:    {precCompare, ast.ExprBinaryGreaterEq},
	token.Pipe:    {precBitOr, ast.ExprBinaryBitOr},
	token.Caret:   {precBitXor, ast.ExprBinaryBitXor},
	token.Amp:     {precBitAnd, ast.ExprBinaryBitAnd},
	token.Shl:     {precShift, ast.ExprBinaryShiftLeft},
	token.Shr:     {precShift, ast.ExprBinaryShiftRight},
	token.Plus:    {precAdditive, ast.ExprBinaryAdd},
	token.Minus:   {precAdditive, ast.ExprBinarySub},
	token.Star:    {precMultiplicative, ast.ExprBinaryMul},
	token.Slash:   {precMultiplicative, ast.ExprBinaryDiv},
	token.Percent: {precMultiplicative, ast.ExprBinaryMod},
}

// binaryOpFor returns the precedence and operator of k, or precNone.
func binaryOpFor(k token.Kind) (int, ast.ExprBinaryOp) {
	if entry, ok := binaryOps[k]; ok {
		return entry.prec, entry.op
	}
	return precNone, 0
}

func assignOpFor(k token.Kind) (ast.ExprAssignOp, bool) {
	switch k {
	case token.Assign:
		return ast.ExprAssignPlain, true
	case token.PlusAssign:
		return ast.ExprAssignAdd, true
	case token.MinusAssign:
		return ast.ExprAssignSub, true
	case token.StarAssign:
		return ast.ExprAssignMul, true
	case token.SlashAssign:
		return ast.ExprAssignDiv, true
	case token.PercentAssign:
		return ast.ExprAssignMod, true
	case token.AmpAssign:
		return ast.ExprAssignBitAnd, true
	case token.PipeAssign:
		return ast.ExprAssignBitOr, true
	case token.CaretAssign:
		return ast.ExprAssignBitXor, true
	case token.ShlAssign:
		return ast.ExprAssignShl, true
	case token.ShrAssign:
		return ast.ExprAssignShr, true
	}
	return 0, false
}
