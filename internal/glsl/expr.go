package glsl

import (
	"strings"

	"yasl/internal/ast"
	"yasl/internal/types"
)

// expr renders a value expression on a single line.
func (g *generator) expr(id ast.ExprID) (string, error) {
	var sb strings.Builder
	if err := g.writeExpr(&sb, id); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (g *generator) writeExpr(sb *strings.Builder, id ast.ExprID) error {
	exprs := g.builder.Exprs
	expr := exprs.Get(id)
	if expr == nil {
		return internalErr("unknown expression %d", id)
	}
	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := exprs.Literal(id)
		sb.WriteString(literalText(lit))

	case ast.ExprIdent:
		data, _ := exprs.Ident(id)
		sb.WriteString(g.name(data.Ident))

	case ast.ExprBinary:
		data, _ := exprs.Binary(id)
		prec := glslPrec(data.Op)
		if err := g.writeOperand(sb, data.Left, prec, false); err != nil {
			return err
		}
		sb.WriteString(" " + data.Op.String() + " ")
		return g.writeOperand(sb, data.Right, prec, true)

	case ast.ExprUnary:
		data, _ := exprs.Unary(id)
		operand, err := g.expr(data.Operand)
		if err != nil {
			return err
		}
		op := data.Op.String()
		sb.WriteString(op)
		// "- -a" не должно превратиться в декремент "--a"
		if op == "-" && strings.HasPrefix(operand, "-") {
			operand = "(" + operand + ")"
		}
		sb.WriteString(operand)

	case ast.ExprCall:
		data, _ := exprs.Call(id)
		sb.WriteString(g.callee(data.Callee))
		sb.WriteByte('(')
		for i, arg := range data.Args {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := g.writeExpr(sb, arg); err != nil {
				return err
			}
		}
		sb.WriteByte(')')

	case ast.ExprCast:
		data, _ := exprs.Cast(id)
		sb.WriteString(data.Target.Type.GLSL())
		sb.WriteByte('(')
		if err := g.writeExpr(sb, data.Value); err != nil {
			return err
		}
		sb.WriteByte(')')

	case ast.ExprMember:
		data, _ := exprs.Member(id)
		if err := g.writeExpr(sb, data.Target); err != nil {
			return err
		}
		sb.WriteByte('.')
		sb.WriteString(data.Member)

	case ast.ExprGroup:
		data, _ := exprs.Group(id)
		sb.WriteByte('(')
		if err := g.writeExpr(sb, data.Inner); err != nil {
			return err
		}
		sb.WriteByte(')')

	default:
		// парсер не пускает инструкции в позицию значения
		return internalErr("%s expression in value position", expr.Kind)
	}
	return nil
}

// glslPrec is the C precedence level GLSL gives op; higher binds tighter.
// YASL groups comparisons on one level and binds & ^ | above them, so the
// levels differ from the parser's.
func glslPrec(op ast.ExprBinaryOp) int {
	switch op {
	case ast.ExprBinaryMul, ast.ExprBinaryDiv, ast.ExprBinaryMod:
		return 10
	case ast.ExprBinaryAdd, ast.ExprBinarySub:
		return 9
	case ast.ExprBinaryShiftLeft, ast.ExprBinaryShiftRight:
		return 8
	case ast.ExprBinaryLess, ast.ExprBinaryLessEq, ast.ExprBinaryGreater, ast.ExprBinaryGreaterEq:
		return 7
	case ast.ExprBinaryEq, ast.ExprBinaryNotEq:
		return 6
	case ast.ExprBinaryBitAnd:
		return 5
	case ast.ExprBinaryBitXor:
		return 4
	case ast.ExprBinaryBitOr:
		return 3
	case ast.ExprBinaryLogicalAnd:
		return 2
	}
	return 1
}

// writeOperand writes a binary operand, parenthesised when GLSL would
// otherwise regroup it under the parent operator.
func (g *generator) writeOperand(sb *strings.Builder, id ast.ExprID, parent int, right bool) error {
	child, ok := g.builder.Exprs.Binary(id)
	if !ok {
		return g.writeExpr(sb, id)
	}
	prec := glslPrec(child.Op)
	if prec > parent || (prec == parent && !right) {
		return g.writeExpr(sb, id)
	}
	sb.WriteByte('(')
	if err := g.writeExpr(sb, id); err != nil {
		return err
	}
	sb.WriteByte(')')
	return nil
}

// callee spells a call target. Scalar conversions such as i32::i32(..)
// become the GLSL scalar constructor int(..).
func (g *generator) callee(id ast.IdentID) string {
	ident := g.builder.Idents.Get(id)
	if ns, ok := types.LookupScalar(ident.Namespace); ok {
		if s, ok := types.LookupScalar(ident.Name); ok && s == ns {
			return s.GLSLName()
		}
	}
	return ident.Emitted()
}
