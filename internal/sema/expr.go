package sema

import (
	"yasl/internal/ast"
	"yasl/internal/types"
)

// expr resolves id and all of its children, records the types and returns
// the type of id. Statement expressions are void.
func (tc *typeChecker) expr(id ast.ExprID, sc scope) types.Type {
	if !id.IsValid() {
		return types.Void()
	}
	t := tc.exprType(id, sc)
	tc.result.ExprTypes[id] = t
	return t
}

func (tc *typeChecker) exprType(id ast.ExprID, sc scope) types.Type {
	exprs := tc.builder.Exprs
	expr := exprs.Get(id)
	if expr == nil {
		return types.Void()
	}
	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := exprs.Literal(id)
		return lit.Kind.LitType()

	case ast.ExprIdent:
		data, _ := exprs.Ident(id)
		return tc.ident(data.Ident, sc)

	case ast.ExprBinary:
		data, _ := exprs.Binary(id)
		left := tc.expr(data.Left, sc)
		tc.expr(data.Right, sc)
		return left

	case ast.ExprUnary:
		data, _ := exprs.Unary(id)
		return tc.expr(data.Operand, sc)

	case ast.ExprCast:
		data, _ := exprs.Cast(id)
		tc.expr(data.Value, sc)
		return data.Target.Type

	case ast.ExprCall:
		data, _ := exprs.Call(id)
		args := make([]types.Type, len(data.Args))
		for i, arg := range data.Args {
			args[i] = tc.expr(arg, sc)
		}
		return tc.call(data.Callee, args, sc)

	case ast.ExprMember:
		data, _ := exprs.Member(id)
		return types.Swizzle(tc.expr(data.Target, sc), data.Member)

	case ast.ExprGroup:
		data, _ := exprs.Group(id)
		return tc.expr(data.Inner, sc)

	case ast.ExprAssign:
		data, _ := exprs.Assign(id)
		tc.expr(data.Target, sc)
		tc.expr(data.Value, sc)

	case ast.ExprReturn:
		data, _ := exprs.Return(id)
		tc.expr(data.Value, sc)

	case ast.ExprIf:
		data, _ := exprs.If(id)
		tc.expr(data.Cond, sc)
		tc.nestedBlock(data.Then, sc)
		tc.expr(data.Else, sc)

	case ast.ExprBlock:
		data, _ := exprs.Block(id)
		tc.nestedBlock(data.Block, sc)
	}
	return types.Void()
}

// ident resolves a reference through the scope, then through the glsl
// builtin variables.
func (tc *typeChecker) ident(id ast.IdentID, sc scope) types.Type {
	ident := tc.builder.Idents.Get(id)
	t, ok := sc.lookup(ident.Emitted())
	if !ok && ident.Namespace == "glsl" {
		t = builtinVars[ident.Name]
	}
	tc.result.IdentTypes[id] = t
	return t
}

// call resolves the callee and returns the call's type: the declared result
// of a user function, a vector constructor type, or a builtin's type.
func (tc *typeChecker) call(callee ast.IdentID, args []types.Type, sc scope) types.Type {
	ident := tc.builder.Idents.Get(callee)
	var t types.Type
	switch ident.Namespace {
	case "":
		t, _ = sc.lookup(ident.Emitted())
	case "glsl":
		t = builtinCall(ident.Name, args)
	default:
		t = constructorCall(ident.Namespace, ident.Name)
	}
	tc.result.IdentTypes[callee] = t
	return t
}
