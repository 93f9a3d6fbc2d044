package ast

import (
	"yasl/internal/source"
	"yasl/internal/types"
)

type ExprKind uint8

const (
	// Value tier: usable as a sub-expression.
	ExprLit ExprKind = iota
	ExprIdent
	ExprBinary
	ExprUnary
	ExprCall
	ExprCast
	ExprMember
	ExprGroup

	// Statement tier: only valid as a whole statement.
	ExprAssign
	ExprReturn
	ExprIf
	ExprBlock
)

func (k ExprKind) String() string {
	switch k {
	case ExprLit:
		return "Lit"
	case ExprIdent:
		return "Ident"
	case ExprBinary:
		return "Binary"
	case ExprUnary:
		return "Unary"
	case ExprCall:
		return "Call"
	case ExprCast:
		return "Cast"
	case ExprMember:
		return "Member"
	case ExprGroup:
		return "Group"
	case ExprAssign:
		return "Assign"
	case ExprReturn:
		return "Return"
	case ExprIf:
		return "If"
	case ExprBlock:
		return "Block"
	}
	return "Unknown"
}

// IsValue reports whether k belongs to the value tier.
func (k ExprKind) IsValue() bool {
	return k <= ExprGroup
}

// Expr is the arena record; details live in the per-kind payload arenas.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprLitKind uint8

const (
	ExprLitInt ExprLitKind = iota
	ExprLitFloat
	ExprLitBool
)

// ExprLitData keeps the literal exactly as written.
type ExprLitData struct {
	Kind ExprLitKind
	Text string
}

type ExprIdentData struct {
	Ident IdentID
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprUnaryData struct {
	Op      ExprUnaryOp
	Operand ExprID
}

type ExprCallData struct {
	Callee IdentID
	Args   []ExprID
}

type ExprCastData struct {
	Value  ExprID
	Target TypeRef
}

type ExprMemberData struct {
	Target     ExprID
	Member     string
	MemberSpan source.Span
}

type ExprGroupData struct {
	Inner ExprID
}

// ExprAssignData covers '=' and every compound assignment.
type ExprAssignData struct {
	Op     ExprAssignOp
	Target ExprID // ExprIdent or ExprMember rooted at an identifier
	Value  ExprID
}

type ExprReturnData struct {
	Value ExprID // NoExprID for a bare return
}

type ExprIfData struct {
	Cond ExprID
	Then BlockID
	Else ExprID // NoExprID, an ExprBlock, an ExprIf or another statement expression
	// Header covers 'if' and the condition; ElseKw is the 'else' token.
	Header source.Span
	ElseKw source.Span
}

type ExprBlockData struct {
	Block BlockID
}

// LitType is the type an untyped literal infers to.
func (k ExprLitKind) LitType() types.Type {
	switch k {
	case ExprLitInt:
		return types.Int
	case ExprLitFloat:
		return types.Float32
	case ExprLitBool:
		return types.Bool
	}
	return types.Void()
}
