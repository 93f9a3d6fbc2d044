package ast

import (
	"yasl/internal/source"
	"yasl/internal/types"
)

// TypeRef is a type annotation already resolved by the parser.
type TypeRef struct {
	Type types.Type
	Span source.Span
}
