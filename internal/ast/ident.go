package ast

import (
	"yasl/internal/source"
)

// Ident is an identifier as written, plus the prefix it is emitted with.
// Namespace is the first segment of a two-segment path (glsl::sin), or "".
type Ident struct {
	Name      string
	Namespace string
	Prefix    string
	Span      source.Span
}

// Emitted returns the name as it appears in generated code.
func (id *Ident) Emitted() string {
	return id.Prefix + id.Name
}

// Qualified returns the name as written in source.
func (id *Ident) Qualified() string {
	if id.Namespace == "" {
		return id.Name
	}
	return id.Namespace + "::" + id.Name
}

type Idents struct {
	Arena *Arena[Ident]
}

func NewIdents(capHint uint) *Idents {
	return &Idents{Arena: NewArena[Ident](capHint)}
}

func (i *Idents) New(name, namespace, prefix string, span source.Span) IdentID {
	return IdentID(i.Arena.Allocate(Ident{
		Name:      name,
		Namespace: namespace,
		Prefix:    prefix,
		Span:      span,
	}))
}

func (i *Idents) Get(id IdentID) *Ident {
	return i.Arena.Get(uint32(id))
}
