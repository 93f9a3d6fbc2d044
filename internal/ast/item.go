package ast

import (
	"yasl/internal/source"
)

type ItemKind uint8

const (
	ItemFn ItemKind = iota
	ItemStatic
	ItemSlot
)

func (k ItemKind) String() string {
	switch k {
	case ItemFn:
		return "Fn"
	case ItemStatic:
		return "Static"
	case ItemSlot:
		return "Slot"
	}
	return "Unknown"
}

type Item struct {
	Kind    ItemKind
	Span    source.Span
	Payload PayloadID
}

type FnParam struct {
	Name IdentID
	Type TypeRef
}

// FnItem is a function. A missing '-> T' leaves Result as Void with an empty span.
type FnItem struct {
	Name      IdentID
	Params    []FnParam
	Result    TypeRef
	HasResult bool
	Body      BlockID
	// Header covers 'fn' through the result type.
	Header source.Span
}

type StaticItem struct {
	Name  IdentID
	Type  TypeRef
	Value ExprID
}

type SlotDirection uint8

const (
	SlotInput SlotDirection = iota
	SlotOutput
)

func (d SlotDirection) String() string {
	if d == SlotOutput {
		return "output"
	}
	return "input"
}

// GLSL returns the storage qualifier.
func (d SlotDirection) GLSL() string {
	if d == SlotOutput {
		return "out"
	}
	return "in"
}

// SlotItem is an interface slot: layout<input|output, N> name: T;
type SlotItem struct {
	Direction SlotDirection
	Index     uint32
	Name      IdentID
	Type      TypeRef
}

type Items struct {
	Arena   *Arena[Item]
	Fns     *Arena[FnItem]
	Statics *Arena[StaticItem]
	Slots   *Arena[SlotItem]
}

func NewItems(capHint uint) *Items {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Items{
		Arena:   NewArena[Item](capHint),
		Fns:     NewArena[FnItem](capHint),
		Statics: NewArena[StaticItem](capHint),
		Slots:   NewArena[SlotItem](capHint),
	}
}

func (i *Items) new(kind ItemKind, span source.Span, payload uint32) ItemID {
	return ItemID(i.Arena.Allocate(Item{
		Kind:    kind,
		Span:    span,
		Payload: PayloadID(payload),
	}))
}

func (i *Items) Get(id ItemID) *Item {
	return i.Arena.Get(uint32(id))
}

func (i *Items) NewFn(span source.Span, fn FnItem) ItemID {
	fn.Params = append([]FnParam(nil), fn.Params...)
	return i.new(ItemFn, span, i.Fns.Allocate(fn))
}

func (i *Items) Fn(id ItemID) *FnItem {
	it := i.Get(id)
	if it == nil || it.Kind != ItemFn {
		return nil
	}
	return i.Fns.Get(uint32(it.Payload))
}

func (i *Items) NewStatic(span source.Span, st StaticItem) ItemID {
	return i.new(ItemStatic, span, i.Statics.Allocate(st))
}

func (i *Items) Static(id ItemID) *StaticItem {
	it := i.Get(id)
	if it == nil || it.Kind != ItemStatic {
		return nil
	}
	return i.Statics.Get(uint32(it.Payload))
}

func (i *Items) NewSlot(span source.Span, slot SlotItem) ItemID {
	return i.new(ItemSlot, span, i.Slots.Allocate(slot))
}

func (i *Items) Slot(id ItemID) *SlotItem {
	it := i.Get(id)
	if it == nil || it.Kind != ItemSlot {
		return nil
	}
	return i.Slots.Get(uint32(it.Payload))
}
