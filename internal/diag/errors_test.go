package diag

import (
	"errors"
	"fmt"
	"testing"

	"yasl/internal/source"
)

func TestErrorClasses(t *testing.T) {
	tests := []struct {
		code  Code
		class error
	}{
		{LexUnknownChar, ErrSyntax},
		{LexBadNumber, ErrSyntax},
		{SynUnexpectedToken, ErrSyntax},
		{SynExpectSemicolon, ErrSyntax},
		{SynUnsupportedModifier, ErrUnsupportedConstruct},
		{SynUnsupportedTuple, ErrUnsupportedConstruct},
		{SynUnsupportedAttribute, ErrUnsupportedConstruct},
		{SynUnknownNamespace, ErrUnknownNamespace},
		{SynUnknownType, ErrUnknownType},
		{BckCompileFailed, ErrBackendCompile},
		{IOLoadFileError, ErrIO},
		{ProjNoShaders, ErrProject},
		{SemaInfo, ErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.code.ID(), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", Errorf(tt.code, source.Span{}, "x"))
			if !errors.Is(err, tt.class) {
				t.Fatalf("%s should be %v", tt.code.ID(), tt.class)
			}
			if tt.class != ErrSyntax && errors.Is(err, ErrSyntax) {
				t.Fatalf("%s must not be a plain syntax error", tt.code.ID())
			}
		})
	}
}

func TestErrorAnchoring(t *testing.T) {
	e := Errorf(SynExpectType, source.Span{File: 0, Start: 3, End: 4}, "expected %s", "type")
	if !e.Anchored() {
		t.Fatalf("Errorf must be anchored")
	}
	if e.Error() != "SYN2202: expected type" {
		t.Fatalf("Error() = %q", e.Error())
	}
	sp, ok := e.Span()
	if !ok || sp.Start != 3 {
		t.Fatalf("Span() = %v, %v", sp, ok)
	}

	u := Unanchored(BckCompileFailed, "raw")
	if u.Anchored() {
		t.Fatalf("Unanchored must not be anchored")
	}
	got, ok := AsError(fmt.Errorf("ctx: %w", u))
	if !ok || got != u {
		t.Fatalf("AsError failed to find the error")
	}
}

func TestBagSingleErrorBudget(t *testing.T) {
	bag := NewBag(1)
	r := BagReporter{Bag: bag}
	ReportError(r, SynUnexpectedToken, source.Span{Start: 1, End: 2}, "first").Emit()
	ReportError(r, SynExpectSemicolon, source.Span{Start: 5, End: 6}, "second").Emit()

	if bag.Len() != 1 || !bag.Full() {
		t.Fatalf("bag should hold exactly one diagnostic, got %d", bag.Len())
	}
	first := bag.FirstError()
	if first == nil || first.Diag.Message != "first" {
		t.Fatalf("FirstError = %+v", first)
	}
}

func TestBagSortAndDedup(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(SynExpectType, source.Span{Start: 9, End: 10}, "b"))
	bag.Add(NewError(SynExpectColon, source.Span{Start: 1, End: 2}, "a"))
	bag.Add(NewError(SynExpectColon, source.Span{Start: 1, End: 2}, "a again"))
	bag.Sort()
	bag.Dedup()

	items := bag.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", len(items))
	}
	if items[0].Message != "a" || items[1].Message != "b" {
		t.Fatalf("unexpected order: %q, %q", items[0].Message, items[1].Message)
	}
}
