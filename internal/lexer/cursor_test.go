package lexer

import (
	"testing"

	"yasl/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.yasl", []byte(content))
	return fs.Get(id)
}

func TestCursorSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte("a\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() || cursor.Bump() != 0 || cursor.Peek() != 0 {
		t.Fatalf("cursor must stay at EOF")
	}
}

func TestCursorPeekAhead(t *testing.T) {
	cursor := NewCursor(createFile("ab"))
	if b0, b1, ok := cursor.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if cursor.PeekAt(2) != 0 {
		t.Fatalf("PeekAt past end must be 0")
	}
	cursor.Bump()
	if _, _, ok := cursor.Peek2(); ok {
		t.Fatalf("Peek2 with one byte left must fail")
	}
}

func TestCursorMarkResetSpan(t *testing.T) {
	cursor := NewCursor(createFile("α\nβ"))
	mark := cursor.Mark()
	cursor.Bump()
	cursor.Bump()
	if sp := cursor.SpanFrom(mark); sp.Start != 0 || sp.End != 2 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	if !cursor.Eat('\n') || cursor.Eat('x') {
		t.Fatalf("Eat misbehaves")
	}
	cursor.Reset(mark)
	if cursor.Off != 0 {
		t.Fatalf("Reset did not rewind, Off=%d", cursor.Off)
	}
}
