package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{0, 1, 3}, Span{0, 7, 9}, Span{0, 1, 9}},
		{"nested", Span{0, 1, 9}, Span{0, 3, 4}, Span{0, 1, 9}},
		{"reversed", Span{0, 7, 9}, Span{0, 1, 3}, Span{0, 1, 9}},
		{"other file ignored", Span{0, 1, 3}, Span{1, 0, 9}, Span{0, 1, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Errorf("Cover = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpanShift(t *testing.T) {
	s := Span{File: 2, Start: 5, End: 8}
	if got := s.ShiftLeft(5); got != (Span{2, 0, 3}) {
		t.Errorf("ShiftLeft(5) = %v", got)
	}
	if got := s.ShiftLeft(6); got != s {
		t.Errorf("ShiftLeft past zero must be a no-op, got %v", got)
	}
	if got := s.ShiftRight(2); got != (Span{2, 7, 10}) {
		t.Errorf("ShiftRight(2) = %v", got)
	}
}

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 4, End: 4}
	if !s.Empty() || s.Len() != 0 {
		t.Errorf("empty span reported as non-empty")
	}
	s.End = 6
	if s.Len() != 2 || !s.Contains(5) || s.Contains(6) {
		t.Errorf("bad Len/Contains for %v", s)
	}
	if s.String() != "1:4-6" {
		t.Errorf("String = %q", s.String())
	}
}
