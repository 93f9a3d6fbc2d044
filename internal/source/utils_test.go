package source

import (
	"path/filepath"
	"testing"
)

func TestRelativePath(t *testing.T) {
	base := t.TempDir()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"inside", filepath.Join(base, "shaders", "a.yasl"), "shaders/a.yasl"},
		{"same dir", filepath.Join(base, "a.yasl"), "a.yasl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RelativePath(tt.path, base)
			if err != nil {
				t.Fatalf("RelativePath: %v", err)
			}
			if got != tt.want {
				t.Errorf("RelativePath = %q, want %q", got, tt.want)
			}
		})
	}

	outside := filepath.Join(filepath.Dir(base), "other.yasl")
	got, err := RelativePath(outside, base)
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(filepath.FromSlash(got)) {
		t.Errorf("escaping path should stay absolute, got %q", got)
	}
}

func TestToLineColEmptyIndex(t *testing.T) {
	if got := toLineCol(nil, 4); got != (LineCol{1, 5}) {
		t.Errorf("toLineCol = %v", got)
	}
}
