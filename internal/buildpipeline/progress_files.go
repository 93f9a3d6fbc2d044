package buildpipeline

import (
	"path/filepath"
	"strings"

	"yasl/internal/project"
)

// progressName is the label a shader carries in progress events:
// "<path relative to root> (<stage>)". Two [[shader]] entries may share a
// source file with different kinds, so the stage is part of the label.
func progressName(sh project.Shader, root string) string {
	return displayPath(sh.Path, root) + " (" + sh.Kind.Stage() + ")"
}

// ProgressNames returns the event labels of every shader in m, in
// manifest order.
func ProgressNames(m *project.Manifest) []string {
	names := make([]string, len(m.Shaders))
	for i, sh := range m.Shaders {
		names[i] = progressName(sh, m.Root)
	}
	return names
}

func displayPath(file, baseDir string) string {
	path := filepath.Clean(file)
	base := strings.TrimSpace(baseDir)
	if base != "" {
		if abs, err := filepath.Abs(base); err == nil {
			base = abs
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		if rel, err := filepath.Rel(base, path); err == nil && rel != "." && !strings.HasPrefix(rel, "..") {
			path = rel
		}
	}
	return filepath.ToSlash(path)
}
