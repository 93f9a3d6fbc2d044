package sourcemap

import (
	"regexp"
	"strconv"
	"strings"

	"yasl/internal/diag"
)

// lineRef matches "<file>:<line>:" as printed by glslang and glslc,
// e.g. "ERROR: 0:5: ..." or "shader.glsl:5: error: ...".
var lineRef = regexp.MustCompile(`([^\s:]+):(\d+):`)

// Translate turns a backend compile log into a single error. The first
// line reference that resolves to a spanned entry anchors the error at
// that span, carrying the whole backend line as its message. When nothing
// resolves, the trimmed log is passed through unanchored.
func (m SourceMap) Translate(log string) *diag.Error {
	for _, line := range strings.Split(log, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, match := range lineRef.FindAllStringSubmatch(line, -1) {
			n, err := strconv.Atoi(match[2])
			if err != nil {
				continue
			}
			entry, ok := m.Lookup(n)
			if !ok || !entry.HasSpan {
				continue
			}
			return diag.FromDiagnostic(diag.NewError(diag.BckCompileFailed, entry.Span, line))
		}
	}
	return diag.Unanchored(diag.BckCompileFailed, strings.TrimSpace(log))
}
