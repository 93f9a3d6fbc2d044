package sema

import (
	"fmt"
	"maps"

	"yasl/internal/types"
)

// scope maps emitted names to their types. Keys use the emitted form so a
// user name never collides with a builtin reached through glsl::.
type scope map[string]types.Type

func newScope() scope {
	return make(scope)
}

func (s scope) clone() scope {
	return maps.Clone(s)
}

func (s scope) lookup(name string) (types.Type, bool) {
	t, ok := s[name]
	return t, ok
}

func fmtName(format, name string) string {
	return fmt.Sprintf(format, "'"+name+"'")
}
