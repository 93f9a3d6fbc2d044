package backend

import (
	"fmt"
	"strings"
)

// ShaderKind is the pipeline stage a shader is compiled for.
type ShaderKind string

const (
	Vertex         ShaderKind = "vertex"
	Fragment       ShaderKind = "fragment"
	Compute        ShaderKind = "compute"
	Geometry       ShaderKind = "geometry"
	TessControl    ShaderKind = "tess_control"
	TessEvaluation ShaderKind = "tess_evaluation"
)

var stageNames = map[ShaderKind]string{
	Vertex:         "vert",
	Fragment:       "frag",
	Compute:        "comp",
	Geometry:       "geom",
	TessControl:    "tesc",
	TessEvaluation: "tese",
}

// ShaderKinds lists every kind in a stable order.
func ShaderKinds() []ShaderKind {
	return []ShaderKind{Vertex, Fragment, Compute, Geometry, TessControl, TessEvaluation}
}

// ParseShaderKind accepts the long name or the short stage name.
func ParseShaderKind(s string) (ShaderKind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for kind, stage := range stageNames {
		if s == string(kind) || s == stage {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown shader kind %q (expected one of vertex, fragment, compute, geometry, tess_control, tess_evaluation)", s)
}

// Stage returns the short stage name used by glslang and glslc ("vert", ...).
func (k ShaderKind) Stage() string {
	return stageNames[k]
}

func (k ShaderKind) Valid() bool {
	_, ok := stageNames[k]
	return ok
}
