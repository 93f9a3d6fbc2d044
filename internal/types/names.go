package types

import (
	"strconv"
	"strings"
)

var scalarNames = map[string]Scalar{
	"i32":  ScalarInt,
	"u32":  ScalarUInt,
	"f32":  ScalarFloat32,
	"f64":  ScalarFloat64,
	"bool": ScalarBool,
}

// LookupScalar resolves a DSL scalar type name (i32, u32, f32, f64, bool).
func LookupScalar(name string) (Scalar, bool) {
	s, ok := scalarNames[name]
	return s, ok
}

// VectorDegree resolves "vec2".."vec4" to its degree.
func VectorDegree(name string) (uint8, bool) {
	rest, ok := strings.CutPrefix(name, "vec")
	if !ok || len(rest) != 1 {
		return 0, false
	}
	n, err := strconv.ParseUint(rest, 10, 8)
	if err != nil || n < MinDegree || n > MaxDegree {
		return 0, false
	}
	return uint8(n), true
}

// DSLName is the name used in YASL source.
func (s Scalar) DSLName() string {
	switch s {
	case ScalarInt:
		return "i32"
	case ScalarUInt:
		return "u32"
	case ScalarFloat32:
		return "f32"
	case ScalarFloat64:
		return "f64"
	case ScalarBool:
		return "bool"
	}
	return "?"
}

// GLSLName is the scalar keyword in GLSL.
func (s Scalar) GLSLName() string {
	switch s {
	case ScalarInt:
		return "int"
	case ScalarUInt:
		return "uint"
	case ScalarFloat32:
		return "float"
	case ScalarFloat64:
		return "double"
	case ScalarBool:
		return "bool"
	}
	return "?"
}

// VectorPrefix is the letter GLSL puts in front of "vecN" for this component.
func (s Scalar) VectorPrefix() string {
	switch s {
	case ScalarInt:
		return "i"
	case ScalarUInt:
		return "u"
	case ScalarFloat64:
		return "d"
	case ScalarBool:
		return "b"
	}
	return ""
}

// String renders the type as written in YASL.
func (t Type) String() string {
	switch t.Kind {
	case KindScalar:
		return t.Scalar.DSLName()
	case KindVector:
		return "vec" + strconv.Itoa(int(t.Degree)) + "<" + t.Scalar.DSLName() + ">"
	default:
		return "void"
	}
}

// GLSL renders the type as a GLSL type name.
func (t Type) GLSL() string {
	switch t.Kind {
	case KindScalar:
		return t.Scalar.GLSLName()
	case KindVector:
		return t.Scalar.VectorPrefix() + "vec" + strconv.Itoa(int(t.Degree))
	default:
		return "void"
	}
}
