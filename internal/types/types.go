package types

import "fmt"

// Kind enumerates the shapes a DSL type can take.
type Kind uint8

const (
	// KindVoid is the zero value: no value, or nothing could be inferred.
	KindVoid Kind = iota
	KindScalar
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Scalar enumerates the component types.
type Scalar uint8

const (
	ScalarInt Scalar = iota
	ScalarUInt
	ScalarFloat32
	ScalarFloat64
	ScalarBool
)

// Type is a pure value; two types are equal iff their fields are equal.
// The zero Type is Void.
type Type struct {
	Kind   Kind
	Scalar Scalar // for KindScalar and KindVector
	Degree uint8  // 2..4 for KindVector
}

// MinDegree and MaxDegree bound vector lengths.
const (
	MinDegree = 2
	MaxDegree = 4
)

// Void describes the absence of a value.
func Void() Type {
	return Type{}
}

// MakeScalar describes a scalar type.
func MakeScalar(s Scalar) Type {
	return Type{Kind: KindScalar, Scalar: s}
}

// MakeVector describes vecN<s>. Degrees outside 2..4 are a programming error.
func MakeVector(degree uint8, s Scalar) Type {
	if degree < MinDegree || degree > MaxDegree {
		panic(fmt.Sprintf("types: vector degree %d out of range", degree))
	}
	return Type{Kind: KindVector, Scalar: s, Degree: degree}
}

var (
	Int     = MakeScalar(ScalarInt)
	UInt    = MakeScalar(ScalarUInt)
	Float32 = MakeScalar(ScalarFloat32)
	Float64 = MakeScalar(ScalarFloat64)
	Bool    = MakeScalar(ScalarBool)
)

func (t Type) IsVoid() bool   { return t.Kind == KindVoid }
func (t Type) IsScalar() bool { return t.Kind == KindScalar }
func (t Type) IsVector() bool { return t.Kind == KindVector }

// Component returns the scalar type of a vector, the type itself for a
// scalar, and Void otherwise.
func (t Type) Component() Type {
	switch t.Kind {
	case KindScalar:
		return t
	case KindVector:
		return MakeScalar(t.Scalar)
	default:
		return Void()
	}
}

// Len returns the number of components: 1 for scalars, 0 for void.
func (t Type) Len() int {
	switch t.Kind {
	case KindScalar:
		return 1
	case KindVector:
		return int(t.Degree)
	default:
		return 0
	}
}
