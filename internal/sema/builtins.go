package sema

import (
	"yasl/internal/types"
)

// builtinVars are the GLSL built-in variables reachable as glsl::name.
var builtinVars = map[string]types.Type{
	"gl_Position":      types.MakeVector(4, types.ScalarFloat32),
	"gl_PointSize":     types.Float32,
	"gl_VertexIndex":   types.Int,
	"gl_InstanceIndex": types.Int,
	"gl_FragCoord":     types.MakeVector(4, types.ScalarFloat32),
	"gl_FrontFacing":   types.Bool,
	"gl_FragDepth":     types.Float32,
	"gl_PointCoord":    types.MakeVector(2, types.ScalarFloat32),
}

type builtinRule uint8

const (
	// ruleArg0: тип первого аргумента (sin, normalize, mix, ...)
	ruleArg0 builtinRule = iota + 1
	// ruleComponent: скаляр компоненты первого аргумента (length, dot)
	ruleComponent
	ruleBool
)

var builtinFuncs = map[string]builtinRule{
	"length":   ruleComponent,
	"distance": ruleComponent,
	"dot":      ruleComponent,

	"any": ruleBool,
	"all": ruleBool,

	"radians": ruleArg0, "degrees": ruleArg0,
	"sin": ruleArg0, "cos": ruleArg0, "tan": ruleArg0,
	"asin": ruleArg0, "acos": ruleArg0, "atan": ruleArg0,
	"pow": ruleArg0, "exp": ruleArg0, "log": ruleArg0,
	"exp2": ruleArg0, "log2": ruleArg0,
	"sqrt": ruleArg0, "inversesqrt": ruleArg0,
	"abs": ruleArg0, "sign": ruleArg0,
	"floor": ruleArg0, "ceil": ruleArg0, "round": ruleArg0, "trunc": ruleArg0, "fract": ruleArg0,
	"mod": ruleArg0, "min": ruleArg0, "max": ruleArg0, "clamp": ruleArg0,
	"mix": ruleArg0, "step": ruleArg0, "smoothstep": ruleArg0,
	"normalize": ruleArg0, "reflect": ruleArg0, "refract": ruleArg0,
	"cross": ruleArg0, "faceforward": ruleArg0,
}

// builtinCall types a call to glsl::name. Unknown builtins are void.
func builtinCall(name string, args []types.Type) types.Type {
	rule, ok := builtinFuncs[name]
	if !ok {
		return types.Void()
	}
	if rule == ruleBool {
		return types.Bool
	}
	if len(args) == 0 {
		return types.Void()
	}
	if rule == ruleComponent {
		return args[0].Component()
	}
	return args[0]
}

// constructorCall types f64::vec3(..) style constructors and scalar
// conversions such as i32::i32(..).
func constructorCall(namespace, name string) types.Type {
	scalar, ok := types.LookupScalar(namespace)
	if !ok {
		return types.Void()
	}
	if degree, ok := types.VectorDegree(name); ok {
		return types.MakeVector(degree, scalar)
	}
	if s, ok := types.LookupScalar(name); ok && s == scalar {
		return types.MakeScalar(s)
	}
	return types.Void()
}
