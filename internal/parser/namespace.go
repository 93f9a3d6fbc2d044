package parser

// namespacePrefixes maps a path namespace to the prefix its names are
// emitted with. glsl:: reaches builtins verbatim; the scalar namespaces pick
// the GLSL vector-type prefix (f64::vec3 -> dvec3).
var namespacePrefixes = map[string]string{
	"glsl": "",
	"f32":  "",
	"f64":  "d",
	"bool": "b",
	"i32":  "i",
	"u32":  "u",
}

// NamespacePrefix returns the emission prefix for ns.
func NamespacePrefix(ns string) (string, bool) {
	prefix, ok := namespacePrefixes[ns]
	return prefix, ok
}
