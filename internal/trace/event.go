package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
)

func (k Kind) String() string {
	switch k {
	case KindBegin:
		return "begin"
	case KindEnd:
		return "end"
	case KindPoint:
		return "point"
	}
	return "unknown"
}

// Scope is the granularity of an event; lower is coarser.
type Scope uint8

const (
	ScopeBuild Scope = iota + 1 // whole project
	ScopeStage                  // emit/write/compile of one shader
	ScopePhase                  // load/parse/resolve/generate/sourcemap
)

func (s Scope) String() string {
	switch s {
	case ScopeBuild:
		return "build"
	case ScopeStage:
		return "stage"
	case ScopePhase:
		return "phase"
	}
	return "unknown"
}

// Event is a single trace record.
type Event struct {
	Time    time.Time
	Seq     uint64 // assigned by the tracer
	Kind    Kind
	Scope   Scope
	Name    string        // "parse", "compile", ...
	Path    string        // file or shader the event belongs to
	Elapsed time.Duration // set on KindEnd
	Detail  string
}
