package driver

import "time"

// PhaseStatus reports whether a phase started or finished.
type PhaseStatus int

const (
	PhaseStart PhaseStatus = iota
	PhaseEnd
)

// Phase names, in pipeline order.
const (
	PhaseLoad     = "load"
	PhaseParse    = "parse"
	PhaseResolve  = "resolve"
	PhaseGenerate = "generate"
	PhaseMap      = "sourcemap"
)

// PhaseEvent describes a timing phase boundary.
type PhaseEvent struct {
	Path    string
	Name    string
	Status  PhaseStatus
	Elapsed time.Duration
}

// PhaseObserver receives phase events emitted during Emit. It may be called
// from several goroutines when EmitDir runs files in parallel.
type PhaseObserver func(PhaseEvent)
