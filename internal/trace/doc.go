// Package trace records pipeline phases and build stages as a stream of
// events, for diagnosing slow or stuck compiles.
//
// Enable it from the CLI:
//
//	yasl build --trace=- --trace-level=phase
//	yasl emit --trace=out.ndjson shader.yasl
//
// The text format is meant for humans; NDJSON carries the same events one
// object per line. Tracers are attached to a context with WithTracer and
// fed through PhaseObserver (single-file pipeline) and Sink (project build).
package trace
