package trace

import (
	"time"

	"yasl/internal/buildpipeline"
	"yasl/internal/driver"
)

// PhaseObserver forwards driver phase events to t. It returns nil when t
// would drop them, so the driver skips the callback entirely.
func PhaseObserver(t Tracer) driver.PhaseObserver {
	if t == nil || !t.Level().ShouldEmit(ScopePhase) {
		return nil
	}
	return func(ev driver.PhaseEvent) {
		out := &Event{Time: time.Now(), Scope: ScopePhase, Name: ev.Name, Path: ev.Path, Kind: KindBegin}
		if ev.Status == driver.PhaseEnd {
			out.Kind = KindEnd
			out.Elapsed = ev.Elapsed
		}
		t.Emit(out)
	}
}

// Sink turns build progress into stage events and chains to next, which
// may be nil.
func Sink(t Tracer, next buildpipeline.ProgressSink) buildpipeline.ProgressSink {
	if t == nil || t.Level() == LevelOff {
		return next
	}
	return buildpipeline.SinkFunc(func(ev buildpipeline.Event) {
		out := &Event{Time: time.Now(), Scope: ScopeStage, Name: string(ev.Stage), Path: ev.File}
		switch ev.Status {
		case buildpipeline.StatusWorking:
			out.Kind = KindBegin
		case buildpipeline.StatusDone:
			out.Kind, out.Elapsed = KindEnd, ev.Elapsed
		case buildpipeline.StatusError:
			out.Kind, out.Elapsed = KindEnd, ev.Elapsed
			out.Detail = "failed"
			if ev.Err != nil {
				out.Detail = firstLine(ev.Err.Error())
			}
		default:
			out.Kind = KindPoint
			out.Detail = string(ev.Status)
		}
		t.Emit(out)
		if next != nil {
			next.OnEvent(ev)
		}
	})
}

func firstLine(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return s
}
