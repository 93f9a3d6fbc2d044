package ui

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/fatih/color"

	"yasl/internal/buildpipeline"
)

// PlainSink prints one line per finished stage or failure. Used when
// stdout is not a terminal.
type PlainSink struct {
	mu      sync.Mutex
	w       io.Writer
	ok, bad *color.Color
}

func NewPlainSink(w io.Writer, useColor bool) *PlainSink {
	s := &PlainSink{
		w:   w,
		ok:  color.New(color.FgGreen),
		bad: color.New(color.FgRed, color.Bold),
	}
	if !useColor {
		s.ok.DisableColor()
		s.bad.DisableColor()
	}
	return s
}

func (s *PlainSink) OnEvent(ev buildpipeline.Event) {
	var line string
	switch ev.Status {
	case buildpipeline.StatusDone:
		line = fmt.Sprintf("%s %-8s %s (%s)", s.ok.Sprint("ok"), ev.Stage, ev.File, ev.Elapsed.Round(time.Microsecond))
	case buildpipeline.StatusError:
		line = fmt.Sprintf("%s %-8s %s", s.bad.Sprint("failed"), ev.Stage, ev.File)
	default:
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, line)
}
