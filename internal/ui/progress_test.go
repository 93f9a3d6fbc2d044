package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"yasl/internal/buildpipeline"
)

func TestProgressModelTracksShaders(t *testing.T) {
	names := []string{"a.yasl (vert)", "b.yasl (frag)"}
	m := NewProgressModel("building demo", names, nil).(*progressModel)

	m.apply(buildpipeline.Event{File: names[0], Stage: buildpipeline.StageCompile, Status: buildpipeline.StatusDone})
	m.apply(buildpipeline.Event{File: names[1], Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusError,
		Err: errors.New("unexpected token\nmore")})
	m.apply(buildpipeline.Event{File: "unknown", Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusWorking})

	if got := m.percent(); got != 1 {
		t.Errorf("percent = %v, want 1", got)
	}
	if m.failed != 1 {
		t.Errorf("failed = %d", m.failed)
	}
	// later events do not resurrect a failed shader
	m.apply(buildpipeline.Event{File: names[1], Stage: buildpipeline.StageWrite, Status: buildpipeline.StatusDone})
	if m.items[1].status != buildpipeline.StatusError || m.items[1].message != "unexpected token" {
		t.Errorf("item = %+v", m.items[1])
	}

	m.done = true
	view := m.View()
	for _, want := range []string{"building demo: 1 failed", "done", "error", "a.yasl (vert)", "unexpected token"} {
		if !strings.Contains(view, want) {
			t.Errorf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestStageWeightMonotonic(t *testing.T) {
	steps := []struct {
		stage  buildpipeline.Stage
		status buildpipeline.Status
	}{
		{buildpipeline.StageEmit, buildpipeline.StatusQueued},
		{buildpipeline.StageEmit, buildpipeline.StatusWorking},
		{buildpipeline.StageEmit, buildpipeline.StatusDone},
		{buildpipeline.StageWrite, buildpipeline.StatusWorking},
		{buildpipeline.StageWrite, buildpipeline.StatusDone},
		{buildpipeline.StageCompile, buildpipeline.StatusWorking},
		{buildpipeline.StageCompile, buildpipeline.StatusDone},
	}
	prev := -1.0
	for _, s := range steps {
		w := stageWeight(s.stage, s.status)
		if w < prev {
			t.Errorf("%s/%s = %v went backwards from %v", s.stage, s.status, w, prev)
		}
		prev = w
	}
	if prev != 1 {
		t.Errorf("final weight = %v", prev)
	}
}

func TestPlainSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewPlainSink(&buf, false)
	s.OnEvent(buildpipeline.Event{File: "a.yasl (vert)", Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusWorking})
	s.OnEvent(buildpipeline.Event{File: "a.yasl (vert)", Stage: buildpipeline.StageEmit, Status: buildpipeline.StatusDone})
	s.OnEvent(buildpipeline.Event{File: "a.yasl (vert)", Stage: buildpipeline.StageCompile, Status: buildpipeline.StatusError})
	want := "ok emit     a.yasl (vert) (0s)\nfailed compile  a.yasl (vert)\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("shaders/very_long_name.yasl", 10); got != "shaders/v…" {
		t.Errorf("got %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
}
