package main

import (
	"fmt"
	"io"
	"time"

	"yasl/internal/buildpipeline"
	"yasl/internal/driver"
)

func printPhaseTimings(w io.Writer, path string, out *driver.Output) {
	if out.Cached {
		fmt.Fprintf(w, "%s: cached\n", path)
		return
	}
	out.Timings.Write(w, path)
}

func printStageTimings(w io.Writer, timings buildpipeline.Timings) {
	for _, stage := range []buildpipeline.Stage{buildpipeline.StageEmit, buildpipeline.StageWrite, buildpipeline.StageCompile} {
		if timings.Has(stage) {
			fmt.Fprintf(w, "%-8s %7.1f ms\n", stage, toMillis(timings.Duration(stage)))
		}
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
