package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"yasl/internal/backend"
	"yasl/internal/buildpipeline"
	"yasl/internal/diag"
	"yasl/internal/driver"
	"yasl/internal/project"
	"yasl/internal/trace"
	"yasl/internal/ui"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] [dir]",
		Short: "Build every shader of a yasl.toml project",
		Long: `Build finds yasl.toml in dir (or a parent), generates GLSL for every
[[shader]] entry and compiles it with the configured backend. Backend errors
are mapped back onto the YASL source through the generated line map.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}
	f := cmd.Flags()
	f.Bool("skip-compile", false, "stop after writing GLSL")
	f.String("backend", "", "override the manifest backend ("+strings.Join(backend.Names(), "|")+")")
	f.Int("jobs", 0, "parallel shaders (default GOMAXPROCS)")
	f.String("ui", "auto", "progress UI (auto|on|off)")
	f.Bool("no-cache", false, "do not use the on-disk generation cache")
	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	env, err := readEnv(cmd)
	if err != nil {
		return err
	}
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	m, err := project.LoadManifest(dir)
	if err != nil {
		env.reportError(err, nil)
		_ = env.flush()
		return errReported
	}

	req, err := buildRequest(cmd, env, m)
	if err != nil {
		env.reportError(err, nil)
		_ = env.flush()
		return errReported
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return err
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	tracer := env.tracer
	tracer.Emit(&trace.Event{Kind: trace.KindBegin, Scope: trace.ScopeBuild, Name: "build", Path: m.Config.Project.Name})
	req.Progress = trace.Sink(tracer, nil)

	var res buildpipeline.BuildResult
	if env.diagnostics == nil && !env.quiet && shouldUseTUI(mode, env.stdout) {
		title := "building " + m.Config.Project.Name
		res, err = runBuildWithUI(cmd.Context(), env.stdout, title, buildpipeline.ProgressNames(m), req)
	} else {
		if !env.quiet && env.diagnostics == nil && mode != uiModeOff {
			req.Progress = trace.Sink(tracer, ui.NewPlainSink(env.stderr, env.color))
		}
		res, err = buildpipeline.Build(cmd.Context(), req)
	}
	tracer.Emit(&trace.Event{Kind: trace.KindEnd, Scope: trace.ScopeBuild, Name: "build", Path: m.Config.Project.Name,
		Elapsed: res.Timings.Sum(buildpipeline.StageEmit, buildpipeline.StageWrite, buildpipeline.StageCompile)})

	for _, sr := range res.Shaders {
		if sr.Err != nil {
			env.reportError(sr.Err, outputFileSet(sr.Output))
			continue
		}
		if sr.Output != nil {
			env.reportWarnings(sr.Output.Warnings, sr.Output.FileSet)
		}
	}
	if env.timings {
		printStageTimings(env.stderr, res.Timings)
	}
	if ferr := env.flush(); ferr != nil {
		return ferr
	}

	switch {
	case errors.Is(err, buildpipeline.ErrBuildFailed):
		if env.diagnostics == nil {
			fmt.Fprintln(env.stderr, err)
		}
		return errReported
	case err != nil:
		if _, ok := diag.AsError(err); ok {
			env.reportError(err, nil)
			return errReported
		}
		return err
	}
	if !env.quiet && env.diagnostics == nil {
		fmt.Fprintf(env.stdout, "built %d shaders into %s\n", len(res.Shaders), relToWD(m.OutDir()))
	}
	return nil
}

func buildRequest(cmd *cobra.Command, env *cliEnv, m *project.Manifest) (*buildpipeline.BuildRequest, error) {
	f := cmd.Flags()
	req := &buildpipeline.BuildRequest{Manifest: m, Observer: trace.PhaseObserver(env.tracer)}
	var err error
	if req.SkipCompile, err = f.GetBool("skip-compile"); err != nil {
		return nil, err
	}
	if req.Jobs, err = f.GetInt("jobs"); err != nil {
		return nil, err
	}
	name, err := f.GetString("backend")
	if err != nil {
		return nil, err
	}
	if name != "" && !req.SkipCompile {
		if req.Compiler, err = backend.New(name); err != nil {
			return nil, diag.Unanchored(diag.ProjBadBackend, err.Error())
		}
	}
	noCache, err := f.GetBool("no-cache")
	if err != nil {
		return nil, err
	}
	if !noCache {
		if c, cerr := driver.OpenDiskCache("yasl"); cerr == nil {
			req.Cache = c
		}
	}
	return req, nil
}

func relToWD(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil {
		return rel
	}
	return path
}
