package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"yasl/internal/diag"
	"yasl/internal/diagfmt"
	"yasl/internal/driver"
	"yasl/internal/glsl"
	"yasl/internal/source"
	"yasl/internal/sourcemap"
)

func newEmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit [flags] file.yasl|dir...",
		Short: "Generate GLSL from YASL sources",
		Long: `Emit runs the whole front end and prints the generated GLSL. With one
input the text goes to stdout or --output; several inputs (or a directory)
need --out-dir and are generated in parallel.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEmit,
	}
	f := cmd.Flags()
	f.StringP("output", "o", "-", "output file for a single input (- for stdout)")
	f.String("out-dir", "", "output directory when several inputs are given")
	f.Bool("sourcemap", false, "write <output>.map next to each output file")
	f.Bool("show-map", false, "print the line map instead of the GLSL text")
	f.String("prefix", "", "prefix for user identifiers in GLSL (default \"yasl_\")")
	f.Int("glsl-version", glsl.DefaultVersion, "GLSL #version to emit")
	f.String("entry", glsl.DefaultEntry, "name of the YASL entry function")
	f.Bool("cache", false, "reuse results from the on-disk cache")
	f.Int("jobs", 0, "parallel files (default GOMAXPROCS)")
	return cmd
}

type emitFlags struct {
	output    string
	outDir    string
	sourcemap bool
	showMap   bool
}

func runEmit(cmd *cobra.Command, args []string) error {
	env, err := readEnv(cmd)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	var ef emitFlags
	if ef.output, err = f.GetString("output"); err != nil {
		return err
	}
	if ef.outDir, err = f.GetString("out-dir"); err != nil {
		return err
	}
	if ef.sourcemap, err = f.GetBool("sourcemap"); err != nil {
		return err
	}
	if ef.showMap, err = f.GetBool("show-map"); err != nil {
		return err
	}
	opts, err := emitOptions(cmd, env)
	if err != nil {
		return err
	}

	paths, err := expandInputs(args)
	if err != nil {
		return err
	}
	if len(paths) > 1 && ef.outDir == "" {
		return fmt.Errorf("%d inputs given: use --out-dir", len(paths))
	}
	if ef.outDir != "" {
		if err := os.MkdirAll(ef.outDir, 0o750); err != nil {
			return err
		}
	}

	results, err := driver.EmitFiles(cmd.Context(), paths, opts)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !handleEmitResult(env, r, ef) {
			failed++
		}
	}
	if err := env.flush(); err != nil {
		return err
	}
	if failed > 0 {
		return errReported
	}
	return nil
}

func emitOptions(cmd *cobra.Command, env *cliEnv) (driver.Options, error) {
	f := cmd.Flags()
	opts := env.driverOptions()
	var err error
	if opts.Prefix, err = f.GetString("prefix"); err != nil {
		return opts, err
	}
	if opts.GLSL.Version, err = f.GetInt("glsl-version"); err != nil {
		return opts, err
	}
	if opts.GLSL.Entry, err = f.GetString("entry"); err != nil {
		return opts, err
	}
	if opts.Jobs, err = f.GetInt("jobs"); err != nil {
		return opts, err
	}
	useCache, err := f.GetBool("cache")
	if err != nil {
		return opts, err
	}
	if useCache {
		// без кеша просто медленнее, поэтому ошибку открытия не поднимаем
		if c, cerr := driver.OpenDiskCache("yasl"); cerr == nil {
			opts.Cache = c
		} else if !env.quiet {
			fmt.Fprintln(env.stderr, "warning: cache disabled:", cerr)
		}
	}
	return opts, nil
}

// handleEmitResult reports and writes one file; false means it failed.
func handleEmitResult(env *cliEnv, r driver.FileResult, ef emitFlags) bool {
	if r.Err != nil {
		env.reportError(r.Err, outputFileSet(r.Output))
		return false
	}
	out := r.Output
	env.reportWarnings(out.Warnings, out.FileSet)
	if env.timings {
		printPhaseTimings(env.stderr, r.Path, out)
	}

	target := ef.output
	if ef.outDir != "" {
		target = filepath.Join(ef.outDir, strings.TrimSuffix(filepath.Base(r.Path), driver.SourceExt)+".glsl")
	}

	if ef.showMap {
		if err := diagfmt.FormatSourceMap(env.stdout, out.SourceMap, out.FileSet); err != nil {
			env.reportError(err, nil)
			return false
		}
	} else if target == "-" {
		fmt.Fprintln(env.stdout, out.Text)
	} else if err := os.WriteFile(target, []byte(out.Text), 0o600); err != nil {
		env.reportError(diag.Unanchored(diag.IOWriteFileError, "failed to write "+target+": "+err.Error()), nil)
		return false
	}

	if ef.sourcemap && target != "-" {
		if err := sourcemap.WriteFile(target+".map", out.SourceMap, r.Path); err != nil {
			env.reportError(diag.Unanchored(diag.IOWriteFileError, "failed to write "+target+".map: "+err.Error()), nil)
			return false
		}
	}
	return true
}

func outputFileSet(out *driver.Output) *source.FileSet {
	if out == nil {
		return nil
	}
	return out.FileSet
}
