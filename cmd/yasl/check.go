package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"yasl/internal/driver"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [flags] file.yasl|dir...",
		Short: "Parse and type-check YASL files without generating code",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, args []string) error {
	env, err := readEnv(cmd)
	if err != nil {
		return err
	}
	paths, err := expandInputs(args)
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range paths {
		a, err := driver.Check(path, env.driverOptions())
		if err != nil {
			env.reportError(err, nil)
			failed++
			continue
		}
		env.reportBag(a.Bag, a.FileSet)
		if a.Err() != nil {
			failed++
		}
	}
	if err := env.flush(); err != nil {
		return err
	}
	if failed > 0 {
		if !env.quiet && env.diagnostics == nil {
			fmt.Fprintf(env.stderr, "%d of %d files failed\n", failed, len(paths))
		}
		return errReported
	}
	if !env.quiet && env.diagnostics == nil && len(paths) > 1 {
		fmt.Fprintf(env.stdout, "checked %d files\n", len(paths))
	}
	return nil
}

// expandInputs replaces directories with the YASL files below them.
func expandInputs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		st, err := os.Stat(arg)
		if err != nil || !st.IsDir() {
			paths = append(paths, arg)
			continue
		}
		files, err := driver.ListSources(arg)
		if err != nil {
			return nil, err
		}
		paths = append(paths, files...)
	}
	return paths, nil
}
