package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"yasl/internal/project"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Create a yasl.toml project with a starter vertex and fragment shader",
		Long: `Init writes yasl.toml and two starter shaders into dir (default: the
current directory), creating it when missing. An existing manifest is never
overwritten; existing shader files are left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	env, err := readEnv(cmd)
	if err != nil {
		return err
	}
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}
	res, err := project.Init(dir)
	if err != nil {
		env.reportError(err, nil)
		return errReported
	}
	if env.quiet {
		return nil
	}
	fmt.Fprintf(env.stdout, "Initialized yasl project in %s\n", relToWD(res.Dir))
	for _, f := range res.Created {
		fmt.Fprintf(env.stdout, "  + %s\n", filepath.ToSlash(f))
	}
	for _, f := range res.Kept {
		fmt.Fprintf(env.stdout, "  = %s (kept)\n", filepath.ToSlash(f))
	}
	return nil
}
