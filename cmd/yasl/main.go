package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"yasl/internal/version"
)

// errReported is returned by commands that already printed their
// diagnostics; main only sets the exit code for it.
var errReported = errors.New("failed")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "yasl",
		Short:         "YASL shader compiler",
		Long:          `yasl translates YASL shader sources to GLSL and drives a SPIR-V backend.`,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := startProfiling(cmd); err != nil {
				return err
			}
			return setupTracing(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return errors.Join(closeTracing(cmd), stopProfiling())
		},
	}

	// Глобальные флаги
	pf := root.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress warnings and non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to collect per file")
	pf.String("diagnostics", "pretty", "diagnostics format (pretty|short|golden|json)")
	pf.String("path-mode", "auto", "how paths are shown (auto|absolute|relative|basename)")
	pf.String("trace", "", "write trace events to file (- for stderr)")
	pf.String("trace-level", "phase", "trace verbosity (off|stage|phase)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("cpuprofile", "", "write a CPU profile to file")
	pf.String("memprofile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")

	root.AddCommand(
		newTokenizeCmd(),
		newParseCmd(),
		newCheckCmd(),
		newEmitCmd(),
		newBuildCmd(),
		newInitCmd(),
		newTranslateCmd(),
		newReplCmd(),
		newCacheCmd(),
		newVersionCmd(),
	)
	return root
}

func main() {
	root := newRootCmd()
	err := root.Execute()
	// PostRun не вызывается при ошибке команды
	if perr := stopProfiling(); perr != nil {
		fmt.Fprintln(os.Stderr, "warning:", perr)
	}
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}
