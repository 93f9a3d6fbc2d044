package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"yasl/internal/source"
	"yasl/internal/sourcemap"
)

func newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate [flags] shader.glsl.map [backend.log]",
		Short: "Map a backend compiler log back onto YASL source",
		Long: `Translate reads a line map written by emit --sourcemap or build and a
backend log (from a file or stdin) and reports the error at the YASL source
line that produced the offending GLSL.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runTranslate,
	}
}

func runTranslate(cmd *cobra.Command, args []string) error {
	env, err := readEnv(cmd)
	if err != nil {
		return err
	}
	sm, srcPath, err := sourcemap.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read line map: %w", err)
	}

	var log []byte
	if len(args) == 2 && args[1] != "-" {
		log, err = os.ReadFile(args[1])
	} else {
		log, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("failed to read backend log: %w", err)
	}

	// Карта ссылается на FileID первого файла набора; свежая загрузка
	// источника получает тот же ID.
	var fs *source.FileSet
	if srcPath != "" {
		fs = source.NewFileSet()
		if _, lerr := fs.Load(srcPath); lerr != nil {
			fs = nil
			if !env.quiet {
				fmt.Fprintf(env.stderr, "warning: source %s unavailable: %v\n", srcPath, lerr)
			}
		}
	}

	env.reportError(sm.Translate(string(log)), fs)
	if err := env.flush(); err != nil {
		return err
	}
	return errReported
}
