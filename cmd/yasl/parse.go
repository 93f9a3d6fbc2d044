package main

import (
	"github.com/spf13/cobra"

	"yasl/internal/diagfmt"
	"yasl/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] file.yasl",
		Short: "Print the syntax tree of a YASL file",
		Long: `Parse prints the syntax tree. With --types the tree is annotated with
the types inferred for every binding and expression.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	cmd.Flags().Bool("types", false, "annotate the tree with resolved types")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	env, err := readEnv(cmd)
	if err != nil {
		return err
	}
	withTypes, err := cmd.Flags().GetBool("types")
	if err != nil {
		return err
	}

	opts := env.driverOptions()
	var a *driver.Analysis
	if withTypes {
		a, err = driver.Check(args[0], opts)
	} else {
		a, err = driver.Parse(args[0], opts)
	}
	if err != nil {
		env.reportError(err, nil)
		return errReported
	}
	if perr := a.Err(); perr != nil {
		env.reportBag(a.Bag, a.FileSet)
		if ferr := env.flush(); ferr != nil {
			return ferr
		}
		return errReported
	}
	env.reportBag(a.Bag, a.FileSet)
	if err := diagfmt.FormatASTTree(env.stdout, a.Builder, a.FileID, a.FileSet, a.Types); err != nil {
		return err
	}
	return env.flush()
}
