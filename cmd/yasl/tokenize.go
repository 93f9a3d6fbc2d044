package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yasl/internal/diagfmt"
	"yasl/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.yasl",
		Short: "Print the token stream of a YASL file",
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	env, err := readEnv(cmd)
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	res, err := driver.Tokenize(args[0], env.maxDiag)
	if err != nil {
		env.reportError(err, nil)
		return errReported
	}
	env.reportBag(res.Bag, res.FileSet)

	switch format {
	case "pretty":
		err = diagfmt.FormatTokensPretty(env.stdout, res.Tokens, res.FileSet)
	case "json":
		err = diagfmt.FormatTokensJSON(env.stdout, res.Tokens, res.FileSet)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	if err != nil {
		return err
	}
	if ferr := env.flush(); ferr != nil {
		return ferr
	}
	if res.Bag.HasErrors() {
		return errReported
	}
	return nil
}
