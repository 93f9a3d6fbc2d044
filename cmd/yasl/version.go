package main

import (
	"github.com/spf13/cobra"

	"yasl/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := readEnv(cmd)
			if err != nil {
				return err
			}
			version.Print(env.stdout, env.color && isTerminal(env.stdout))
			return nil
		},
	}
}
