package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"yasl/internal/driver"
)

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect or clear the GLSL generation cache",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "dir",
			Short: "Print the cache directory",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := driver.OpenDiskCache("yasl")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), c.Dir())
				return nil
			},
		},
		&cobra.Command{
			Use:   "clean",
			Short: "Remove every cached entry",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := driver.OpenDiskCache("yasl")
				if err != nil {
					return err
				}
				return c.DropAll()
			},
		},
	)
	return cmd
}
