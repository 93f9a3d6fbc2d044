package main

import (
	"github.com/spf13/cobra"

	"yasl/internal/prof"
)

var profSession *prof.Session

func startProfiling(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = pf.GetString("cpuprofile"); err != nil {
		return err
	}
	if opts.Mem, err = pf.GetString("memprofile"); err != nil {
		return err
	}
	if opts.Runtime, err = pf.GetString("runtime-trace"); err != nil {
		return err
	}
	if !opts.Enabled() {
		return nil
	}
	profSession, err = prof.Start(opts)
	return err
}

func stopProfiling() error {
	err := profSession.Stop()
	profSession = nil
	return err
}
