package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"yasl/internal/trace"
)

func setupTracing(cmd *cobra.Command) error {
	pf := cmd.Root().PersistentFlags()
	output, err := pf.GetString("trace")
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if output == "" {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return nil
	}

	levelStr, err := pf.GetString("trace-level")
	if err != nil {
		return err
	}
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return err
	}
	formatStr, err := pf.GetString("trace-format")
	if err != nil {
		return err
	}
	format, err := trace.ParseFormat(formatStr, output)
	if err != nil {
		return err
	}

	cfg := trace.Config{Level: level, Format: format, OutputPath: output}
	if output == "-" {
		cfg.Output = nopWriteCloser{cmd.ErrOrStderr()}
	}
	tracer, err := trace.New(cfg)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	cmd.SetContext(trace.WithTracer(ctx, tracer))
	return nil
}

func closeTracing(cmd *cobra.Command) error {
	return trace.FromContext(cmd.Context()).Close()
}

// nopWriteCloser hides Close so the tracer never closes stderr.
type nopWriteCloser struct{ io.Writer }
