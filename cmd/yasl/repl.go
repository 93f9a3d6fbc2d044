package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"yasl/internal/diag"
	"yasl/internal/driver"
	"yasl/internal/source"
)

const replHelp = `Enter YASL items; the GLSL generated for them is printed.
Lines are collected until braces balance. Accepted items stay in scope.
  :glsl    print the GLSL for the whole session
  :source  print the accepted YASL source
  :reset   forget every accepted item
  :quit    leave (also Ctrl-D)`

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively translate YASL items to GLSL",
		Args:  cobra.NoArgs,
		RunE:  runRepl,
	}
}

func runRepl(cmd *cobra.Command, _ []string) error {
	env, err := readEnv(cmd)
	if err != nil {
		return err
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt: "yasl> ",
		Stdout: env.stdout,
		Stderr: env.stderr,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	s := &replSession{opts: env.driverOptions()}
	fmt.Fprintln(env.stdout, "yasl repl, :help for commands")
	for {
		chunk, err := readChunk(rl)
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if quit := s.handle(cmd.Context(), env, chunk); quit {
			return nil
		}
	}
}

// readChunk reads lines until braces and parentheses balance.
func readChunk(rl *readline.Instance) (string, error) {
	rl.SetPrompt("yasl> ")
	var sb strings.Builder
	depth := 0
	for {
		line, err := rl.Readline()
		if err != nil {
			return "", err
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
		depth += nesting(line)
		if depth <= 0 {
			return sb.String(), nil
		}
		rl.SetPrompt("  ... ")
	}
}

// nesting returns the change in bracket depth caused by line, ignoring
// line comments.
func nesting(line string) int {
	if i := strings.Index(line, "//"); i >= 0 {
		line = line[:i]
	}
	d := 0
	for _, r := range line {
		switch r {
		case '{', '(', '[':
			d++
		case '}', ')', ']':
			d--
		}
	}
	return d
}

// replSession holds the accepted source. Every evaluation regenerates the
// whole session so later items can call earlier functions.
type replSession struct {
	src  []byte
	opts driver.Options
	last string // GLSL of the whole session after the last accepted chunk
}

// evalResult is what one chunk produced.
type evalResult struct {
	lines    []string // GLSL lines that came from the chunk
	warnings []diag.Diagnostic
	fs       *source.FileSet
	err      error
}

func (s *replSession) eval(ctx context.Context, chunk string) evalResult {
	full := make([]byte, 0, len(s.src)+len(chunk))
	full = append(full, s.src...)
	full = append(full, chunk...)
	out, err := driver.EmitSource(ctx, "<repl>", full, s.opts)
	res := evalResult{fs: outputFileSet(out), err: err}
	if err != nil {
		return res
	}
	offset := uint32(len(s.src))
	for _, l := range out.SourceMap.Lines {
		if l.HasSpan && l.Span.Start >= offset {
			res.lines = append(res.lines, l.String())
		}
	}
	// earlier chunks were already reported
	for _, w := range out.Warnings {
		if w.Primary.Start >= offset {
			res.warnings = append(res.warnings, w)
		}
	}
	s.src = append([]byte(nil), out.File.Content...)
	s.last = out.Text
	return res
}

func (s *replSession) handle(ctx context.Context, env *cliEnv, chunk string) bool {
	switch strings.TrimSpace(chunk) {
	case "":
		return false
	case ":quit", ":q":
		return true
	case ":help":
		fmt.Fprintln(env.stdout, replHelp)
		return false
	case ":reset":
		s.src, s.last = nil, ""
		return false
	case ":source":
		fmt.Fprint(env.stdout, string(s.src))
		return false
	case ":glsl":
		fmt.Fprintln(env.stdout, s.last)
		return false
	}

	res := s.eval(ctx, chunk)
	if res.err != nil {
		env.reportError(res.err, res.fs)
		return false
	}
	env.reportWarnings(res.warnings, res.fs)
	for _, l := range res.lines {
		fmt.Fprintln(env.stdout, l)
	}
	return false
}
