package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"yasl/internal/diag"
)

// invocation is one run of an external compiler.
type invocation struct {
	tool   string
	path   string
	args   []string
	stdin  string
	output string // file the tool writes SPIR-V to
	echo   io.Writer
}

func lookTool(path, fallback string) (string, error) {
	if path == "" {
		path = fallback
	}
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", diag.Unanchored(diag.BckToolNotFound,
			fmt.Sprintf("%s not found; install the Vulkan SDK or set its path (%v)", path, err))
	}
	return resolved, nil
}

// run executes the tool and reads back the output file. Exit failures become
// a *CompileError with the tool's combined output.
func (inv invocation) run(ctx context.Context) ([]byte, error) {
	if inv.echo != nil {
		if _, err := fmt.Fprintf(inv.echo, "%s %s\n", inv.path, strings.Join(inv.args, " ")); err != nil {
			return nil, fmt.Errorf("failed to print command: %w", err)
		}
	}
	cmd := exec.CommandContext(ctx, inv.path, inv.args...)
	cmd.Stdin = strings.NewReader(inv.stdin)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &CompileError{Tool: inv.tool, Log: out.String()}
		}
		return nil, fmt.Errorf("%s: %w", inv.tool, err)
	}
	// #nosec G304 -- путь внутри нашего временного каталога
	spv, err := os.ReadFile(inv.output)
	if err != nil {
		return nil, fmt.Errorf("%s: no output produced: %w", inv.tool, err)
	}
	return spv, nil
}

func withTempDir(fn func(dir string) ([]byte, error)) ([]byte, error) {
	dir, err := os.MkdirTemp("", "yasl-backend-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create tmp dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(dir) }()
	return fn(dir)
}

// Glslang drives glslangValidator.
type Glslang struct {
	// Path overrides the executable; empty means glslangValidator on PATH.
	Path string
	// Echo, when set, receives each command line before it runs.
	Echo io.Writer
}

func (g *Glslang) Compile(ctx context.Context, text string, kind ShaderKind) ([]byte, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("glslang: invalid shader kind %q", kind)
	}
	path, err := lookTool(g.Path, "glslangValidator")
	if err != nil {
		return nil, err
	}
	return withTempDir(func(dir string) ([]byte, error) {
		out := filepath.Join(dir, "shader.spv")
		return invocation{
			tool:   "glslang",
			path:   path,
			args:   []string{"-V", "--stdin", "-S", kind.Stage(), "-o", out},
			stdin:  text,
			output: out,
			echo:   g.Echo,
		}.run(ctx)
	})
}

// Glslc drives shaderc's glslc.
type Glslc struct {
	Path string
	Echo io.Writer
}

func (g *Glslc) Compile(ctx context.Context, text string, kind ShaderKind) ([]byte, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("glslc: invalid shader kind %q", kind)
	}
	path, err := lookTool(g.Path, "glslc")
	if err != nil {
		return nil, err
	}
	return withTempDir(func(dir string) ([]byte, error) {
		out := filepath.Join(dir, "shader.spv")
		return invocation{
			tool:   "glslc",
			path:   path,
			args:   []string{"-fshader-stage=" + kind.Stage(), "-", "-o", out},
			stdin:  text,
			output: out,
			echo:   g.Echo,
		}.run(ctx)
	})
}
