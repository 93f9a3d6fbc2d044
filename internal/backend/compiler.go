package backend

import (
	"context"
	"fmt"
	"strings"

	"yasl/internal/diag"
)

// Compiler turns GLSL text into SPIR-V. A rejected shader yields a
// *CompileError carrying the tool's log; any other failure (tool missing,
// cancelled context) is a plain error.
type Compiler interface {
	Compile(ctx context.Context, text string, kind ShaderKind) ([]byte, error)
}

// Func adapts a function to Compiler.
type Func func(ctx context.Context, text string, kind ShaderKind) ([]byte, error)

func (f Func) Compile(ctx context.Context, text string, kind ShaderKind) ([]byte, error) {
	return f(ctx, text, kind)
}

// CompileError is a shader the backend refused. Log holds the raw output
// with the backend's own line numbers.
type CompileError struct {
	Tool string
	Log  string
}

func (e *CompileError) Error() string {
	log := strings.TrimSpace(e.Log)
	if e.Tool == "" {
		return "compile failed: " + log
	}
	return e.Tool + ": compile failed: " + log
}

func (e *CompileError) Unwrap() error {
	return diag.ErrBackendCompile
}

// Names lists the backends New understands.
func Names() []string {
	return []string{"glslang", "glslc"}
}

// New returns the backend called name. An empty name selects glslang.
func New(name string) (Compiler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "glslang", "glslangvalidator":
		return &Glslang{}, nil
	case "glslc", "shaderc":
		return &Glslc{}, nil
	}
	return nil, fmt.Errorf("unknown backend %q (supported: %s)", name, strings.Join(Names(), ", "))
}
