package project

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"yasl/internal/diag"
)

const defaultProjectName = "yasl-project"

// InitResult lists what Init wrote, relative to Dir.
type InitResult struct {
	Dir     string
	Created []string
	Kept    []string
}

// Init creates yasl.toml with a vertex and a fragment shader in dir. It
// refuses to overwrite an existing manifest; existing shader files are kept.
func Init(dir string) (*InitResult, error) {
	if st, err := os.Stat(dir); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	} else if !st.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", dir)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(filepath.Base(abs))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = defaultProjectName
	}

	manifestPath := filepath.Join(dir, ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return nil, diag.Unanchored(diag.ProjManifestInvalid, "project already initialized: "+manifestPath+" exists")
	}

	data, err := EncodeConfig(DefaultConfig(name))
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(manifestPath, data, 0o600); err != nil {
		return nil, diag.Unanchored(diag.IOWriteFileError, "failed to write manifest: "+err.Error())
	}

	res := &InitResult{Dir: dir, Created: []string{ManifestName}}
	for _, f := range starterShaders {
		path := filepath.Join(dir, filepath.FromSlash(f.path))
		if _, err := os.Stat(path); err == nil {
			res.Kept = append(res.Kept, f.path)
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, []byte(f.text), 0o600); err != nil {
			return nil, diag.Unanchored(diag.IOWriteFileError, "failed to write "+f.path+": "+err.Error())
		}
		res.Created = append(res.Created, f.path)
	}
	return res, nil
}

// DefaultConfig is the manifest Init writes.
func DefaultConfig(name string) Config {
	cfg := Config{
		Project: ProjectConfig{
			Name:    name,
			OutDir:  DefaultOutDir,
			Backend: DefaultBackend,
		},
	}
	for _, f := range starterShaders {
		cfg.Shaders = append(cfg.Shaders, ShaderConfig{Path: f.path, Kind: f.kind})
	}
	return cfg
}

// EncodeConfig renders cfg as TOML with a header comment.
func EncodeConfig(cfg Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# YASL project manifest\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var starterShaders = []struct {
	path string
	kind string
	text string
}{
	{
		path: "shaders/triangle.yasl",
		kind: "vertex",
		text: `layout<input,0> position: vec3<f32>;
layout<input,1> color: vec3<f32>;
layout<output,0> v_color: vec3<f32>;

fn main() {
    v_color = color;
    glsl::gl_Position = f32::vec4(position, 1.0);
}
`,
	},
	{
		path: "shaders/color.yasl",
		kind: "fragment",
		text: `layout<input,0> v_color: vec3<f32>;
layout<output,0> frag: vec4<f32>;

fn main() {
    frag = f32::vec4(v_color, 1.0);
}
`,
	},
}
