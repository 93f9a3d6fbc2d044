package project

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"yasl/internal/backend"
	"yasl/internal/diag"
)

const (
	DefaultOutDir  = "build"
	DefaultBackend = "glslang"
)

// Manifest is a loaded yasl.toml with every path resolved against Root.
type Manifest struct {
	Path    string
	Root    string
	Config  Config
	Shaders []Shader
}

// Config mirrors the TOML layout.
type Config struct {
	Project ProjectConfig  `toml:"project"`
	Shaders []ShaderConfig `toml:"shader"`
}

type ProjectConfig struct {
	Name        string `toml:"name"`
	OutDir      string `toml:"out_dir"`
	Backend     string `toml:"backend"`
	Prefix      string `toml:"prefix,omitempty"`
	GLSLVersion int    `toml:"glsl_version,omitempty"`
}

type ShaderConfig struct {
	Name string `toml:"name,omitempty"`
	Path string `toml:"path"`
	Kind string `toml:"kind"`
}

// Shader is one validated [[shader]] entry.
type Shader struct {
	Name string
	// Path is absolute.
	Path string
	Kind backend.ShaderKind
}

// OutDir returns the absolute output directory.
func (m *Manifest) OutDir() string {
	return filepath.Join(m.Root, filepath.FromSlash(m.Config.Project.OutDir))
}

// GLSLPath is where the generated text of sh is written.
func (m *Manifest) GLSLPath(sh Shader) string {
	return filepath.Join(m.OutDir(), sh.Name+"."+sh.Kind.Stage()+".glsl")
}

// SPIRVPath is where the backend output of sh is written.
func (m *Manifest) SPIRVPath(sh Shader) string {
	return filepath.Join(m.OutDir(), sh.Name+"."+sh.Kind.Stage()+".spv")
}

// LoadManifest locates yasl.toml from startDir upwards and loads it.
func LoadManifest(startDir string) (*Manifest, error) {
	path, ok, err := FindManifest(startDir)
	if err != nil {
		return nil, diag.Unanchored(diag.ProjManifestNotFound, err.Error())
	}
	if !ok {
		return nil, diag.Unanchored(diag.ProjManifestNotFound,
			"no "+ManifestName+" found\nrun 'yasl init' or pass a shader file explicitly")
	}
	return Load(path)
}

// Load decodes and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, projErr(diag.ProjManifestInvalid, path, "failed to parse TOML: %v", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, projErr(diag.ProjManifestInvalid, path, "unknown key %s", undecoded[0])
	}
	if !meta.IsDefined("project") {
		return nil, projErr(diag.ProjMissingName, path, "missing [project]")
	}
	if !meta.IsDefined("project", "name") || strings.TrimSpace(cfg.Project.Name) == "" {
		return nil, projErr(diag.ProjMissingName, path, "missing [project].name")
	}
	applyDefaults(&cfg)

	if _, err := backend.New(cfg.Project.Backend); err != nil {
		return nil, projErr(diag.ProjBadBackend, path, "%v", err)
	}
	if len(cfg.Shaders) == 0 {
		return nil, projErr(diag.ProjNoShaders, path, "no [[shader]] entries")
	}

	m := &Manifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
	}
	seen := make(map[string]bool, len(cfg.Shaders))
	for i, sc := range cfg.Shaders {
		sh, err := m.shader(i, sc)
		if err != nil {
			return nil, err
		}
		key := sh.Name + "." + sh.Kind.Stage()
		if seen[key] {
			return nil, projErr(diag.ProjManifestInvalid, path, "shader %q is declared twice for stage %s", sh.Name, sh.Kind)
		}
		seen[key] = true
		m.Shaders = append(m.Shaders, sh)
	}
	return m, nil
}

func applyDefaults(cfg *Config) {
	cfg.Project.Name = strings.TrimSpace(cfg.Project.Name)
	if strings.TrimSpace(cfg.Project.OutDir) == "" {
		cfg.Project.OutDir = DefaultOutDir
	}
	if strings.TrimSpace(cfg.Project.Backend) == "" {
		cfg.Project.Backend = DefaultBackend
	}
}

func (m *Manifest) shader(i int, sc ShaderConfig) (Shader, error) {
	if strings.TrimSpace(sc.Path) == "" {
		return Shader{}, projErr(diag.ProjManifestInvalid, m.Path, "[[shader]] #%d: missing path", i+1)
	}
	kind, err := backend.ParseShaderKind(sc.Kind)
	if err != nil {
		return Shader{}, projErr(diag.ProjBadShaderKind, m.Path, "[[shader]] #%d: %v", i+1, err)
	}
	name := strings.TrimSpace(sc.Name)
	if name == "" {
		base := filepath.Base(sc.Path)
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	if strings.ContainsAny(name, `/\`) || slices.Contains([]string{".", ".."}, name) {
		return Shader{}, projErr(diag.ProjManifestInvalid, m.Path, "[[shader]] #%d: invalid name %q", i+1, name)
	}
	return Shader{
		Name: name,
		Path: filepath.Join(m.Root, filepath.FromSlash(sc.Path)),
		Kind: kind,
	}, nil
}

func projErr(code diag.Code, path, format string, args ...any) error {
	return diag.Unanchored(code, path+": "+fmt.Sprintf(format, args...))
}
