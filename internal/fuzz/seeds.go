package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxFuzzInput = 64 << 10 // 64 KiB

var languageSeeds = []string{
	"",
	"fn main() { }",
	"layout<input,0> pos: vec3<f32>;\nfn main() { glsl::gl_Position = f32::vec4(pos, 1.0); }",
	"static SCALE: f32 = 2.0;\nfn main() { let a = SCALE * 3.0; }",
	"fn f(x: i32) -> i32 { if x > 0 { return x; } else { return -x; } }",
	"fn main() { let v = f32::vec3(1.0, 2.0, 3.0); let s = v.zyx; }",
	"fn main() { let a = 1; a += 2; let b = a as f32; }",
	"fn main() { let x = later(); }\nfn later() { }",
	"/* block */ fn main() { // line\n }",
	"fn main() { let = ; }",
	"pub fn main() { }",
	"fn main() { let x: vec4<u32> = u32::vec4(1u, 2u, 3u, 4u); }",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

// addTestdataSeeds добавляет все *.yasl из testdata, если он есть
func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".yasl" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err == nil {
			f.Add(clamp(src))
		}
		return nil
	})
}

func clamp(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
