package sourcemap

import (
	"bytes"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// mapFile is the on-disk envelope. Spans are byte offsets into Source as it
// was after normalisation, so a map is only meaningful next to that file.
type mapFile struct {
	Version int       `msgpack:"v"`
	Source  string    `msgpack:"source"`
	Map     SourceMap `msgpack:"map"`
}

const mapFileVersion = 1

// Encode serialises m together with the path of the source it maps to.
func Encode(m SourceMap, sourcePath string) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(mapFile{Version: mapFileVersion, Source: sourcePath, Map: m}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode is the inverse of Encode.
func Decode(data []byte) (SourceMap, string, error) {
	var f mapFile
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return SourceMap{}, "", err
	}
	if f.Version != mapFileVersion {
		return SourceMap{}, "", fmt.Errorf("sourcemap: unsupported map version %d", f.Version)
	}
	return f.Map, f.Source, nil
}

// WriteFile stores m next to generated output.
func WriteFile(path string, m SourceMap, sourcePath string) error {
	data, err := Encode(m, sourcePath)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// ReadFile loads a map written by WriteFile.
func ReadFile(path string) (SourceMap, string, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return SourceMap{}, "", err
	}
	return Decode(data)
}
