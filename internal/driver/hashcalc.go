package driver

import (
	"crypto/sha256"
	"strconv"

	"yasl/internal/source"
)

// Digest - фиксированный 256 битный хеш (совместим с source.File.Hash)
type Digest [32]byte

// combineDigest: H(content || part1 || part2 ...).
func combineDigest(content Digest, parts ...string) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, p := range parts {
		_, _ = h.Write([]byte(p))
		_, _ = h.Write([]byte{0})
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}

// cacheKey identifies the generated output of file under opts. file.Hash
// is taken after BOM/CRLF/NFC normalisation, so equivalent encodings of
// the same text share a key.
func cacheKey(file *source.File, opts Options) Digest {
	return combineDigest(Digest(file.Hash),
		strconv.Itoa(int(diskCacheSchemaVersion)),
		opts.Prefix,
		strconv.Itoa(opts.GLSL.Version),
		opts.GLSL.Entry,
	)
}
