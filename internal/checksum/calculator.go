package checksum

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// Calculator is an interface for computing file checksums.
type Calculator interface {
	// Name identifies the algorithm, e.g. "sha256".
	Name() string

	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	CalculateNormalized(content []byte) string
}

const (
	AlgorithmSHA256 = "sha256"
	AlgorithmXXHash = "xxhash"
)

// ForAlgorithm returns the calculator registered under name (case-insensitive).
// An empty name selects SHA-256.
func ForAlgorithm(name string) (Calculator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", AlgorithmSHA256:
		return New(), nil
	case AlgorithmXXHash, "xxh64":
		return NewXXHash(), nil
	default:
		return nil, fmt.Errorf("unknown checksum algorithm %q (supported: %s, %s): %w",
			name, AlgorithmSHA256, AlgorithmXXHash, dirtree.ErrInvalidConfig)
	}
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
// Using value semantics (pass by value) eliminates heap allocations.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

func (c SHA256) Name() string { return AlgorithmSHA256 }

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	return c.CalculateRaw(normalize(content))
}

// XXHash implements checksum calculation using 64-bit xxHash.
// Much faster than SHA-256 and not collision resistant against an adversary;
// suited to change detection on large trees.
type XXHash struct{}

// NewXXHash creates a new xxHash based calculator.
func NewXXHash() XXHash {
	return XXHash{}
}

func (c XXHash) Name() string { return AlgorithmXXHash }

// CalculateRaw returns the 16 hex digit xxHash64 of content.
func (c XXHash) CalculateRaw(content []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(content))
}

func (c XXHash) CalculateNormalized(content []byte) string {
	return c.CalculateRaw(normalize(content))
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalize drops a leading UTF-8 BOM and converts CRLF and lone CR line endings to LF.
// Content that needs no change is returned as is.
func normalize(content []byte) []byte {
	content = bytes.TrimPrefix(content, utf8BOM)
	if bytes.IndexByte(content, '\r') < 0 {
		return content
	}

	out := make([]byte, 0, len(content))
	for i := 0; i < len(content); i++ {
		ch := content[i]
		if ch != '\r' {
			out = append(out, ch)
			continue
		}
		out = append(out, '\n')
		if i+1 < len(content) && content[i+1] == '\n' {
			i++
		}
	}
	return out
}

var (
	_ Calculator = SHA256{}
	_ Calculator = XXHash{}
)
