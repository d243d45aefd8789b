package checksum

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// ManifestEntry describes one hashed file.
type ManifestEntry struct {
	ID       uuid.UUID `json:"id"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	Checksum string    `json:"checksum"`
}

// Manifest is the result of hashing a tree.
type Manifest struct {
	Algorithm  string          `json:"algorithm"`
	Normalized bool            `json:"normalized"`
	Entries    []ManifestEntry `json:"entries"`

	// Digest hashes the sorted (path, checksum) pairs of all entries.
	Digest string `json:"digest"`
}

// ManifestOption configures a ManifestBuilder.
type ManifestOption func(*ManifestBuilder)

// WithNormalized hashes normalized instead of raw content.
func WithNormalized() ManifestOption {
	return func(b *ManifestBuilder) { b.normalized = true }
}

// ManifestBuilder is a dirtree.FileVisitor hashing every visited file.
// Directories contribute nothing.
type ManifestBuilder struct {
	calc       Calculator
	normalized bool
	entries    []ManifestEntry
}

// NewManifestBuilder creates a builder. Panics if calc is nil.
func NewManifestBuilder(calc Calculator, opts ...ManifestOption) *ManifestBuilder {
	if calc == nil {
		panic("calculator cannot be nil")
	}
	b := &ManifestBuilder{calc: calc}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *ManifestBuilder) VisitDir(dirtree.FileVisitDetails) error { return nil }

func (b *ManifestBuilder) VisitFile(details dirtree.FileVisitDetails) error {
	content, err := details.ReadContent()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", details.RelativePath(), err)
	}

	sum := b.calc.CalculateRaw(content)
	if b.normalized {
		sum = b.calc.CalculateNormalized(content)
	}

	path := details.RelativePath().PathString()
	b.entries = append(b.entries, ManifestEntry{
		ID:       EntryID(path),
		Path:     path,
		Size:     int64(len(content)),
		Checksum: sum,
	})
	return nil
}

// Manifest returns the entries in visit order and the tree digest.
// The digest does not depend on visit order.
func (b *ManifestBuilder) Manifest() Manifest {
	entries := make([]ManifestEntry, len(b.entries))
	copy(entries, b.entries)

	return Manifest{
		Algorithm:  b.calc.Name(),
		Normalized: b.normalized,
		Entries:    entries,
		Digest:     b.digest(),
	}
}

func (b *ManifestBuilder) digest() string {
	lines := make([]string, 0, len(b.entries))
	for _, e := range b.entries {
		// quoting keeps a path containing a space apart from the checksum
		lines = append(lines, strconv.Quote(e.Path)+" "+e.Checksum)
	}
	sort.Strings(lines)
	return b.calc.CalculateRaw([]byte(strings.Join(lines, "\n")))
}

var _ dirtree.FileVisitor = (*ManifestBuilder)(nil)
