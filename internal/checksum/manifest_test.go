package checksum

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dirtree/internal/filetree"
	"github.com/vvka-141/dirtree/internal/files/filesystem"
	"github.com/vvka-141/dirtree/internal/logging"
	"github.com/vvka-141/dirtree/internal/patterns"
)

func hashTree(t *testing.T, mfs *filesystem.MemoryFileSystem, calc Calculator, opts ...ManifestOption) Manifest {
	t.Helper()
	tree, err := filetree.NewDirectoryTreeWithFS(mfs, logging.NewNullLogger(), mfs.Root(), patterns.NewPatternSet())
	require.NoError(t, err)

	builder := NewManifestBuilder(calc, opts...)
	require.NoError(t, tree.Visit(builder))
	return builder.Manifest()
}

func TestManifestBuilder(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/src")
	mfs.AddFile("a.txt", "abc")
	mfs.AddFile("sub/b.txt", "")
	mfs.AddDir("empty")

	m := hashTree(t, mfs, New())

	assert.Equal(t, AlgorithmSHA256, m.Algorithm)
	assert.False(t, m.Normalized)
	require.Len(t, m.Entries, 2, "directories are not hashed")

	assert.Equal(t, "a.txt", m.Entries[0].Path)
	assert.Equal(t, int64(3), m.Entries[0].Size)
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", m.Entries[0].Checksum)
	assert.Equal(t, EntryID("a.txt"), m.Entries[0].ID)

	assert.Equal(t, "sub/b.txt", m.Entries[1].Path)
	assert.Len(t, m.Digest, 64)
}

func TestManifestBuilder_DigestTracksContent(t *testing.T) {
	build := func(content string) *filesystem.MemoryFileSystem {
		mfs := filesystem.NewMemoryFileSystem("/src")
		mfs.AddFile("a.txt", content)
		mfs.AddFile("z/b.txt", "b")
		return mfs
	}

	same1 := hashTree(t, build("x\n"), NewXXHash())
	same2 := hashTree(t, build("x\n"), NewXXHash())
	changed := hashTree(t, build("y\n"), NewXXHash())
	crlf := hashTree(t, build("x\r\n"), NewXXHash())
	crlfNormalized := hashTree(t, build("x\r\n"), NewXXHash(), WithNormalized())
	lfNormalized := hashTree(t, build("x\n"), NewXXHash(), WithNormalized())

	assert.Equal(t, same1.Digest, same2.Digest)
	assert.NotEqual(t, same1.Digest, changed.Digest)
	assert.NotEqual(t, same1.Digest, crlf.Digest)
	assert.Equal(t, lfNormalized.Digest, crlfNormalized.Digest)
	assert.True(t, crlfNormalized.Normalized)
}

func TestManifestBuilder_DigestIgnoresOrder(t *testing.T) {
	a := NewManifestBuilder(New())
	a.entries = []ManifestEntry{{Path: "x", Checksum: "1"}, {Path: "y", Checksum: "2"}}
	b := NewManifestBuilder(New())
	b.entries = []ManifestEntry{{Path: "y", Checksum: "2"}, {Path: "x", Checksum: "1"}}

	assert.Equal(t, a.Manifest().Digest, b.Manifest().Digest)
}

func TestManifestBuilder_ReadFailure(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/src")
	mfs.AddFile("a.txt", "abc")
	tree, err := filetree.NewDirectoryTreeWithFS(&failingReads{mfs}, logging.NewNullLogger(), "/src", nil)
	require.NoError(t, err)

	err = tree.Visit(NewManifestBuilder(New()))
	assert.ErrorIs(t, err, errUnreadable)
}

var errUnreadable = errors.New("unreadable")

type failingReads struct {
	filesystem.FileSystemProvider
}

func (f *failingReads) ReadFile(string) ([]byte, error) { return nil, errUnreadable }

func TestEntryID(t *testing.T) {
	id := EntryID("docs/README.md")
	assert.Equal(t, uuid.Version(5), id.Version())
	assert.Equal(t, id, EntryID("./docs/readme.md"))
	assert.NotEqual(t, id, EntryID("docs/other.md"))
}

func TestNewManifestBuilder_Nil(t *testing.T) {
	assert.Panics(t, func() { NewManifestBuilder(nil) })
}
