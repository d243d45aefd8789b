package walker

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dirtree/internal/files/filesystem"
	"github.com/vvka-141/dirtree/internal/logging"
	"github.com/vvka-141/dirtree/pkg/dirtree"
)

func TestVisitDetails_Metadata(t *testing.T) {
	modTime := time.Date(2023, 6, 1, 8, 30, 0, 0, time.UTC)
	mfs := filesystem.NewMemoryFileSystem("/R")
	mfs.AddFileWithTime("sub/data.bin", "0123456789", modTime)

	var files, dirs []dirtree.FileVisitDetails
	v := dirtree.VisitorFuncs{
		File: func(d dirtree.FileVisitDetails) error { files = append(files, d); return nil },
		Dir:  func(d dirtree.FileVisitDetails) error { dirs = append(dirs, d); return nil },
	}
	require.NoError(t, New(mfs, logging.NewNullLogger()).Walk("/R", dirtree.RootPath(), v, nil, nil))

	require.Len(t, files, 1)
	f := files[0]
	assert.Equal(t, "data.bin", f.Name())
	assert.Equal(t, "/R/sub/data.bin", f.Path())
	assert.Equal(t, "sub/data.bin", f.RelativePath().PathString())
	assert.True(t, f.RelativePath().IsFile())
	assert.False(t, f.IsDirectory())
	assert.Equal(t, int64(10), f.Size())
	assert.True(t, f.LastModified().Equal(modTime))
	assert.True(t, f.Mode().IsRegular())

	content, err := f.ReadContent()
	require.NoError(t, err)
	assert.Equal(t, "0123456789", string(content))

	require.Len(t, dirs, 1)
	assert.True(t, dirs[0].IsDirectory())
	assert.False(t, dirs[0].RelativePath().IsFile())
	_, err = dirs[0].ReadContent()
	assert.ErrorIs(t, err, dirtree.ErrInvalidOperation)
}

func TestVisitDetails_FreshPerEntry(t *testing.T) {
	var seen []dirtree.FileVisitDetails
	v := dirtree.VisitorFuncs{
		File: func(d dirtree.FileVisitDetails) error { seen = append(seen, d); return nil },
		Dir:  func(d dirtree.FileVisitDetails) error { seen = append(seen, d); return nil },
	}
	require.NoError(t, New(sampleTree(), logging.NewNullLogger()).Walk("/R", dirtree.RootPath(), v, nil, nil))

	require.Len(t, seen, 3)
	assert.Equal(t, "a.txt", seen[0].RelativePath().PathString(), "earlier details are not overwritten")
	assert.Equal(t, "sub", seen[1].RelativePath().PathString())
	assert.Equal(t, "sub/b.txt", seen[2].RelativePath().PathString())
}

func TestVisitDetails_CopyTo(t *testing.T) {
	target := t.TempDir()

	v := dirtree.VisitorFuncs{
		File: func(d dirtree.FileVisitDetails) error {
			return d.CopyTo(filepath.Join(target, filepath.FromSlash(d.RelativePath().PathString())))
		},
		Dir: func(d dirtree.FileVisitDetails) error {
			return d.CopyTo(filepath.Join(target, filepath.FromSlash(d.RelativePath().PathString())))
		},
	}
	mfs := sampleTree()
	mfs.AddDir("empty")
	require.NoError(t, New(mfs, logging.NewNullLogger()).Walk("/R", dirtree.RootPath(), v, nil, nil))

	content, err := os.ReadFile(filepath.Join(target, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "bb", string(content))

	info, err := os.Stat(filepath.Join(target, "empty"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
