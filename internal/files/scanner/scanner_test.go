package scanner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dirtree/internal/filetree"
	"github.com/vvka-141/dirtree/internal/files/filesystem"
	"github.com/vvka-141/dirtree/internal/logging"
)

var fixedTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func scan(t *testing.T, opts Options) []Record {
	t.Helper()
	mfs := filesystem.NewMemoryFileSystem("/project")
	mfs.AddFileWithTime("README.md", "# readme", fixedTime)
	mfs.AddFileWithTime("migrations/001_users.sql", "CREATE TABLE users();", fixedTime)
	mfs.AddFileWithTime("migrations/nested/Makefile", "all:", fixedTime)

	tree, err := filetree.NewDirectoryTreeWithFS(mfs, logging.NewNullLogger(), "/project", nil)
	require.NoError(t, err)

	c := NewCollector(opts)
	require.NoError(t, tree.Visit(c))
	return c.Records()
}

func TestCollector_Records(t *testing.T) {
	records := scan(t, Options{})
	require.Len(t, records, 5)

	tests := []struct {
		path      string
		name      string
		directory string
		extension string
		depth     int
		isDir     bool
		size      int64
	}{
		{"./README.md", "README.md", "./", ".md", 0, false, 8},
		{"./migrations/", "migrations", "./", "", 0, true, 0},
		{"./migrations/001_users.sql", "001_users.sql", "./migrations/", ".sql", 1, false, 21},
		{"./migrations/nested/", "nested", "./migrations/", "", 1, true, 0},
		{"./migrations/nested/Makefile", "Makefile", "./migrations/nested/", "", 2, false, 4},
	}

	for i, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r := records[i]
			assert.Equal(t, tt.path, r.Path)
			assert.Equal(t, tt.name, r.Name)
			assert.Equal(t, tt.directory, r.Directory)
			assert.Equal(t, tt.extension, r.Extension)
			assert.Equal(t, tt.depth, r.Depth)
			assert.Equal(t, tt.isDir, r.IsDir)
			assert.Equal(t, tt.size, r.SizeBytes)
		})
	}
	assert.True(t, records[0].ModifiedAt.Equal(fixedTime))
}

func TestCollector_Options(t *testing.T) {
	files := scan(t, Options{FilesOnly: true})
	require.Len(t, files, 3)
	for _, r := range files {
		assert.False(t, r.IsDir)
	}

	dirs := scan(t, Options{DirsOnly: true})
	require.Len(t, dirs, 2)
	for _, r := range dirs {
		assert.True(t, r.IsDir)
	}
}

func TestCollector_LimitStopsWalk(t *testing.T) {
	records := scan(t, Options{Limit: 2})
	require.Len(t, records, 2)
	assert.Equal(t, "./README.md", records[0].Path)
	assert.Equal(t, "./migrations/", records[1].Path)

	files := scan(t, Options{Limit: 2, FilesOnly: true})
	require.Len(t, files, 2)
	assert.Equal(t, "./migrations/001_users.sql", files[1].Path)
}

func TestCollector_RecordsReturnsCopy(t *testing.T) {
	c := NewCollector(Options{})
	c.records = []Record{{Path: "./a"}}
	c.Records()[0].Path = "mutated"
	assert.Equal(t, "./a", c.records[0].Path)
}
