package filesystem

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryNames(entries []Entry) []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return names
}

func TestMemoryFileSystem_ReadDirSortedWithParents(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	mfs.AddFile("b.txt", "b")
	mfs.AddFile("sub/deep/c.txt", "c")
	mfs.AddFile("a.txt", "a")

	entries, err := mfs.ReadDir("/test/project")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt", "sub"}, entryNames(entries))
	assert.Equal(t, "/test/project/sub", entries[2].Path)
	assert.True(t, entries[2].Info.IsDir(), "missing parents must be created as directories")

	deep, err := mfs.ReadDir("sub/deep")
	require.NoError(t, err)
	assert.Equal(t, []string{"c.txt"}, entryNames(deep))
}

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	expectedContent := "hello\n"
	mfs.AddFile("root.txt", expectedContent)

	content, err := mfs.ReadFile("/test/project/root.txt")
	require.NoError(t, err)
	require.Equal(t, expectedContent, string(content))

	_, err = mfs.ReadFile("/test/project/missing.txt")
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = mfs.ReadFile("/test/project")
	assert.Error(t, err, "reading a directory must fail")
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	modTime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mfs.AddFileWithTime("root.txt", "12345", modTime)

	info, err := mfs.Stat("/test/project/root.txt")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "root.txt", info.Name())
	require.Equal(t, int64(5), info.Size())
	require.True(t, info.ModTime().Equal(modTime))
	require.True(t, info.Mode().IsRegular())

	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	require.True(t, info.IsDir())

	_, err = mfs.Stat("/test/project/nope")
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFileSystem_DanglingEntry(t *testing.T) {
	mfs := NewMemoryFileSystem("/root")
	mfs.AddFile("ok.txt", "x")
	mfs.AddDangling("broken-link")

	entries, err := mfs.ReadDir("/root")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "broken-link", entries[0].Name)
	assert.Nil(t, entries[0].Info)
	assert.NotNil(t, entries[1].Info)

	_, err = mfs.Stat("/root/broken-link")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFileSystem_InjectedFailures(t *testing.T) {
	boom := errors.New("device not ready")

	t.Run("read dir", func(t *testing.T) {
		mfs := NewMemoryFileSystem("/root")
		mfs.AddDir("locked")
		mfs.FailReadDir("locked", boom)

		_, err := mfs.ReadDir("/root/locked")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("child stat", func(t *testing.T) {
		mfs := NewMemoryFileSystem("/root")
		mfs.AddFile("weird", "x")
		mfs.FailStat("weird", boom)

		_, err := mfs.ReadDir("/root")
		assert.ErrorIs(t, err, boom, "non-not-found classification errors surface from the listing")

		_, err = mfs.Stat("/root/weird")
		assert.ErrorIs(t, err, boom)
	})
}

func TestMemoryFileSystem_ReadDirOnFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/root")
	mfs.AddFile("a.txt", "x")

	_, err := mfs.ReadDir("/root/a.txt")
	assert.Error(t, err)

	_, err = mfs.ReadDir("/root/missing")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestMemoryFileSystem_CanonicalizeAndRel(t *testing.T) {
	mfs := NewMemoryFileSystem(`\test\project`)
	assert.Equal(t, "/test/project", mfs.Root())

	got, err := mfs.Canonicalize("sub/../a.txt")
	require.NoError(t, err)
	assert.Equal(t, "/test/project/a.txt", got)

	got, err = mfs.Canonicalize(`sub\b.txt`)
	require.NoError(t, err)
	assert.Equal(t, "/test/project/sub/b.txt", got)

	tests := []struct {
		name    string
		base    string
		target  string
		want    string
		wantErr bool
	}{
		{"same", "/test/project", "/test/project", ".", false},
		{"child", "/test/project", "/test/project/sub/a.txt", "sub/a.txt", false},
		{"sibling prefix", "/test/project", "/test/projectile/a.txt", "", true},
		{"outside", "/test/project", "/other", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rel, err := mfs.Rel(tt.base, tt.target)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rel)
		})
	}
}

func TestFileSystemHelpers(t *testing.T) {
	mfs := NewMemoryFileSystem("/root")
	mfs.AddFile("a.txt", "x")
	mfs.AddDir("sub")

	tests := []struct {
		path                    string
		exists, isDir, isFile bool
	}{
		{"/root/a.txt", true, false, true},
		{"/root/sub", true, true, false},
		{"/root/none", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			exists, err := Exists(mfs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.exists, exists)

			isDir, err := IsDir(mfs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.isDir, isDir)

			isFile, err := IsFile(mfs, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.isFile, isFile)
		})
	}

	boom := errors.New("stat failed")
	mfs.FailStat("a.txt", boom)
	_, err := Exists(mfs, "/root/a.txt")
	assert.ErrorIs(t, err, boom)
}
