package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"
)

// AferoFileSystem implements FileSystemProvider over an afero.Fs.
// afero.ReadDir lists children sorted by name.
type AferoFileSystem struct {
	fs afero.Fs
}

// NewAferoFileSystem wraps an afero filesystem. Panics if fsys is nil.
func NewAferoFileSystem(fsys afero.Fs) *AferoFileSystem {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	return &AferoFileSystem{fs: fsys}
}

func (p *AferoFileSystem) Stat(path string) (FileInfo, error) {
	return p.fs.Stat(path)
}

func (p *AferoFileSystem) ReadDir(path string) ([]Entry, error) {
	infos, err := afero.ReadDir(p.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	result := make([]Entry, 0, len(infos))
	for _, info := range infos {
		childPath := filepath.Join(path, info.Name())
		var childInfo FileInfo = info
		if info.Mode()&fs.ModeSymlink != 0 {
			childInfo, err = p.fs.Stat(childPath)
			if err != nil {
				if !errors.Is(err, fs.ErrNotExist) {
					return nil, fmt.Errorf("failed to get file info for %s: %w", info.Name(), err)
				}
				childInfo = nil
			}
		}
		result = append(result, Entry{Name: info.Name(), Path: childPath, Info: childInfo})
	}
	return result, nil
}

func (p *AferoFileSystem) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(p.fs, path)
}

// Canonicalize cleans path and makes it absolute. On an OS-backed Fs symbolic
// links are resolved as OSFileSystem does; virtual filesystems have none.
func (p *AferoFileSystem) Canonicalize(path string) (string, error) {
	if _, ok := p.fs.(*afero.OsFs); ok {
		return NewOSFileSystem().Canonicalize(path)
	}
	cleaned := filepath.Clean(path)
	if !filepath.IsAbs(cleaned) {
		cleaned = filepath.Join(string(filepath.Separator), cleaned)
	}
	return cleaned, nil
}

func (p *AferoFileSystem) Rel(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

var _ FileSystemProvider = (*AferoFileSystem)(nil)
