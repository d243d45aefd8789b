package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements FileSystemProvider for the OS filesystem.
// Symbolic links are followed; children are listed sorted by name.
type OSFileSystem struct{}

// NewOSFileSystem creates a new OS filesystem provider
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (p *OSFileSystem) Stat(path string) (FileInfo, error) {
	// os.Stat returns os.FileInfo which implements fs.FileInfo
	return os.Stat(path)
}

func (p *OSFileSystem) ReadDir(path string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	result := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		childPath := filepath.Join(path, de.Name())

		var info FileInfo
		if de.Type()&fs.ModeSymlink != 0 {
			info, err = os.Stat(childPath)
		} else {
			info, err = de.Info()
		}
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to get file info for %s: %w", de.Name(), err)
			}
			info = nil
		}

		result = append(result, Entry{Name: de.Name(), Path: childPath, Info: info})
	}

	return result, nil
}

func (p *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (p *OSFileSystem) Canonicalize(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	resolved, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return absPath, nil
		}
		return "", fmt.Errorf("failed to resolve %s: %w", absPath, err)
	}
	return resolved, nil
}

func (p *OSFileSystem) Rel(base, target string) (string, error) {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

var _ FileSystemProvider = (*OSFileSystem)(nil)
