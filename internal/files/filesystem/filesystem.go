package filesystem

import (
	"errors"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// Entry is one immediate child of a listed directory.
type Entry struct {
	// Name is the child's name within its parent.
	Name string

	// Path is the provider path of the child, usable with every provider method.
	Path string

	// Info describes the child after following symbolic links.
	// Nil when the child disappeared between listing and classification,
	// or is a symbolic link whose target does not exist.
	Info FileInfo
}

// FileSystemProvider is the metadata layer under a walk.
// Implementations must be safe for concurrent use by multiple goroutines.
type FileSystemProvider interface {
	// Stat returns file information for the given path, following symbolic links.
	// A missing path yields an error matching fs.ErrNotExist.
	Stat(path string) (FileInfo, error)

	// ReadDir lists the immediate children of a directory in the provider's order.
	ReadDir(path string) ([]Entry, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Canonicalize returns the absolute, cleaned, symlink-resolved form of path.
	// Paths that do not exist are returned absolute and cleaned.
	Canonicalize(path string) (string, error)

	// Rel returns target relative to base using forward slashes, or an error
	// when target cannot be expressed relative to base.
	Rel(base, target string) (string, error)
}

// Exists reports whether path exists. Errors other than "not found" are returned.
func Exists(p FileSystemProvider, path string) (bool, error) {
	_, err := p.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// IsDir reports whether path exists and is a directory.
func IsDir(p FileSystemProvider, path string) (bool, error) {
	info, err := p.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}

// IsFile reports whether path exists and is a regular file.
func IsFile(p FileSystemProvider, path string) (bool, error) {
	info, err := p.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}
