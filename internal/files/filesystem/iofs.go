package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// IOFileSystem implements FileSystemProvider over an io/fs.FS such as embed.FS
// or fstest.MapFS. Provider paths are slash-separated and rooted at "/", which
// maps onto the "." of the wrapped FS.
type IOFileSystem struct {
	fsys fs.FS
}

// NewIOFileSystem wraps fsys. Panics if fsys is nil.
func NewIOFileSystem(fsys fs.FS) *IOFileSystem {
	if fsys == nil {
		panic("fsys cannot be nil")
	}
	return &IOFileSystem{fsys: fsys}
}

// fsPath converts a provider path into a path valid for fs.FS.
func fsPath(p string) string {
	// explicit replace for cross-platform compatibility
	p = strings.ReplaceAll(p, "\\", "/")
	p = path.Clean("/" + p)
	if p == "/" {
		return "."
	}
	return strings.TrimPrefix(p, "/")
}

func (p *IOFileSystem) Stat(statPath string) (FileInfo, error) {
	info, err := fs.Stat(p.fsys, fsPath(statPath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", statPath, err)
	}
	return info, nil
}

func (p *IOFileSystem) ReadDir(dirPath string) ([]Entry, error) {
	dir := fsPath(dirPath)
	dirEntries, err := fs.ReadDir(p.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dirPath, err)
	}
	// fs.ReadDir sorts, but ReadDirFS implementations are not obliged to
	sort.Slice(dirEntries, func(i, j int) bool { return dirEntries[i].Name() < dirEntries[j].Name() })

	result := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		info, err := de.Info()
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to get file info for %s: %w", de.Name(), err)
			}
			info = nil
		}
		result = append(result, Entry{
			Name: de.Name(),
			Path: providerPath(path.Join(dir, de.Name())),
			Info: info,
		})
	}
	return result, nil
}

func (p *IOFileSystem) ReadFile(filePath string) ([]byte, error) {
	content, err := fs.ReadFile(p.fsys, fsPath(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return content, nil
}

func (p *IOFileSystem) Canonicalize(c string) (string, error) {
	return providerPath(fsPath(c)), nil
}

// providerPath is the inverse of fsPath.
func providerPath(name string) string {
	if name == "." {
		return "/"
	}
	return "/" + name
}

func (p *IOFileSystem) Rel(base, target string) (string, error) {
	b, _ := p.Canonicalize(base)
	t, _ := p.Canonicalize(target)
	return slashRel(b, t)
}

var _ FileSystemProvider = (*IOFileSystem)(nil)
