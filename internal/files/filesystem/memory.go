package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"
)

// memoryFileInfo implements fs.FileInfo for in-memory entries
type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	content  []byte
	info     *memoryFileInfo // nil for dangling entries
	readErr  error           // injected ReadDir failure
	statErr  error           // injected Stat failure
	children map[string]struct{}
}

// MemoryFileSystem implements FileSystemProvider for in-memory testing.
// Backslashes are read as separators on every platform; relative paths are
// resolved against the root.
// Children are listed sorted by name.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry // absolute path -> entry
	root    string
}

// NewMemoryFileSystem creates a new in-memory filesystem with an empty root directory.
// The root path is normalized to use forward slashes for virtual filesystem consistency.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean("/" + strings.ReplaceAll(root, `\`, "/"))

	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.entries[root] = newMemoryDir(root, time.Now())
	return mfs
}

func newMemoryDir(absPath string, modTime time.Time) *memoryEntry {
	return &memoryEntry{
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			mode:    0755 | fs.ModeDir,
			modTime: modTime,
		},
		children: make(map[string]struct{}),
	}
}

// Root returns the root directory path.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// resolve maps a caller path onto an absolute virtual path.
func (mfs *MemoryFileSystem) resolve(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

// AddFile adds a file to the in-memory filesystem
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(filePath)
	contentBytes := []byte(content)
	mfs.entries[absPath] = &memoryEntry{
		content: contentBytes,
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(contentBytes)),
			mode:    0644,
			modTime: modTime,
		},
	}
	mfs.linkToParent(absPath)
}

// AddDir adds an (empty) directory and any missing parents.
func (mfs *MemoryFileSystem) AddDir(dirPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	if _, exists := mfs.entries[absPath]; !exists {
		mfs.entries[absPath] = newMemoryDir(absPath, time.Now())
	}
	mfs.linkToParent(absPath)
}

// AddDangling adds a child that is listed by its parent but cannot be
// classified, like a symbolic link to nowhere or a file deleted mid-walk.
func (mfs *MemoryFileSystem) AddDangling(entryPath string) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(entryPath)
	mfs.entries[absPath] = &memoryEntry{statErr: fmt.Errorf("dangling entry %s: %w", absPath, fs.ErrNotExist)}
	mfs.linkToParent(absPath)
}

// FailReadDir makes every subsequent ReadDir of dirPath return err.
func (mfs *MemoryFileSystem) FailReadDir(dirPath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(dirPath)
	if entry, ok := mfs.entries[absPath]; ok {
		entry.readErr = err
	}
}

// FailStat makes every subsequent Stat of entryPath, and its classification
// inside a parent listing, return err.
func (mfs *MemoryFileSystem) FailStat(entryPath string, err error) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()

	absPath := mfs.resolve(entryPath)
	if entry, ok := mfs.entries[absPath]; ok {
		entry.statErr = err
	}
}

// linkToParent registers absPath with its parent, creating parent directories as needed.
// Caller must hold the write lock.
func (mfs *MemoryFileSystem) linkToParent(absPath string) {
	if absPath == mfs.root || absPath == "/" {
		return
	}
	dir := path.Dir(absPath)
	parent, exists := mfs.entries[dir]
	if !exists {
		parent = newMemoryDir(dir, time.Now())
		mfs.entries[dir] = parent
		mfs.linkToParent(dir)
	}
	if parent.children == nil {
		parent.children = make(map[string]struct{})
	}
	parent.children[path.Base(absPath)] = struct{}{}
}

func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.resolve(statPath)
	entry, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	if entry.statErr != nil {
		return nil, entry.statErr
	}
	return entry.info, nil
}

func (mfs *MemoryFileSystem) ReadDir(dirPath string) ([]Entry, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.resolve(dirPath)
	dir, exists := mfs.entries[absPath]
	if !exists {
		return nil, fmt.Errorf("directory not found: %s: %w", dirPath, fs.ErrNotExist)
	}
	if dir.readErr != nil {
		return nil, dir.readErr
	}
	if dir.info == nil || !dir.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dirPath)
	}

	names := make([]string, 0, len(dir.children))
	for name := range dir.children {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Entry, 0, len(names))
	for _, name := range names {
		childPath := path.Join(absPath, name)
		child := mfs.entries[childPath]

		var info FileInfo
		switch {
		case child.statErr == nil:
			info = child.info
		case errors.Is(child.statErr, fs.ErrNotExist):
			// dangling: listed but not classifiable
		default:
			return nil, fmt.Errorf("failed to get file info for %s: %w", name, child.statErr)
		}
		result = append(result, Entry{Name: name, Path: childPath, Info: info})
	}
	return result, nil
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	absPath := mfs.resolve(filePath)
	entry, exists := mfs.entries[absPath]
	if !exists || entry.info == nil {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	if entry.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return entry.content, nil
}

func (mfs *MemoryFileSystem) Canonicalize(p string) (string, error) {
	return mfs.resolve(p), nil
}

func (mfs *MemoryFileSystem) Rel(base, target string) (string, error) {
	return slashRel(mfs.resolve(base), mfs.resolve(target))
}

// slashRel computes target relative to base for cleaned, slash-separated paths.
func slashRel(base, target string) (string, error) {
	if target == base {
		return ".", nil
	}
	prefix := base
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	if !strings.HasPrefix(target, prefix) {
		return "", fmt.Errorf("%s is not under %s", target, base)
	}
	return strings.TrimPrefix(target, prefix), nil
}

var _ FileSystemProvider = (*MemoryFileSystem)(nil)
