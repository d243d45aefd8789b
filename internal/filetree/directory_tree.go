package filetree

import (
	"fmt"
	"strings"
	"sync"

	"github.com/vvka-141/dirtree/internal/files/filesystem"
	"github.com/vvka-141/dirtree/internal/logging"
	"github.com/vvka-141/dirtree/internal/patterns"
	"github.com/vvka-141/dirtree/internal/walker"
	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// DirectoryTree is a file tree rooted at a directory and narrowed by a pattern set.
//
// The root is canonicalized once, at construction. The pattern set is shared
// with the caller and may still be changed; each Visit compiles the rules as
// they are at that moment. Visit may be called concurrently, also concurrently
// with Filter, which never touches the receiver's patterns.
type DirectoryTree struct {
	dir      string
	patterns *patterns.PatternSet
	fs       filesystem.FileSystemProvider
	logger   dirtree.Logger

	mu      sync.RWMutex
	postfix bool
	prune   bool
}

// NewDirectoryTree creates a tree over the OS filesystem. A nil pattern set
// accepts everything.
func NewDirectoryTree(dir string, ps *patterns.PatternSet) (*DirectoryTree, error) {
	return NewDirectoryTreeWithFS(filesystem.NewOSFileSystem(), logging.NewNullLogger(), dir, ps)
}

// NewDirectoryTreeWithFS creates a tree over fsp, reporting through logger.
// Panics if fsp or logger is nil.
func NewDirectoryTreeWithFS(fsp filesystem.FileSystemProvider, logger dirtree.Logger, dir string, ps *patterns.PatternSet) (*DirectoryTree, error) {
	if fsp == nil {
		panic("filesystem provider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if ps == nil {
		ps = patterns.NewPatternSet()
	}

	canonical, err := fsp.Canonicalize(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve tree root %s: %w", dirtree.ErrFilesystem, dir, err)
	}

	return &DirectoryTree{
		dir:      canonical,
		patterns: ps,
		fs:       fsp,
		logger:   logger,
	}, nil
}

// Dir returns the canonical root directory.
func (t *DirectoryTree) Dir() string { return t.dir }

// Patterns returns the pattern set of the tree. Changes to it affect later visits.
func (t *DirectoryTree) Patterns() *patterns.PatternSet { return t.patterns }

// Postfix switches the tree to dispatching directories after their contents.
// Returns the receiver for chaining.
func (t *DirectoryTree) Postfix() *DirectoryTree {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.postfix = true
	return t
}

// PruneExcludedDirectories stops the walk from descending into directories
// matched by a "dir/**" exclude glob. Returns the receiver for chaining.
func (t *DirectoryTree) PruneExcludedDirectories() *DirectoryTree {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.prune = true
	return t
}

// IsPostfix reports whether directories are dispatched after their contents.
func (t *DirectoryTree) IsPostfix() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.postfix
}

// Filter returns a tree over the same root that accepts only entries accepted
// by both the receiver's patterns and ps. The receiver is not modified.
func (t *DirectoryTree) Filter(ps *patterns.PatternSet) *DirectoryTree {
	narrowed := t.patterns.Intersect()
	if ps != nil {
		narrowed.CopyFrom(ps)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	return &DirectoryTree{
		dir:      t.dir,
		patterns: narrowed,
		fs:       t.fs,
		logger:   t.logger,
		postfix:  t.postfix,
		prune:    t.prune,
	}
}

// Visit walks the tree, dispatching accepted entries to visitor.
// A root that does not exist is not an error.
func (t *DirectoryTree) Visit(visitor dirtree.FileVisitor) error {
	return t.VisitFrom(visitor, t.dir, dirtree.RootPath())
}

// VisitFrom walks dir with the tree's patterns and ordering, reporting entries
// with relative paths below start.
func (t *DirectoryTree) VisitFrom(visitor dirtree.FileVisitor, dir string, start dirtree.RelativePath) error {
	spec, err := t.patterns.AsSpec()
	if err != nil {
		return fmt.Errorf("cannot visit %s: %w", t.DisplayName(), err)
	}
	return t.newWalker().Walk(dir, start, visitor, spec, walker.NewStopFlag())
}

func (t *DirectoryTree) newWalker() *walker.Walker {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return walker.New(t.fs, t.logger, walker.WithPostfix(t.postfix), walker.WithPruning(t.prune))
}

// Contains reports whether path is a regular file located under the root.
// Patterns are not consulted.
func (t *DirectoryTree) Contains(path string) bool {
	canonical, err := t.fs.Canonicalize(path)
	if err != nil {
		return false
	}
	rel, err := t.fs.Rel(t.dir, canonical)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}
	isFile, err := filesystem.IsFile(t.fs, canonical)
	if err != nil {
		t.logger.Verbose("cannot classify '%s': %v", canonical, err)
		return false
	}
	return isFile
}

// DisplayName describes the tree, e.g. "directory '/src' include [**/*.go]".
func (t *DirectoryTree) DisplayName() string {
	name := fmt.Sprintf("directory '%s'", t.dir)
	if p := t.patterns.String(); p != "" {
		name += " " + p
	}
	return name
}

func (t *DirectoryTree) String() string { return t.DisplayName() }
