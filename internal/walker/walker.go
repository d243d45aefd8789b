package walker

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/vvka-141/dirtree/internal/files/filesystem"
	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// Walker walks directories of one filesystem provider.
// A Walker holds no per-walk state and is safe for concurrent use.
type Walker struct {
	fs      filesystem.FileSystemProvider
	logger  dirtree.Logger
	postfix bool
	prune   bool
}

// Option configures a Walker.
type Option func(*Walker)

// WithPostfix dispatches directories after their children.
func WithPostfix(postfix bool) Option {
	return func(w *Walker) { w.postfix = postfix }
}

// WithPruning skips directories whose entire subtree the path spec excludes.
func WithPruning(prune bool) Option {
	return func(w *Walker) { w.prune = prune }
}

// New creates a Walker. Panics if fsp or logger is nil.
func New(fsp filesystem.FileSystemProvider, logger dirtree.Logger, opts ...Option) *Walker {
	if fsp == nil {
		panic("filesystem provider cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	w := &Walker{fs: fsp, logger: logger}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// walkState is allocated per call to Walk.
type walkState struct {
	*Walker
	visitor  dirtree.FileVisitor
	spec     dirtree.PathSpec
	excluder dirtree.SubtreeExcluder
	stop     *StopFlag

	// canonical paths of the directories currently being descended
	ancestors map[string]struct{}
}

type pendingDir struct {
	entry    filesystem.Entry
	rel      dirtree.RelativePath
	accepted bool
}

// Walk visits root. When root is a directory its children are reported with
// relative paths below start; the root itself is never dispatched. When root
// is a file it is reported as a single leaf named after the file and start is
// ignored. A root that does not exist is logged and yields no visits.
//
// A nil spec accepts everything. A nil stop gets a fresh flag.
func (w *Walker) Walk(root string, start dirtree.RelativePath, visitor dirtree.FileVisitor, spec dirtree.PathSpec, stop *StopFlag) error {
	if visitor == nil {
		return fmt.Errorf("visitor cannot be nil: %w", dirtree.ErrInvalidOperation)
	}
	if spec == nil {
		spec = dirtree.MatchAll
	}
	if stop == nil {
		stop = NewStopFlag()
	}

	info, err := w.fs.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			w.logger.Info("directory '%s' does not exist, nothing to visit", root)
			return nil
		}
		return fmt.Errorf("%w: failed to stat %s: %w", dirtree.ErrFilesystem, root, err)
	}

	s := &walkState{
		Walker:    w,
		visitor:   visitor,
		spec:      spec,
		stop:      stop,
		ancestors: make(map[string]struct{}),
	}
	if w.prune {
		s.excluder, _ = spec.(dirtree.SubtreeExcluder)
	}

	if !info.IsDir() {
		return s.walkFileRoot(root, info)
	}

	canonical, err := w.fs.Canonicalize(root)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve %s: %w", dirtree.ErrFilesystem, root, err)
	}

	w.logger.Verbose("walking '%s' (postfix=%t, prune=%t)", root, w.postfix, w.prune)
	s.ancestors[canonical] = struct{}{}
	if err := s.walkDir(root, start); err != nil {
		return err
	}
	w.logger.Verbose("finished walking '%s' (stopped=%t)", root, stop.Stopped())
	return nil
}

func (s *walkState) walkFileRoot(root string, info filesystem.FileInfo) error {
	rel, err := dirtree.RootPath().Child(true, info.Name())
	if err != nil {
		return fmt.Errorf("%w: cannot name file root %s: %w", dirtree.ErrFilesystem, root, err)
	}
	if s.stop.Stopped() || !s.spec.Matches(rel, false) {
		return nil
	}
	return s.dispatch(newVisitDetails(s.fs, root, rel, info, s.stop))
}

func (s *walkState) walkDir(dirPath string, rel dirtree.RelativePath) error {
	entries, err := s.fs.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("%w: failed to list %s: %w", dirtree.ErrFilesystem, dirPath, err)
	}

	var dirs []pendingDir
	for _, entry := range entries {
		if s.stop.Stopped() {
			return nil
		}
		if entry.Info == nil {
			s.logger.Verbose("skipping '%s': entry vanished or is a dangling link", entry.Path)
			continue
		}

		isDir := entry.Info.IsDir()
		child, err := rel.Child(!isDir, entry.Name)
		if err != nil {
			s.logger.Verbose("skipping '%s': %v", entry.Path, err)
			continue
		}

		if isDir {
			dirs = append(dirs, pendingDir{entry: entry, rel: child, accepted: s.spec.Matches(child, true)})
			continue
		}
		if !s.spec.Matches(child, false) {
			continue
		}
		if err := s.dispatch(newVisitDetails(s.fs, entry.Path, child, entry.Info, s.stop)); err != nil {
			return err
		}
	}

	for _, d := range dirs {
		if s.stop.Stopped() {
			return nil
		}
		if err := s.walkSubdir(d); err != nil {
			return err
		}
	}
	return nil
}

func (s *walkState) walkSubdir(d pendingDir) error {
	if !d.accepted && s.excluder != nil && s.excluder.ExcludesSubtree(d.rel) {
		s.logger.Verbose("pruning excluded directory '%s'", d.rel)
		return nil
	}

	details := newVisitDetails(s.fs, d.entry.Path, d.rel, d.entry.Info, s.stop)
	if d.accepted && !s.postfix {
		if err := s.dispatch(details); err != nil {
			return err
		}
		if s.stop.Stopped() {
			return nil
		}
	}

	if err := s.descend(d); err != nil {
		return err
	}

	if d.accepted && s.postfix && !s.stop.Stopped() {
		return s.dispatch(details)
	}
	return nil
}

func (s *walkState) descend(d pendingDir) error {
	canonical, err := s.fs.Canonicalize(d.entry.Path)
	if err != nil {
		return fmt.Errorf("%w: failed to resolve %s: %w", dirtree.ErrFilesystem, d.entry.Path, err)
	}
	if _, cycle := s.ancestors[canonical]; cycle {
		s.logger.Verbose("not descending into '%s': it links back to '%s'", d.rel, canonical)
		return nil
	}

	s.ancestors[canonical] = struct{}{}
	defer delete(s.ancestors, canonical)
	return s.walkDir(d.entry.Path, d.rel)
}

// dispatch hands one entry to the visitor, converting a panic into an error
// so the caller receives a failure instead of a crashed goroutine.
func (s *walkState) dispatch(details *visitDetails) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("visitor panicked at %s: %v", details, r)
		}
	}()

	if details.IsDirectory() {
		return s.visitor.VisitDir(details)
	}
	return s.visitor.VisitFile(details)
}
