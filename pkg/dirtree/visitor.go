package dirtree

import (
	"io/fs"
	"time"
)

// FileVisitDetails describes one dispatched entry. A fresh value is created for
// every entry and is never reused; it is read-only apart from StopVisiting.
type FileVisitDetails interface {
	// RelativePath returns the path of the entry relative to the traversal root.
	RelativePath() RelativePath

	// Path returns the absolute path of the entry as understood by the provider.
	Path() string

	// Name returns the last path segment.
	Name() string

	IsDirectory() bool
	Size() int64
	Mode() fs.FileMode
	LastModified() time.Time

	// ReadContent reads a file through the metadata provider.
	ReadContent() ([]byte, error)

	// CopyTo copies the entry onto the local filesystem at target.
	// Directories are created, files are written with their permission bits.
	CopyTo(target string) error

	// StopVisiting requests that no further entries are dispatched in the
	// current walk. The walk returns normally.
	StopVisiting()
}

// FileVisitor receives the entries of a walk. Callbacks run sequentially on the
// goroutine that called Visit. A non-nil error aborts the walk and is returned
// to the caller unchanged.
type FileVisitor interface {
	VisitDir(details FileVisitDetails) error
	VisitFile(details FileVisitDetails) error
}

// VisitorFuncs adapts plain functions to FileVisitor. Nil functions ignore the entry.
type VisitorFuncs struct {
	Dir  func(FileVisitDetails) error
	File func(FileVisitDetails) error
}

func (v VisitorFuncs) VisitDir(details FileVisitDetails) error {
	if v.Dir == nil {
		return nil
	}
	return v.Dir(details)
}

func (v VisitorFuncs) VisitFile(details FileVisitDetails) error {
	if v.File == nil {
		return nil
	}
	return v.File(details)
}

var _ FileVisitor = VisitorFuncs{}
