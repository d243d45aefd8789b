package filesystem

import (
	"context"

	"github.com/vvka-141/dirtree/internal/retry"
)

// RetryingFileSystem decorates a provider so that Stat, ReadDir and ReadFile
// are retried when they fail transiently. Canonicalize and Rel pass through.
type RetryingFileSystem struct {
	inner    FileSystemProvider
	executor *retry.Executor
}

// NewRetryingFileSystem wraps inner. Panics if either argument is nil.
func NewRetryingFileSystem(inner FileSystemProvider, executor *retry.Executor) *RetryingFileSystem {
	if inner == nil {
		panic("inner provider cannot be nil")
	}
	if executor == nil {
		panic("executor cannot be nil")
	}
	return &RetryingFileSystem{inner: inner, executor: executor}
}

func (p *RetryingFileSystem) Stat(path string) (FileInfo, error) {
	var info FileInfo
	err := p.executor.Execute(context.Background(), func(context.Context) error {
		var err error
		info, err = p.inner.Stat(path)
		return err
	})
	return info, err
}

func (p *RetryingFileSystem) ReadDir(path string) ([]Entry, error) {
	var entries []Entry
	err := p.executor.Execute(context.Background(), func(context.Context) error {
		var err error
		entries, err = p.inner.ReadDir(path)
		return err
	})
	return entries, err
}

func (p *RetryingFileSystem) ReadFile(path string) ([]byte, error) {
	var content []byte
	err := p.executor.Execute(context.Background(), func(context.Context) error {
		var err error
		content, err = p.inner.ReadFile(path)
		return err
	})
	return content, err
}

func (p *RetryingFileSystem) Canonicalize(path string) (string, error) {
	return p.inner.Canonicalize(path)
}

func (p *RetryingFileSystem) Rel(base, target string) (string, error) {
	return p.inner.Rel(base, target)
}

var _ FileSystemProvider = (*RetryingFileSystem)(nil)
