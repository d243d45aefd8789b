package filesystem

import (
	"errors"
	"os"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dirtree/internal/retry"
)

// flakyProvider fails ReadDir with EINTR a fixed number of times before delegating.
type flakyProvider struct {
	FileSystemProvider
	failures atomic.Int32
}

func (f *flakyProvider) ReadDir(path string) ([]Entry, error) {
	if f.failures.Add(-1) >= 0 {
		return nil, &os.PathError{Op: "readdirent", Path: path, Err: syscall.EINTR}
	}
	return f.FileSystemProvider.ReadDir(path)
}

func newTestExecutor(maxAttempts int) *retry.Executor {
	return retry.NewExecutor(
		retry.NewFilesystemErrorClassifier(),
		retry.NewExponentialBackoff(maxAttempts, retry.WithInitialDelay(time.Millisecond), retry.WithJitter(0)),
	)
}

func TestRetryingFileSystem_RetriesTransientReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/root")
	mfs.AddFile("a.txt", "a")

	inner := &flakyProvider{FileSystemProvider: mfs}
	inner.failures.Store(2)

	p := NewRetryingFileSystem(inner, newTestExecutor(3))
	entries, err := p.ReadDir("/root")
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, entryNames(entries))
}

func TestRetryingFileSystem_GivesUp(t *testing.T) {
	inner := &flakyProvider{FileSystemProvider: NewMemoryFileSystem("/root")}
	inner.failures.Store(10)

	_, err := NewRetryingFileSystem(inner, newTestExecutor(1)).ReadDir("/root")
	assert.ErrorIs(t, err, syscall.EINTR)
}

func TestRetryingFileSystem_PassThrough(t *testing.T) {
	mfs := NewMemoryFileSystem("/root")
	mfs.AddFile("sub/a.txt", "a")
	p := NewRetryingFileSystem(mfs, newTestExecutor(2))

	content, err := p.ReadFile("/root/sub/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a", string(content))

	_, err = p.Stat("/root/none")
	assert.True(t, errors.Is(err, os.ErrNotExist))

	canonical, err := p.Canonicalize("sub")
	require.NoError(t, err)
	assert.Equal(t, "/root/sub", canonical)

	rel, err := p.Rel("/root", "/root/sub/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "sub/a.txt", rel)
}

func TestNewRetryingFileSystem_NilArgs(t *testing.T) {
	assert.Panics(t, func() { NewRetryingFileSystem(nil, newTestExecutor(1)) })
	assert.Panics(t, func() { NewRetryingFileSystem(NewMemoryFileSystem("/"), nil) })
}
