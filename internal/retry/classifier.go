package retry

import (
	"errors"
	"io/fs"
	"syscall"
)

// transientErrnos are conditions a directory listing or stat can recover from.
var transientErrnos = []syscall.Errno{
	syscall.EINTR,
	syscall.EAGAIN,
	syscall.EBUSY,
	syscall.ESTALE,
	syscall.ETIMEDOUT,
}

// FilesystemErrorClassifier implements ErrorClassifier for filesystem errors.
type FilesystemErrorClassifier struct{}

// NewFilesystemErrorClassifier creates a new filesystem error classifier.
func NewFilesystemErrorClassifier() *FilesystemErrorClassifier {
	return &FilesystemErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *FilesystemErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// Missing entries and permission problems never fix themselves
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return false
	}

	for _, errno := range transientErrnos {
		if errors.Is(err, errno) {
			return true
		}
	}

	var timeout interface{ Timeout() bool }
	if errors.As(err, &timeout) && timeout.Timeout() {
		return true
	}

	return false
}
