package retry

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"
)

type timeoutErr struct{}

func (timeoutErr) Error() string { return "i/o timeout" }
func (timeoutErr) Timeout() bool { return true }

func TestFilesystemErrorClassifier_IsTransient(t *testing.T) {
	c := NewFilesystemErrorClassifier()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("boom"), false},
		{"not exist", &os.PathError{Op: "open", Path: "/x", Err: syscall.ENOENT}, false},
		{"permission", &os.PathError{Op: "open", Path: "/x", Err: syscall.EACCES}, false},
		{"wrapped not exist", fmt.Errorf("listing: %w", fs.ErrNotExist), false},
		{"eintr", &os.PathError{Op: "readdirent", Path: "/x", Err: syscall.EINTR}, true},
		{"eagain", &os.PathError{Op: "open", Path: "/x", Err: syscall.EAGAIN}, true},
		{"ebusy", fmt.Errorf("failed to read directory: %w", &os.PathError{Op: "open", Path: "/x", Err: syscall.EBUSY}), true},
		{"estale", &os.PathError{Op: "stat", Path: "/nfs/x", Err: syscall.ESTALE}, true},
		{"timeout", fmt.Errorf("remote: %w", timeoutErr{}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.IsTransient(tt.err); got != tt.want {
				t.Errorf("IsTransient(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
