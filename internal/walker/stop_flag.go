package walker

import "sync/atomic"

// StopFlag is the cancellation token of a single walk. Once stopped it stays stopped.
type StopFlag struct {
	stopped atomic.Bool
}

func NewStopFlag() *StopFlag {
	return &StopFlag{}
}

// Stop requests that no further entries are dispatched.
func (f *StopFlag) Stop() { f.stopped.Store(true) }

// Stopped reports whether Stop has been called.
func (f *StopFlag) Stopped() bool { return f.stopped.Load() }
