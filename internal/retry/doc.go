// Package retry retries filesystem operations that fail for transient reasons.
//
// Network and FUSE mounts occasionally fail a directory listing with EINTR,
// EAGAIN, EBUSY, ESTALE or a timeout, then succeed a moment later. Aborting a
// whole walk on such a hiccup is unhelpful, so the filesystem package can wrap a
// provider with an Executor built from this package:
//
//	executor := retry.NewExecutor(
//	    retry.NewFilesystemErrorClassifier(),
//	    retry.NewExponentialBackoff(3, retry.WithInitialDelay(20*time.Millisecond)),
//	)
//	provider := filesystem.NewRetryingFileSystem(filesystem.NewOSFileSystem(), executor)
//
// Permanent errors (not found, permission denied) are returned on the first attempt.
package retry
