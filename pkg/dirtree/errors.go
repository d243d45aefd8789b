package dirtree

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := tree.Visit(visitor)
//	if errors.Is(err, dirtree.ErrFilesystem) {
//	    // A directory could not be listed; the walk was aborted
//	}
var (
	// ErrInvalidOperation indicates a structurally impossible path operation,
	// such as asking for the parent of the root RelativePath.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrInvalidPattern indicates an include or exclude glob could not be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrFilesystem indicates the metadata provider failed while listing or
	// classifying an entry. The walk is aborted when this is returned.
	ErrFilesystem = errors.New("filesystem failure")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNotContained indicates a path is not a regular file inside a tree.
	ErrNotContained = errors.New("not contained")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrFilesystem):
		return ExitFilesystemError
	case errors.Is(err, ErrInvalidPattern):
		return ExitPatternError
	case errors.Is(err, ErrNotContained):
		return ExitNotContained
	}

	// cobra reports argument and flag problems as plain errors
	errStr := err.Error()
	for _, marker := range usageErrorMarkers {
		if strings.Contains(errStr, marker) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}

var usageErrorMarkers = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"requires at least",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}
