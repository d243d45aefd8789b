package dirtree

import (
	"fmt"
	"strings"
)

// RelativePath is the path of an entry relative to the root of a traversal.
// It is an ordered sequence of segment names plus a flag recording whether the
// last segment names a file (leaf) or a directory.
//
// The zero value is the root itself: no segments, not a file.
// RelativePath is immutable; Append and friends return new values and never
// share a backing array with the receiver.
type RelativePath struct {
	segments []string
	isFile   bool
}

// RootPath returns the RelativePath of the traversal root.
func RootPath() RelativePath {
	return RelativePath{}
}

// NewRelativePath builds a RelativePath from segments.
// Returns ErrInvalidOperation if a segment is empty or contains a separator,
// or if a file path has no segments.
func NewRelativePath(isFile bool, segments ...string) (RelativePath, error) {
	if isFile && len(segments) == 0 {
		return RelativePath{}, fmt.Errorf("a file path needs at least one segment: %w", ErrInvalidOperation)
	}
	for _, s := range segments {
		if err := validateSegment(s); err != nil {
			return RelativePath{}, err
		}
	}
	return RelativePath{segments: cloneSegments(segments, 0), isFile: isFile}, nil
}

// ParseRelativePath splits a slash or backslash separated path into a RelativePath.
// Empty segments and "." are dropped; ".." is rejected.
func ParseRelativePath(isFile bool, path string) (RelativePath, error) {
	path = strings.ReplaceAll(path, "\\", PathSeparator)
	var segments []string
	for _, s := range strings.Split(path, PathSeparator) {
		if s == "" || s == "." {
			continue
		}
		segments = append(segments, s)
	}
	return NewRelativePath(isFile, segments...)
}

func validateSegment(s string) error {
	if s == "" {
		return fmt.Errorf("empty path segment: %w", ErrInvalidOperation)
	}
	if s == ".." {
		return fmt.Errorf("segment %q escapes the root: %w", s, ErrInvalidOperation)
	}
	if strings.ContainsAny(s, "/\\") {
		return fmt.Errorf("segment %q contains a path separator: %w", s, ErrInvalidOperation)
	}
	return nil
}

func cloneSegments(segments []string, extra int) []string {
	if len(segments)+extra == 0 {
		return nil
	}
	out := make([]string, len(segments), len(segments)+extra)
	copy(out, segments)
	return out
}

// Append returns a path one level deeper. The receiver is not modified.
// Panics with ErrInvalidOperation when segment is empty or contains a separator:
// names handed out by a directory listing never do, so this is a programming error.
func (p RelativePath) Append(isFile bool, segment string) RelativePath {
	child, err := p.Child(isFile, segment)
	if err != nil {
		panic(err)
	}
	return child
}

// Child is Append for names from untrusted sources: an invalid segment is
// reported as ErrInvalidOperation instead of a panic.
func (p RelativePath) Child(isFile bool, segment string) (RelativePath, error) {
	if err := validateSegment(segment); err != nil {
		return RelativePath{}, err
	}
	segments := cloneSegments(p.segments, 1)
	return RelativePath{segments: append(segments, segment), isFile: isFile}, nil
}

// Parent returns the enclosing directory path.
// The root has no parent: ErrInvalidOperation is returned.
func (p RelativePath) Parent() (RelativePath, error) {
	if p.IsRoot() {
		return RelativePath{}, fmt.Errorf("root path has no parent: %w", ErrInvalidOperation)
	}
	return RelativePath{segments: cloneSegments(p.segments[:len(p.segments)-1], 0)}, nil
}

// ReplaceLastName returns a path with the final segment renamed.
func (p RelativePath) ReplaceLastName(name string) (RelativePath, error) {
	if p.IsRoot() {
		return RelativePath{}, fmt.Errorf("cannot rename the root path: %w", ErrInvalidOperation)
	}
	if err := validateSegment(name); err != nil {
		return RelativePath{}, err
	}
	segments := cloneSegments(p.segments, 0)
	segments[len(segments)-1] = name
	return RelativePath{segments: segments, isFile: p.isFile}, nil
}

// Segments returns a copy of the path segments.
func (p RelativePath) Segments() []string { return cloneSegments(p.segments, 0) }

// Depth is the number of segments; zero for the root.
func (p RelativePath) Depth() int { return len(p.segments) }

// IsFile reports whether the last segment names a file.
func (p RelativePath) IsFile() bool { return p.isFile }

// IsRoot reports whether p denotes the traversal root.
func (p RelativePath) IsRoot() bool { return len(p.segments) == 0 }

// Name returns the last segment, or "" for the root.
func (p RelativePath) Name() string {
	if p.IsRoot() {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// PathString joins the segments with forward slashes. The root is "".
func (p RelativePath) PathString() string {
	return strings.Join(p.segments, PathSeparator)
}

func (p RelativePath) String() string { return p.PathString() }

// IsAncestorOf reports whether p is a proper directory prefix of other.
func (p RelativePath) IsAncestorOf(other RelativePath) bool {
	if p.isFile || len(p.segments) >= len(other.segments) {
		return false
	}
	for i, s := range p.segments {
		if other.segments[i] != s {
			return false
		}
	}
	return true
}

// Equal reports whether both paths have the same segments and file flag.
func (p RelativePath) Equal(other RelativePath) bool {
	if p.isFile != other.isFile || len(p.segments) != len(other.segments) {
		return false
	}
	for i, s := range p.segments {
		if other.segments[i] != s {
			return false
		}
	}
	return true
}

// Compare orders paths segment-wise lexicographically. A path sorts before any
// path it is a prefix of; on identical segments a directory sorts before a file.
// Returns -1, 0 or +1.
func (p RelativePath) Compare(other RelativePath) int {
	for i := 0; i < len(p.segments) && i < len(other.segments); i++ {
		if c := strings.Compare(p.segments[i], other.segments[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.segments) < len(other.segments):
		return -1
	case len(p.segments) > len(other.segments):
		return 1
	case p.isFile == other.isFile:
		return 0
	case !p.isFile:
		return -1
	default:
		return 1
	}
}
