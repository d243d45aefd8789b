package patterns

import (
	"fmt"
	"strings"

	"github.com/mattn/go-zglob"

	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// matcher is the compiled form of one glob.
type matcher interface {
	Match(path string) bool
}

type matchAll struct{}

func (matchAll) Match(string) bool { return true }

type literal string

func (l literal) Match(path string) bool { return string(l) == path }

// subtreeMatcher matches any path that has a prefix (itself included)
// accepted by the directory matcher. It implements the "dir/**" form.
type subtreeMatcher struct {
	dir matcher
}

func (s subtreeMatcher) Match(path string) bool {
	for i := 0; i < len(path); i++ {
		if path[i] == '/' && s.dir.Match(path[:i]) {
			return true
		}
	}
	return s.dir.Match(path)
}

// glob is a normalized pattern together with its matcher.
type glob struct {
	pattern string
	match   matcher

	// subtree is set for patterns that match a directory and everything under it.
	subtree bool
}

// normalizePattern converts separators to '/', drops a leading "./" and
// expands a trailing '/' to "/**".
func normalizePattern(pattern string) string {
	p := strings.ReplaceAll(pattern, "\\", "/")
	for strings.HasPrefix(p, "./") {
		p = p[2:]
	}
	if strings.HasSuffix(p, "/") {
		p += "**"
	}
	return p
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// compileGlob builds the matcher for pattern. zglob panics on some malformed
// character classes, so panics are reported as ErrInvalidPattern as well.
func compileGlob(pattern string) (g glob, err error) {
	normalized := normalizePattern(pattern)
	if normalized == "" {
		return glob{}, fmt.Errorf("%w: empty pattern", dirtree.ErrInvalidPattern)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q: %v", dirtree.ErrInvalidPattern, pattern, r)
		}
	}()

	if normalized == "**" {
		return glob{pattern: normalized, match: matchAll{}, subtree: true}, nil
	}

	if prefix, ok := strings.CutSuffix(normalized, "/**"); ok {
		dir, err := compileSegmentGlob(pattern, prefix)
		if err != nil {
			return glob{}, err
		}
		return glob{pattern: normalized, match: subtreeMatcher{dir: dir}, subtree: true}, nil
	}

	m, err := compileSegmentGlob(pattern, normalized)
	if err != nil {
		return glob{}, err
	}
	return glob{pattern: normalized, match: m}, nil
}

func compileSegmentGlob(original, pattern string) (matcher, error) {
	if !hasMeta(pattern) {
		return literal(pattern), nil
	}
	m, err := zglob.New(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", dirtree.ErrInvalidPattern, original, err)
	}
	return m, nil
}
