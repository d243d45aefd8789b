package dirtree

// PathSpec decides whether an entry is dispatched. It must be pure: the same
// input yields the same answer for the duration of a walk.
type PathSpec interface {
	Matches(path RelativePath, isDir bool) bool
}

// PathSpecFunc adapts a function to PathSpec.
type PathSpecFunc func(path RelativePath, isDir bool) bool

func (f PathSpecFunc) Matches(path RelativePath, isDir bool) bool { return f(path, isDir) }

// SubtreeExcluder is implemented by specs that can tell a directory and all of
// its possible descendants are excluded. The walker uses it to skip recursion
// when pruning is enabled.
type SubtreeExcluder interface {
	ExcludesSubtree(dir RelativePath) bool
}

// MatchAll accepts every entry.
var MatchAll PathSpec = PathSpecFunc(func(RelativePath, bool) bool { return true })
