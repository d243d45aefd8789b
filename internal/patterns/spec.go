package patterns

import "github.com/vvka-141/dirtree/pkg/dirtree"

// compiledSpec is an immutable snapshot of a PatternSet.
type compiledSpec struct {
	includes     []glob
	excludes     []glob
	includeSpecs []dirtree.PathSpec
	excludeSpecs []dirtree.PathSpec
	conjuncts    []*compiledSpec
}

func (s *compiledSpec) Matches(path dirtree.RelativePath, isDir bool) bool {
	p := path.PathString()

	if len(s.includes) > 0 || len(s.includeSpecs) > 0 {
		if !s.included(p, path, isDir) {
			return false
		}
	}
	for _, g := range s.excludes {
		if g.match.Match(p) {
			return false
		}
	}
	for _, spec := range s.excludeSpecs {
		if spec.Matches(path, isDir) {
			return false
		}
	}
	for _, c := range s.conjuncts {
		if !c.Matches(path, isDir) {
			return false
		}
	}
	return true
}

func (s *compiledSpec) included(p string, path dirtree.RelativePath, isDir bool) bool {
	for _, g := range s.includes {
		if g.match.Match(p) {
			return true
		}
	}
	for _, spec := range s.includeSpecs {
		if spec.Matches(path, isDir) {
			return true
		}
	}
	return false
}

// ExcludesSubtree reports whether a "dir/**" exclude glob matches dir, which
// means neither dir nor anything below it can be accepted.
func (s *compiledSpec) ExcludesSubtree(dir dirtree.RelativePath) bool {
	p := dir.PathString()
	for _, g := range s.excludes {
		if g.subtree && g.match.Match(p) {
			return true
		}
	}
	for _, c := range s.conjuncts {
		if c.ExcludesSubtree(dir) {
			return true
		}
	}
	return false
}

var (
	_ dirtree.PathSpec        = (*compiledSpec)(nil)
	_ dirtree.SubtreeExcluder = (*compiledSpec)(nil)
)
