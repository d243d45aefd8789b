package patterns

import (
	"fmt"
	"slices"
	"sync"

	"github.com/vvka-141/dirtree/pkg/dirtree"
)

// PatternSet is a mutable pattern configuration: include and exclude rules,
// each given either as a glob or as an arbitrary PathSpec.
//
// An entry is accepted when it matches at least one include rule (or there are
// none) and no exclude rule, and every set it was intersected with accepts it too.
//
// PatternSet is safe for concurrent use. A walk never reads a PatternSet
// directly; it uses the immutable snapshot returned by AsSpec.
type PatternSet struct {
	mu           sync.RWMutex
	includes     []string
	excludes     []string
	includeSpecs []dirtree.PathSpec
	excludeSpecs []dirtree.PathSpec

	// conjuncts are frozen sets that must also accept an entry.
	conjuncts []*PatternSet
}

// NewPatternSet creates an empty pattern set that accepts everything.
func NewPatternSet() *PatternSet {
	return &PatternSet{}
}

// Include adds include globs. Globs are matched against the slash-separated
// path relative to the tree root.
func (ps *PatternSet) Include(globs ...string) *PatternSet {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.includes = append(ps.includes, globs...)
	return ps
}

// Exclude adds exclude globs.
func (ps *PatternSet) Exclude(globs ...string) *PatternSet {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.excludes = append(ps.excludes, globs...)
	return ps
}

// IncludeSpec adds an include predicate.
func (ps *PatternSet) IncludeSpec(spec dirtree.PathSpec) *PatternSet {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.includeSpecs = append(ps.includeSpecs, spec)
	return ps
}

// ExcludeSpec adds an exclude predicate. Predicate excludes never prune recursion.
func (ps *PatternSet) ExcludeSpec(spec dirtree.PathSpec) *PatternSet {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.excludeSpecs = append(ps.excludeSpecs, spec)
	return ps
}

// Includes returns a copy of the include globs.
func (ps *PatternSet) Includes() []string {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return slices.Clone(ps.includes)
}

// Excludes returns a copy of the exclude globs.
func (ps *PatternSet) Excludes() []string {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return slices.Clone(ps.excludes)
}

// IsEmpty reports whether the set accepts everything without evaluating any rule.
func (ps *PatternSet) IsEmpty() bool {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	if len(ps.includes) > 0 || len(ps.excludes) > 0 || len(ps.includeSpecs) > 0 || len(ps.excludeSpecs) > 0 {
		return false
	}
	for _, c := range ps.conjuncts {
		if !c.IsEmpty() {
			return false
		}
	}
	return true
}

// Copy returns an independent copy of the set.
func (ps *PatternSet) Copy() *PatternSet {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	return ps.copyLocked()
}

func (ps *PatternSet) copyLocked() *PatternSet {
	return &PatternSet{
		includes:     slices.Clone(ps.includes),
		excludes:     slices.Clone(ps.excludes),
		includeSpecs: slices.Clone(ps.includeSpecs),
		excludeSpecs: slices.Clone(ps.excludeSpecs),
		conjuncts:    slices.Clone(ps.conjuncts),
	}
}

// CopyFrom replaces the rules of ps with those of other. Intersections other
// carries are added to the ones ps already has, so the result is never wider
// than either set's own constraints.
func (ps *PatternSet) CopyFrom(other *PatternSet) *PatternSet {
	if other == ps {
		return ps
	}
	src := other.Copy()

	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.includes = src.includes
	ps.excludes = src.excludes
	ps.includeSpecs = src.includeSpecs
	ps.excludeSpecs = src.excludeSpecs
	ps.conjuncts = append(ps.conjuncts, src.conjuncts...)
	return ps
}

// Intersect returns a new, empty set whose accepted entries are always a subset
// of those ps accepts. Rules added to the result narrow it further.
// Later changes to ps do not affect the result.
func (ps *PatternSet) Intersect() *PatternSet {
	return &PatternSet{conjuncts: []*PatternSet{ps.Copy()}}
}

// AsSpec compiles the current rules into an immutable PathSpec.
// The returned spec also implements dirtree.SubtreeExcluder.
func (ps *PatternSet) AsSpec() (dirtree.PathSpec, error) {
	return ps.compile()
}

func (ps *PatternSet) compile() (*compiledSpec, error) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	spec := &compiledSpec{
		includeSpecs: slices.Clone(ps.includeSpecs),
		excludeSpecs: slices.Clone(ps.excludeSpecs),
	}
	for _, pattern := range ps.includes {
		g, err := compileGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("include: %w", err)
		}
		spec.includes = append(spec.includes, g)
	}
	for _, pattern := range ps.excludes {
		g, err := compileGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("exclude: %w", err)
		}
		spec.excludes = append(spec.excludes, g)
	}
	for _, c := range ps.conjuncts {
		compiled, err := c.compile()
		if err != nil {
			return nil, err
		}
		spec.conjuncts = append(spec.conjuncts, compiled)
	}
	return spec, nil
}

// String renders the globs for display, e.g. "include [**/*.go] exclude [vendor/**]".
// Empty lists are omitted.
func (ps *PatternSet) String() string {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	s := ""
	if len(ps.includes) > 0 {
		s = fmt.Sprintf("include %v", ps.includes)
	}
	if len(ps.excludes) > 0 {
		if s != "" {
			s += " "
		}
		s += fmt.Sprintf("exclude %v", ps.excludes)
	}
	return s
}
