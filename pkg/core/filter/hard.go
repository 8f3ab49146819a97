// Package filter implements the two filter stages the comparer applies
// during traversal: the hard filter (include/exclude glob patterns, which
// exclude an item from the tree entirely) and the soft filter (time window
// and size bounds, which mark an item inactive but leave it in the tree).
//
// Glob matching is grounded on the teacher's own pattern engine choice:
// github.com/bmatcuk/doublestar/v4, the same library
// pkg/synchronization/core/ignore.go uses for its ignore patterns.
package filter

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/foldersync/foldersync/pkg/core"
)

// globPattern is a single compiled include or exclude glob, matched
// against either the full relative path or the leaf name, following the
// same absolute-vs-leaf distinction as the teacher's ignorePattern.
type globPattern struct {
	matchLeaf bool
	raw       string
}

func newGlobPattern(pattern string) (*globPattern, error) {
	if pattern == "" {
		return nil, errors.New("empty glob pattern")
	}
	absolute := pattern[0] == '/'
	trimmed := strings.TrimPrefix(pattern, "/")
	if _, err := doublestar.Match(trimmed, "a"); err != nil {
		return nil, errors.Wrap(err, "unable to validate glob pattern")
	}
	return &globPattern{
		matchLeaf: !absolute && !strings.Contains(trimmed, "/"),
		raw:       trimmed,
	}, nil
}

func (g *globPattern) matches(relativePath string) bool {
	if g.matchLeaf {
		if ok, _ := doublestar.Match(g.raw, path.Base(relativePath)); ok {
			return true
		}
	}
	ok, _ := doublestar.Match(g.raw, relativePath)
	return ok
}

// HardFilter is a compiled set of include and exclude glob patterns. An
// item is included in the tree only if it matches at least one include
// pattern (or the include list is empty, meaning "include everything") and
// matches no exclude pattern.
type HardFilter struct {
	includes []*globPattern
	excludes []*globPattern
}

// Compile validates and compiles a global FilterConfig together with a
// per-pair override, combining their glob lists by concatenation: an item
// excluded by either level is excluded overall, and an item matching any
// include pattern of either level passes the include test (the two
// include lists are unioned, not intersected).
func Compile(global, pair core.FilterConfig) (*HardFilter, error) {
	f := &HardFilter{}
	for _, pattern := range append(append([]string{}, global.IncludeGlobs...), pair.IncludeGlobs...) {
		compiled, err := newGlobPattern(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid include pattern %q", pattern)
		}
		f.includes = append(f.includes, compiled)
	}
	for _, pattern := range append(append([]string{}, global.ExcludeGlobs...), pair.ExcludeGlobs...) {
		compiled, err := newGlobPattern(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid exclude pattern %q", pattern)
		}
		f.excludes = append(f.excludes, compiled)
	}
	return f, nil
}

// Included reports whether the item at relativePath should be inserted
// into the traversal's DirContainer. Excluded items are dropped at the
// name level during traversal and never appear anywhere in the tree, per
// spec.md's traversal description.
func (f *HardFilter) Included(relativePath string) bool {
	for _, exclude := range f.excludes {
		if exclude.matches(relativePath) {
			return false
		}
	}
	if len(f.includes) == 0 {
		return true
	}
	for _, include := range f.includes {
		if include.matches(relativePath) {
			return true
		}
	}
	return false
}
