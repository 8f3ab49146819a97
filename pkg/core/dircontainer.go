package core

// DirContainer is a raw in-memory mirror of one on-disk directory subtree,
// populated by a single-side traversal and consumed only by the comparer's
// merge step; it never survives past the comparison phase. Its three
// mappings are keyed by short (single-component) name. Key comparison is
// case-sensitive on POSIX and case-insensitive on Windows; callers are
// responsible for using the platform-appropriate key (see pkg/compare's use
// of pkg/core's NameKey helper). Insertion order is never significant.
//
// Sublinks holds only symbolic links that are *not* being dereferenced
// under the active symlink policy; a dereferenced directory or file symlink
// is instead folded into Subdirs or Subfiles as an ordinary entry.
type DirContainer struct {
	Subdirs  map[string]*DirContainer
	Subfiles map[string]FileDescriptor
	Sublinks map[string]SymlinkDescriptor
}

// NewDirContainer creates an empty DirContainer ready for population during
// traversal.
func NewDirContainer() *DirContainer {
	return &DirContainer{
		Subdirs:  make(map[string]*DirContainer),
		Subfiles: make(map[string]FileDescriptor),
		Sublinks: make(map[string]SymlinkDescriptor),
	}
}

// nameSet returns the union of all names appearing in any of the three
// mappings of either container (nil-safe: either container may be nil,
// representing an absent side).
func nameSet(left, right *DirContainer) map[string]bool {
	names := make(map[string]bool)
	add := func(c *DirContainer) {
		if c == nil {
			return
		}
		for name := range c.Subdirs {
			names[name] = true
		}
		for name := range c.Subfiles {
			names[name] = true
		}
		for name := range c.Sublinks {
			names[name] = true
		}
	}
	add(left)
	add(right)
	return names
}
