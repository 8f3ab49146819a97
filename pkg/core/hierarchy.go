package core

// DirectoryLock is the minimal contract a BaseDirMapping needs from a held
// per-root lock: something that can be released when the pairing's
// lifetime ends. The concrete implementation lives in pkg/fs/locking; core
// only needs the shape so that it doesn't import a package that in turn
// has no reason to know about the hierarchy model.
type DirectoryLock interface {
	Unlock() error
}

// HierarchyObject is the common interface satisfied by every node in a
// paired tree: FileMapping, SymlinkMapping, DirMapping, and
// BaseDirMapping. The resolver and executor operate almost entirely
// through this interface rather than on the concrete node types.
type HierarchyObject interface {
	ID() ObjectID
	Name() string

	LeftPresent() bool
	RightPresent() bool

	CompareResult() CompareResult
	SetCompareResult(CompareResult)

	// Active reflects the soft filter (time window, size bounds): an
	// inactive node is excluded from synchronization but remains in the
	// tree so that its presence still counts toward directory emptiness.
	Active() bool
	SetActive(bool)

	SyncDirection() SyncDirection
	SetSyncDirection(SyncDirection)

	ConflictDescription() string
	SetConflictDescription(string)

	// SwapSides exchanges left and right throughout the node, including
	// any side-asymmetric CompareResult (LeftOnly<->RightOnly,
	// LeftNewer<->RightNewer) and SyncDirection (Left<->Right).
	SwapSides()

	// RemoveOnSide marks the node absent on the given side. For a
	// directory node this cascades to every descendant.
	RemoveOnSide(side SyncDirection)

	// SynchronizeSides reflects a completed or already-equal pairing back
	// into the node's own bookkeeping: once SyncDirection is Left or
	// Right, the opposite side's presence and descriptor are set equal to
	// the chosen side's, and CompareResult becomes Equal.
	SynchronizeSides()
}

// base holds the fields common to every concrete HierarchyObject. It is
// embedded by value, never by pointer, in each concrete node type, which
// is what lets child nodes live directly in their parent's slices without
// a parent back-pointer.
type base struct {
	id                   ObjectID
	name                 string
	leftPresent          bool
	rightPresent         bool
	compareResult        CompareResult
	active               bool
	syncDirection        SyncDirection
	conflictDescription  string
}

func newBase(name string, leftPresent, rightPresent bool, result CompareResult) base {
	return base{
		id:            nextObjectID(),
		name:          name,
		leftPresent:   leftPresent,
		rightPresent:  rightPresent,
		compareResult: result,
		active:        true,
	}
}

func (b *base) ID() ObjectID                              { return b.id }
func (b *base) Name() string                               { return b.name }
func (b *base) LeftPresent() bool                          { return b.leftPresent }
func (b *base) RightPresent() bool                         { return b.rightPresent }
func (b *base) CompareResult() CompareResult                { return b.compareResult }
func (b *base) SetCompareResult(r CompareResult)            { b.compareResult = r }
func (b *base) Active() bool                                { return b.active }
func (b *base) SetActive(active bool)                       { b.active = active }
func (b *base) SyncDirection() SyncDirection                { return b.syncDirection }
func (b *base) SetSyncDirection(d SyncDirection)             { b.syncDirection = d }
func (b *base) ConflictDescription() string                 { return b.conflictDescription }
func (b *base) SetConflictDescription(s string)              { b.conflictDescription = s }

// swapCompareResult exchanges the side-asymmetric halves of a
// CompareResult; symmetric results (Equal, DifferentContent,
// DifferentMetadataOnly, Conflict) are left untouched.
func swapCompareResult(r CompareResult) CompareResult {
	switch r {
	case CompareResultLeftOnly:
		return CompareResultRightOnly
	case CompareResultRightOnly:
		return CompareResultLeftOnly
	case CompareResultLeftNewer:
		return CompareResultRightNewer
	case CompareResultRightNewer:
		return CompareResultLeftNewer
	default:
		return r
	}
}

func swapDirection(d SyncDirection) SyncDirection {
	switch d {
	case SyncDirectionLeft:
		return SyncDirectionRight
	case SyncDirectionRight:
		return SyncDirectionLeft
	default:
		return d
	}
}

func (b *base) swapBase() {
	b.leftPresent, b.rightPresent = b.rightPresent, b.leftPresent
	b.compareResult = swapCompareResult(b.compareResult)
	b.syncDirection = swapDirection(b.syncDirection)
}

// FileMapping is a leaf HierarchyObject pairing a regular file that may be
// present on either or both sides.
type FileMapping struct {
	base
	LeftDescriptor  FileDescriptor
	RightDescriptor FileDescriptor
}

// NewFileMapping builds a FileMapping with both sides present, as produced
// by the comparer's merge step; the caller assigns CompareResult
// separately once categorization decides it.
func NewFileMapping(name string, left, right FileDescriptor) *FileMapping {
	return &FileMapping{base: newBase(name, true, true, CompareResultEqual), LeftDescriptor: left, RightDescriptor: right}
}

// NewFileMappingOneSided builds a FileMapping present on exactly one side.
func NewFileMappingOneSided(name string, desc FileDescriptor, onLeft bool) *FileMapping {
	result := CompareResultRightOnly
	left, right := sentinelFileDescriptor, desc
	if onLeft {
		result = CompareResultLeftOnly
		left, right = desc, sentinelFileDescriptor
	}
	return &FileMapping{base: newBase(name, onLeft, !onLeft, result), LeftDescriptor: left, RightDescriptor: right}
}

func (f *FileMapping) SwapSides() {
	f.swapBase()
	f.LeftDescriptor, f.RightDescriptor = f.RightDescriptor, f.LeftDescriptor
}

func (f *FileMapping) RemoveOnSide(side SyncDirection) {
	switch side {
	case SyncDirectionLeft:
		f.leftPresent = false
		f.LeftDescriptor = sentinelFileDescriptor
	case SyncDirectionRight:
		f.rightPresent = false
		f.RightDescriptor = sentinelFileDescriptor
	}
}

func (f *FileMapping) SynchronizeSides() {
	switch f.syncDirection {
	case SyncDirectionLeft:
		fileID := f.RightDescriptor.FileID
		f.RightDescriptor = f.LeftDescriptor
		f.RightDescriptor.FileID = fileID
		f.rightPresent = f.leftPresent
	case SyncDirectionRight:
		fileID := f.LeftDescriptor.FileID
		f.LeftDescriptor = f.RightDescriptor
		f.LeftDescriptor.FileID = fileID
		f.leftPresent = f.rightPresent
	default:
		return
	}
	f.compareResult = CompareResultEqual
}

// SymlinkMapping is a leaf HierarchyObject pairing a symbolic link that is
// being synchronized directly rather than dereferenced.
type SymlinkMapping struct {
	base
	LeftDescriptor  SymlinkDescriptor
	RightDescriptor SymlinkDescriptor
}

func NewSymlinkMapping(name string, left, right SymlinkDescriptor) *SymlinkMapping {
	return &SymlinkMapping{base: newBase(name, true, true, CompareResultEqual), LeftDescriptor: left, RightDescriptor: right}
}

func NewSymlinkMappingOneSided(name string, desc SymlinkDescriptor, onLeft bool) *SymlinkMapping {
	result := CompareResultRightOnly
	left, right := sentinelSymlinkDescriptor, desc
	if onLeft {
		result = CompareResultLeftOnly
		left, right = desc, sentinelSymlinkDescriptor
	}
	return &SymlinkMapping{base: newBase(name, onLeft, !onLeft, result), LeftDescriptor: left, RightDescriptor: right}
}

func (s *SymlinkMapping) SwapSides() {
	s.swapBase()
	s.LeftDescriptor, s.RightDescriptor = s.RightDescriptor, s.LeftDescriptor
}

func (s *SymlinkMapping) RemoveOnSide(side SyncDirection) {
	switch side {
	case SyncDirectionLeft:
		s.leftPresent = false
		s.LeftDescriptor = sentinelSymlinkDescriptor
	case SyncDirectionRight:
		s.rightPresent = false
		s.RightDescriptor = sentinelSymlinkDescriptor
	}
}

func (s *SymlinkMapping) SynchronizeSides() {
	switch s.syncDirection {
	case SyncDirectionLeft:
		s.RightDescriptor = s.LeftDescriptor
		s.rightPresent = s.leftPresent
	case SyncDirectionRight:
		s.LeftDescriptor = s.RightDescriptor
		s.leftPresent = s.rightPresent
	default:
		return
	}
	s.compareResult = CompareResultEqual
}

// DirMapping is both a HierarchyObject in its own right and a container of
// child HierarchyObjects. It has no parent pointer; callers thread the
// relative path through traversal instead.
type DirMapping struct {
	base
	Subdirs  []*DirMapping
	Subfiles []*FileMapping
	Sublinks []*SymlinkMapping

	// LeftModTime and RightModTime are the directory's own modification
	// times on each side, present only when the side itself is present.
	// The comparer uses them to downgrade an otherwise-Equal pairing to
	// DifferentMetadataOnly when they disagree beyond tolerance; nothing
	// else in the tree depends on them.
	LeftModTime  int64
	RightModTime int64
}

func newDirMapping(name string, leftPresent, rightPresent bool) *DirMapping {
	result := CompareResultEqual
	if leftPresent && !rightPresent {
		result = CompareResultLeftOnly
	} else if rightPresent && !leftPresent {
		result = CompareResultRightOnly
	}
	return &DirMapping{base: newBase(name, leftPresent, rightPresent, result)}
}

// AddSubdir appends a new directory child and returns it for further
// population by the caller.
func (d *DirMapping) AddSubdir(name string, leftPresent, rightPresent bool) *DirMapping {
	child := newDirMapping(name, leftPresent, rightPresent)
	d.Subdirs = append(d.Subdirs, child)
	return child
}

// AddSubfile appends a new file child present on both sides.
func (d *DirMapping) AddSubfile(name string, left, right FileDescriptor) *FileMapping {
	child := NewFileMapping(name, left, right)
	d.Subfiles = append(d.Subfiles, child)
	return child
}

// AddSubfileOneSided appends a new file child present on exactly one side.
func (d *DirMapping) AddSubfileOneSided(name string, desc FileDescriptor, onLeft bool) *FileMapping {
	child := NewFileMappingOneSided(name, desc, onLeft)
	d.Subfiles = append(d.Subfiles, child)
	return child
}

// AddSublink appends a new symlink child present on both sides.
func (d *DirMapping) AddSublink(name string, left, right SymlinkDescriptor) *SymlinkMapping {
	child := NewSymlinkMapping(name, left, right)
	d.Sublinks = append(d.Sublinks, child)
	return child
}

// AddSublinkOneSided appends a new symlink child present on exactly one
// side.
func (d *DirMapping) AddSublinkOneSided(name string, desc SymlinkDescriptor, onLeft bool) *SymlinkMapping {
	child := NewSymlinkMappingOneSided(name, desc, onLeft)
	d.Sublinks = append(d.Sublinks, child)
	return child
}

func (d *DirMapping) SwapSides() {
	d.swapBase()
	for _, sub := range d.Subdirs {
		sub.SwapSides()
	}
	for _, f := range d.Subfiles {
		f.SwapSides()
	}
	for _, l := range d.Sublinks {
		l.SwapSides()
	}
}

// RemoveOnSide marks the directory absent on side and cascades the same
// removal to every descendant, matching the invariant that a directory's
// presence on a side implies every present descendant is reachable there.
func (d *DirMapping) RemoveOnSide(side SyncDirection) {
	switch side {
	case SyncDirectionLeft:
		d.leftPresent = false
	case SyncDirectionRight:
		d.rightPresent = false
	default:
		return
	}
	for _, sub := range d.Subdirs {
		sub.RemoveOnSide(side)
	}
	for _, f := range d.Subfiles {
		f.RemoveOnSide(side)
	}
	for _, l := range d.Sublinks {
		l.RemoveOnSide(side)
	}
}

func (d *DirMapping) SynchronizeSides() {
	switch d.syncDirection {
	case SyncDirectionLeft:
		d.rightPresent = d.leftPresent
	case SyncDirectionRight:
		d.leftPresent = d.rightPresent
	default:
		return
	}
	d.compareResult = CompareResultEqual
}

// PruneEmpty recursively removes descendants that became empty (absent on
// both sides), which happens transiently during a delete before the
// corresponding HierarchyObject is spliced out of its parent's slice. The
// executor calls it once, after all of its passes have run.
func (d *DirMapping) PruneEmpty() {
	keptDirs := d.Subdirs[:0]
	for _, sub := range d.Subdirs {
		sub.PruneEmpty()
		if sub.LeftPresent() || sub.RightPresent() {
			keptDirs = append(keptDirs, sub)
		}
	}
	d.Subdirs = keptDirs

	keptFiles := d.Subfiles[:0]
	for _, f := range d.Subfiles {
		if f.LeftPresent() || f.RightPresent() {
			keptFiles = append(keptFiles, f)
		}
	}
	d.Subfiles = keptFiles

	keptLinks := d.Sublinks[:0]
	for _, l := range d.Sublinks {
		if l.LeftPresent() || l.RightPresent() {
			keptLinks = append(keptLinks, l)
		}
	}
	d.Sublinks = keptLinks
}

// Visitor is called once per node during Walk, receiving the node and the
// slash-separated relative path from the root (which is never cached on
// the node itself).
type Visitor func(object HierarchyObject, relativePath string)

// Walk performs a depth-first traversal of the subtree rooted at d,
// invoking visit for every descendant of d (but not for d itself),
// threading the relative path through the call stack instead of storing
// it on any node.
func (d *DirMapping) Walk(relativePath string, visit Visitor) {
	for _, sub := range d.Subdirs {
		path := joinRelative(relativePath, sub.Name())
		visit(sub, path)
		sub.Walk(path, visit)
	}
	for _, f := range d.Subfiles {
		visit(f, joinRelative(relativePath, f.Name()))
	}
	for _, l := range d.Sublinks {
		visit(l, joinRelative(relativePath, l.Name()))
	}
}

func joinRelative(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

// BaseDirMapping is the root of one configured folder pair. It owns the
// two base directory paths (always stored with a trailing separator), the
// effective filter for the pair, and the directory locks held for the
// duration of the run.
type BaseDirMapping struct {
	DirMapping
	LeftBasePath  string
	RightBasePath string
	Filter        FilterConfig
	LeftLock      DirectoryLock
	RightLock     DirectoryLock
}

// NewBaseDirMapping creates the root of a new pairing. Base paths are
// normalized to carry a trailing separator by the caller (pkg/engine)
// before construction.
func NewBaseDirMapping(leftBasePath, rightBasePath string, filter FilterConfig) *BaseDirMapping {
	return &BaseDirMapping{
		DirMapping:    *newDirMapping("", true, true),
		LeftBasePath:  leftBasePath,
		RightBasePath: rightBasePath,
		Filter:        filter,
	}
}

// Walk traverses every descendant of the pairing, starting from an empty
// relative path.
func (b *BaseDirMapping) Walk(visit Visitor) {
	b.DirMapping.Walk("", visit)
}

// ReleaseLocks unlocks whichever of the two per-side locks are held. It is
// safe to call even if locks were never acquired.
func (b *BaseDirMapping) ReleaseLocks() error {
	var firstErr error
	if b.LeftLock != nil {
		if err := b.LeftLock.Unlock(); err != nil {
			firstErr = err
		}
		b.LeftLock = nil
	}
	if b.RightLock != nil {
		if err := b.RightLock.Unlock(); err != nil && firstErr == nil {
			firstErr = err
		}
		b.RightLock = nil
	}
	return firstErr
}
