package resolve

import "github.com/foldersync/foldersync/pkg/core"

// Options configures a single Resolve pass over one compared hierarchy.
type Options struct {
	Policy           core.DirectionPolicy
	CustomDirections core.DirectionSet
	// History supplies the previous run's recorded state for the
	// Automatic policy. It is nil when no sync database exists yet (the
	// first run for a pair) or when pkg/syncdb rejected it as unreadable
	// or schema-mismatched; either way Automatic falls back to a one-time
	// left-to-right mirror, per spec.md §4.5.
	History History
}

// nodeState is the subset of a node's current descriptors the Automatic
// policy needs to decide whether a side changed since the last sync. Size
// is left zero for directories and symlinks, neither of which records a
// meaningful size.
type nodeState struct {
	leftPresent, rightPresent bool
	leftModTime, rightModTime int64
	leftSize, rightSize       uint64
}

type resolver struct {
	policy  core.DirectionPolicy
	custom  core.DirectionSet
	history History
}

// Resolve walks every node of mapping and assigns each one a
// SyncDirection, per spec.md §4.5. It also reclassifies a node's
// CompareResult to Conflict when Automatic resolution discovers the two
// sides changed differently since the last sync — a case the comparer's
// instantaneous, history-blind categorization cannot see on its own.
//
// The recursive direction invariant (spec.md §4.5: a one-sided directory
// assigns the same direction to every descendant) is enforced top-down:
// once a directory resolves as LeftOnly or RightOnly, every node beneath
// it inherits that direction directly instead of being resolved again.
func Resolve(mapping *core.BaseDirMapping, options Options) {
	r := &resolver{policy: options.Policy, custom: options.CustomDirections, history: options.History}
	r.resolveDir(&mapping.DirMapping, "", false, core.SyncDirectionNone)
}

func (r *resolver) directionFor(result core.CompareResult, relativePath string, state nodeState) (core.SyncDirection, string) {
	switch r.policy {
	case core.DirectionPolicyMirror:
		return directionForMirror(result), ""
	case core.DirectionPolicyUpdate:
		return directionForUpdate(result), ""
	case core.DirectionPolicyCustom:
		return directionForCustom(result, r.custom), ""
	case core.DirectionPolicyAutomatic:
		return r.directionForAutomaticNode(relativePath, result, state)
	default:
		return core.SyncDirectionNone, ""
	}
}

func (r *resolver) resolveDir(dm *core.DirMapping, relativePath string, forced bool, forcedDirection core.SyncDirection) {
	var direction core.SyncDirection
	if forced {
		direction = forcedDirection
	} else {
		var desc string
		direction, desc = r.directionFor(dm.CompareResult(), relativePath, dirState(dm))
		if desc != "" {
			dm.SetConflictDescription(desc)
			dm.SetCompareResult(core.CompareResultConflict)
		}
	}
	dm.SetSyncDirection(direction)

	childForced := forced || dm.CompareResult() == core.CompareResultLeftOnly || dm.CompareResult() == core.CompareResultRightOnly

	for _, sub := range dm.Subdirs {
		r.resolveDir(sub, joinRelative(relativePath, sub.Name()), childForced, direction)
	}
	for _, f := range dm.Subfiles {
		r.resolveFile(f, joinRelative(relativePath, f.Name()), childForced, direction)
	}
	for _, l := range dm.Sublinks {
		r.resolveLink(l, joinRelative(relativePath, l.Name()), childForced, direction)
	}
}

func (r *resolver) resolveFile(f *core.FileMapping, relativePath string, forced bool, forcedDirection core.SyncDirection) {
	if forced {
		f.SetSyncDirection(forcedDirection)
		return
	}
	direction, desc := r.directionFor(f.CompareResult(), relativePath, fileState(f))
	if desc != "" {
		f.SetConflictDescription(desc)
		f.SetCompareResult(core.CompareResultConflict)
	}
	f.SetSyncDirection(direction)
}

func (r *resolver) resolveLink(l *core.SymlinkMapping, relativePath string, forced bool, forcedDirection core.SyncDirection) {
	if forced {
		l.SetSyncDirection(forcedDirection)
		return
	}
	direction, desc := r.directionFor(l.CompareResult(), relativePath, linkState(l))
	if desc != "" {
		l.SetConflictDescription(desc)
		l.SetCompareResult(core.CompareResultConflict)
	}
	l.SetSyncDirection(direction)
}

func dirState(dm *core.DirMapping) nodeState {
	return nodeState{
		leftPresent:  dm.LeftPresent(),
		rightPresent: dm.RightPresent(),
		leftModTime:  dm.LeftModTime,
		rightModTime: dm.RightModTime,
	}
}

func fileState(f *core.FileMapping) nodeState {
	return nodeState{
		leftPresent:  f.LeftPresent(),
		rightPresent: f.RightPresent(),
		leftModTime:  f.LeftDescriptor.ModificationTime,
		rightModTime: f.RightDescriptor.ModificationTime,
		leftSize:     f.LeftDescriptor.Size,
		rightSize:    f.RightDescriptor.Size,
	}
}

func linkState(l *core.SymlinkMapping) nodeState {
	return nodeState{
		leftPresent:  l.LeftPresent(),
		rightPresent: l.RightPresent(),
		leftModTime:  l.LeftDescriptor.ModificationTime,
		rightModTime: l.RightDescriptor.ModificationTime,
	}
}

func joinRelative(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
