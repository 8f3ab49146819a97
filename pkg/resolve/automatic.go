package resolve

import "github.com/foldersync/foldersync/pkg/core"

// PreviousState is one node's recorded state as of the last successful
// synchronization: a single ancestor-like snapshot, not a per-side pair,
// since by construction both sides were equal (or absent) when
// pkg/syncdb wrote it. FileID lets a future move-detection pass recognize
// the same underlying file behind a renamed path; directionForAutomaticNode
// itself only needs Size and ModTime.
type PreviousState struct {
	Size    uint64
	ModTime int64
	FileID  *uint64
}

// History looks up the previous synchronization state recorded for a
// folder pair, keyed by the slash-separated relative path the comparer
// assigns each node. A nil History (the database file was missing,
// unreadable, or schema-mismatched) makes every lookup behave as
// not-found, which directionForAutomaticNode treats as spec.md §4.5's
// no-database fallback.
type History interface {
	Lookup(relativePath string) (PreviousState, bool)
}

// directionForAutomaticNode implements spec.md §4.5's Automatic
// (two-way) policy for a single node: found absence means the path was
// never part of a completed sync, so there is nothing to diff against. A
// found record is the three-way-merge ancestor — since it can only exist
// for a path that was present and equal on both sides at the end of the
// last run, comparing each side's current state against it alone is
// enough to know whether that side changed.
//
// A non-empty conflict description means the caller must also
// reclassify the node's CompareResult as Conflict, since "both sides
// changed differently" overrides whatever the comparer's instantaneous
// category said.
func (r *resolver) directionForAutomaticNode(relativePath string, result core.CompareResult, state nodeState) (core.SyncDirection, string) {
	if result == core.CompareResultEqual {
		return core.SyncDirectionNone, ""
	}
	if result == core.CompareResultConflict {
		// A kind-mismatch conflict (file vs. directory, file vs. symlink)
		// has no ancestor record to diff against — there's no prior
		// categorization of "the same node" to compare. Automatic falls
		// back to Mirror's resolution for this one case.
		return core.SyncDirectionRight, ""
	}

	var prev PreviousState
	var found bool
	if r.history != nil {
		prev, found = r.history.Lookup(relativePath)
	}
	if !found {
		if !state.leftPresent && !state.rightPresent {
			return core.SyncDirectionNone, ""
		}
		return core.SyncDirectionRight, ""
	}

	leftChanged := !state.leftPresent || state.leftModTime != prev.ModTime || state.leftSize != prev.Size
	rightChanged := !state.rightPresent || state.rightModTime != prev.ModTime || state.rightSize != prev.Size

	switch {
	case !leftChanged && !rightChanged:
		return core.SyncDirectionNone, ""
	case leftChanged && !rightChanged:
		return core.SyncDirectionRight, ""
	case rightChanged && !leftChanged:
		return core.SyncDirectionLeft, ""
	default:
		if state.leftPresent == state.rightPresent &&
			state.leftModTime == state.rightModTime &&
			state.leftSize == state.rightSize {
			return core.SyncDirectionNone, ""
		}
		return core.SyncDirectionNone, "both sides changed since last sync"
	}
}
