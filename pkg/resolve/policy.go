package resolve

import "github.com/foldersync/foldersync/pkg/core"

// directionForMirror implements the Mirror policy: every difference flows
// left to right, including metadata-only drift and kind-mismatch
// conflicts, and a right-only entry is slated for deletion rather than
// propagation. Equal needs no direction.
func directionForMirror(result core.CompareResult) core.SyncDirection {
	if result == core.CompareResultEqual {
		return core.SyncDirectionNone
	}
	return core.SyncDirectionRight
}

// directionForUpdate implements the Update policy: only new or newer
// left-side content propagates; nothing is ever deleted or overwritten
// toward left, and metadata-only drift and conflicts are left untouched.
func directionForUpdate(result core.CompareResult) core.SyncDirection {
	switch result {
	case core.CompareResultLeftOnly, core.CompareResultLeftNewer:
		return core.SyncDirectionRight
	default:
		return core.SyncDirectionNone
	}
}

// directionForCustom implements the Custom policy: each one-sided or
// conflicting category takes its direction independently from the
// user-supplied DirectionSet. Equal and DifferentMetadataOnly are
// deliberately not configurable (see DirectionSet's doc comment) and
// always resolve to None.
func directionForCustom(result core.CompareResult, set core.DirectionSet) core.SyncDirection {
	switch result {
	case core.CompareResultLeftOnly:
		return set.LeftOnly
	case core.CompareResultRightOnly:
		return set.RightOnly
	case core.CompareResultLeftNewer:
		return set.LeftNewer
	case core.CompareResultRightNewer:
		return set.RightNewer
	case core.CompareResultDifferentContent:
		return set.DifferentContent
	case core.CompareResultConflict:
		return set.Conflict
	default:
		return core.SyncDirectionNone
	}
}
