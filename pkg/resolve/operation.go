package resolve

import "github.com/foldersync/foldersync/pkg/core"

// Operation derives the concrete action the executor must take for a
// single node from its CompareResult, the SyncDirection the resolver
// assigned it, and whether the soft filter left it active. The mapping is
// mechanical and carries no policy of its own — all policy lives in which
// direction got assigned upstream.
func Operation(result core.CompareResult, direction core.SyncDirection, active bool) core.SyncOperation {
	if !active {
		return core.SyncOperationDoNothing
	}

	switch result {
	case core.CompareResultEqual:
		return core.SyncOperationEqual

	case core.CompareResultDifferentMetadataOnly:
		switch direction {
		case core.SyncDirectionLeft:
			return core.SyncOperationCopyMetadataToLeft
		case core.SyncDirectionRight:
			return core.SyncOperationCopyMetadataToRight
		default:
			return core.SyncOperationDoNothing
		}

	case core.CompareResultLeftOnly:
		switch direction {
		case core.SyncDirectionRight:
			return core.SyncOperationCreateRight
		case core.SyncDirectionLeft:
			return core.SyncOperationDeleteLeft
		default:
			return core.SyncOperationDoNothing
		}

	case core.CompareResultRightOnly:
		switch direction {
		case core.SyncDirectionLeft:
			return core.SyncOperationCreateLeft
		case core.SyncDirectionRight:
			return core.SyncOperationDeleteRight
		default:
			return core.SyncOperationDoNothing
		}

	case core.CompareResultLeftNewer, core.CompareResultRightNewer, core.CompareResultDifferentContent:
		switch direction {
		case core.SyncDirectionLeft:
			return core.SyncOperationOverwriteLeft
		case core.SyncDirectionRight:
			return core.SyncOperationOverwriteRight
		default:
			return core.SyncOperationDoNothing
		}

	case core.CompareResultConflict:
		switch direction {
		case core.SyncDirectionLeft:
			return core.SyncOperationOverwriteLeft
		case core.SyncDirectionRight:
			return core.SyncOperationOverwriteRight
		default:
			return core.SyncOperationUnresolvedConflict
		}

	default:
		return core.SyncOperationDoNothing
	}
}
