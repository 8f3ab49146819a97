package execute

import "github.com/foldersync/foldersync/pkg/core"

// ErrorDecision is the caller's response to ErrorSink.OnError: whether the
// failed primitive should be retried, the item abandoned in favor of the
// next one, or the entire run unwound.
type ErrorDecision uint8

const (
	// ErrorDecisionRetry re-attempts the same primitive after the
	// configured retry delay.
	ErrorDecisionRetry ErrorDecision = iota
	// ErrorDecisionIgnore abandons the current item and advances to the
	// next one in the pass.
	ErrorDecisionIgnore
	// ErrorDecisionAbort stops the run immediately; Execute returns the
	// error that triggered it.
	ErrorDecisionAbort
)

// ErrorSink receives every non-recoverable error a filesystem primitive
// reports and decides how Execute should proceed, per spec.md §4.6's
// "on error from a primitive" clause. relativePath identifies the item;
// retriable is false for errors a retry could never fix (e.g. a
// permission denial that isn't going to change between attempts).
//
// A sink implementing "ignore previous errors of this kind" tracks that
// state itself — Execute calls OnError exactly once per failed attempt and
// otherwise has no opinion on what "this kind" means.
type ErrorSink interface {
	OnError(relativePath string, err error, retriable bool) ErrorDecision
}

// ProgressSink receives the pre-pass statistics and one callback per item
// actually applied, so a caller can render progress without polling the
// hierarchy itself.
type ProgressSink interface {
	OnStatistics(stats Statistics)
	OnItemComplete(relativePath string, op core.SyncOperation)
}

// Recycler hands a deleted or overwritten path off to the platform's
// recycle bin (or an equivalent collaborator) instead of removing it
// outright. It is the "external recycler collaborator" spec.md §4.6 names
// for DeletionPolicyRecycle; this module has no built-in implementation
// since recycle-bin access is inherently platform- and environment-
// specific (and out of scope per spec.md's non-goals around OS shell
// integration).
type Recycler interface {
	Recycle(path string) error
}

// Statistics is the pre-pass count spec.md §4.6 requires: how many items
// will move in each direction and how many bytes will be copied,
// published to the ProgressSink before any item is touched. Counts are
// split per direction (rather than pooled) per original_source's
// DirInformation/zen::ObjectMgmt, so a progress UI doesn't need to
// re-derive the split itself.
type Statistics struct {
	ItemsToLeft  int
	ItemsToRight int
	BytesToLeft  uint64
	BytesToRight uint64
	Conflicts    int
}
