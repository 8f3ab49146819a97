package execute

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/foldersync/foldersync/pkg/contextutil"
	"github.com/foldersync/foldersync/pkg/core"
	"github.com/foldersync/foldersync/pkg/fs"
)

// Options configures a single Execute call for one resolved folder pair.
type Options struct {
	Config   core.Configuration
	Errors   ErrorSink
	Progress ProgressSink
	Recycler Recycler
}

// Execute carries out every operation the resolver assigned to mapping:
// unresolved conflicts are reported first, then the three passes spec.md
// §4.6 mandates run in order, retrying each primitive through
// options.Errors and reporting progress through options.Progress.
// now is the instant used to name any versioned (moved-aside) files, kept
// as a parameter so tests can supply a fixed value.
func Execute(ctx context.Context, mapping *core.BaseDirMapping, options Options, now time.Time) error {
	items := collectItems(mapping)

	if options.Progress != nil {
		options.Progress.OnStatistics(computeStatistics(mapping))
	}

	passes := [][]item{
		conflictPass(items),
		directoryCreationPass(items),
		contentPass(items),
		deletionPass(items),
	}

	for _, pass := range passes {
		for _, it := range pass {
			if contextutil.IsCancelled(ctx) {
				return ctx.Err()
			}
			if err := runWithRetry(it, options, now); err != nil {
				return err
			}
			it.object.SynchronizeSides()
			if options.Progress != nil {
				options.Progress.OnItemComplete(it.relativePath, it.op)
			}
		}
	}

	mapping.PruneEmpty()

	return nil
}

// runWithRetry applies it's operation, consulting options.Errors on each
// failure and retrying up to options.Config.RetryCount additional times
// with options.Config.RetryDelayMillis between attempts, per spec.md
// §4.6's "on error from a primitive" clause. UnresolvedConflict items are
// reported once as a warning and never retried, since there is no
// primitive to re-attempt.
func runWithRetry(it item, options Options, now time.Time) error {
	if it.op == core.SyncOperationUnresolvedConflict {
		if options.Errors != nil {
			options.Errors.OnError(it.relativePath, errors.New(it.object.ConflictDescription()), false)
		}
		return nil
	}

	attempt := 0
	for {
		err := applyItem(it.object, it.leftPath, it.rightPath, it.relativePath, it.op, options.Config, options.Recycler, now)
		if err == nil {
			return nil
		}

		if options.Errors == nil {
			return err
		}

		decision := options.Errors.OnError(it.relativePath, err, isRetriable(err))
		switch decision {
		case ErrorDecisionIgnore:
			return nil
		case ErrorDecisionAbort:
			return errors.Wrap(err, "synchronization aborted")
		case ErrorDecisionRetry:
			if attempt >= options.Config.RetryCount {
				return err
			}
			attempt++
			if options.Config.RetryDelayMillis > 0 {
				time.Sleep(time.Duration(options.Config.RetryDelayMillis) * time.Millisecond)
			}
			continue
		default:
			return err
		}
	}
}

// isRetriable reports whether a second attempt at the same primitive
// stands any chance of succeeding: a locked source file may free up, an
// unclassified error might have been transient, but a missing path,
// a permission denial, or cancellation will not resolve itself by simply
// trying again.
func isRetriable(err error) bool {
	switch {
	case fs.IsCode(err, fs.CodeFileLocked):
		return true
	case fs.IsCode(err, fs.CodeNotFound),
		fs.IsCode(err, fs.CodeAlreadyExists),
		fs.IsCode(err, fs.CodePermissionDenied),
		fs.IsCode(err, fs.CodeAttributeUnsupported),
		fs.IsCode(err, fs.CodeCancelled):
		return false
	default:
		return true
	}
}
