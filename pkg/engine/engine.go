package engine

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/foldersync/foldersync/pkg/compare"
	"github.com/foldersync/foldersync/pkg/core"
	"github.com/foldersync/foldersync/pkg/execute"
	"github.com/foldersync/foldersync/pkg/foldersync"
	"github.com/foldersync/foldersync/pkg/logging"
	"github.com/foldersync/foldersync/pkg/resolve"
	"github.com/foldersync/foldersync/pkg/syncdb"
)

// Options configures a single Run over one folder pair. Left and Right are
// the two base paths; Config is the already-merged settings for this pair
// (see pkg/config.BuildPairs).
type Options struct {
	Left   string
	Right  string
	Config core.Configuration

	CompareProgress compare.ProgressSink
	ExecuteProgress execute.ProgressSink
	Errors          execute.ErrorSink
	Recycler        execute.Recycler
	Logger          *logging.Logger
}

// Result is what a completed Run reports back: the final hierarchy (for a
// caller that wants to inspect it directly) and the statistics Execute
// published before applying anything.
type Result struct {
	Mapping    *core.BaseDirMapping
	Statistics execute.Statistics
}

// Run carries out one full compare-resolve-execute cycle for a folder
// pair, per spec.md §4's top-level algorithm. The two root locks acquired
// during comparison are held for the duration of the run — across
// resolution and execution, not just the comparison — so that a second,
// concurrently started run for the same pair waits rather than racing
// this one's database update; they are always released before Run
// returns, whether it succeeds or fails.
func Run(ctx context.Context, options Options) (Result, error) {
	left := withTrailingSeparator(options.Left)
	right := withTrailingSeparator(options.Right)

	mapping, err := compare.Compare(ctx, left, right, compare.Options{
		CompareVariant: options.Config.CompareVariant,
		SymlinkPolicy:  options.Config.SymlinkPolicy,
		GlobalFilter:   options.Config.GlobalFilter,
		PairFilter:     options.Config.PairFilter,
		Lock:           true,
		Progress:       options.CompareProgress,
		Logger:         options.Logger,
	})
	if err != nil {
		return Result{}, errors.Wrap(err, "unable to compare folder pair")
	}
	defer mapping.ReleaseLocks()

	dbPath := filepath.Join(left, foldersync.DatabaseFileName)

	var history resolve.History
	if options.Config.DirectionPolicy == core.DirectionPolicyAutomatic {
		db, err := syncdb.Load(dbPath, options.Logger)
		if err != nil {
			return Result{}, errors.Wrap(err, "unable to load synchronization database")
		}
		if db != nil {
			history = db
		}
	}

	resolve.Resolve(mapping, resolve.Options{
		Policy:           options.Config.DirectionPolicy,
		CustomDirections: options.Config.CustomDirections,
		History:          history,
	})

	progress := &statisticsCapture{inner: options.ExecuteProgress}
	err = execute.Execute(ctx, mapping, execute.Options{
		Config:   options.Config,
		Errors:   options.Errors,
		Progress: progress,
		Recycler: options.Recycler,
	}, time.Now())
	if err != nil {
		return Result{}, errors.Wrap(err, "unable to execute synchronization operations")
	}

	if options.Logger != nil {
		options.Logger.Infof("synchronized %s", progress.stats)
	}

	if options.Config.DirectionPolicy == core.DirectionPolicyAutomatic {
		if err := syncdb.BuildFromHierarchy(mapping).Save(dbPath); err != nil {
			return Result{}, errors.Wrap(err, "unable to save synchronization database")
		}
	}

	return Result{Mapping: mapping, Statistics: progress.stats}, nil
}

// statisticsCapture forwards execute.ProgressSink callbacks to inner (when
// present) while also retaining the one OnStatistics call Run needs for its
// own summary log line and Result.Statistics — without this, Run would have
// to re-walk the hierarchy itself just to recover counts Execute already
// computed.
type statisticsCapture struct {
	inner execute.ProgressSink
	stats execute.Statistics
}

func (c *statisticsCapture) OnStatistics(stats execute.Statistics) {
	c.stats = stats
	if c.inner != nil {
		c.inner.OnStatistics(stats)
	}
}

func (c *statisticsCapture) OnItemComplete(relativePath string, op core.SyncOperation) {
	if c.inner != nil {
		c.inner.OnItemComplete(relativePath, op)
	}
}

// withTrailingSeparator appends the platform separator to path if it
// isn't already present. pkg/core's hierarchy builds absolute paths by
// plain string concatenation of a base path and a relative path (see
// BaseDirMapping.LeftBasePath/RightBasePath and pkg/execute's use of
// them), so the base itself must already end in a separator.
func withTrailingSeparator(path string) string {
	if len(path) > 0 && path[len(path)-1] == os.PathSeparator {
		return path
	}
	return path + string(os.PathSeparator)
}
