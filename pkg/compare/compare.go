package compare

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/foldersync/foldersync/pkg/core"
	"github.com/foldersync/foldersync/pkg/core/filter"
	"github.com/foldersync/foldersync/pkg/fs/locking"
	"github.com/foldersync/foldersync/pkg/foldersync"
	"github.com/foldersync/foldersync/pkg/logging"
)

// Options configures a single Compare call for one folder pair.
type Options struct {
	CompareVariant core.CompareVariant
	SymlinkPolicy  core.SymlinkPolicy
	GlobalFilter   core.FilterConfig
	PairFilter     core.FilterConfig
	// Lock controls whether Compare acquires the per-root directory locks
	// itself (spec.md §4.4 step 1). pkg/engine sets this to true for a
	// standalone run; it is false in tests and wherever a caller already
	// holds the locks across several comparisons.
	Lock     bool
	Progress ProgressSink
	Logger   *logging.Logger
}

// Compare implements spec.md §4.4 end to end for one folder pair: lock,
// traverse both sides, merge and categorize, then apply the soft filter.
func Compare(ctx context.Context, leftBase, rightBase string, options Options) (*core.BaseDirMapping, error) {
	hardFilter, err := filter.Compile(options.GlobalFilter, options.PairFilter)
	if err != nil {
		return nil, errors.Wrap(err, "unable to compile hard filter")
	}

	mapping := core.NewBaseDirMapping(leftBase, rightBase, options.PairFilter)

	if options.Lock {
		leftLock, err := locking.Acquire(filepath.Join(leftBase, foldersync.LockFileName), nil, options.Logger)
		if err != nil {
			return nil, errors.Wrap(err, "unable to lock left root")
		}
		mapping.LeftLock = leftLock
		rightLock, err := locking.Acquire(filepath.Join(rightBase, foldersync.LockFileName), nil, options.Logger)
		if err != nil {
			_ = leftLock.Unlock()
			return nil, errors.Wrap(err, "unable to lock right root")
		}
		mapping.RightLock = rightLock
	}

	leftContainer, rightContainer, err := scanBothSides(ctx, leftBase, rightBase, hardFilter, options.SymlinkPolicy, options.Progress, options.Logger)
	if err != nil {
		if options.Lock {
			_ = mapping.ReleaseLocks()
		}
		return nil, err
	}

	m := &merger{variant: options.CompareVariant, leftRoot: leftBase, rightRoot: rightBase, progress: options.Progress}
	m.mergeInto(&mapping.DirMapping, leftContainer, rightContainer, "")

	soft := filter.NewSoftFilter(options.GlobalFilter, options.PairFilter)
	soft.SetActive(mapping)

	return mapping, nil
}

// scanBothSides traverses left and right concurrently, per spec.md §4.4
// step 2.
func scanBothSides(ctx context.Context, leftBase, rightBase string, hardFilter *filter.HardFilter, symlinkPolicy core.SymlinkPolicy, progress ProgressSink, logger *logging.Logger) (*core.DirContainer, *core.DirContainer, error) {
	var (
		wg                            sync.WaitGroup
		leftContainer, rightContainer *core.DirContainer
		leftErr, rightErr             error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		s := newScanner(ctx, "left", hardFilter, symlinkPolicy, progress, logger)
		leftContainer, leftErr = s.scanDir(leftBase, "")
	}()
	go func() {
		defer wg.Done()
		s := newScanner(ctx, "right", hardFilter, symlinkPolicy, progress, logger)
		rightContainer, rightErr = s.scanDir(rightBase, "")
	}()
	wg.Wait()

	if leftErr != nil {
		return nil, nil, errors.Wrap(leftErr, "unable to scan left root")
	}
	if rightErr != nil {
		return nil, nil, errors.Wrap(rightErr, "unable to scan right root")
	}
	return leftContainer, rightContainer, nil
}
