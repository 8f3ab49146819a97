package locking

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/foldersync/foldersync/pkg/foldersync"
	"github.com/foldersync/foldersync/pkg/logging"
)

// pollInterval and detectExitusInterval are the two timing constants
// spec.md §4.3 names directly: a 100 ms poll granularity, and a 30 s
// window of unchanging lock-file size before a holder is declared
// abandoned.
const (
	pollInterval         = 100 * time.Millisecond
	detectExitusInterval = 30 * time.Second
)

// ProgressSink receives a callback on every poll iteration so a caller
// can report wait status and, if it wishes, cancel the acquire by
// returning a non-nil error.
type ProgressSink interface {
	OnWait(lockPath string) error
}

// Handle is a reference to a held lock. Calling Unlock decrements the
// lock's process-wide reference count; the underlying lock file is
// removed only when the last Handle anywhere in the process is released.
type Handle struct {
	id       uuid.UUID
	path     string
	logger   *logging.Logger
	released bool
}

// Unlock releases this handle's reference to the lock. It is safe to
// call at most once per Handle; calling it again is a no-op.
func (h *Handle) Unlock() error {
	if h.released {
		return nil
	}
	h.released = true
	return globalRegistry.release(h.id, h.logger)
}

// Acquire implements the full protocol of spec.md §4.3: atomic create,
// fast local-process sharing, crash-tolerant polling with life-sign
// observation, and takeover of an abandoned lock.
func Acquire(path string, progress ProgressSink, logger *logging.Logger) (*Handle, error) {
	hostname, err := localHostname()
	if err != nil {
		return nil, err
	}

	for {
		file, rec, err := createExclusive(path, hostname)
		if err == nil {
			held := globalRegistry.acquireLocal(rec.id, path, file, logger, true)
			return &Handle{id: held.id, path: path, logger: logger}, nil
		}
		if !os.IsExist(err) {
			return nil, errors.Wrap(err, "unable to create lock file")
		}

		existing, readErr := readRecord(path)
		if readErr != nil {
			// Invalid or short record: treat as abandoned and take over
			// immediately, per spec.md §4.3 step 2.
			if err := takeover(path, hostname, logger); err != nil {
				return nil, err
			}
			continue
		}

		if globalRegistry.heldByThisProcess(existing.id) {
			held := globalRegistry.acquireLocal(existing.id, path, nil, logger, false)
			return &Handle{id: held.id, path: path, logger: logger}, nil
		}

		acquired, err := pollUntilAcquirableOrAbandoned(path, existing, hostname, progress, logger)
		if err != nil {
			return nil, err
		}
		if acquired != nil {
			return acquired, nil
		}
		// Abandoned: attempt takeover and retry from the top.
		if err := takeover(path, hostname, logger); err != nil {
			return nil, err
		}
	}
}

// createExclusive performs the O_CREATE|O_EXCL acquire and writes the
// fresh record, returning both the open file (kept open for the life-sign
// emitter) and the record written.
func createExclusive(path, hostname string) (*os.File, record, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_RDWR, 0644)
	if err != nil {
		return nil, record{}, err
	}
	rec, err := newRecord(hostname, os.Getpid())
	if err != nil {
		file.Close()
		os.Remove(path)
		return nil, record{}, err
	}
	if _, err := file.Write(rec.encode()); err != nil {
		file.Close()
		os.Remove(path)
		return nil, record{}, errors.Wrap(err, "unable to write lock record")
	}
	return file, rec, nil
}

func readRecord(path string) (record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return record{}, err
	}
	return decodeRecord(data)
}

// pollUntilAcquirableOrAbandoned polls path every pollInterval, reporting
// to progress each time. It returns a non-nil Handle if a concurrent
// process released the lock and this process won a subsequent acquire
// race; nil with a nil error if the lock appears abandoned (caller should
// attempt takeover), which is decided at once when the holder is on this
// host with a pid that is no longer running (step 4) and otherwise after
// the lock file's size has stayed constant for detectExitusInterval; or
// an error if progress requests cancellation.
func pollUntilAcquirableOrAbandoned(path string, initial record, hostname string, progress ProgressSink, logger *logging.Logger) (*Handle, error) {
	if initial.hostname == hostname && !processRunning(initial.pid) {
		return nil, nil
	}

	lastSize, sizeChangedAt := statSize(path), time.Now()
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for range ticker.C {
		if progress != nil {
			if err := progress.OnWait(path); err != nil {
				return nil, err
			}
		}

		file, rec, err := createExclusive(path, hostname)
		if err == nil {
			held := globalRegistry.acquireLocal(rec.id, path, file, logger, true)
			return &Handle{id: held.id, path: path, logger: logger}, nil
		}
		if !os.IsExist(err) {
			return nil, errors.Wrap(err, "unable to create lock file")
		}

		current := statSize(path)
		if current != lastSize {
			lastSize = current
			sizeChangedAt = time.Now()
			continue
		}
		if time.Since(sizeChangedAt) >= detectExitusInterval {
			return nil, nil
		}
	}
	return nil, errors.New("poll loop terminated unexpectedly")
}

func statSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return -1
	}
	return info.Size()
}

// takeover implements spec.md §4.3 step 6: acquire a temporary lock under
// a sibling "Del.<basename>" name, re-check the primary lock hasn't
// changed hands or grown since it was judged abandoned, and only then
// delete it.
func takeover(path, hostname string, logger *logging.Logger) error {
	before, beforeErr := readRecord(path)
	if os.IsNotExist(beforeErr) {
		// Already gone; nothing to take over.
		return nil
	}
	beforeSize := statSize(path)

	sibling := filepath.Join(filepath.Dir(path), foldersync.LockTakeoverPrefix+filepath.Base(path))
	tempFile, _, err := createExclusive(sibling, hostname)
	if err != nil {
		if os.IsExist(err) {
			// Another process is already attempting takeover; let it
			// proceed and have our caller re-poll.
			return nil
		}
		return errors.Wrap(err, "unable to acquire takeover lock")
	}
	defer func() {
		tempFile.Close()
		os.Remove(sibling)
	}()

	after, afterErr := readRecord(path)
	if (beforeErr == nil) != (afterErr == nil) || (beforeErr == nil && after.id != before.id) {
		// The primary lock changed between the two reads (it vanished,
		// its record became valid or invalid, or someone else won the
		// race and re-acquired it first).
		return nil
	}
	if statSize(path) != beforeSize {
		// Belated life-sign arrived; not actually abandoned.
		return nil
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to remove abandoned lock file")
	}
	return nil
}
