package locking

import (
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/foldersync/foldersync/pkg/logging"
)

// heldLock is the process-wide shared state for one lock-uuid currently
// held by this process: at most one heldLock exists per uuid at a time,
// and every Handle returned by a (possibly repeated) Acquire for that
// uuid references the same heldLock, incrementing its reference count.
type heldLock struct {
	id       uuid.UUID
	path     string
	file     *os.File
	lifeSign *lifeSignEmitter
	refCount int
}

// registry is the per-process map from lock-uuid to its heldLock, letting
// a second Acquire of an already-held lock (by the same path, an
// equivalent path, a symlink, or any alias that resolves to the same
// lock-uuid) share the existing handle instead of deadlocking against
// itself or re-running the acquire protocol.
type registry struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*heldLock
}

var globalRegistry = &registry{locks: make(map[uuid.UUID]*heldLock)}

// acquireLocal registers a newly-opened lock file under its id and
// returns the heldLock, or — if this process already holds that id —
// increments the existing heldLock's reference count and closes the
// redundant file descriptor.
func (r *registry) acquireLocal(id uuid.UUID, path string, file *os.File, logger *logging.Logger, emit bool) *heldLock {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.locks[id]; ok {
		existing.refCount++
		if file != nil {
			_ = file.Close()
		}
		return existing
	}

	held := &heldLock{id: id, path: path, file: file, refCount: 1}
	if emit && file != nil {
		held.lifeSign = startLifeSignEmitter(file, logger)
	}
	r.locks[id] = held
	return held
}

// release decrements the reference count for id and, if it drops to
// zero, stops the life-sign emitter, closes the file, and removes the
// lock from the registry.
func (r *registry) release(id uuid.UUID, logger *logging.Logger) error {
	r.mu.Lock()
	held, ok := r.locks[id]
	if !ok {
		r.mu.Unlock()
		return nil
	}
	held.refCount--
	if held.refCount > 0 {
		r.mu.Unlock()
		return nil
	}
	delete(r.locks, id)
	r.mu.Unlock()

	if held.lifeSign != nil {
		held.lifeSign.stop()
	}
	var closeErr error
	if held.file != nil {
		closeErr = held.file.Close()
	}
	if err := os.Remove(held.path); err != nil && !os.IsNotExist(err) {
		if closeErr == nil {
			closeErr = err
		} else {
			logger.Warnf("unable to remove lock file %q: %s", held.path, err.Error())
		}
	}
	return closeErr
}

// heldByThisProcess reports whether this process already holds id, for
// the Acquire fast path that skips the filesystem protocol entirely.
func (r *registry) heldByThisProcess(id uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.locks[id]
	return ok
}
