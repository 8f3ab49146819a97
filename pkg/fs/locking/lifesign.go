package locking

import (
	"os"
	"sync"
	"time"

	"github.com/foldersync/foldersync/pkg/logging"
	"github.com/foldersync/foldersync/pkg/must"
)

// lifeSignInterval is how often the emitter appends its single byte;
// spec.md §4.3 specifies "one byte per ≈5 s".
const lifeSignInterval = 5 * time.Second

// lifeSignEmitter is the cooperative background task — one per held
// lock — that keeps a lock file growing so that waiters can distinguish
// a live holder from an abandoned one by watching its size.
type lifeSignEmitter struct {
	stopOnce sync.Once
	stopCh   chan struct{}
	done     chan struct{}
}

// startLifeSignEmitter begins appending to file every lifeSignInterval
// until stopped. Failure to write is ignored: per spec.md §4.3, a
// network drop just means waiters will (correctly) conclude the lock is
// abandoned, and the holder will fail naturally on its own next
// filesystem operation.
func startLifeSignEmitter(file *os.File, logger *logging.Logger) *lifeSignEmitter {
	emitter := &lifeSignEmitter{stopCh: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(emitter.done)
		ticker := time.NewTicker(lifeSignInterval)
		defer ticker.Stop()
		for {
			select {
			case <-emitter.stopCh:
				return
			case <-ticker.C:
				must.WriteString(file, "x", logger)
			}
		}
	}()
	return emitter
}

// stop signals the emitter's goroutine to exit and waits for it to do so,
// guaranteeing the emitter's lifetime never outlives the lock it serves.
func (e *lifeSignEmitter) stop() {
	e.stopOnce.Do(func() { close(e.stopCh) })
	<-e.done
}
