// Package must provides best-effort wrappers for cleanup operations whose
// errors can't sensibly propagate (e.g. a Close call in a defer after the
// operation it guards has already failed) but shouldn't be silently
// swallowed either. Each wrapper logs a warning on failure.
package must

import (
	"fmt"
	"io"
	"os"

	"github.com/foldersync/foldersync/pkg/logging"
)

// Fprint writes to w, logging a warning if the write fails or is short.
func Fprint(w io.Writer, logger *logging.Logger, a ...any) {
	s := fmt.Sprint(a...)
	n, err := fmt.Fprint(w, s)
	if err != nil {
		logger.Warnf("unable to write '%s': %s", s, err.Error())
	} else if n < len(s) {
		logger.Warnf("unable to write all of '%s'; wrote only %d of %d bytes", s, n, len(s))
	}
}

// Close closes c, logging a warning if the close fails.
func Close(c io.Closer, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("unable to close: %s", err.Error())
	}
}

// WriteString writes s via ws, logging a warning if the write fails or is
// short. Used by the directory lock's life-sign emitter to append bytes.
func WriteString(ws interface {
	WriteString(string) (int, error)
}, s string, logger *logging.Logger) {
	n, err := ws.WriteString(s)
	if err != nil {
		logger.Warnf("unable to write string '%s': %s", s, err.Error())
	} else if n < len(s) {
		logger.Warnf("unable to write all of string '%s'; wrote only %d of %d bytes", s, n, len(s))
	}
}

// OSRemove removes name, logging a warning if the removal fails. Used by
// scope guards that must tolerate cleanup failure on a path already in an
// indeterminate state.
func OSRemove(name string, logger *logging.Logger) {
	if err := os.Remove(name); err != nil && !os.IsNotExist(err) {
		logger.Warnf("unable to remove '%s': %s", name, err.Error())
	}
}

// Unlock releases locker, logging a warning if release fails.
func Unlock(locker interface{ Unlock() error }, logger *logging.Logger) {
	if err := locker.Unlock(); err != nil {
		logger.Warnf("unable to unlock: %s", err.Error())
	}
}
