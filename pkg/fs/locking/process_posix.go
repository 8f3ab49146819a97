//go:build !windows

package locking

import (
	"os"
	"syscall"
)

// processRunning reports whether pid identifies a currently running
// process, following the FindProcess-plus-signal-0 pattern used to probe
// process liveness without actually signaling the target.
func processRunning(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return process.Signal(syscall.Signal(0)) == nil
}
