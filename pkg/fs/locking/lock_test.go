package locking

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/foldersync/foldersync/pkg/logging"
)

func testLogger() *logging.Logger {
	return nil
}

// TestAcquireRelease tests that a fresh lock can be acquired and that
// releasing it removes the lock file.
func TestAcquireRelease(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.ffs_lock")

	handle, err := Acquire(path, nil, testLogger())
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected lock file to exist after acquire: %v", err)
	}

	if err := handle.Unlock(); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected lock file to be removed after last release")
	}
}

// TestAcquireReentrantSharing tests that a second Acquire of the same
// path from within the same process shares the existing handle rather
// than blocking or failing, and that the lock file survives until both
// handles are released.
func TestAcquireReentrantSharing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.ffs_lock")

	first, err := Acquire(path, nil, testLogger())
	if err != nil {
		t.Fatalf("first Acquire failed: %v", err)
	}
	second, err := Acquire(path, nil, testLogger())
	if err != nil {
		t.Fatalf("second Acquire failed: %v", err)
	}

	if err := first.Unlock(); err != nil {
		t.Fatalf("first Unlock failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal("expected lock file to survive release of only one of two handles")
	}

	if err := second.Unlock(); err != nil {
		t.Fatalf("second Unlock failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected lock file to be removed after both handles released")
	}
}

// TestAcquireTakeoverOfInvalidRecord tests that a lock file containing a
// too-short (invalid) record is treated as abandoned and taken over
// immediately rather than triggering the full poll/detect-exitus wait.
func TestAcquireTakeoverOfInvalidRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sync.ffs_lock")
	if err := os.WriteFile(path, []byte("short"), 0644); err != nil {
		t.Fatalf("unable to seed invalid lock file: %v", err)
	}

	handle, err := Acquire(path, nil, testLogger())
	if err != nil {
		t.Fatalf("Acquire did not take over invalid lock: %v", err)
	}
	if err := handle.Unlock(); err != nil {
		t.Fatalf("Unlock failed: %v", err)
	}
}
