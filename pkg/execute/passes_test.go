package execute

import (
	"testing"

	"github.com/foldersync/foldersync/pkg/core"
)

// TestConflictPassSelectsOnlyUnresolvedConflicts tests that conflictPass
// picks out UnresolvedConflict items and leaves every other operation for
// the other three passes.
func TestConflictPassSelectsOnlyUnresolvedConflicts(t *testing.T) {
	items := []item{
		{relativePath: "a.txt", op: core.SyncOperationUnresolvedConflict},
		{relativePath: "b.txt", op: core.SyncOperationCreateRight},
		{relativePath: "c.txt", op: core.SyncOperationDoNothing},
	}

	pass := conflictPass(items)
	if len(pass) != 1 || pass[0].relativePath != "a.txt" {
		t.Fatalf("expected exactly the conflict item a.txt, got %v", pass)
	}
}
