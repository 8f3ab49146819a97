package compare

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/foldersync/foldersync/pkg/core"
)

// TestCompareRemovesStrayStagingFile tests that a leftover .ffs_tmp file
// from a crashed run is deleted during scan and never appears as a node
// in the resulting mapping.
func TestCompareRemovesStrayStagingFile(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()

	stray := filepath.Join(left, "upload.dat.ffs_tmp")
	if err := os.WriteFile(stray, []byte("partial"), 0644); err != nil {
		t.Fatalf("unable to write stray staging file: %v", err)
	}

	mapping, err := Compare(context.Background(), left+string(os.PathSeparator), right+string(os.PathSeparator), Options{})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if _, err := os.Stat(stray); !os.IsNotExist(err) {
		t.Fatalf("expected the stray staging file to be removed, stat returned: %v", err)
	}

	var names []string
	mapping.Walk(func(object core.HierarchyObject, relativePath string) {
		names = append(names, relativePath)
	})
	if len(names) != 0 {
		t.Fatalf("expected no nodes in the mapping, got %v", names)
	}
}
