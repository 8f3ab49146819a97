package compare

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/foldersync/foldersync/pkg/core"
)

func writeFile(t *testing.T, path, content string, modTime time.Time) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("unable to write %q: %v", path, err)
	}
	if err := os.Chtimes(path, modTime, modTime); err != nil {
		t.Fatalf("unable to set mtime on %q: %v", path, err)
	}
}

func findNode(t *testing.T, root *core.BaseDirMapping, relativePath string) core.HierarchyObject {
	t.Helper()
	var found core.HierarchyObject
	root.Walk(func(object core.HierarchyObject, path string) {
		if path == relativePath {
			found = object
		}
	})
	if found == nil {
		t.Fatalf("no node at %q", relativePath)
	}
	return found
}

func TestCompareEqualAndOneSided(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()

	now := time.Unix(1_700_000_000, 0)
	writeFile(t, filepath.Join(left, "same.txt"), "hello", now)
	writeFile(t, filepath.Join(right, "same.txt"), "hello", now)
	writeFile(t, filepath.Join(left, "left-only.txt"), "x", now)
	writeFile(t, filepath.Join(right, "right-only.txt"), "y", now)

	mapping, err := Compare(context.Background(), left, right, Options{CompareVariant: core.CompareVariantByTimeSize})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	if got := findNode(t, mapping, "same.txt").CompareResult(); got != core.CompareResultEqual {
		t.Errorf("same.txt: got %s, want Equal", got)
	}
	if got := findNode(t, mapping, "left-only.txt").CompareResult(); got != core.CompareResultLeftOnly {
		t.Errorf("left-only.txt: got %s, want LeftOnly", got)
	}
	if got := findNode(t, mapping, "right-only.txt").CompareResult(); got != core.CompareResultRightOnly {
		t.Errorf("right-only.txt: got %s, want RightOnly", got)
	}
}

func TestCompareDifferentContentByContent(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()
	now := time.Unix(1_700_000_000, 0)
	writeFile(t, filepath.Join(left, "f.txt"), "hello", now)
	writeFile(t, filepath.Join(right, "f.txt"), "world", now)

	mapping, err := Compare(context.Background(), left, right, Options{CompareVariant: core.CompareVariantByContent})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	if got := findNode(t, mapping, "f.txt").CompareResult(); got != core.CompareResultDifferentContent {
		t.Errorf("got %s, want DifferentContent", got)
	}
}

func TestCompareKindConflict(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()
	now := time.Unix(1_700_000_000, 0)
	if err := os.Mkdir(filepath.Join(left, "entry"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(right, "entry"), "not a dir", now)

	mapping, err := Compare(context.Background(), left, right, Options{CompareVariant: core.CompareVariantByTimeSize})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}
	node := findNode(t, mapping, "entry")
	if node.CompareResult() != core.CompareResultConflict {
		t.Errorf("got %s, want Conflict", node.CompareResult())
	}
	if node.ConflictDescription() == "" {
		t.Error("expected a non-empty conflict description")
	}
}

func TestCompareHardFilterExcludesName(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()
	now := time.Unix(1_700_000_000, 0)
	writeFile(t, filepath.Join(left, "keep.txt"), "a", now)
	writeFile(t, filepath.Join(left, "skip.log"), "b", now)

	mapping, err := Compare(context.Background(), left, right, Options{
		CompareVariant: core.CompareVariantByTimeSize,
		GlobalFilter:   core.FilterConfig{ExcludeGlobs: []string{"*.log"}},
	})
	if err != nil {
		t.Fatalf("Compare failed: %v", err)
	}

	var sawSkip bool
	mapping.Walk(func(_ core.HierarchyObject, path string) {
		if path == "skip.log" {
			sawSkip = true
		}
	})
	if sawSkip {
		t.Error("expected skip.log to be excluded by the hard filter")
	}
}
