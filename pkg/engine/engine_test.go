package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/foldersync/foldersync/pkg/core"
	"github.com/foldersync/foldersync/pkg/foldersync"
)

func TestRunMirrorsLeftOnlyFileToRight(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()
	if err := os.WriteFile(filepath.Join(left, "a.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	config := core.Configuration{DirectionPolicy: core.DirectionPolicyMirror}
	result, err := Run(context.Background(), Options{Left: left, Right: right, Config: config})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(right, "a.txt"))
	if err != nil || string(data) != "hello" {
		t.Fatalf("expected a.txt mirrored to the right, got %q, err %v", data, err)
	}
	if result.Mapping == nil {
		t.Fatal("expected a non-nil mapping in the result")
	}
}

func TestRunAutomaticWritesDatabaseAfterFirstSync(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()
	if err := os.WriteFile(filepath.Join(left, "a.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	config := core.Configuration{DirectionPolicy: core.DirectionPolicyAutomatic}
	if _, err := Run(context.Background(), Options{Left: left, Right: right, Config: config}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(left, foldersync.DatabaseFileName)); err != nil {
		t.Fatalf("expected a database file to be written under the left root: %v", err)
	}
}

func TestRunAutomaticSecondRunIsAQuietNoOp(t *testing.T) {
	left := t.TempDir()
	right := t.TempDir()
	if err := os.WriteFile(filepath.Join(left, "a.txt"), []byte("hello"), 0644); err != nil {
		t.Fatal(err)
	}

	config := core.Configuration{DirectionPolicy: core.DirectionPolicyAutomatic}
	if _, err := Run(context.Background(), Options{Left: left, Right: right, Config: config}); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if _, err := Run(context.Background(), Options{Left: left, Right: right, Config: config}); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(right, "a.txt"))
	if err != nil || string(data) != "hello" {
		t.Fatalf("expected a.txt still present on the right, got %q, err %v", data, err)
	}
}
