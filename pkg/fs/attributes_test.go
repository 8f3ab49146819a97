package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestExists tests Exists for present and absent paths.
func TestExists(t *testing.T) {
	dir := t.TempDir()
	present := filepath.Join(dir, "present.txt")
	if err := os.WriteFile(present, []byte("x"), 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}
	if !Exists(present) {
		t.Error("expected present.txt to exist")
	}
	if Exists(filepath.Join(dir, "absent.txt")) {
		t.Error("expected absent.txt not to exist")
	}
}

// TestReadAttributes tests that ReadAttributes reports size and kind
// correctly for a regular file.
func TestReadAttributes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	attributes, err := ReadAttributes(path)
	if err != nil {
		t.Fatalf("ReadAttributes failed: %v", err)
	}
	if attributes.IsDir {
		t.Error("expected IsDir to be false for a regular file")
	}
	if attributes.Size != 5 {
		t.Errorf("expected size 5, got %d", attributes.Size)
	}
}

// TestSetModificationTime tests that SetModificationTime updates the
// reported mtime and round-trips through ReadAttributes.
func TestSetModificationTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("hello"), 0644); err != nil {
		t.Fatalf("unable to write file: %v", err)
	}

	target := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC).Unix()
	if err := SetModificationTime(path, target); err != nil {
		t.Fatalf("SetModificationTime failed: %v", err)
	}

	attributes, err := ReadAttributes(path)
	if err != nil {
		t.Fatalf("ReadAttributes failed: %v", err)
	}
	if attributes.ModTime != target {
		t.Errorf("modification time not set correctly: %d != %d", attributes.ModTime, target)
	}
}

// TestReadAttributesNotFound tests that ReadAttributes reports
// CodeNotFound for a missing path.
func TestReadAttributesNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadAttributes(filepath.Join(dir, "missing.txt"))
	if !IsCode(err, CodeNotFound) {
		t.Fatalf("expected CodeNotFound, got %v", err)
	}
}
