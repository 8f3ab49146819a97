package syncdb

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/foldersync/foldersync/pkg/core"
)

func uint64ptr(v uint64) *uint64 { return &v }

func TestEntryEncodeDecodeRoundTrip(t *testing.T) {
	entry := Entry{Path: "a/b/c.txt", Kind: entryKindFile, Size: 1234, ModTime: 1_700_000_000, FileID: uint64ptr(99)}
	encoded := entry.encode()
	decoded, consumed, err := decodeEntry(encoded)
	if err != nil {
		t.Fatalf("decodeEntry failed: %v", err)
	}
	if consumed != len(encoded) {
		t.Fatalf("consumed %d bytes, want %d", consumed, len(encoded))
	}
	if decoded.Path != entry.Path || decoded.Kind != entry.Kind || decoded.Size != entry.Size || decoded.ModTime != entry.ModTime {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, entry)
	}
	if decoded.FileID == nil || *decoded.FileID != *entry.FileID {
		t.Fatalf("file id mismatch: got %v, want %v", decoded.FileID, entry.FileID)
	}
}

func TestEntryEncodeDecodeNilFileID(t *testing.T) {
	entry := Entry{Path: "dir", Kind: entryKindDirectory, ModTime: 100}
	decoded, _, err := decodeEntry(entry.encode())
	if err != nil {
		t.Fatalf("decodeEntry failed: %v", err)
	}
	if decoded.FileID != nil {
		t.Fatalf("expected nil file id, got %v", *decoded.FileID)
	}
}

func TestDatabaseSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sync.ffs_db")

	db := New()
	db.Record(Entry{Path: "f.txt", Kind: entryKindFile, Size: 10, ModTime: 1000, FileID: uint64ptr(7)})
	db.Record(Entry{Path: "sub", Kind: entryKindDirectory, ModTime: 2000})

	if err := db.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("Load returned nil database for a freshly written file")
	}

	state, found := loaded.Lookup("f.txt")
	if !found {
		t.Fatal("expected f.txt to be found")
	}
	if state.Size != 10 || state.ModTime != 1000 || state.FileID == nil || *state.FileID != 7 {
		t.Fatalf("got %+v, want size=10 modtime=1000 fileid=7", state)
	}

	if _, found := loaded.Lookup("does-not-exist"); found {
		t.Fatal("expected does-not-exist to be not-found")
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	db, err := Load(filepath.Join(t.TempDir(), "sync.ffs_db"), nil)
	if err != nil {
		t.Fatalf("expected no error for a missing database, got %v", err)
	}
	if db != nil {
		t.Fatal("expected a nil database for a missing file")
	}
}

func TestLoadSchemaMismatchIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sync.ffs_db")
	if err := os.WriteFile(path, []byte{99, 0, 0, 0, 0}, 0644); err != nil {
		t.Fatal(err)
	}

	db, err := Load(path, nil)
	if err != nil {
		t.Fatalf("expected no error for a schema mismatch, got %v", err)
	}
	if db != nil {
		t.Fatal("expected a nil database for a schema mismatch")
	}
}

func TestBuildFromHierarchySkipsMutuallyAbsentNodes(t *testing.T) {
	mapping := core.NewBaseDirMapping("/left/", "/right/", core.FilterConfig{})
	f := mapping.AddSubfile("kept.txt", core.FileDescriptor{Size: 5, ModificationTime: 42}, core.FileDescriptor{Size: 5, ModificationTime: 42})
	_ = f

	gone := mapping.AddSubfileOneSided("gone.txt", core.FileDescriptor{Size: 1}, true)
	gone.RemoveOnSide(core.SyncDirectionLeft)

	db := BuildFromHierarchy(mapping)

	if _, found := db.Lookup("kept.txt"); !found {
		t.Fatal("expected kept.txt to be recorded")
	}
	if _, found := db.Lookup("gone.txt"); found {
		t.Fatal("expected gone.txt (absent on both sides) to be omitted")
	}
}
