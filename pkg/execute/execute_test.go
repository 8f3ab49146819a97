package execute

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/foldersync/foldersync/pkg/core"
)

type fakeErrorSink struct {
	calls []string
}

func (f *fakeErrorSink) OnError(relativePath string, err error, retriable bool) ErrorDecision {
	f.calls = append(f.calls, relativePath)
	return ErrorDecisionIgnore
}

type fakeProgressSink struct {
	stats     Statistics
	completed []string
}

func (f *fakeProgressSink) OnStatistics(stats Statistics) { f.stats = stats }
func (f *fakeProgressSink) OnItemComplete(relativePath string, op core.SyncOperation) {
	f.completed = append(f.completed, relativePath)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestExecuteCreatesFileOnRight(t *testing.T) {
	leftRoot := t.TempDir()
	rightRoot := t.TempDir()
	writeFile(t, filepath.Join(leftRoot, "a.txt"), "hello")

	mapping := core.NewBaseDirMapping(leftRoot+string(os.PathSeparator), rightRoot+string(os.PathSeparator), core.FilterConfig{})
	info, err := os.Stat(filepath.Join(leftRoot, "a.txt"))
	if err != nil {
		t.Fatal(err)
	}
	file := mapping.AddSubfileOneSided("a.txt", core.FileDescriptor{Size: uint64(info.Size()), ModificationTime: info.ModTime().Unix()}, true)
	file.SetSyncDirection(core.SyncDirectionRight)

	progress := &fakeProgressSink{}
	err = Execute(context.Background(), mapping, Options{Progress: progress}, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(rightRoot, "a.txt"))
	if err != nil {
		t.Fatalf("expected a.txt to be created on the right: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("got content %q, want %q", data, "hello")
	}
	if progress.stats.ItemsToRight != 1 {
		t.Fatalf("expected 1 item to right in stats, got %+v", progress.stats)
	}
}

func TestExecuteDeletesLeftOnlyAfterChildren(t *testing.T) {
	leftRoot := t.TempDir()
	rightRoot := t.TempDir()
	if err := os.MkdirAll(filepath.Join(leftRoot, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(leftRoot, "sub", "child.txt"), "x")

	mapping := core.NewBaseDirMapping(leftRoot+string(os.PathSeparator), rightRoot+string(os.PathSeparator), core.FilterConfig{})
	sub := mapping.AddSubdir("sub", true, false)
	sub.SetCompareResult(core.CompareResultLeftOnly)
	sub.SetSyncDirection(core.SyncDirectionLeft)
	child := sub.AddSubfileOneSided("child.txt", core.FileDescriptor{Size: 1}, true)
	child.SetSyncDirection(core.SyncDirectionLeft)

	err := Execute(context.Background(), mapping, Options{Config: core.Configuration{DeletionPolicy: core.DeletionPolicy{Kind: core.DeletionPolicyPermanent}}}, time.Unix(0, 0))
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(leftRoot, "sub")); !os.IsNotExist(err) {
		t.Fatalf("expected sub to be removed from the left, stat error: %v", err)
	}
}

func TestExecuteOverwriteAppliesVersioningPolicy(t *testing.T) {
	leftRoot := t.TempDir()
	rightRoot := t.TempDir()
	versioningRoot := t.TempDir()
	writeFile(t, filepath.Join(leftRoot, "f.txt"), "new")
	writeFile(t, filepath.Join(rightRoot, "f.txt"), "old")

	mapping := core.NewBaseDirMapping(leftRoot+string(os.PathSeparator), rightRoot+string(os.PathSeparator), core.FilterConfig{})
	leftInfo, _ := os.Stat(filepath.Join(leftRoot, "f.txt"))
	rightInfo, _ := os.Stat(filepath.Join(rightRoot, "f.txt"))
	file := mapping.AddSubfile("f.txt",
		core.FileDescriptor{Size: uint64(leftInfo.Size()), ModificationTime: leftInfo.ModTime().Unix()},
		core.FileDescriptor{Size: uint64(rightInfo.Size()), ModificationTime: rightInfo.ModTime().Unix()},
	)
	file.SetCompareResult(core.CompareResultDifferentContent)
	file.SetSyncDirection(core.SyncDirectionRight)

	config := core.Configuration{
		DeletionPolicy: core.DeletionPolicy{
			Kind:        core.DeletionPolicyVersioning,
			Path:        versioningRoot,
			NamingStyle: core.VersioningNamingStyleReplace,
		},
	}
	if err := Execute(context.Background(), mapping, Options{Config: config}, time.Unix(0, 0)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(rightRoot, "f.txt"))
	if err != nil || string(data) != "new" {
		t.Fatalf("expected f.txt on the right to now read 'new', got %q, err %v", data, err)
	}
	versioned, err := os.ReadFile(filepath.Join(versioningRoot, "f.txt"))
	if err != nil || string(versioned) != "old" {
		t.Fatalf("expected the old version preserved under the versioning dir, got %q, err %v", versioned, err)
	}
}

func TestExecuteIgnoreDecisionSuppressesPersistentError(t *testing.T) {
	leftRoot := t.TempDir()
	rightRoot := t.TempDir()
	// No file created on the left, so the copy will fail with NotFound.
	mapping := core.NewBaseDirMapping(leftRoot+string(os.PathSeparator), rightRoot+string(os.PathSeparator), core.FilterConfig{})
	file := mapping.AddSubfileOneSided("missing.txt", core.FileDescriptor{Size: 1}, true)
	file.SetSyncDirection(core.SyncDirectionRight)

	sink := &fakeErrorSink{}
	config := core.Configuration{RetryCount: 2, RetryDelayMillis: 0}
	if err := Execute(context.Background(), mapping, Options{Config: config, Errors: sink}, time.Unix(0, 0)); err != nil {
		t.Fatalf("expected Ignore to suppress the error, got %v", err)
	}
	if len(sink.calls) == 0 {
		t.Fatal("expected at least one OnError call")
	}
}

func TestExecuteReportsUnresolvedConflictWithoutApplying(t *testing.T) {
	leftRoot := t.TempDir()
	rightRoot := t.TempDir()
	mapping := core.NewBaseDirMapping(leftRoot+string(os.PathSeparator), rightRoot+string(os.PathSeparator), core.FilterConfig{})
	file := mapping.AddSubfile("f.txt", core.FileDescriptor{Size: 1}, core.FileDescriptor{Size: 2})
	file.SetCompareResult(core.CompareResultConflict)
	file.SetSyncDirection(core.SyncDirectionConflict)
	file.SetConflictDescription("both sides changed since last sync")

	sink := &fakeErrorSink{}
	if err := Execute(context.Background(), mapping, Options{Errors: sink}, time.Unix(0, 0)); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(sink.calls) != 1 || sink.calls[0] != "f.txt" {
		t.Fatalf("expected a single OnError call for f.txt, got %v", sink.calls)
	}
}
