package resolve

import (
	"testing"

	"github.com/foldersync/foldersync/pkg/core"
)

func newPairing() *core.BaseDirMapping {
	return core.NewBaseDirMapping("/left/", "/right/", core.FilterConfig{})
}

func TestOperationRespectsActiveFlag(t *testing.T) {
	if got := Operation(core.CompareResultLeftOnly, core.SyncDirectionRight, false); got != core.SyncOperationDoNothing {
		t.Fatalf("got %s, want DoNothing for an inactive node", got)
	}
}

func TestOperationMapping(t *testing.T) {
	cases := []struct {
		result    core.CompareResult
		direction core.SyncDirection
		want      core.SyncOperation
	}{
		{core.CompareResultEqual, core.SyncDirectionNone, core.SyncOperationEqual},
		{core.CompareResultLeftOnly, core.SyncDirectionRight, core.SyncOperationCreateRight},
		{core.CompareResultLeftOnly, core.SyncDirectionNone, core.SyncOperationDoNothing},
		{core.CompareResultRightOnly, core.SyncDirectionRight, core.SyncOperationDeleteRight},
		{core.CompareResultRightOnly, core.SyncDirectionLeft, core.SyncOperationCreateLeft},
		{core.CompareResultLeftNewer, core.SyncDirectionRight, core.SyncOperationOverwriteRight},
		{core.CompareResultDifferentMetadataOnly, core.SyncDirectionRight, core.SyncOperationCopyMetadataToRight},
		{core.CompareResultConflict, core.SyncDirectionNone, core.SyncOperationUnresolvedConflict},
		{core.CompareResultConflict, core.SyncDirectionRight, core.SyncOperationOverwriteRight},
	}
	for _, c := range cases {
		if got := Operation(c.result, c.direction, true); got != c.want {
			t.Errorf("Operation(%s, %s, true): got %s, want %s", c.result, c.direction, got, c.want)
		}
	}
}

func TestResolveMirrorDeletesRightOnly(t *testing.T) {
	mapping := newPairing()
	mapping.AddSubfileOneSided("extra.txt", core.FileDescriptor{Size: 1}, false)

	Resolve(mapping, Options{Policy: core.DirectionPolicyMirror})

	f := mapping.Subfiles[0]
	if f.SyncDirection() != core.SyncDirectionRight {
		t.Fatalf("got direction %s, want Right", f.SyncDirection())
	}
	if op := Operation(f.CompareResult(), f.SyncDirection(), true); op != core.SyncOperationDeleteRight {
		t.Fatalf("got operation %s, want DeleteRight", op)
	}
}

func TestResolveUpdateIgnoresRightNewer(t *testing.T) {
	mapping := newPairing()
	f := mapping.AddSubfile("f.txt", core.FileDescriptor{Size: 1, ModificationTime: 100}, core.FileDescriptor{Size: 1, ModificationTime: 200})
	f.SetCompareResult(core.CompareResultRightNewer)

	Resolve(mapping, Options{Policy: core.DirectionPolicyUpdate})

	if f.SyncDirection() != core.SyncDirectionNone {
		t.Fatalf("got direction %s, want None", f.SyncDirection())
	}
}

func TestResolveCustomAppliesPerCategoryDirection(t *testing.T) {
	mapping := newPairing()
	f := mapping.AddSubfileOneSided("left.txt", core.FileDescriptor{Size: 1}, true)

	Resolve(mapping, Options{
		Policy:           core.DirectionPolicyCustom,
		CustomDirections: core.DirectionSet{LeftOnly: core.SyncDirectionNone},
	})

	if f.SyncDirection() != core.SyncDirectionNone {
		t.Fatalf("got direction %s, want None (custom configured LeftOnly -> None)", f.SyncDirection())
	}
}

func TestResolveRecursiveOneSidedInvariant(t *testing.T) {
	mapping := newPairing()
	sub := mapping.AddSubdir("onlyleft", true, false)
	nested := sub.AddSubdir("nested", true, false)
	nested.AddSubfileOneSided("a.txt", core.FileDescriptor{Size: 1}, true)

	Resolve(mapping, Options{Policy: core.DirectionPolicyMirror})

	if sub.SyncDirection() != core.SyncDirectionRight {
		t.Fatalf("got sub direction %s, want Right", sub.SyncDirection())
	}
	if nested.SyncDirection() != sub.SyncDirection() {
		t.Fatalf("nested directory direction %s does not match parent %s", nested.SyncDirection(), sub.SyncDirection())
	}
	if nested.Subfiles[0].SyncDirection() != sub.SyncDirection() {
		t.Fatalf("leaf direction %s does not match parent directory direction %s", nested.Subfiles[0].SyncDirection(), sub.SyncDirection())
	}
}

type fakeHistory map[string]PreviousState

func (h fakeHistory) Lookup(relativePath string) (PreviousState, bool) {
	state, ok := h[relativePath]
	return state, ok
}

func TestResolveAutomaticPropagatesOneSidedChange(t *testing.T) {
	mapping := newPairing()
	f := mapping.AddSubfile("f.txt", core.FileDescriptor{Size: 2, ModificationTime: 200}, core.FileDescriptor{Size: 1, ModificationTime: 100})
	f.SetCompareResult(core.CompareResultLeftNewer)

	history := fakeHistory{
		"f.txt": {ModTime: 100, Size: 1},
	}

	Resolve(mapping, Options{Policy: core.DirectionPolicyAutomatic, History: history})

	if f.SyncDirection() != core.SyncDirectionRight {
		t.Fatalf("got direction %s, want Right (only left changed since last sync)", f.SyncDirection())
	}
}

func TestResolveAutomaticConflictsOnBothSidesChanged(t *testing.T) {
	mapping := newPairing()
	f := mapping.AddSubfile("f.txt", core.FileDescriptor{Size: 2, ModificationTime: 200}, core.FileDescriptor{Size: 3, ModificationTime: 300})
	f.SetCompareResult(core.CompareResultDifferentContent)

	history := fakeHistory{
		"f.txt": {ModTime: 100, Size: 1},
	}

	Resolve(mapping, Options{Policy: core.DirectionPolicyAutomatic, History: history})

	if f.CompareResult() != core.CompareResultConflict {
		t.Fatalf("got compare result %s, want Conflict", f.CompareResult())
	}
	if f.ConflictDescription() == "" {
		t.Fatal("expected a non-empty conflict description")
	}
	if op := Operation(f.CompareResult(), f.SyncDirection(), true); op != core.SyncOperationUnresolvedConflict {
		t.Fatalf("got operation %s, want UnresolvedConflict", op)
	}
}

func TestResolveAutomaticFallsBackToMirrorWithoutHistory(t *testing.T) {
	mapping := newPairing()
	f := mapping.AddSubfileOneSided("new.txt", core.FileDescriptor{Size: 1}, true)

	Resolve(mapping, Options{Policy: core.DirectionPolicyAutomatic, History: nil})

	if f.SyncDirection() != core.SyncDirectionRight {
		t.Fatalf("got direction %s, want Right (no-database fallback mirrors left to right)", f.SyncDirection())
	}
}

func TestResolveAutomaticNoOpWhenBothSidesUnchanged(t *testing.T) {
	mapping := newPairing()
	f := mapping.AddSubfile("f.txt", core.FileDescriptor{Size: 1, ModificationTime: 100}, core.FileDescriptor{Size: 1, ModificationTime: 100})

	history := fakeHistory{
		"f.txt": {ModTime: 100, Size: 1},
	}

	Resolve(mapping, Options{Policy: core.DirectionPolicyAutomatic, History: history})

	if f.SyncDirection() != core.SyncDirectionNone {
		t.Fatalf("got direction %s, want None", f.SyncDirection())
	}
}
