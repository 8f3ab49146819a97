package compare

import (
	"bytes"
	"testing"

	"github.com/foldersync/foldersync/pkg/core"
)

func TestCategorizeByTimeSizeEqual(t *testing.T) {
	left := core.FileDescriptor{Size: 10, ModificationTime: 1000}
	right := core.FileDescriptor{Size: 10, ModificationTime: 1001}
	if got := categorizeByTimeSize(left, right); got != core.CompareResultEqual {
		t.Fatalf("got %s, want Equal", got)
	}
}

func TestCategorizeByTimeSizeNewer(t *testing.T) {
	left := core.FileDescriptor{Size: 10, ModificationTime: 2000}
	right := core.FileDescriptor{Size: 10, ModificationTime: 1000}
	if got := categorizeByTimeSize(left, right); got != core.CompareResultLeftNewer {
		t.Fatalf("got %s, want LeftNewer", got)
	}
}

func TestCategorizeByTimeSizeDSTDowngrade(t *testing.T) {
	left := core.FileDescriptor{Size: 10, ModificationTime: 1000}
	right := core.FileDescriptor{Size: 10, ModificationTime: 1000 + 3600}
	if got := categorizeByTimeSize(left, right); got != core.CompareResultEqual {
		t.Fatalf("got %s, want Equal (DST hack)", got)
	}
}

func TestCategorizeByTimeSizeDifferentContent(t *testing.T) {
	left := core.FileDescriptor{Size: 10, ModificationTime: 1000}
	right := core.FileDescriptor{Size: 20, ModificationTime: 1000}
	if got := categorizeByTimeSize(left, right); got != core.CompareResultDifferentContent {
		t.Fatalf("got %s, want DifferentContent", got)
	}
}

type memReader struct {
	*bytes.Reader
}

func (memReader) Close() error { return nil }

type memByteReaders struct {
	left, right []byte
}

func (m *memByteReaders) openLeft() (closableReader, error) {
	return memReader{bytes.NewReader(m.left)}, nil
}

func (m *memByteReaders) openRight() (closableReader, error) {
	return memReader{bytes.NewReader(m.right)}, nil
}

func TestCategorizeByContentEqual(t *testing.T) {
	readers := &memByteReaders{left: []byte("hello world"), right: []byte("hello world")}
	got := categorizeByContent(11, 11, readers, "f", nil)
	if got != core.CompareResultEqual {
		t.Fatalf("got %s, want Equal", got)
	}
}

func TestCategorizeByContentMismatch(t *testing.T) {
	readers := &memByteReaders{left: []byte("hello world"), right: []byte("hellO world")}
	got := categorizeByContent(11, 11, readers, "f", nil)
	if got != core.CompareResultDifferentContent {
		t.Fatalf("got %s, want DifferentContent", got)
	}
}

func TestCategorizeByContentSizeMismatchSkipsRead(t *testing.T) {
	got := categorizeByContent(5, 6, &memByteReaders{}, "f", nil)
	if got != core.CompareResultDifferentContent {
		t.Fatalf("got %s, want DifferentContent", got)
	}
}

func TestCategorizeByContentEmptyBoth(t *testing.T) {
	got := categorizeByContent(0, 0, &memByteReaders{}, "f", nil)
	if got != core.CompareResultEqual {
		t.Fatalf("got %s, want Equal", got)
	}
}

func TestCategorizeSymlinksEqual(t *testing.T) {
	left := core.SymlinkDescriptor{Target: "a", Kind: core.SymbolicLinkKindFile, ModificationTime: 1000}
	right := core.SymlinkDescriptor{Target: "a", Kind: core.SymbolicLinkKindFile, ModificationTime: 1000}
	if got := categorizeSymlinks(left, right); got != core.CompareResultEqual {
		t.Fatalf("got %s, want Equal", got)
	}
}

func TestCategorizeSymlinksDifferentTarget(t *testing.T) {
	left := core.SymlinkDescriptor{Target: "a", Kind: core.SymbolicLinkKindFile}
	right := core.SymlinkDescriptor{Target: "b", Kind: core.SymbolicLinkKindFile}
	if got := categorizeSymlinks(left, right); got != core.CompareResultDifferentContent {
		t.Fatalf("got %s, want DifferentContent", got)
	}
}

func TestDowngradeDirResult(t *testing.T) {
	if got := downgradeDirResult(1000, 1001); got != core.CompareResultEqual {
		t.Fatalf("got %s, want Equal within tolerance", got)
	}
	if got := downgradeDirResult(1000, 50000); got != core.CompareResultDifferentMetadataOnly {
		t.Fatalf("got %s, want DifferentMetadataOnly", got)
	}
}
