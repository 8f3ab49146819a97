//go:build windows

package pathutil

import (
	"strings"
	"testing"
)

func TestNeedsLongPathPrefixShortPath(t *testing.T) {
	if NeedsLongPathPrefix(`C:\Users\a\b.txt`, false) {
		t.Fatal("short path should not need a long-path prefix")
	}
}

func TestNeedsLongPathPrefixLongPath(t *testing.T) {
	long := `C:\` + strings.Repeat("a", 300)
	if !NeedsLongPathPrefix(long, false) {
		t.Fatal("expected a 300-character path to need a long-path prefix")
	}
}

func TestNeedsLongPathPrefixDirectoryCreateThreshold(t *testing.T) {
	// 255 characters is below MAX_PATH (260) but within 12 of it, so a
	// directory-create call site should already require prefixing while
	// an ordinary call site does not.
	path := `C:\` + strings.Repeat("a", 252)
	if NeedsLongPathPrefix(path, false) {
		t.Fatal("path should not yet need prefixing for an ordinary call site")
	}
	if !NeedsLongPathPrefix(path, true) {
		t.Fatal("path should need prefixing at the CreateDirectoryEx threshold")
	}
}

func TestNeedsLongPathPrefixTrailingDot(t *testing.T) {
	if !NeedsLongPathPrefix(`C:\Users\a\trailing.`, false) {
		t.Fatal("a trailing dot should force a long-path prefix regardless of length")
	}
}

func TestApplyAndRemoveLongPathPrefix(t *testing.T) {
	path := `C:\Users\a\b.txt`
	prefixed := ApplyLongPathPrefix(path)
	if !strings.HasPrefix(prefixed, longPathPrefix) {
		t.Fatalf("expected %q to carry the long-path prefix", prefixed)
	}
	if RemoveLongPathPrefix(prefixed) != path {
		t.Fatalf("round trip mismatch: got %q, want %q", RemoveLongPathPrefix(prefixed), path)
	}
}

func TestApplyLongPathPrefixUNC(t *testing.T) {
	path := `\\server\share\file.txt`
	prefixed := ApplyLongPathPrefix(path)
	if !strings.HasPrefix(prefixed, uncLongPathPrefix) {
		t.Fatalf("expected UNC prefix, got %q", prefixed)
	}
	if RemoveLongPathPrefix(prefixed) != path {
		t.Fatalf("UNC round trip mismatch: got %q, want %q", RemoveLongPathPrefix(prefixed), path)
	}
}
