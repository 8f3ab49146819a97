//go:build !windows

package pathutil

import (
	"strings"
	"testing"
)

func TestNeedsLongPathPrefixAlwaysFalseOnPOSIX(t *testing.T) {
	long := "/" + strings.Repeat("a", 400)
	if NeedsLongPathPrefix(long, false) || NeedsLongPathPrefix(long, true) {
		t.Fatal("POSIX has no MAX_PATH concept; NeedsLongPathPrefix must always be false")
	}
}

func TestApplyAndRemoveLongPathPrefixIdentityOnPOSIX(t *testing.T) {
	path := "/home/user/file.txt"
	if ApplyLongPathPrefix(path) != path {
		t.Fatal("ApplyLongPathPrefix must be the identity on POSIX")
	}
	if RemoveLongPathPrefix(path) != path {
		t.Fatal("RemoveLongPathPrefix must be the identity on POSIX")
	}
	if EnsureLongPath(path, false) != path {
		t.Fatal("EnsureLongPath must be the identity on POSIX")
	}
}

func TestWithShortNameClashAvoidedRunsFnOnPOSIX(t *testing.T) {
	ran := false
	if err := WithShortNameClashAvoided("/tmp/whatever", func() error {
		ran = true
		return nil
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatal("expected fn to run")
	}
}
