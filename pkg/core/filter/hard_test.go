package filter

import (
	"testing"

	"github.com/foldersync/foldersync/pkg/core"
)

// TestHardFilterIncludeExclude tests that the hard filter honors an
// include list combined with an exclude override.
func TestHardFilterIncludeExclude(t *testing.T) {
	f, err := Compile(core.FilterConfig{
		IncludeGlobs: []string{"**/*.txt"},
		ExcludeGlobs: []string{"secret/**"},
	}, core.FilterConfig{})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}

	tests := []struct {
		path     string
		expected bool
	}{
		{"a.txt", true},
		{"subdir/b.txt", true},
		{"a.bin", false},
		{"secret/a.txt", false},
	}
	for _, test := range tests {
		if included := f.Included(test.path); included != test.expected {
			t.Errorf("%s: included does not match expected: %t != %t", test.path, included, test.expected)
		}
	}
}

// TestHardFilterEmptyIncludeMeansAll tests that an empty include list
// means "include everything not excluded".
func TestHardFilterEmptyIncludeMeansAll(t *testing.T) {
	f, err := Compile(core.FilterConfig{}, core.FilterConfig{ExcludeGlobs: []string{"*.tmp"}})
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if !f.Included("a.txt") {
		t.Error("expected a.txt to be included")
	}
	if f.Included("a.tmp") {
		t.Error("expected a.tmp to be excluded")
	}
}

// TestHardFilterInvalidPattern tests that an invalid glob pattern is
// rejected at compile time.
func TestHardFilterInvalidPattern(t *testing.T) {
	if _, err := Compile(core.FilterConfig{IncludeGlobs: []string{""}}, core.FilterConfig{}); err == nil {
		t.Fatal("expected error for empty pattern")
	}
}

// TestSoftFilterWindowIntersection tests that global and per-pair time
// windows intersect rather than override.
func TestSoftFilterWindowIntersection(t *testing.T) {
	soft := NewSoftFilter(
		core.FilterConfig{TimeWindow: core.TimeSpan{From: 100, To: 500}},
		core.FilterConfig{TimeWindow: core.TimeSpan{From: 200, To: 1000}},
	)
	if soft.Active(150, 0) {
		t.Error("expected time 150 to fall outside intersected window [200,500]")
	}
	if !soft.Active(300, 0) {
		t.Error("expected time 300 to fall inside intersected window [200,500]")
	}
	if soft.Active(600, 0) {
		t.Error("expected time 600 to fall outside intersected window [200,500]")
	}
}

// TestSoftFilterSetActive tests that SetActive marks a file inactive only
// when neither present side satisfies the window.
func TestSoftFilterSetActive(t *testing.T) {
	root := core.NewBaseDirMapping("/left/", "/right/", core.FilterConfig{})
	root.AddSubfile("in.txt", core.FileDescriptor{ModificationTime: 300}, core.FileDescriptor{ModificationTime: 300})
	root.AddSubfile("out.txt", core.FileDescriptor{ModificationTime: 900}, core.FileDescriptor{ModificationTime: 900})

	soft := NewSoftFilter(core.FilterConfig{TimeWindow: core.TimeSpan{From: 0, To: 500}}, core.FilterConfig{})
	soft.SetActive(root)

	for _, file := range root.Subfiles {
		switch file.Name() {
		case "in.txt":
			if !file.Active() {
				t.Error("expected in.txt to remain active")
			}
		case "out.txt":
			if file.Active() {
				t.Error("expected out.txt to be marked inactive")
			}
		}
	}
}
