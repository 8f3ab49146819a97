//go:build windows

package pathutil

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sys/windows"

	"github.com/foldersync/foldersync/pkg/random"
)

// candidateShortName approximates the legacy 8.3 alias Windows would
// generate for name: uppercase, strip characters short names can't carry,
// keep the first six characters of the base plus "~1", and the first three
// of the extension. It is a heuristic, not the exact NTFS/FAT generation
// algorithm, but it is enough to catch the common collision the spec calls
// out: an unrelated file whose alias happens to match the name the engine
// is about to use.
func candidateShortName(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	base = stripShortNameChars(strings.ToUpper(base))
	ext = stripShortNameChars(strings.ToUpper(strings.TrimPrefix(ext, ".")))
	if len(base) > 6 {
		base = base[:6]
	}
	if len(ext) > 3 {
		ext = ext[:3]
	}
	if ext == "" {
		return base + "~1"
	}
	return base + "~1." + ext
}

func stripShortNameChars(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case ' ', '.', '+', ',', ';', '=', '[', ']':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// shortNameOf returns the actual short-name alias Windows has assigned to
// an existing path, as reported by GetShortPathName.
func shortNameOf(path string) (string, error) {
	pointer, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", err
	}
	buffer := make([]uint16, 64)
	n, err := windows.GetShortPathName(pointer, &buffer[0], uint32(len(buffer)))
	if err != nil {
		return "", err
	}
	if int(n) > len(buffer) {
		buffer = make([]uint16, n)
		if _, err := windows.GetShortPathName(pointer, &buffer[0], uint32(len(buffer))); err != nil {
			return "", err
		}
	}
	return filepath.Base(windows.UTF16ToString(buffer)), nil
}

// findShortNameClash scans dir for an unrelated entry whose short-name
// alias collides with the alias targetBase would be assigned.
func findShortNameClash(dir, targetBase string) (string, error) {
	candidate := candidateShortName(targetBase)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}
	for _, entry := range entries {
		if strings.EqualFold(entry.Name(), targetBase) {
			continue
		}
		full := filepath.Join(dir, entry.Name())
		short, err := shortNameOf(full)
		if err != nil {
			continue
		}
		if strings.EqualFold(short, candidate) {
			return full, nil
		}
	}
	return "", nil
}

// WithShortNameClashAvoided implements spec.md §4.7's 8.3 clash workaround:
// if some unrelated file in target's directory already holds the short
// name that target's long name would be assigned, that file is renamed
// aside for the duration of fn and restored afterward, successful or not.
func WithShortNameClashAvoided(target string, fn func() error) error {
	dir := filepath.Dir(target)
	base := filepath.Base(target)

	clash, err := findShortNameClash(dir, base)
	if err != nil || clash == "" {
		return fn()
	}

	suffix, err := random.New(8)
	if err != nil {
		return errors.Wrap(err, "unable to generate temporary name for short-name clash avoidance")
	}
	aside := filepath.Join(dir, ".ffs_8dot3_"+hex.EncodeToString(suffix))

	if err := os.Rename(clash, aside); err != nil {
		return errors.Wrap(err, "unable to move aside short-name clash")
	}
	restore := func() {
		_ = os.Rename(aside, clash)
	}

	if err := fn(); err != nil {
		restore()
		return err
	}
	restore()
	return nil
}
