package core

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// nameKey case-folds name, matching NTFS/FAT's case-insensitive (but
// case-preserving) name comparison. It recomposes to NFC first, the same
// normalization the teacher applies to scanned names on filesystems that
// hand back decomposed Unicode (see pkg/synchronization/core/scan.go's
// recomposeUnicode): without it, the same on-disk name arriving
// decomposed from one side and precomposed from the other would produce
// two different map keys and never pair.
func nameKey(name string) string {
	return strings.ToUpper(norm.NFC.String(name))
}
