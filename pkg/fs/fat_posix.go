//go:build !windows

package fs

import "os"

// fatModTime never applies the DST hack on POSIX: FAT media mounted on a
// POSIX kernel is exposed through the vfat driver's own DST-compensated
// mtime, so no additional decoding is needed at this layer.
func fatModTime(_ string, _ os.FileInfo) (int64, bool) {
	return 0, false
}

// setFATModTime is unused on POSIX for the same reason; SetModificationTime
// always calls os.Chtimes directly there.
func setFATModTime(_ string, _ int64) error {
	return nil
}
