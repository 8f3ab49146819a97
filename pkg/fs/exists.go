package fs

import "os"

// Exists reports whether path refers to an existing filesystem entry,
// without following a trailing symbolic link (mirroring the traversal
// layer, which must detect a symlink before deciding whether to follow
// it).
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
