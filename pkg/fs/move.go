package fs

import "os"

// MoveFile relocates a single file from src to dst, using a rename when
// possible and falling back to copy-then-remove when the rename fails
// with CodeDifferentVolume, per spec.md's propagation policy for
// DifferentVolume.
func MoveFile(src, dst string) error {
	if err := Rename(src, dst); err != nil {
		if IsCode(err, CodeDifferentVolume) {
			return moveByCopy(src, dst, false)
		}
		return err
	}
	return nil
}

// MoveDir relocates a directory subtree, using the same rename-with-
// fallback strategy as MoveFile.
func MoveDir(src, dst string) error {
	if err := Rename(src, dst); err != nil {
		if IsCode(err, CodeDifferentVolume) {
			return moveByCopy(src, dst, true)
		}
		return err
	}
	return nil
}

func moveByCopy(src, dst string, directory bool) error {
	if directory {
		if err := copyDirRecursive(src, dst); err != nil {
			return err
		}
		return RemoveDir(src, nil)
	}
	if err := CopyFile(src, dst, CopyOptions{Permissions: true, Transactional: true}); err != nil {
		return err
	}
	return RemoveFile(src)
}

func copyDirRecursive(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return wrap("move_dir", src, CodeUnknown, err)
	}
	if err := CreateDir(dst); err != nil && !IsCode(err, CodeAlreadyExists) {
		return err
	}
	for _, entry := range entries {
		srcChild := src + string(os.PathSeparator) + entry.Name()
		dstChild := dst + string(os.PathSeparator) + entry.Name()
		if entry.IsDir() {
			if err := copyDirRecursive(srcChild, dstChild); err != nil {
				return err
			}
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return wrap("move_dir", srcChild, CodeUnknown, err)
		}
		if info.Mode()&os.ModeSymlink != 0 {
			target, err := GetSymlinkTargetText(srcChild)
			if err != nil {
				return err
			}
			if err := CopySymlink(target, dstChild, false); err != nil {
				return err
			}
			continue
		}
		if err := CopyFile(srcChild, dstChild, CopyOptions{Permissions: true, Transactional: true}); err != nil {
			return err
		}
	}
	return nil
}
