package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/foldersync/foldersync/pkg/foldersync"
)

// CopyOptions controls optional behavior of CopyFile.
type CopyOptions struct {
	// Permissions copies the source's POSIX permission bits (or, on
	// Windows, its discretionary ACL) to the destination.
	Permissions bool
	// Transactional stages the copy under a temporary name and renames it
	// into place only once fully written, so a crash mid-copy never
	// leaves a partially-written file at dst.
	Transactional bool
	// AllowLockedSource carries the "copy-locked-files" option. CopyFile
	// does not read it and has no locked-file-tolerant read strategy on
	// any platform: a source held open exclusively is always reported as
	// CodeFileLocked.
	AllowLockedSource bool
	// OnDeleteTarget, if non-nil, is invoked exactly once, immediately
	// before dst is replaced, so that the caller can apply its deletion
	// policy (permanent delete, recycle bin, or versioning move) to
	// whatever previously existed at dst.
	OnDeleteTarget func(dst string)
}

// CopyFile copies src to dst, optionally staging the write transactionally
// per CopyOptions. It is the one primitive spec.md singles out for
// transactional semantics: the staging file always lives alongside dst (so
// the final rename is same-volume) and is named with the
// foldersync.StagingExtension suffix so that an interrupted run's stray
// staging files are recognizable and cleaned up by the next comparison
// pass. On success dst exists and contains exactly src's bytes as of the
// copy, with src's modification time carried over; on any failure dst is
// left either absent or as it was before the call, never partially
// written.
func CopyFile(src, dst string, options CopyOptions) error {
	sourceInfo, err := os.Stat(src)
	if err != nil {
		if os.IsNotExist(err) {
			return wrap("copy_file", src, CodeNotFound, err)
		}
		return wrap("copy_file", src, CodeUnknown, err)
	}

	target := dst
	if options.Transactional {
		staging, err := stagingPath(dst)
		if err != nil {
			return err
		}
		target = staging
	}

	if err := copyFileDirect(src, target, sourceInfo.Mode().Perm(), options); err != nil {
		if target != dst {
			_ = os.Remove(target)
		}
		return err
	}

	if err := SetModificationTime(target, sourceInfo.ModTime().Unix()); err != nil {
		if target != dst {
			_ = os.Remove(target)
		}
		return err
	}

	if options.OnDeleteTarget != nil {
		options.OnDeleteTarget(dst)
	}

	if target != dst {
		if err := Rename(target, dst); err != nil {
			_ = os.Remove(target)
			if IsCode(err, CodeAlreadyExists) {
				return wrap("copy_file", dst, CodeTargetExists, err)
			}
			return err
		}
	}

	if options.Permissions {
		if err := copyPermissions(src, dst); err != nil {
			_ = os.Remove(dst)
			return wrap("copy_file", dst, CodeAttributeUnsupported, err)
		}
	}
	return nil
}

// stagingPath chooses dst + the staging extension, appending a numeric
// suffix before the extension (dst + "_N" + extension) until it lands on
// a name that doesn't already exist — matching the disambiguation
// spec.md requires for copy_file's local recovery from a TargetExists
// collision. The suffix must land before the extension, not after it, so
// that a collision-disambiguated staging file still ends in
// foldersync.StagingExtension and is recognized as a stale staging file
// by a later scan (see pkg/compare/scan.go's scanDir).
func stagingPath(dst string) (string, error) {
	candidate := dst + foldersync.StagingExtension
	if !Exists(candidate) {
		return candidate, nil
	}
	for suffix := 1; suffix < 1_000_000; suffix++ {
		candidate := fmt.Sprintf("%s_%d%s", dst, suffix, foldersync.StagingExtension)
		if !Exists(candidate) {
			return candidate, nil
		}
	}
	return "", wrap("copy_file", dst, CodeTargetExists, fmt.Errorf("unable to find unique staging name"))
}

// copyFileDirect streams src's bytes to target (either the final dst, when
// not operating transactionally, or a staging path), creating target
// exclusively so a pre-existing file at that exact name is reported as
// CodeTargetExists rather than silently overwritten.
func copyFileDirect(src, target string, permissions os.FileMode, options CopyOptions) error {
	source, err := os.Open(src)
	if err != nil {
		if os.IsNotExist(err) {
			return wrap("copy_file", src, CodeNotFound, err)
		}
		if isLockedError(err) {
			return wrap("copy_file", src, CodeFileLocked, err)
		}
		return wrap("copy_file", src, CodeUnknown, err)
	}
	defer source.Close()

	destination, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, permissions)
	if err != nil {
		if os.IsExist(err) {
			return wrap("copy_file", target, CodeTargetExists, err)
		}
		if os.IsPermission(err) {
			return wrap("copy_file", target, CodePermissionDenied, err)
		}
		return wrap("copy_file", target, CodeUnknown, err)
	}

	if _, err := io.Copy(destination, source); err != nil {
		destination.Close()
		os.Remove(target)
		return wrap("copy_file", target, CodeUnknown, err)
	}
	if err := destination.Close(); err != nil {
		os.Remove(target)
		return wrap("copy_file", target, CodeUnknown, err)
	}
	return nil
}
