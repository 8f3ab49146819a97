//go:build windows

package pathutil

import "strings"

const (
	// maxPath is the traditional MAX_PATH limit most Win32 APIs enforce
	// unless a path carries the \\?\ prefix.
	maxPath = 260

	// directoryCreateReserve is subtracted from maxPath for call sites
	// equivalent to CreateDirectoryEx, which needs twelve characters of
	// headroom to synthesize an 8.3 alias for the new directory.
	directoryCreateReserve = 12

	longPathPrefix    = `\\?\`
	uncLongPathPrefix = `\\?\UNC\`
)

// NeedsLongPathPrefix reports whether path must carry the \\?\ prefix
// before being passed to a Win32 API, per spec.md §4.7: either its length
// reaches the threshold (MAX_PATH, or MAX_PATH-12 at a CreateDirectoryEx
// call site, to leave room for an 8.3 alias) or its final component ends in
// a trailing space or dot, which Win32 silently strips unless prefixed.
func NeedsLongPathPrefix(path string, forDirectoryCreate bool) bool {
	if HasLongPathPrefix(path) {
		return false
	}
	threshold := maxPath
	if forDirectoryCreate {
		threshold -= directoryCreateReserve
	}
	if len(path) >= threshold {
		return true
	}
	base := path
	if idx := strings.LastIndexAny(path, `\/`); idx >= 0 {
		base = path[idx+1:]
	}
	if base == "" {
		return false
	}
	last := base[len(base)-1]
	return last == ' ' || last == '.'
}

// HasLongPathPrefix reports whether path already carries a \\?\ prefix.
func HasLongPathPrefix(path string) bool {
	return strings.HasPrefix(path, longPathPrefix)
}

// ApplyLongPathPrefix prepends the \\?\ prefix to an absolute path,
// switching to the \\?\UNC\ form for UNC paths (\\server\share\...). It is
// a no-op if the prefix is already present.
func ApplyLongPathPrefix(path string) string {
	if HasLongPathPrefix(path) {
		return path
	}
	if strings.HasPrefix(path, `\\`) {
		return uncLongPathPrefix + path[2:]
	}
	return longPathPrefix + path
}

// RemoveLongPathPrefix strips a \\?\ or \\?\UNC\ prefix, restoring the path
// to the form a user would recognize. It is a no-op if no prefix is
// present.
func RemoveLongPathPrefix(path string) string {
	if strings.HasPrefix(path, uncLongPathPrefix) {
		return `\\` + path[len(uncLongPathPrefix):]
	}
	if strings.HasPrefix(path, longPathPrefix) {
		return path[len(longPathPrefix):]
	}
	return path
}

// EnsureLongPath applies the long-path prefix only when path actually needs
// it, which is the form nearly every call site wants.
func EnsureLongPath(path string, forDirectoryCreate bool) string {
	if NeedsLongPathPrefix(path, forDirectoryCreate) {
		return ApplyLongPathPrefix(path)
	}
	return path
}
