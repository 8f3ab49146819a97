package fs

import (
	"os"

	"github.com/pkg/errors"
)

// Attributes is the raw, platform-normalized metadata the comparer needs
// for a single filesystem entry, prior to any FAT DST-hack correction
// (applied separately by pkg/fs/fat for the ByTimeSize variant).
type Attributes struct {
	IsDir       bool
	IsSymlink   bool
	Size        uint64
	ModTime     int64
	Permissions os.FileMode
	FileID      *uint64
}

// ReadAttributes performs an Lstat-equivalent query of path, reporting
// symbolic links rather than following them; the caller (the comparer,
// under the active SymlinkPolicy) decides whether to subsequently resolve
// the link.
func ReadAttributes(path string) (*Attributes, error) {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, wrap("read_attributes", path, CodeNotFound, err)
		}
		if os.IsPermission(err) {
			return nil, wrap("read_attributes", path, CodePermissionDenied, err)
		}
		return nil, wrap("read_attributes", path, CodeUnknown, err)
	}

	modTime := info.ModTime().Unix()
	if decoded, ok := fatModTime(path, info); ok {
		modTime = decoded
	}

	attributes := &Attributes{
		IsDir:       info.IsDir(),
		IsSymlink:   info.Mode()&os.ModeSymlink != 0,
		Size:        uint64(info.Size()),
		ModTime:     modTime,
		Permissions: info.Mode().Perm(),
	}
	if fileID, err := stableFileID(path, info); err == nil {
		attributes.FileID = fileID
	}
	return attributes, nil
}

// errFileIDUnsupported is returned by the platform-specific stableFileID
// helpers when the underlying stat structure can't be extracted; it is
// never surfaced as an fs.Error since FileID is advisory (used only to
// avoid copying it across sides), not required for correctness.
var errFileIDUnsupported = errors.New("stable file id unavailable")
