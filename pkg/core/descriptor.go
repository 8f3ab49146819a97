package core

// FileDescriptor is an immutable snapshot of the metadata that the comparer
// cares about for a regular file on one side of a pairing.
type FileDescriptor struct {
	// Size is the file size in bytes.
	Size uint64
	// ModificationTime is the modification time in seconds since the Unix
	// epoch, after any filesystem-specific decoding (e.g. the FAT DST hack)
	// has already been applied by the filesystem layer.
	ModificationTime int64
	// FileID is a stable per-file identifier (e.g. an inode number or NTFS
	// file id), if the filesystem exposes one. It is a hardware/filesystem
	// property and is therefore never copied across sides by
	// synchronize_sides.
	FileID *uint64
}

// sentinelFileDescriptor is the descriptor used for the absent side of a
// one-sided FileMapping.
var sentinelFileDescriptor = FileDescriptor{}

// Equal reports whether two descriptors describe the same size and
// modification time, ignoring FileID (which is side-local by definition and
// never meaningfully comparable across sides).
func (d FileDescriptor) Equal(other FileDescriptor) bool {
	return d.Size == other.Size && d.ModificationTime == other.ModificationTime
}

// SymbolicLinkKind distinguishes the two kinds of symbolic link target a
// platform may need in order to recreate a link (Windows requires this to
// choose between a file symlink and a directory symlink; POSIX ignores it).
type SymbolicLinkKind uint8

const (
	// SymbolicLinkKindFile indicates a symlink whose target is (or was, at
	// scan time) a regular file.
	SymbolicLinkKindFile SymbolicLinkKind = iota
	// SymbolicLinkKindDirectory indicates a symlink whose target is (or
	// was) a directory.
	SymbolicLinkKindDirectory
)

// SymlinkDescriptor is an immutable snapshot of the metadata the comparer
// cares about for a symbolic link (one that is not being dereferenced) on
// one side of a pairing.
type SymlinkDescriptor struct {
	// ModificationTime is the link's own modification time, in seconds
	// since the Unix epoch.
	ModificationTime int64
	// Target is the raw, unresolved link target text. It may be empty if
	// retrieval of the target failed; this is tolerated rather than
	// treated as an error so that a single unreadable link doesn't abort
	// an entire scan.
	Target string
	// Kind records whether the target is a file or a directory. Required
	// to recreate the link correctly on Windows; meaningless on POSIX,
	// where a symlink carries no such distinction.
	Kind SymbolicLinkKind
}

// sentinelSymlinkDescriptor is the descriptor used for the absent side of a
// one-sided SymlinkMapping.
var sentinelSymlinkDescriptor = SymlinkDescriptor{}

// Equal reports whether two symlink descriptors agree on target and kind.
// Modification time is deliberately excluded here; categorize.go applies
// its own time-tolerance rules analogous to file comparison.
func (d SymlinkDescriptor) Equal(other SymlinkDescriptor) bool {
	return d.Target == other.Target && d.Kind == other.Kind
}
