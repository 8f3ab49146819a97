package syncdb

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// entryKind records which of the three node shapes an Entry describes, so
// a loader can tell a zero-size directory from a zero-size file without
// consulting the live filesystem.
type entryKind uint8

const (
	entryKindFile entryKind = iota
	entryKindDirectory
	entryKindSymlink
)

func (k entryKind) String() string {
	switch k {
	case entryKindFile:
		return "File"
	case entryKindDirectory:
		return "Directory"
	case entryKindSymlink:
		return "Symlink"
	default:
		return "Unknown"
	}
}

// Entry is one node's recorded post-sync state: spec.md §6's "path
// relative to base, kind, size, mtime, and stable file-id". Size is
// always zero for a directory or symlink.
type Entry struct {
	Path    string
	Kind    entryKind
	Size    uint64
	ModTime int64
	// FileID is the stable per-file identifier (inode/NTFS file id) on
	// whichever side the database was built from, or nil if the
	// filesystem exposed none. It exists for a future move-detection
	// pass; the Automatic resolver doesn't consult it.
	FileID *uint64
}

// encode serializes one Entry as: uint32 path length, path bytes, 1 kind
// byte, uint64 size, int64 (as uint64) mtime, 1 file-id-present byte,
// uint64 file-id (zero when absent). All multi-byte integers are
// little-endian, matching pkg/fs/locking's record encoding.
func (e Entry) encode() []byte {
	pathBytes := []byte(e.Path)
	buf := make([]byte, 0, 4+len(pathBytes)+1+8+8+1+8)

	lengthPrefix := make([]byte, 4)
	binary.LittleEndian.PutUint32(lengthPrefix, uint32(len(pathBytes)))
	buf = append(buf, lengthPrefix...)
	buf = append(buf, pathBytes...)

	buf = append(buf, byte(e.Kind))

	sizeBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(sizeBytes, e.Size)
	buf = append(buf, sizeBytes...)

	modTimeBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(modTimeBytes, uint64(e.ModTime))
	buf = append(buf, modTimeBytes...)

	if e.FileID != nil {
		buf = append(buf, 1)
		fileIDBytes := make([]byte, 8)
		binary.LittleEndian.PutUint64(fileIDBytes, *e.FileID)
		buf = append(buf, fileIDBytes...)
	} else {
		buf = append(buf, 0)
		buf = append(buf, make([]byte, 8)...)
	}

	return buf
}

// decodeEntry parses one Entry starting at the front of data, returning
// the entry, the number of bytes consumed, and an error for any buffer
// too short to hold a complete record.
func decodeEntry(data []byte) (Entry, int, error) {
	if len(data) < 4 {
		return Entry{}, 0, errors.New("entry too short for path length")
	}
	pathLength := int(binary.LittleEndian.Uint32(data[:4]))
	offset := 4
	if len(data) < offset+pathLength+1+8+8+1+8 {
		return Entry{}, 0, errors.New("entry too short for declared path and trailer")
	}

	path := string(data[offset : offset+pathLength])
	offset += pathLength

	kind := entryKind(data[offset])
	offset++

	size := binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8

	modTime := int64(binary.LittleEndian.Uint64(data[offset : offset+8]))
	offset += 8

	hasFileID := data[offset] != 0
	offset++
	fileIDValue := binary.LittleEndian.Uint64(data[offset : offset+8])
	offset += 8

	entry := Entry{Path: path, Kind: kind, Size: size, ModTime: modTime}
	if hasFileID {
		entry.FileID = &fileIDValue
	}
	return entry, offset, nil
}
