package compare

import (
	"github.com/foldersync/foldersync/pkg/core"
	"github.com/foldersync/foldersync/pkg/fs/fat"
)

// modTimeTolerance is the FAT-granularity tolerance spec.md §4.4 names for
// ByTimeSize comparison and for the DifferentMetadataOnly downgrade on
// directories and symlinks.
const modTimeTolerance = 2

func timesEqual(a, b int64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff <= modTimeTolerance
}

// categorizeFiles implements the ByTimeSize/ByContent branch of spec.md
// §4.4 step 3 for a pair of files present on both sides.
func categorizeFiles(variant core.CompareVariant, left, right core.FileDescriptor, readers byteReaders, relativePath string, progress ProgressSink) core.CompareResult {
	if variant == core.CompareVariantByContent {
		return categorizeByContent(left.Size, right.Size, readers, relativePath, progress)
	}
	return categorizeByTimeSize(left, right)
}

func categorizeByTimeSize(left, right core.FileDescriptor) core.CompareResult {
	if left.Size == right.Size && timesEqual(left.ModificationTime, right.ModificationTime) {
		return core.CompareResultEqual
	}
	if fat.IsDSTArtifact(left.ModificationTime, right.ModificationTime) && left.Size == right.Size {
		// One side's clock disagrees with the other by exactly the DST
		// offset: this is the FAT DST-hack signature, not a genuine edit.
		return core.CompareResultEqual
	}
	if left.Size != right.Size {
		return core.CompareResultDifferentContent
	}
	if left.ModificationTime > right.ModificationTime {
		return core.CompareResultLeftNewer
	}
	if right.ModificationTime > left.ModificationTime {
		return core.CompareResultRightNewer
	}
	return core.CompareResultDifferentContent
}

// byteReaders supplies the two open readers categorizeByContent streams
// from; kept as an interface so tests can substitute in-memory readers
// without touching the filesystem.
type byteReaders interface {
	openLeft() (closableReader, error)
	openRight() (closableReader, error)
}

type closableReader interface {
	Read(p []byte) (int, error)
	Close() error
}

const compareChunkSize = 32 * 1024

func categorizeByContent(leftSize, rightSize uint64, readers byteReaders, relativePath string, progress ProgressSink) core.CompareResult {
	if leftSize != rightSize {
		return core.CompareResultDifferentContent
	}
	if leftSize == 0 {
		return core.CompareResultEqual
	}

	left, err := readers.openLeft()
	if err != nil {
		return core.CompareResultDifferentContent
	}
	defer left.Close()
	right, err := readers.openRight()
	if err != nil {
		return core.CompareResultDifferentContent
	}
	defer right.Close()

	leftBuffer := make([]byte, compareChunkSize)
	rightBuffer := make([]byte, compareChunkSize)
	var compared int64
	for {
		leftN, leftErr := left.Read(leftBuffer)
		rightN, rightErr := right.Read(rightBuffer)
		if leftN != rightN {
			return core.CompareResultDifferentContent
		}
		if leftN > 0 {
			if !bytesEqual(leftBuffer[:leftN], rightBuffer[:rightN]) {
				return core.CompareResultDifferentContent
			}
			compared += int64(leftN)
			if progress != nil {
				progress.OnBytesCompared(relativePath, compared)
			}
		}
		leftDone := leftErr != nil
		rightDone := rightErr != nil
		if leftDone != rightDone {
			return core.CompareResultDifferentContent
		}
		if leftDone {
			return core.CompareResultEqual
		}
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// categorizeSymlinks compares two symlink descriptors analogously to
// categorizeByTimeSize: target text and kind must match exactly, and
// modification time is compared with the same tolerance and DST-hack
// downgrade.
func categorizeSymlinks(left, right core.SymlinkDescriptor) core.CompareResult {
	if !left.Equal(right) {
		return core.CompareResultDifferentContent
	}
	if timesEqual(left.ModificationTime, right.ModificationTime) {
		return core.CompareResultEqual
	}
	if fat.IsDSTArtifact(left.ModificationTime, right.ModificationTime) {
		return core.CompareResultEqual
	}
	return core.CompareResultDifferentMetadataOnly
}

// downgradeDirResult applies the DifferentMetadataOnly downgrade to an
// Equal directory pairing whose own modification times disagree beyond
// tolerance (spec.md §4.4 step 3's directory clause).
func downgradeDirResult(leftModTime, rightModTime int64) core.CompareResult {
	if timesEqual(leftModTime, rightModTime) {
		return core.CompareResultEqual
	}
	if fat.IsDSTArtifact(leftModTime, rightModTime) {
		return core.CompareResultEqual
	}
	return core.CompareResultDifferentMetadataOnly
}
