// Package fat implements the "DST hack" spec.md requires for FAT/FAT32
// volumes: encoding a file's true UTC modification time into the (create,
// write) timestamp pair FAT exposes, and decoding that pair back into a
// DST-transition-proof mtime on read. FAT stores local time for both
// fields with only two-second resolution, so a naive mtime comparison
// flips by exactly one hour across every DST boundary; the hack stores
// the UTC value twice (once natively in write, once in create) so a
// decoder can tell a genuine one-hour change from a DST artifact.
//
// IsVolume's detection strategy is grounded on the teacher's
// format_statfs.go/format_statfs_linux.go (a Statfs call classified by
// magic number) generalized with a Windows counterpart, since the
// teacher's own format detection never needed one.
package fat

import "math"

// toleranceSeconds matches the 2-second FAT timestamp granularity
// spec.md's comparer tolerance is built around.
const toleranceSeconds = 2

// driftMatchesDST reports whether the difference between two
// modification times is within tolerance of exactly one hour in either
// direction, the signature of a DST-boundary artifact rather than a real
// content change.
func driftMatchesDST(a, b int64) bool {
	diff := math.Abs(float64(a - b))
	return math.Abs(diff-3600) <= toleranceSeconds
}

// IsDSTArtifact reports whether two recorded modification times that
// otherwise look like a "newer" comparison result are explainable purely
// by a DST transition, in which case the comparer downgrades the result
// to Equal instead of LeftNewer/RightNewer.
func IsDSTArtifact(a, b int64) bool {
	return driftMatchesDST(a, b)
}

// Encode derives the (create, write) pair to store on disk for a desired
// UTC modification time. The write field carries the literal UTC value;
// the create field mirrors it, giving Decode a reference value that a
// bare DST-confused local-time write field would not otherwise match.
func Encode(modificationTimeUTC int64) (createTime, writeTime int64) {
	return modificationTimeUTC, modificationTimeUTC
}

// Decode recovers the UTC modification time from a (create, write) pair
// previously produced by Encode. If create and write already agree, they
// are trusted as-is (the normal, round-tripped case). If they disagree by
// exactly the DST hour, write is corrected back to create's value, since
// create is not subject to the timezone recalculation that produces the
// drift. Any other disagreement is assumed to mean the file was modified
// by a tool that doesn't know about the hack, so the raw write time wins.
func Decode(createTime, writeTime int64) int64 {
	if createTime == writeTime {
		return writeTime
	}
	if driftMatchesDST(createTime, writeTime) {
		return createTime
	}
	return writeTime
}
