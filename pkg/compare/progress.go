package compare

// ProgressSink receives the comparer's two kinds of progress event: items
// scanned during traversal (step 2 of spec.md's algorithm) and bytes
// compared during a ByContent byte-for-byte comparison (step 3).
type ProgressSink interface {
	OnScanned(side, relativePath string)
	OnBytesCompared(relativePath string, n int64)
}
