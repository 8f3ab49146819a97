package compare

import "os"

// fsByteReaders opens the two real files named by leftPath/rightPath for a
// ByContent comparison.
type fsByteReaders struct {
	leftPath, rightPath string
}

func (r *fsByteReaders) openLeft() (closableReader, error) {
	return os.Open(r.leftPath)
}

func (r *fsByteReaders) openRight() (closableReader, error) {
	return os.Open(r.rightPath)
}
