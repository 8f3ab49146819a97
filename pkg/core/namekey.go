package core

// NameKey returns the form of a single path component used as a
// DirContainer map key (and therefore as the basis for pairing the same
// name across both sides during merge): unchanged on POSIX, where the
// filesystem is case-sensitive, or case-folded on Windows, where it is not.
// The platform-specific implementation lives in namekey_posix.go and
// namekey_windows.go.
func NameKey(name string) string {
	return nameKey(name)
}
