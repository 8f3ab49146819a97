// Package execute carries out the operations a resolved hierarchy calls
// for: creating, overwriting, deleting, and metadata-syncing items across
// the two sides of a pairing, per spec.md §4.6. After reporting unresolved
// conflicts, it runs three ordered passes (directory creation,
// file/symlink creation and overwrite, deletion) so that a parent
// directory always exists before a child is created into it and always
// outlives every child being removed from it, wraps each filesystem
// primitive in a retry loop governed by an ErrorSink, and updates each
// node's in-memory state after it is applied. Writing that state to the
// sync database for two-way (Automatic) runs is done by pkg/engine, not
// by this package.
package execute
