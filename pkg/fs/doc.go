// Package fs implements the filesystem primitives the comparer and
// executor build on: existence and attribute queries, volume comparison,
// directory/symlink/file creation and removal, and a transactional file
// copy. Every primitive that differs by platform is split into a POSIX and
// a Windows implementation file, following the teacher's own
// pkg/filesystem convention (atomic_posix.go/device_posix.go paired with
// their Windows counterparts).
//
// All primitives return an *Error carrying one of the well-known Codes in
// errors.go so that callers (principally pkg/execute) can apply a uniform
// retry/recovery policy without inspecting platform-specific error types.
package fs
