package fs

import "fmt"

// Code classifies an *Error into one of the recognized categories the
// executor knows how to react to. Grounded on the teacher's habit of
// wrapping syscall-level errors into a small, closed set of sentinel
// conditions (see atomic_posix.go's isCrossDeviceError and the NotExist
// checks scattered through pkg/filesystem) generalized into a proper
// taxonomy, since this engine's retry and recovery policy needs to
// dispatch on error kind rather than re-inspect the underlying error.
type Code uint8

const (
	// CodeUnknown is a non-recoverable error with no special handling.
	CodeUnknown Code = iota
	// CodeNotFound indicates the target path does not exist.
	CodeNotFound
	// CodeAlreadyExists indicates a create operation's target already
	// exists.
	CodeAlreadyExists
	// CodeTargetExists indicates a copy's staging name collided with an
	// existing file; copy_file recovers from this locally by generating a
	// fresh staging name.
	CodeTargetExists
	// CodeDifferentVolume indicates a rename crossed a device boundary;
	// move_file and move_dir recover from this locally by falling back to
	// copy-then-remove.
	CodeDifferentVolume
	// CodeFileLocked indicates the source is held open exclusively by
	// another process (ERROR_SHARING_VIOLATION / ERROR_LOCK_VIOLATION on
	// Windows, or the POSIX equivalent). The executor reports it to the
	// caller's ErrorSink as retriable, whether or not the copy-locked-files
	// option is set.
	CodeFileLocked
	// CodePermissionDenied indicates the operation was denied by the
	// filesystem's access controls.
	CodePermissionDenied
	// CodeAttributeUnsupported indicates an attribute (e.g. an SELinux
	// context, or the Windows "allow decrypted destination" flag) could
	// not be set on the target filesystem. The executor reports it to the
	// caller's ErrorSink as non-retriable, like any other failed item.
	CodeAttributeUnsupported
	// CodeCancelled indicates the operation was aborted by context
	// cancellation.
	CodeCancelled
)

func (c Code) String() string {
	switch c {
	case CodeNotFound:
		return "NotFound"
	case CodeAlreadyExists:
		return "AlreadyExists"
	case CodeTargetExists:
		return "TargetExists"
	case CodeDifferentVolume:
		return "DifferentVolume"
	case CodeFileLocked:
		return "FileLocked"
	case CodePermissionDenied:
		return "PermissionDenied"
	case CodeAttributeUnsupported:
		return "AttributeUnsupported"
	case CodeCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error wraps an underlying error with a Code and the path it concerns, so
// that callers can dispatch on Code without parsing message text.
type Error struct {
	Code Code
	Path string
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Code)
	}
	return fmt.Sprintf("%s %s: %s: %v", e.Op, e.Path, e.Code, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrap(op, path string, code Code, err error) error {
	if err == nil && code == CodeUnknown {
		return nil
	}
	return &Error{Code: code, Path: path, Op: op, Err: err}
}

// IsCode reports whether err is an *Error (at any wrapping depth handled
// by errors.As-style unwrapping done by the caller) with the given Code.
func IsCode(err error, code Code) bool {
	fsErr, ok := err.(*Error)
	return ok && fsErr.Code == code
}
