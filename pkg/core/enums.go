package core

import "github.com/pkg/errors"

// CompareResult classifies the relationship between the left and right
// sides of a single filesystem item after comparison. Values are ordered
// roughly from "trivially resolvable" to "requires a decision", which
// Rank reflects for callers that need a deterministic tie-break when
// reporting or sorting mixed results.
type CompareResult uint8

const (
	CompareResultEqual CompareResult = iota
	CompareResultLeftOnly
	CompareResultRightOnly
	CompareResultLeftNewer
	CompareResultRightNewer
	CompareResultDifferentContent
	CompareResultDifferentMetadataOnly
	CompareResultConflict
)

// Rank gives a stable total order over CompareResult values, used when
// sorting mixed-result listings for display; it carries no synchronization
// meaning of its own.
func (r CompareResult) Rank() int {
	switch r {
	case CompareResultEqual:
		return 0
	case CompareResultDifferentMetadataOnly:
		return 1
	case CompareResultLeftNewer:
		return 2
	case CompareResultRightNewer:
		return 3
	case CompareResultLeftOnly:
		return 4
	case CompareResultRightOnly:
		return 5
	case CompareResultDifferentContent:
		return 6
	case CompareResultConflict:
		return 7
	default:
		return 8
	}
}

func (r CompareResult) String() string {
	switch r {
	case CompareResultEqual:
		return "Equal"
	case CompareResultLeftOnly:
		return "LeftOnly"
	case CompareResultRightOnly:
		return "RightOnly"
	case CompareResultLeftNewer:
		return "LeftNewer"
	case CompareResultRightNewer:
		return "RightNewer"
	case CompareResultDifferentContent:
		return "DifferentContent"
	case CompareResultDifferentMetadataOnly:
		return "DifferentMetadataOnly"
	case CompareResultConflict:
		return "Conflict"
	default:
		return "Unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so a CompareResult can be
// written by name through text encoders such as YAML; the binary sync
// database does not store it.
func (r CompareResult) MarshalText() ([]byte, error) {
	if s := r.String(); s != "Unknown" {
		return []byte(s), nil
	}
	return nil, errors.Errorf("invalid compare result: %d", r)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *CompareResult) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Equal":
		*r = CompareResultEqual
	case "LeftOnly":
		*r = CompareResultLeftOnly
	case "RightOnly":
		*r = CompareResultRightOnly
	case "LeftNewer":
		*r = CompareResultLeftNewer
	case "RightNewer":
		*r = CompareResultRightNewer
	case "DifferentContent":
		*r = CompareResultDifferentContent
	case "DifferentMetadataOnly":
		*r = CompareResultDifferentMetadataOnly
	case "Conflict":
		*r = CompareResultConflict
	default:
		return errors.Errorf("unknown compare result: %s", text)
	}
	return nil
}

// Supported reports whether the compare result is one of the recognized
// enumeration values, as opposed to the zero value of an unset field.
func (r CompareResult) Supported() bool {
	return r.String() != "Unknown"
}

// SyncOperation is the action the resolver has decided to take for a single
// item, derived from its CompareResult, the active DirectionPolicy, and
// (for two-way Automatic resolution) the item's recorded synchronization
// history.
type SyncOperation uint8

const (
	SyncOperationDoNothing SyncOperation = iota
	SyncOperationEqual
	SyncOperationCreateLeft
	SyncOperationCreateRight
	SyncOperationDeleteLeft
	SyncOperationDeleteRight
	SyncOperationOverwriteLeft
	SyncOperationOverwriteRight
	SyncOperationCopyMetadataToLeft
	SyncOperationCopyMetadataToRight
	SyncOperationUnresolvedConflict
)

func (o SyncOperation) String() string {
	switch o {
	case SyncOperationDoNothing:
		return "DoNothing"
	case SyncOperationEqual:
		return "Equal"
	case SyncOperationCreateLeft:
		return "CreateLeft"
	case SyncOperationCreateRight:
		return "CreateRight"
	case SyncOperationDeleteLeft:
		return "DeleteLeft"
	case SyncOperationDeleteRight:
		return "DeleteRight"
	case SyncOperationOverwriteLeft:
		return "OverwriteLeft"
	case SyncOperationOverwriteRight:
		return "OverwriteRight"
	case SyncOperationCopyMetadataToLeft:
		return "CopyMetadataToLeft"
	case SyncOperationCopyMetadataToRight:
		return "CopyMetadataToRight"
	case SyncOperationUnresolvedConflict:
		return "UnresolvedConflict"
	default:
		return "Unknown"
	}
}

func (o SyncOperation) MarshalText() ([]byte, error) {
	if s := o.String(); s != "Unknown" {
		return []byte(s), nil
	}
	return nil, errors.Errorf("invalid sync operation: %d", o)
}

func (o *SyncOperation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "DoNothing":
		*o = SyncOperationDoNothing
	case "Equal":
		*o = SyncOperationEqual
	case "CreateLeft":
		*o = SyncOperationCreateLeft
	case "CreateRight":
		*o = SyncOperationCreateRight
	case "DeleteLeft":
		*o = SyncOperationDeleteLeft
	case "DeleteRight":
		*o = SyncOperationDeleteRight
	case "OverwriteLeft":
		*o = SyncOperationOverwriteLeft
	case "OverwriteRight":
		*o = SyncOperationOverwriteRight
	case "CopyMetadataToLeft":
		*o = SyncOperationCopyMetadataToLeft
	case "CopyMetadataToRight":
		*o = SyncOperationCopyMetadataToRight
	case "UnresolvedConflict":
		*o = SyncOperationUnresolvedConflict
	default:
		return errors.Errorf("unknown sync operation: %s", text)
	}
	return nil
}

// IsDeletion reports whether the operation removes an item from one side,
// which the executor uses to decide whether the deletion policy (permanent,
// recycle, or versioning) applies.
func (o SyncOperation) IsDeletion() bool {
	return o == SyncOperationDeleteLeft || o == SyncOperationDeleteRight
}

// TargetSide is the SyncDirection that receives a writing operation. It is
// SyncDirectionNone for operations (DoNothing, Equal, UnresolvedConflict)
// that touch neither side.
func (o SyncOperation) TargetSide() SyncDirection {
	switch o {
	case SyncOperationCreateLeft, SyncOperationDeleteLeft, SyncOperationOverwriteLeft, SyncOperationCopyMetadataToLeft:
		return SyncDirectionLeft
	case SyncOperationCreateRight, SyncOperationDeleteRight, SyncOperationOverwriteRight, SyncOperationCopyMetadataToRight:
		return SyncDirectionRight
	default:
		return SyncDirectionNone
	}
}

// SyncDirection identifies a side of a pairing, or the absence/conflict of
// one, wherever a single direction value (rather than a full SyncOperation)
// is needed — e.g. the recursive direction invariant the resolver enforces
// across a directory's children.
type SyncDirection uint8

const (
	SyncDirectionNone SyncDirection = iota
	SyncDirectionLeft
	SyncDirectionRight
	SyncDirectionConflict
)

func (d SyncDirection) String() string {
	switch d {
	case SyncDirectionNone:
		return "None"
	case SyncDirectionLeft:
		return "Left"
	case SyncDirectionRight:
		return "Right"
	case SyncDirectionConflict:
		return "Conflict"
	default:
		return "Unknown"
	}
}

func (d SyncDirection) MarshalText() ([]byte, error) {
	if s := d.String(); s != "Unknown" {
		return []byte(s), nil
	}
	return nil, errors.Errorf("invalid sync direction: %d", d)
}

func (d *SyncDirection) UnmarshalText(text []byte) error {
	switch string(text) {
	case "None":
		*d = SyncDirectionNone
	case "Left":
		*d = SyncDirectionLeft
	case "Right":
		*d = SyncDirectionRight
	case "Conflict":
		*d = SyncDirectionConflict
	default:
		return errors.Errorf("unknown sync direction: %s", text)
	}
	return nil
}
