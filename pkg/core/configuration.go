package core

import (
	"github.com/pkg/errors"

	"github.com/foldersync/foldersync/pkg/comparison"
)

// CompareVariant selects the algorithm the comparer uses to decide whether
// two present files are equal.
type CompareVariant uint8

const (
	// CompareVariantByTimeSize treats two files as equal when their sizes
	// match and their modification times agree within a tolerance (see
	// pkg/compare's time-tolerance and FAT DST-hack handling).
	CompareVariantByTimeSize CompareVariant = iota
	// CompareVariantByContent streams both files and compares bytes
	// directly, ignoring modification time entirely.
	CompareVariantByContent
)

func (v CompareVariant) String() string {
	switch v {
	case CompareVariantByTimeSize:
		return "ByTimeSize"
	case CompareVariantByContent:
		return "ByContent"
	default:
		return "Unknown"
	}
}

func (v CompareVariant) MarshalText() ([]byte, error) {
	if s := v.String(); s != "Unknown" {
		return []byte(s), nil
	}
	return nil, errors.Errorf("invalid compare variant: %d", v)
}

func (v *CompareVariant) UnmarshalText(text []byte) error {
	switch string(text) {
	case "ByTimeSize":
		*v = CompareVariantByTimeSize
	case "ByContent":
		*v = CompareVariantByContent
	default:
		return errors.Errorf("unknown compare variant: %s", text)
	}
	return nil
}

// SymlinkPolicy controls how the comparer treats symbolic links during
// traversal.
type SymlinkPolicy uint8

const (
	// SymlinkPolicyIgnore drops symbolic links entirely; they are never
	// inserted into a DirContainer and never appear in the hierarchy.
	SymlinkPolicyIgnore SymlinkPolicy = iota
	// SymlinkPolicyUseDirectly records a symlink as a SymlinkMapping and
	// synchronizes the link itself rather than its target.
	SymlinkPolicyUseDirectly
	// SymlinkPolicyFollow dereferences a symlink and treats it as an
	// ordinary file or directory of the target's type, with cycle
	// detection so a self-referential or mutually-referential chain of
	// links terminates instead of recursing forever.
	SymlinkPolicyFollow
)

func (p SymlinkPolicy) String() string {
	switch p {
	case SymlinkPolicyIgnore:
		return "Ignore"
	case SymlinkPolicyUseDirectly:
		return "UseDirectly"
	case SymlinkPolicyFollow:
		return "Follow"
	default:
		return "Unknown"
	}
}

func (p SymlinkPolicy) MarshalText() ([]byte, error) {
	if s := p.String(); s != "Unknown" {
		return []byte(s), nil
	}
	return nil, errors.Errorf("invalid symlink policy: %d", p)
}

func (p *SymlinkPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Ignore":
		*p = SymlinkPolicyIgnore
	case "UseDirectly":
		*p = SymlinkPolicyUseDirectly
	case "Follow":
		*p = SymlinkPolicyFollow
	default:
		return errors.Errorf("unknown symlink policy: %s", text)
	}
	return nil
}

// DirectionSet is the user-provided mapping used by DirectionPolicyCustom:
// an independent Left/Right/None choice for each of LeftOnly, RightOnly,
// LeftNewer, RightNewer, DifferentContent and Conflict. Equal and
// DifferentMetadataOnly never take a direction from it.
type DirectionSet struct {
	LeftOnly          SyncDirection
	RightOnly         SyncDirection
	LeftNewer         SyncDirection
	RightNewer        SyncDirection
	DifferentContent  SyncDirection
	Conflict          SyncDirection
}

// DirectionPolicy selects how the resolver turns a CompareResult into a
// SyncOperation.
type DirectionPolicy uint8

const (
	// DirectionPolicyAutomatic is two-way synchronization guided by the
	// prior run's recorded state in the sync database: a one-sided change
	// since the last sync propagates to the other side; changes on both
	// sides since the last sync are an UnresolvedConflict.
	DirectionPolicyAutomatic DirectionPolicy = iota
	// DirectionPolicyMirror always makes right identical to left.
	DirectionPolicyMirror
	// DirectionPolicyUpdate propagates left-to-right only for new or
	// newer items; it never deletes or overwrites toward left.
	DirectionPolicyUpdate
	// DirectionPolicyCustom applies a user-supplied DirectionSet.
	DirectionPolicyCustom
)

func (p DirectionPolicy) String() string {
	switch p {
	case DirectionPolicyAutomatic:
		return "Automatic"
	case DirectionPolicyMirror:
		return "Mirror"
	case DirectionPolicyUpdate:
		return "Update"
	case DirectionPolicyCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

func (p DirectionPolicy) MarshalText() ([]byte, error) {
	if s := p.String(); s != "Unknown" {
		return []byte(s), nil
	}
	return nil, errors.Errorf("invalid direction policy: %d", p)
}

func (p *DirectionPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Automatic":
		*p = DirectionPolicyAutomatic
	case "Mirror":
		*p = DirectionPolicyMirror
	case "Update":
		*p = DirectionPolicyUpdate
	case "Custom":
		*p = DirectionPolicyCustom
	default:
		return errors.Errorf("unknown direction policy: %s", text)
	}
	return nil
}

// VersioningNamingStyle controls how a previous version of a file is
// renamed when DeletionPolicyVersioning moves it aside instead of deleting
// or overwriting it.
type VersioningNamingStyle uint8

const (
	// VersioningNamingStyleReplace keeps a single prior version, replacing
	// whatever was previously versioned at that path.
	VersioningNamingStyleReplace VersioningNamingStyle = iota
	// VersioningNamingStyleTimeStamp appends the current time to the
	// versioned name, so successive versions accumulate rather than
	// overwrite one another.
	VersioningNamingStyleTimeStamp
)

func (s VersioningNamingStyle) String() string {
	switch s {
	case VersioningNamingStyleReplace:
		return "Replace"
	case VersioningNamingStyleTimeStamp:
		return "TimeStamp"
	default:
		return "Unknown"
	}
}

func (s VersioningNamingStyle) MarshalText() ([]byte, error) {
	if str := s.String(); str != "Unknown" {
		return []byte(str), nil
	}
	return nil, errors.Errorf("invalid versioning naming style: %d", s)
}

func (s *VersioningNamingStyle) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Replace":
		*s = VersioningNamingStyleReplace
	case "TimeStamp":
		*s = VersioningNamingStyleTimeStamp
	default:
		return errors.Errorf("unknown versioning naming style: %s", text)
	}
	return nil
}

// DeletionPolicyKind selects what happens to an item that a sync operation
// removes or overwrites: it is discarded outright, moved to the platform
// recycle bin, or moved aside into a versioning directory.
type DeletionPolicyKind uint8

const (
	DeletionPolicyPermanent DeletionPolicyKind = iota
	DeletionPolicyRecycle
	DeletionPolicyVersioning
)

func (k DeletionPolicyKind) String() string {
	switch k {
	case DeletionPolicyPermanent:
		return "Permanent"
	case DeletionPolicyRecycle:
		return "Recycle"
	case DeletionPolicyVersioning:
		return "Versioning"
	default:
		return "Unknown"
	}
}

func (k DeletionPolicyKind) MarshalText() ([]byte, error) {
	if s := k.String(); s != "Unknown" {
		return []byte(s), nil
	}
	return nil, errors.Errorf("invalid deletion policy kind: %d", k)
}

func (k *DeletionPolicyKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Permanent":
		*k = DeletionPolicyPermanent
	case "Recycle":
		*k = DeletionPolicyRecycle
	case "Versioning":
		*k = DeletionPolicyVersioning
	default:
		return errors.Errorf("unknown deletion policy kind: %s", text)
	}
	return nil
}

// DeletionPolicy is the full configuration for how a removed or
// overwritten item is disposed of. Path and NamingStyle are meaningful
// only when Kind is DeletionPolicyVersioning.
type DeletionPolicy struct {
	Kind        DeletionPolicyKind
	Path        string
	NamingStyle VersioningNamingStyle
}

// ErrorPolicy is the configured choice of how a non-recoverable error
// from a filesystem primitive is handled. The executor does not read it:
// Execute passes every such error to the ErrorSink in execute.Options,
// whatever policy is configured.
type ErrorPolicy uint8

const (
	// ErrorPolicyPopup surfaces each error to the caller's ErrorSink and
	// waits for a per-error decision (retry, skip, or abort) before
	// continuing; named for the GUI's modal dialog, which is out of scope
	// here but whose callback contract this policy preserves.
	ErrorPolicyPopup ErrorPolicy = iota
	// ErrorPolicyIgnore records the error and continues with the
	// remaining items.
	ErrorPolicyIgnore
	// ErrorPolicyAbort stops the run at the first error.
	ErrorPolicyAbort
)

func (p ErrorPolicy) String() string {
	switch p {
	case ErrorPolicyPopup:
		return "Popup"
	case ErrorPolicyIgnore:
		return "Ignore"
	case ErrorPolicyAbort:
		return "Abort"
	default:
		return "Unknown"
	}
}

func (p ErrorPolicy) MarshalText() ([]byte, error) {
	if s := p.String(); s != "Unknown" {
		return []byte(s), nil
	}
	return nil, errors.Errorf("invalid error policy: %d", p)
}

func (p *ErrorPolicy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Popup":
		*p = ErrorPolicyPopup
	case "Ignore":
		*p = ErrorPolicyIgnore
	case "Abort":
		*p = ErrorPolicyAbort
	default:
		return errors.Errorf("unknown error policy: %s", text)
	}
	return nil
}

// TimeSpan is an inclusive window of modification times used by the soft
// filter; a zero value on either end means that end is unbounded.
type TimeSpan struct {
	From int64
	To   int64
}

// Contains reports whether t falls within the span.
func (s TimeSpan) Contains(t int64) bool {
	if s.From != 0 && t < s.From {
		return false
	}
	if s.To != 0 && t > s.To {
		return false
	}
	return true
}

// SizeRange is an inclusive byte-size window used by the soft filter; zero
// on either end means that end is unbounded.
type SizeRange struct {
	Min uint64
	Max uint64
}

// Contains reports whether size falls within the range.
func (r SizeRange) Contains(size uint64) bool {
	if r.Min != 0 && size < r.Min {
		return false
	}
	if r.Max != 0 && size > r.Max {
		return false
	}
	return true
}

// FilterConfig holds one level (global or per-pair) of the hard and soft
// filters described in SPEC_FULL.md's Configuration section. A per-pair
// FilterConfig is combined with the global one by the filter package: an
// exclude glob of either level excludes, the include globs of the two
// levels are unioned, and the time/size windows are intersected.
type FilterConfig struct {
	IncludeGlobs []string
	ExcludeGlobs []string
	TimeWindow   TimeSpan
	SizeWindow   SizeRange
}

// Configuration is the full, validated set of options for a single
// comparison-and-synchronization run. It is assembled from a folder pair
// plus the global settings by pkg/config, and is treated as immutable for
// the duration of a run.
type Configuration struct {
	CompareVariant    CompareVariant
	SymlinkPolicy     SymlinkPolicy
	DirectionPolicy   DirectionPolicy
	CustomDirections  DirectionSet
	DeletionPolicy    DeletionPolicy
	GlobalFilter      FilterConfig
	PairFilter        FilterConfig
	ErrorPolicy       ErrorPolicy
	CopyLockedFiles   bool
	CopyPermissions   bool
	TransactionalCopy bool
	RetryCount        int
	RetryDelayMillis  int
}

// Equal reports whether c and other hold identical settings, so a caller
// (pkg/config, reloading a document between runs) can tell whether a
// pair's merged Configuration actually changed before treating it as a
// fresh run's input.
func (c Configuration) Equal(other Configuration) bool {
	return c.CompareVariant == other.CompareVariant &&
		c.SymlinkPolicy == other.SymlinkPolicy &&
		c.DirectionPolicy == other.DirectionPolicy &&
		c.CustomDirections == other.CustomDirections &&
		c.DeletionPolicy == other.DeletionPolicy &&
		c.ErrorPolicy == other.ErrorPolicy &&
		c.CopyLockedFiles == other.CopyLockedFiles &&
		c.CopyPermissions == other.CopyPermissions &&
		c.TransactionalCopy == other.TransactionalCopy &&
		c.RetryCount == other.RetryCount &&
		c.RetryDelayMillis == other.RetryDelayMillis &&
		c.GlobalFilter.Equal(other.GlobalFilter) &&
		c.PairFilter.Equal(other.PairFilter)
}

// Equal reports whether f and other hold the same filter settings.
// IncludeGlobs/ExcludeGlobs are compared by content rather than identity,
// the same way the teacher's synchronization.Configuration.Equal compares
// its Ignores/DefaultIgnores string slices.
func (f FilterConfig) Equal(other FilterConfig) bool {
	return comparison.StringSlicesEqual(f.IncludeGlobs, other.IncludeGlobs) &&
		comparison.StringSlicesEqual(f.ExcludeGlobs, other.ExcludeGlobs) &&
		f.TimeWindow == other.TimeWindow &&
		f.SizeWindow == other.SizeWindow
}
