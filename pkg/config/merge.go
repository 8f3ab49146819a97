package config

import (
	"sort"

	"github.com/foldersync/foldersync/pkg/core"
)

// Pair is one fully-resolved folder pair: its two base paths and the
// Configuration built by layering its own Options over the document's
// defaults.
type Pair struct {
	Name   string
	Left   string
	Right  string
	Config core.Configuration
}

// BuildPairs merges every pair in doc.Pairs over doc.Defaults, returning
// one fully-resolved Pair per entry. The result is ordered by name so a
// run's behavior doesn't depend on Go's randomized map iteration order.
func BuildPairs(doc *Document) []Pair {
	names := make([]string, 0, len(doc.Pairs))
	for name := range doc.Pairs {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]Pair, 0, len(names))
	for _, name := range names {
		entry := doc.Pairs[name]
		pairs = append(pairs, Pair{
			Name:   name,
			Left:   entry.Left,
			Right:  entry.Right,
			Config: merge(doc.Defaults, entry.Options),
		})
	}
	return pairs
}

// merge layers override on top of defaults: any field override leaves
// unset (a nil pointer) falls through to defaults' value for that field,
// and any field neither level sets keeps Go's zero value for its type —
// which, for every enum in core.Configuration, is itself a meaningful,
// documented default rather than a sentinel. The filter settings (globs
// and time/size windows) are not merged: defaults' become GlobalFilter and
// override's become PairFilter.
func merge(defaults, override Options) core.Configuration {
	var config core.Configuration

	config.CompareVariant = pickEnum(defaults.CompareVariant, override.CompareVariant)
	config.SymlinkPolicy = pickEnum(defaults.SymlinkPolicy, override.SymlinkPolicy)
	config.DirectionPolicy = pickEnum(defaults.DirectionPolicy, override.DirectionPolicy)
	config.ErrorPolicy = pickEnum(defaults.ErrorPolicy, override.ErrorPolicy)

	if override.CustomDirections != nil {
		config.CustomDirections = *override.CustomDirections
	} else if defaults.CustomDirections != nil {
		config.CustomDirections = *defaults.CustomDirections
	}

	config.DeletionPolicy = mergeDeletionPolicy(defaults.DeletionPolicy, override.DeletionPolicy)

	config.GlobalFilter = core.FilterConfig{
		IncludeGlobs: defaults.Include,
		ExcludeGlobs: defaults.Exclude,
		TimeWindow:   derefTimeSpan(defaults.TimeWindow),
		SizeWindow:   sizeRangeFor(defaults.SizeWindow),
	}
	config.PairFilter = core.FilterConfig{
		IncludeGlobs: override.Include,
		ExcludeGlobs: override.Exclude,
		TimeWindow:   derefTimeSpan(override.TimeWindow),
		SizeWindow:   sizeRangeFor(override.SizeWindow),
	}

	config.CopyLockedFiles = pickBool(defaults.CopyLockedFiles, override.CopyLockedFiles)
	config.CopyPermissions = pickBool(defaults.CopyPermissions, override.CopyPermissions)
	config.TransactionalCopy = pickBool(defaults.TransactionalCopy, override.TransactionalCopy)
	config.RetryCount = pickInt(defaults.RetryCount, override.RetryCount)
	config.RetryDelayMillis = pickInt(defaults.RetryDelayMillis, override.RetryDelayMillis)

	return config
}

func mergeDeletionPolicy(defaults, override *DeletionPolicyOptions) core.DeletionPolicy {
	chosen := override
	if chosen == nil {
		chosen = defaults
	}
	if chosen == nil {
		return core.DeletionPolicy{}
	}
	return core.DeletionPolicy{
		Kind:        chosen.Kind,
		Path:        chosen.Path,
		NamingStyle: chosen.NamingStyle,
	}
}

func derefTimeSpan(span *core.TimeSpan) core.TimeSpan {
	if span == nil {
		return core.TimeSpan{}
	}
	return *span
}

func sizeRangeFor(o *SizeWindowOptions) core.SizeRange {
	if o == nil {
		return core.SizeRange{}
	}
	return core.SizeRange{Min: uint64(o.Min), Max: uint64(o.Max)}
}

func pickBool(defaults, override *bool) bool {
	if override != nil {
		return *override
	}
	if defaults != nil {
		return *defaults
	}
	return false
}

func pickInt(defaults, override *int) int {
	if override != nil {
		return *override
	}
	if defaults != nil {
		return *defaults
	}
	return 0
}

// pickEnum picks override if set, falling back to defaults and then to
// the type's zero value; used for every pointer-held enum field in
// Options so the same nil-fallback isn't repeated with nothing but the
// type changed.
func pickEnum[T any](defaults, override *T) T {
	if override != nil {
		return *override
	}
	if defaults != nil {
		return *defaults
	}
	var zero T
	return zero
}
