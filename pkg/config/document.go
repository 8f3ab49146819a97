package config

import "github.com/foldersync/foldersync/pkg/core"

// Document is the top-level shape of a configuration file: one defaults
// block shared by every pair, and a named map of pairs that each override
// whatever subset of it they need to. The named-map-of-sessions shape
// (rather than a flat list) lets a run target one or more pairs by name
// from the command line without re-specifying their paths.
type Document struct {
	Defaults Options                 `yaml:"defaults"`
	Pairs    map[string]PairDocument `yaml:"pairs"`
}

// PairDocument is one entry in Document.Pairs: the two base paths plus
// whatever options this pair overrides from the defaults block.
type PairDocument struct {
	Left    string  `yaml:"left"`
	Right   string  `yaml:"right"`
	Options `yaml:",inline"`
}

// Options is one level (defaults or a single pair) of the overridable
// settings behind core.Configuration. Every field other than the glob
// lists is a pointer so BuildPairs can tell "not mentioned at this level"
// apart from "explicitly set to the zero value" — CompareVariantByTimeSize,
// DirectionPolicyAutomatic, and the other iota-zero enum members are all
// meaningful settings in their own right, not just unset markers. The glob
// lists are not merged across levels: each level's lists become that
// level's own filter (see merge).
type Options struct {
	CompareVariant    *core.CompareVariant   `yaml:"compareVariant,omitempty"`
	SymlinkPolicy     *core.SymlinkPolicy    `yaml:"symlinkPolicy,omitempty"`
	DirectionPolicy   *core.DirectionPolicy  `yaml:"directionPolicy,omitempty"`
	CustomDirections  *core.DirectionSet     `yaml:"customDirections,omitempty"`
	DeletionPolicy    *DeletionPolicyOptions `yaml:"deletionPolicy,omitempty"`
	Include           []string               `yaml:"include,omitempty"`
	Exclude           []string               `yaml:"exclude,omitempty"`
	TimeWindow        *core.TimeSpan         `yaml:"timeWindow,omitempty"`
	SizeWindow        *SizeWindowOptions     `yaml:"sizeWindow,omitempty"`
	ErrorPolicy       *core.ErrorPolicy      `yaml:"errorPolicy,omitempty"`
	CopyLockedFiles   *bool                  `yaml:"copyLockedFiles,omitempty"`
	CopyPermissions   *bool                  `yaml:"copyPermissions,omitempty"`
	TransactionalCopy *bool                  `yaml:"transactionalCopy,omitempty"`
	RetryCount        *int                   `yaml:"retryCount,omitempty"`
	RetryDelayMillis  *int                   `yaml:"retryDelayMillis,omitempty"`
}

// SizeWindowOptions mirrors core.SizeRange but holds each bound as a
// ByteSize, so a document can write "10MB" or "2GiB" instead of a raw
// byte count.
type SizeWindowOptions struct {
	Min ByteSize `yaml:"min,omitempty"`
	Max ByteSize `yaml:"max,omitempty"`
}

// DeletionPolicyOptions mirrors core.DeletionPolicy but leaves Kind
// unmarshaled as a plain value rather than a pointer: a pair that sets
// this field at all is choosing a full policy, not patching one field of
// it, so there's no ambiguity to preserve between the three fields.
type DeletionPolicyOptions struct {
	Kind        core.DeletionPolicyKind    `yaml:"kind"`
	Path        string                     `yaml:"path,omitempty"`
	NamingStyle core.VersioningNamingStyle `yaml:"namingStyle,omitempty"`
}
