package compare

import (
	"fmt"
	"path/filepath"

	"github.com/foldersync/foldersync/pkg/core"
	"github.com/foldersync/foldersync/pkg/fs"
)

// entryKind classifies what a single name resolves to within a
// DirContainer, used to decide how merge pairs the left and right sides of
// a name.
type entryKind int

const (
	kindAbsent entryKind = iota
	kindDir
	kindFile
	kindLink
)

func kindOf(container *core.DirContainer, key string) entryKind {
	if container == nil {
		return kindAbsent
	}
	if _, ok := container.Subdirs[key]; ok {
		return kindDir
	}
	if _, ok := container.Subfiles[key]; ok {
		return kindFile
	}
	if _, ok := container.Sublinks[key]; ok {
		return kindLink
	}
	return kindAbsent
}

func (k entryKind) String() string {
	switch k {
	case kindDir:
		return "directory"
	case kindFile:
		return "file"
	case kindLink:
		return "symbolic link"
	default:
		return "absent"
	}
}

// unionNames returns every key appearing in either container, nil-safe on
// both arguments.
func unionNames(left, right *core.DirContainer) map[string]bool {
	names := make(map[string]bool)
	add := func(c *core.DirContainer) {
		if c == nil {
			return
		}
		for name := range c.Subdirs {
			names[name] = true
		}
		for name := range c.Subfiles {
			names[name] = true
		}
		for name := range c.Sublinks {
			names[name] = true
		}
	}
	add(left)
	add(right)
	return names
}

// merger implements spec.md §4.4 step 3: pairing two DirContainers by name
// into a DirMapping tree and categorizing every resulting node.
type merger struct {
	variant  core.CompareVariant
	leftRoot string
	rightRoot string
	progress ProgressSink
}

func (m *merger) mergeInto(dm *core.DirMapping, left, right *core.DirContainer, relativePath string) {
	for name := range unionNames(left, right) {
		childRelative := joinRelative(relativePath, name)
		leftKind := kindOf(left, name)
		rightKind := kindOf(right, name)

		switch {
		case leftKind == kindAbsent:
			m.addOneSided(dm, name, rightKind, right, false, childRelative)
		case rightKind == kindAbsent:
			m.addOneSided(dm, name, leftKind, left, true, childRelative)
		case leftKind == rightKind:
			m.mergePresent(dm, name, leftKind, left, right, childRelative)
		default:
			m.addKindConflict(dm, name, leftKind, rightKind, left, right, childRelative)
		}
	}
}

func (m *merger) addOneSided(dm *core.DirMapping, name string, kind entryKind, container *core.DirContainer, onLeft bool, relativePath string) {
	switch kind {
	case kindDir:
		child := dm.AddSubdir(name, onLeft, !onLeft)
		sub := container.Subdirs[name]
		if onLeft {
			m.mergeInto(child, sub, nil, relativePath)
		} else {
			m.mergeInto(child, nil, sub, relativePath)
		}
	case kindFile:
		dm.AddSubfileOneSided(name, container.Subfiles[name], onLeft)
	case kindLink:
		dm.AddSublinkOneSided(name, container.Sublinks[name], onLeft)
	}
}

func (m *merger) mergePresent(dm *core.DirMapping, name string, kind entryKind, left, right *core.DirContainer, relativePath string) {
	switch kind {
	case kindDir:
		child := dm.AddSubdir(name, true, true)
		leftPath := filepath.Join(m.leftRoot, filepath.FromSlash(relativePath))
		rightPath := filepath.Join(m.rightRoot, filepath.FromSlash(relativePath))
		if attrs, err := fs.ReadAttributes(leftPath); err == nil {
			child.LeftModTime = attrs.ModTime
		}
		if attrs, err := fs.ReadAttributes(rightPath); err == nil {
			child.RightModTime = attrs.ModTime
		}
		child.SetCompareResult(downgradeDirResult(child.LeftModTime, child.RightModTime))
		m.mergeInto(child, left.Subdirs[name], right.Subdirs[name], relativePath)
	case kindFile:
		leftDesc, rightDesc := left.Subfiles[name], right.Subfiles[name]
		child := dm.AddSubfile(name, leftDesc, rightDesc)
		leftPath := filepath.Join(m.leftRoot, filepath.FromSlash(relativePath))
		rightPath := filepath.Join(m.rightRoot, filepath.FromSlash(relativePath))
		result := categorizeFiles(m.variant, leftDesc, rightDesc, &fsByteReaders{leftPath, rightPath}, relativePath, m.progress)
		child.SetCompareResult(result)
	case kindLink:
		leftDesc, rightDesc := left.Sublinks[name], right.Sublinks[name]
		child := dm.AddSublink(name, leftDesc, rightDesc)
		child.SetCompareResult(categorizeSymlinks(leftDesc, rightDesc))
	}
}

// addKindConflict handles the case spec.md §4.4 step 3 calls out
// explicitly: the same name present on both sides but as different kinds
// (e.g. a directory on the left and a regular file on the right).
func (m *merger) addKindConflict(dm *core.DirMapping, name string, leftKind, rightKind entryKind, left, right *core.DirContainer, relativePath string) {
	description := fmt.Sprintf("kind mismatch: left is a %s, right is a %s", leftKind, rightKind)

	if leftKind == kindDir || rightKind == kindDir {
		child := dm.AddSubdir(name, true, true)
		child.SetCompareResult(core.CompareResultConflict)
		child.SetConflictDescription(description)
		if leftKind == kindDir {
			m.mergeInto(child, left.Subdirs[name], nil, relativePath)
		} else {
			m.mergeInto(child, nil, right.Subdirs[name], relativePath)
		}
		return
	}

	// Neither side is a directory, so this is a file-vs-symlink mismatch:
	// represented as a FileMapping conflict so it still counts as a single
	// leaf entry rather than spawning a synthetic directory for it.
	var leftDesc, rightDesc core.FileDescriptor
	if leftKind == kindFile {
		leftDesc = left.Subfiles[name]
	}
	if rightKind == kindFile {
		rightDesc = right.Subfiles[name]
	}
	child := dm.AddSubfile(name, leftDesc, rightDesc)
	child.SetCompareResult(core.CompareResultConflict)
	child.SetConflictDescription(description)
}
