package compare

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/foldersync/foldersync/pkg/contextutil"
	"github.com/foldersync/foldersync/pkg/core"
	"github.com/foldersync/foldersync/pkg/core/filter"
	"github.com/foldersync/foldersync/pkg/foldersync"
	"github.com/foldersync/foldersync/pkg/fs"
	"github.com/foldersync/foldersync/pkg/logging"
	"github.com/foldersync/foldersync/pkg/must"
)

// scanner performs a single-side traversal (spec.md §4.4 step 2),
// producing a tree of DirContainers. One scanner is used per side; its
// visitedDirs set is therefore never shared across sides.
type scanner struct {
	ctx           context.Context
	side          string
	hardFilter    *filter.HardFilter
	symlinkPolicy core.SymlinkPolicy
	progress      ProgressSink
	logger        *logging.Logger
	visitedDirs   map[string]bool
}

func newScanner(ctx context.Context, side string, hardFilter *filter.HardFilter, symlinkPolicy core.SymlinkPolicy, progress ProgressSink, logger *logging.Logger) *scanner {
	return &scanner{
		ctx:           ctx,
		side:          side,
		hardFilter:    hardFilter,
		symlinkPolicy: symlinkPolicy,
		progress:      progress,
		logger:        logger,
		visitedDirs:   make(map[string]bool),
	}
}

// scanDir traverses fullPath non-recursively-named-but-recursive and
// returns the DirContainer mirroring it. relativePath is the slash-joined
// path from the traversal root, used for hard-filter matching and progress
// reporting.
func (s *scanner) scanDir(fullPath, relativePath string) (*core.DirContainer, error) {
	if contextutil.IsCancelled(s.ctx) {
		return nil, errors.New("scan cancelled")
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read directory %q", fullPath)
	}

	container := core.NewDirContainer()
	for _, entry := range entries {
		name := entry.Name()
		childRelative := joinRelative(relativePath, name)
		if !s.hardFilter.Included(childRelative) {
			continue
		}
		childFull := filepath.Join(fullPath, name)

		if !entry.IsDir() && strings.HasSuffix(name, foldersync.StagingExtension) {
			// A leftover staging file from a crashed run on this same base
			// (spec.md §6): it never got renamed into place, so it carries
			// no meaningful content to compare. It is eligible for
			// automatic deletion regardless of the configured deletion
			// policy, the same way the executor's own scope guards remove
			// an in-flight staging file on cancellation.
			must.OSRemove(childFull, s.logger)
			continue
		}

		key := core.NameKey(name)

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.Mode()&os.ModeSymlink != 0 {
			s.addSymlink(container, key, childFull, childRelative)
			continue
		}

		if info.IsDir() {
			child, err := s.scanDir(childFull, childRelative)
			if err != nil {
				continue
			}
			container.Subdirs[key] = child
			s.reportScanned(childRelative)
			continue
		}

		descriptor, err := fileDescriptor(childFull)
		if err != nil {
			continue
		}
		container.Subfiles[key] = descriptor
		s.reportScanned(childRelative)
	}
	return container, nil
}

// addSymlink dispatches a symlink entry according to the active
// SymlinkPolicy: dropped under Ignore, recorded as a link under
// UseDirectly, or dereferenced under Follow.
func (s *scanner) addSymlink(container *core.DirContainer, key, fullPath, relativePath string) {
	switch s.symlinkPolicy {
	case core.SymlinkPolicyIgnore:
		return
	case core.SymlinkPolicyUseDirectly:
		descriptor, err := symlinkDescriptor(fullPath)
		if err != nil {
			return
		}
		container.Sublinks[key] = descriptor
		s.reportScanned(relativePath)
	case core.SymlinkPolicyFollow:
		s.followSymlink(container, key, fullPath, relativePath)
	}
}

// followSymlink dereferences a symlink and folds it into Subdirs or
// Subfiles as though it were an ordinary entry of the target's type. A
// directory target already reached through a followed symlink earlier in
// this side's traversal (by resolved real path) is treated as an empty
// directory rather than being recursed into again, which is what keeps a
// self- or mutually-referential chain of links from recursing forever.
// Directories entered directly, not through a link, are not recorded, so a
// link back to one of them is followed once before the repeat is caught.
func (s *scanner) followSymlink(container *core.DirContainer, key, fullPath, relativePath string) {
	target, err := os.Stat(fullPath)
	if err != nil {
		// Dangling symlink under Follow: nothing sensible to report: drop
		// it, same as a permission-denied entry elsewhere in the scan.
		return
	}

	if !target.IsDir() {
		descriptor, err := fileDescriptor(fullPath)
		if err != nil {
			return
		}
		container.Subfiles[key] = descriptor
		s.reportScanned(relativePath)
		return
	}

	real, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		real = fullPath
	}
	if s.visitedDirs[real] {
		container.Subdirs[key] = core.NewDirContainer()
		return
	}
	s.visitedDirs[real] = true

	child, err := s.scanDir(fullPath, relativePath)
	if err != nil {
		return
	}
	container.Subdirs[key] = child
	s.reportScanned(relativePath)
}

func (s *scanner) reportScanned(relativePath string) {
	if s.progress != nil {
		s.progress.OnScanned(s.side, relativePath)
	}
}

func fileDescriptor(path string) (core.FileDescriptor, error) {
	attributes, err := fs.ReadAttributes(path)
	if err != nil {
		return core.FileDescriptor{}, err
	}
	return core.FileDescriptor{
		Size:             attributes.Size,
		ModificationTime: attributes.ModTime,
		FileID:           attributes.FileID,
	}, nil
}

func symlinkDescriptor(path string) (core.SymlinkDescriptor, error) {
	attributes, err := fs.ReadAttributes(path)
	if err != nil {
		return core.SymlinkDescriptor{}, err
	}
	target, err := fs.GetSymlinkTargetText(path)
	kind := core.SymbolicLinkKindFile
	if err != nil {
		target = ""
	} else {
		resolved := target
		if !filepath.IsAbs(resolved) {
			resolved = filepath.Join(filepath.Dir(path), target)
		}
		if info, statErr := os.Stat(resolved); statErr == nil && info.IsDir() {
			kind = core.SymbolicLinkKindDirectory
		}
	}
	return core.SymlinkDescriptor{
		ModificationTime: attributes.ModTime,
		Target:           target,
		Kind:             kind,
	}, nil
}

func joinRelative(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}
