package filter

import "github.com/foldersync/foldersync/pkg/core"

// SoftFilter evaluates the time-window and size-bound criteria that mark a
// node active or inactive without removing it from the tree, so that an
// inactive item still counts toward directory emptiness and still shows
// up (but unmarked for synchronization) in comparison reports.
type SoftFilter struct {
	window core.TimeSpan
	size   core.SizeRange
}

// NewSoftFilter intersects the global and per-pair time/size windows: an
// item must satisfy both to be active.
func NewSoftFilter(global, pair core.FilterConfig) *SoftFilter {
	return &SoftFilter{
		window: intersectTimeSpan(global.TimeWindow, pair.TimeWindow),
		size:   intersectSizeRange(global.SizeWindow, pair.SizeWindow),
	}
}

func intersectTimeSpan(a, b core.TimeSpan) core.TimeSpan {
	result := core.TimeSpan{From: a.From, To: a.To}
	if b.From != 0 && (result.From == 0 || b.From > result.From) {
		result.From = b.From
	}
	if b.To != 0 && (result.To == 0 || b.To < result.To) {
		result.To = b.To
	}
	return result
}

func intersectSizeRange(a, b core.SizeRange) core.SizeRange {
	result := core.SizeRange{Min: a.Min, Max: a.Max}
	if b.Min != 0 && b.Min > result.Min {
		result.Min = b.Min
	}
	if b.Max != 0 && (result.Max == 0 || b.Max < result.Max) {
		result.Max = b.Max
	}
	return result
}

// Active reports whether a file of the given modification time and size
// falls within the filter's windows. Directories and symlinks are always
// active: the soft filter's time/size criteria only meaningfully apply to
// regular file content.
func (f *SoftFilter) Active(modificationTime int64, size uint64) bool {
	return f.window.Contains(modificationTime) && f.size.Contains(size)
}

// SetActive applies the soft filter to every FileMapping in a subtree,
// comparing each side's own modification time and size independently and
// marking the node active only if at least one present side is active —
// an item should remain synchronizable as long as either side currently
// matches the window, since the filter describes what the user wants
// touched, not a permanent exclusion.
func (f *SoftFilter) SetActive(root *core.BaseDirMapping) {
	root.Walk(func(object core.HierarchyObject, _ string) {
		file, ok := object.(*core.FileMapping)
		if !ok {
			return
		}
		active := false
		if file.LeftPresent() && f.Active(file.LeftDescriptor.ModificationTime, file.LeftDescriptor.Size) {
			active = true
		}
		if file.RightPresent() && f.Active(file.RightDescriptor.ModificationTime, file.RightDescriptor.Size) {
			active = true
		}
		file.SetActive(active)
	})
}
