package execute

import "github.com/dustin/go-humanize"

// String renders the pre-pass totals in the same human-friendly byte
// notation the teacher uses for its own transfer-size reporting (e.g.
// cmd/mutagen/sync/list.go's "Total file size: humanize.Bytes(...)"),
// so a caller can log or display Statistics directly.
func (s Statistics) String() string {
	return humanize.Bytes(s.BytesToLeft+s.BytesToRight) + " across " +
		humanize.Comma(int64(s.ItemsToLeft+s.ItemsToRight)) + " items" +
		conflictSuffix(s.Conflicts)
}

func conflictSuffix(conflicts int) string {
	if conflicts == 0 {
		return ""
	}
	if conflicts == 1 {
		return " (1 conflict)"
	}
	return " (" + humanize.Comma(int64(conflicts)) + " conflicts)"
}
