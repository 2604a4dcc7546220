package commithistory

import (
	"slices"

	"github.com/zjrosen/gitpanes/internal/git/domain"
)

// DefaultLimit is the number of commits shown when none is configured.
const DefaultLimit = 25

// Visible returns commits newest first, capped at limit. Commits with
// unparsable dates keep their relative order after the dated ones. The input
// is not modified.
func Visible(commits []domain.CommitInfo, limit int) []domain.CommitInfo {
	sorted := slices.Clone(commits)
	slices.SortStableFunc(sorted, func(a, b domain.CommitInfo) int {
		ta, okA := a.Time()
		tb, okB := b.Time()
		switch {
		case okA && okB:
			return tb.Compare(ta)
		case okA:
			return -1
		case okB:
			return 1
		}
		return 0
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted
}
