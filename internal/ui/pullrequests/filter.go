package pullrequests

import (
	"slices"

	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/git/domain"
)

// DefaultFilter is used when the configured filter is missing or invalid.
const DefaultFilter = event.FilterOpen

// filterOrder is the tab order and the cycle order of the filter key.
var filterOrder = []event.PRFilter{event.FilterOpen, event.FilterClosed, event.FilterAll}

// Matches reports whether pr belongs under filter f. Drafts are open; merged
// pull requests are closed.
func Matches(pr domain.PullRequest, f event.PRFilter) bool {
	switch f {
	case event.FilterAll:
		return true
	case event.FilterClosed:
		s := pr.Status()
		return s == domain.PRStatusClosed || s == domain.PRStatusMerged
	case event.FilterOpen:
		s := pr.Status()
		return s == domain.PRStatusOpen || s == domain.PRStatusDraft
	}
	return false
}

// Counts are the badge numbers per filter value.
type Counts struct {
	Open   int
	Closed int
	All    int
}

// For returns the count for filter f.
func (c Counts) For(f event.PRFilter) int {
	switch f {
	case event.FilterOpen:
		return c.Open
	case event.FilterClosed:
		return c.Closed
	}
	return c.All
}

// Count computes the badge numbers over the full list.
func Count(prs []domain.PullRequest) Counts {
	c := Counts{All: len(prs)}
	for _, pr := range prs {
		if Matches(pr, event.FilterOpen) {
			c.Open++
		} else {
			c.Closed++
		}
	}
	return c
}

// Visible returns the pull requests under filter f, most recently updated
// first. Undated entries keep their relative order at the end.
func Visible(prs []domain.PullRequest, f event.PRFilter) []domain.PullRequest {
	out := make([]domain.PullRequest, 0, len(prs))
	for _, pr := range prs {
		if Matches(pr, f) {
			out = append(out, pr)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.PullRequest) int {
		ta, okA := a.UpdatedTime()
		tb, okB := b.UpdatedTime()
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
	return out
}

func nextFilter(f event.PRFilter) event.PRFilter {
	i := slices.Index(filterOrder, f)
	return filterOrder[(i+1)%len(filterOrder)]
}

func filterLabel(f event.PRFilter) string {
	switch f {
	case event.FilterOpen:
		return "Open"
	case event.FilterClosed:
		return "Closed"
	}
	return "All"
}
