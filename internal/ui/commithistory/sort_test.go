package commithistory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/gitpanes/internal/git/domain"
)

func commit(hash, date string) domain.CommitInfo {
	return domain.CommitInfo{Hash: hash, Message: "msg " + hash, Author: "dev", Date: date}
}

func hashes(cs []domain.CommitInfo) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Hash
	}
	return out
}

func TestVisible_SortsNewestFirst(t *testing.T) {
	in := []domain.CommitInfo{
		commit("old", "2024-01-01T00:00:00Z"),
		commit("new", "2024-03-01T00:00:00Z"),
		commit("mid", "2024-02-01T00:00:00Z"),
	}
	require.Equal(t, []string{"new", "mid", "old"}, hashes(Visible(in, 0)))
	require.Equal(t, "old", in[0].Hash, "input untouched")
}

func TestVisible_SortsBeforeCapping(t *testing.T) {
	in := []domain.CommitInfo{
		commit("c1", "2024-01-01T00:00:00Z"),
		commit("c2", "2024-01-02T00:00:00Z"),
		commit("c3", "2024-01-03T00:00:00Z"),
	}
	require.Equal(t, []string{"c3", "c2"}, hashes(Visible(in, 2)))
}

func TestVisible_StableOnTiesAndInvalidLast(t *testing.T) {
	in := []domain.CommitInfo{
		commit("bad1", "yesterday"),
		commit("tie1", "2024-01-01T00:00:00Z"),
		commit("bad2", ""),
		commit("tie2", "2024-01-01T00:00:00Z"),
		commit("newest", "2024-01-02 10:00:00 +0000"),
	}
	require.Equal(t, []string{"newest", "tie1", "tie2", "bad1", "bad2"}, hashes(Visible(in, 0)))
}

func TestVisible_MixedOffsets(t *testing.T) {
	in := []domain.CommitInfo{
		commit("utc", "2024-01-01T10:00:00Z"),
		// 09:30 UTC
		commit("plus", "2024-01-01 11:30:00 +0200"),
	}
	require.Equal(t, []string{"utc", "plus"}, hashes(Visible(in, 0)))
}

func TestVisible_NonPositiveLimitShowsAll(t *testing.T) {
	in := []domain.CommitInfo{commit("a", ""), commit("b", "")}
	require.Len(t, Visible(in, 0), 2)
	require.Len(t, Visible(in, -3), 2)
	require.Empty(t, Visible(nil, 5))
}

func TestVisible_Property(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 40).Draw(t, "n")
		in := make([]domain.CommitInfo, n)
		for i := range in {
			date := "not a date"
			if rapid.Bool().Draw(t, "dated") {
				offset := rapid.IntRange(0, 500).Draw(t, "hours")
				date = base.Add(time.Duration(offset) * time.Hour).Format(time.RFC3339)
			}
			in[i] = domain.CommitInfo{Hash: string(rune('a' + i%26)), Date: date}
		}
		limit := rapid.IntRange(-1, 50).Draw(t, "limit")

		out := Visible(in, limit)

		wantLen := n
		if limit > 0 && limit < n {
			wantLen = limit
		}
		if len(out) != wantLen {
			t.Fatalf("len %d, want %d", len(out), wantLen)
		}
		seenUndated := false
		for i, c := range out {
			ti, ok := c.Time()
			if !ok {
				seenUndated = true
				continue
			}
			if seenUndated {
				t.Fatalf("dated commit after undated at %d", i)
			}
			if i > 0 {
				if prev, ok := out[i-1].Time(); ok && prev.Before(ti) {
					t.Fatalf("not descending at %d", i)
				}
			}
		}
	})
}

func TestScrollStart(t *testing.T) {
	require.Equal(t, 0, scrollStart(0, 5))
	require.Equal(t, 0, scrollStart(4, 5))
	require.Equal(t, 1, scrollStart(5, 5))
	require.Equal(t, 0, scrollStart(3, 0))
}
