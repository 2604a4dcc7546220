package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCommitInfo_ShortHash(t *testing.T) {
	c := CommitInfo{Hash: "0123456789abcdef0123456789abcdef01234567"}
	require.Equal(t, "01234567", c.ShortHash())

	short := CommitInfo{Hash: "abc"}
	require.Equal(t, "abc", short.ShortHash())
}

func TestCommitInfo_SubjectAndBody(t *testing.T) {
	tests := []struct {
		name    string
		message string
		subject string
		body    string
	}{
		{"single line", "Fix parser", "Fix parser", ""},
		{"with body", "Add cache\n\nCaches commit details by hash.", "Add cache", "Caches commit details by hash."},
		{"trailing newline", "Bump deps\n", "Bump deps", ""},
		{"empty", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CommitInfo{Message: tt.message}
			require.Equal(t, tt.subject, c.Subject())
			require.Equal(t, tt.body, c.Body())
		})
	}
}

func TestParseTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 5, 10, 30, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   string
		ok   bool
	}{
		{"rfc3339", "2024-03-05T10:30:00Z", true},
		{"rfc3339 nano", "2024-03-05T10:30:00.000Z", true},
		{"no zone", "2024-03-05T10:30:00", true},
		{"git default", "2024-03-05 10:30:00 +0000", true},
		{"empty", "", false},
		{"garbage", "not-a-date", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseTimestamp(tt.in)
			require.Equal(t, tt.ok, ok)
			if ok {
				require.True(t, want.Equal(got), "got %v", got)
			}
		})
	}

	day, ok := ParseTimestamp("2024-03-05")
	require.True(t, ok)
	require.Equal(t, 5, day.Day())
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int { return &n }

func TestPullRequest_Status(t *testing.T) {
	tests := []struct {
		name string
		pr   PullRequest
		want PRStatus
	}{
		{"open", PullRequest{State: PRStateOpen}, PRStatusOpen},
		{"draft", PullRequest{State: PRStateOpen, Draft: true}, PRStatusDraft},
		{"closed", PullRequest{State: PRStateClosed, ClosedAt: strPtr("2024-01-01T00:00:00Z")}, PRStatusClosed},
		{"merged", PullRequest{State: PRStateClosed, MergedAt: strPtr("2024-01-01T00:00:00Z")}, PRStatusMerged},
		{"empty merged_at is not merged", PullRequest{State: PRStateClosed, MergedAt: strPtr("")}, PRStatusClosed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.pr.Status())
		})
	}
	require.Equal(t, "Merged", PRStatusMerged.Label())
	require.Equal(t, "Closed", PRStatusClosed.Label())
	require.NotEqual(t, PRStatusMerged.Label(), PRStatusClosed.Label())
}

func TestPullRequest_Validate(t *testing.T) {
	ts := strPtr("2024-01-01T00:00:00Z")

	require.NoError(t, PullRequest{State: PRStateOpen}.Validate())
	require.NoError(t, PullRequest{State: PRStateClosed, ClosedAt: ts, MergedAt: ts}.Validate())

	err := PullRequest{Number: 7, State: PRStateOpen, MergedAt: ts}.Validate()
	require.ErrorIs(t, err, ErrInvalidPullRequestState)

	err = PullRequest{Number: 8, State: PRStateOpen, ClosedAt: ts}.Validate()
	require.ErrorIs(t, err, ErrInvalidPullRequestState)

	err = PullRequest{Number: 9, State: "merged"}.Validate()
	require.ErrorIs(t, err, ErrInvalidPullRequestState)
}

func TestPullRequest_Accessors(t *testing.T) {
	pr := PullRequest{
		User:           &PRUser{Login: "octocat"},
		Base:           &PRRef{Ref: "main"},
		Head:           &PRRef{Ref: "feature/x"},
		Comments:       intPtr(2),
		ReviewComments: intPtr(3),
	}
	require.Equal(t, "octocat", pr.Author())
	require.Equal(t, "main", pr.BaseRef())
	require.Equal(t, "feature/x", pr.HeadRef())
	require.Equal(t, 5, pr.CommentCount())

	var empty PullRequest
	require.Empty(t, empty.Author())
	require.Empty(t, empty.BaseRef())
	require.Empty(t, empty.HeadRef())
	require.Zero(t, empty.CommentCount())
}

func TestTriState(t *testing.T) {
	yes, no := true, false
	require.Equal(t, BoolUnset, TriState(nil))
	require.Equal(t, BoolEnabled, TriState(&yes))
	require.Equal(t, BoolDisabled, TriState(&no))
}

func TestValidateHash(t *testing.T) {
	require.NoError(t, ValidateHash("0123456789abcdef0123456789abcdef01234567"))
	require.ErrorIs(t, ValidateHash("0123456"), ErrInvalidHash)
	require.ErrorIs(t, ValidateHash("0123456789ABCDEF0123456789abcdef01234567"), ErrInvalidHash)
	require.ErrorIs(t, ValidateHash("0123456789abcdeg0123456789abcdef01234567"), ErrInvalidHash)
}
