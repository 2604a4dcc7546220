package domain

import (
	"fmt"
	"time"
)

// PRState is the forge-reported state of a pull request.
type PRState string

const (
	PRStateOpen   PRState = "open"
	PRStateClosed PRState = "closed"
)

// PRStatus is the display status derived from state, draft and merge info.
type PRStatus string

const (
	PRStatusOpen   PRStatus = "open"
	PRStatusDraft  PRStatus = "draft"
	PRStatusMerged PRStatus = "merged"
	PRStatusClosed PRStatus = "closed"
)

// Label returns the human-readable status label.
func (s PRStatus) Label() string {
	switch s {
	case PRStatusOpen:
		return "Open"
	case PRStatusDraft:
		return "Draft"
	case PRStatusMerged:
		return "Merged"
	case PRStatusClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

// PRUser is the author of a pull request.
type PRUser struct {
	Login     string `yaml:"login" json:"login"`
	AvatarURL string `yaml:"avatar_url,omitempty" json:"avatar_url,omitempty"`
}

// PRRef is a branch reference on either side of a pull request.
type PRRef struct {
	Ref string `yaml:"ref" json:"ref"`
}

// PullRequest mirrors the forge fields the panels display.
// Optional fields are pointers; nil means the forge did not report them.
type PullRequest struct {
	ID             int64   `yaml:"id" json:"id"`
	Number         int     `yaml:"number" json:"number"`
	Title          string  `yaml:"title" json:"title"`
	Body           string  `yaml:"body,omitempty" json:"body,omitempty"`
	State          PRState `yaml:"state" json:"state"`
	Draft          bool    `yaml:"draft,omitempty" json:"draft,omitempty"`
	HTMLURL        string  `yaml:"html_url" json:"html_url"`
	User           *PRUser `yaml:"user,omitempty" json:"user,omitempty"`
	CreatedAt      string  `yaml:"created_at" json:"created_at"`
	UpdatedAt      string  `yaml:"updated_at" json:"updated_at"`
	ClosedAt       *string `yaml:"closed_at,omitempty" json:"closed_at,omitempty"`
	MergedAt       *string `yaml:"merged_at,omitempty" json:"merged_at,omitempty"`
	Base           *PRRef  `yaml:"base,omitempty" json:"base,omitempty"`
	Head           *PRRef  `yaml:"head,omitempty" json:"head,omitempty"`
	Comments       *int    `yaml:"comments,omitempty" json:"comments,omitempty"`
	ReviewComments *int    `yaml:"review_comments,omitempty" json:"review_comments,omitempty"`
}

// IsMerged reports whether the pull request carries a merge timestamp.
func (pr PullRequest) IsMerged() bool {
	return pr.MergedAt != nil && *pr.MergedAt != ""
}

// Status derives the display status. A merged PR is always reported as merged,
// even when the forge omitted the closed state.
func (pr PullRequest) Status() PRStatus {
	switch {
	case pr.IsMerged():
		return PRStatusMerged
	case pr.State == PRStateClosed:
		return PRStatusClosed
	case pr.Draft:
		return PRStatusDraft
	default:
		return PRStatusOpen
	}
}

// Validate checks the state invariants: an open PR has neither closed_at nor
// merged_at, and a merged PR is closed.
func (pr PullRequest) Validate() error {
	switch pr.State {
	case PRStateOpen:
		if pr.IsMerged() {
			return fmt.Errorf("#%d is open but has merged_at: %w", pr.Number, ErrInvalidPullRequestState)
		}
		if pr.ClosedAt != nil && *pr.ClosedAt != "" {
			return fmt.Errorf("#%d is open but has closed_at: %w", pr.Number, ErrInvalidPullRequestState)
		}
	case PRStateClosed:
	default:
		return fmt.Errorf("#%d has unknown state %q: %w", pr.Number, pr.State, ErrInvalidPullRequestState)
	}
	return nil
}

// UpdatedTime returns the parsed updated_at timestamp.
func (pr PullRequest) UpdatedTime() (time.Time, bool) {
	return ParseTimestamp(pr.UpdatedAt)
}

// CommentCount returns issue plus review comments, treating missing counts as zero.
func (pr PullRequest) CommentCount() int {
	n := 0
	if pr.Comments != nil {
		n += *pr.Comments
	}
	if pr.ReviewComments != nil {
		n += *pr.ReviewComments
	}
	return n
}

// BaseRef returns the base branch name or "" when unknown.
func (pr PullRequest) BaseRef() string {
	if pr.Base == nil {
		return ""
	}
	return pr.Base.Ref
}

// HeadRef returns the head branch name or "" when unknown.
func (pr PullRequest) HeadRef() string {
	if pr.Head == nil {
		return ""
	}
	return pr.Head.Ref
}

// Author returns the author login or "" when unknown.
func (pr PullRequest) Author() string {
	if pr.User == nil {
		return ""
	}
	return pr.User.Login
}
