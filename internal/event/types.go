package event

import (
	"slices"

	"github.com/zjrosen/gitpanes/internal/git/domain"
)

// Type identifies an event. Convention: "subject:action".
type Type string

const (
	CommitHistoryRefresh  Type = "commit-history:refresh"
	CommitHistorySetLimit Type = "commit-history:set-limit"
	CommitSelected        Type = "commit:selected"
	CommitDeselected      Type = "commit:deselected"

	CommitDetailLoading Type = "commit-detail:loading"
	CommitDetailLoaded  Type = "commit-detail:loaded"
	CommitDetailError   Type = "commit-detail:error"

	PullRequestsRefresh   Type = "pull-requests:refresh"
	PullRequestsSetFilter Type = "pull-requests:set-filter"
	PullRequestSelected   Type = "pull-request:selected"
	PullRequestDeselected Type = "pull-request:deselected"

	ConfigRefresh Type = "config:refresh"
	ConfigSetView Type = "config:set-view"
)

// wildcard is the internal subscription key used by Bus.OnAll.
const wildcard Type = "*"

var vocabulary = []Type{
	CommitHistoryRefresh,
	CommitHistorySetLimit,
	CommitSelected,
	CommitDeselected,
	CommitDetailLoading,
	CommitDetailLoaded,
	CommitDetailError,
	PullRequestsRefresh,
	PullRequestsSetFilter,
	PullRequestSelected,
	PullRequestDeselected,
	ConfigRefresh,
	ConfigSetView,
}

// Known reports whether t belongs to the event vocabulary.
func (t Type) Known() bool {
	return slices.Contains(vocabulary, t)
}

func (t Type) String() string { return string(t) }

// Types returns the full vocabulary in declaration order.
func Types() []Type {
	return slices.Clone(vocabulary)
}

// PRFilter is the pull request list filter.
type PRFilter string

const (
	FilterOpen   PRFilter = "open"
	FilterClosed PRFilter = "closed"
	FilterAll    PRFilter = "all"
)

// Valid reports whether f is one of open, closed or all.
func (f PRFilter) Valid() bool {
	return f == FilterOpen || f == FilterClosed || f == FilterAll
}

// ViewMode is the git config panel display mode.
type ViewMode string

const (
	ViewSummary  ViewMode = "summary"
	ViewDetailed ViewMode = "detailed"
)

// Valid reports whether m is summary or detailed.
func (m ViewMode) Valid() bool {
	return m == ViewSummary || m == ViewDetailed
}

// Payloads. Field names follow the JSON shapes tools send and receive.

// Empty is the payload of refresh and deselect events.
type Empty struct{}

// LimitChange is the payload of commit-history:set-limit.
type LimitChange struct {
	Limit int `json:"limit"`
}

// CommitSelection is the payload of commit:selected and commit-detail:loading.
type CommitSelection struct {
	Hash string `json:"hash"`
}

// CommitLoaded is the payload of commit-detail:loaded.
type CommitLoaded struct {
	Commit domain.CommitDetail `json:"commit"`
}

// CommitFailure is the payload of commit-detail:error.
type CommitFailure struct {
	Hash  string `json:"hash"`
	Error string `json:"error"`
}

// FilterChange is the payload of pull-requests:set-filter.
type FilterChange struct {
	Filter PRFilter `json:"filter"`
}

// PullRequestSelection is the payload of pull-request:selected.
type PullRequestSelection struct {
	PR domain.PullRequest `json:"pr"`
}

// ViewChange is the payload of config:set-view.
type ViewChange struct {
	Mode ViewMode `json:"mode"`
}
