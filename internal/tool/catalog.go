package tool

import (
	"slices"

	"github.com/zjrosen/gitpanes/internal/event"
)

// Panel IDs the tools belong to.
const (
	PanelCommitHistory = "commit-history"
	PanelCommitDetail  = "commit-detail"
	PanelPullRequests  = "pull-requests"
	PanelPRDetail      = "pr-detail"
	PanelGitConfig     = "git-config"
)

func intPtr(v int) *int { return &v }

var emptyInput = Schema{Type: "object"}

func emittedOutput() Schema {
	return Schema{
		Type: "object",
		Properties: map[string]Property{
			"emitted":  {Type: "string", Description: "Event type that was emitted"},
			"event_id": {Type: "string", Description: "ID of the emitted event"},
		},
		Required: []string{"emitted", "event_id"},
	}
}

var catalog = []Descriptor{
	{
		Name:        RefreshCommitHistory,
		Description: "Reload the commit history from the repository.",
		Panel:       PanelCommitHistory,
		Input:       emptyInput,
		Output:      emittedOutput(),
		Tags:        []string{"commits", "refresh"},
		Dispatch:    Dispatch{Emits: event.CommitHistoryRefresh},
	},
	{
		Name:        SetCommitHistoryLimit,
		Description: "Set how many commits the history panel shows.",
		Panel:       PanelCommitHistory,
		Input: Schema{
			Type: "object",
			Properties: map[string]Property{
				"limit": {Type: "integer", Description: "Maximum number of commits to show", Minimum: intPtr(1)},
			},
			Required: []string{"limit"},
		},
		Output:   emittedOutput(),
		Tags:     []string{"commits"},
		Dispatch: Dispatch{Emits: event.CommitHistorySetLimit},
	},
	{
		Name:        SelectCommit,
		Description: "Open a commit in the commit detail panel. Accepts a full hash or a unique prefix.",
		Panel:       PanelCommitHistory,
		Input: Schema{
			Type: "object",
			Properties: map[string]Property{
				"hash": {Type: "string", Description: "Commit hash or unique prefix"},
			},
			Required: []string{"hash"},
		},
		Output:   emittedOutput(),
		Tags:     []string{"commits", "selection"},
		Dispatch: Dispatch{Emits: event.CommitSelected},
	},
	{
		Name:        CloseCommitDetail,
		Description: "Close the commit detail panel.",
		Panel:       PanelCommitDetail,
		Input:       emptyInput,
		Output:      emittedOutput(),
		Tags:        []string{"commits", "selection"},
		Dispatch:    Dispatch{Emits: event.CommitDeselected},
	},
	{
		Name:        RefreshPullRequests,
		Description: "Reload the pull request list.",
		Panel:       PanelPullRequests,
		Input:       emptyInput,
		Output:      emittedOutput(),
		Tags:        []string{"pull-requests", "refresh"},
		Dispatch:    Dispatch{Emits: event.PullRequestsRefresh},
	},
	{
		Name:        FilterPullRequests,
		Description: "Filter the pull request list by state.",
		Panel:       PanelPullRequests,
		Input: Schema{
			Type: "object",
			Properties: map[string]Property{
				"filter": {
					Type:        "string",
					Description: "Which pull requests to list",
					Enum:        []string{string(event.FilterOpen), string(event.FilterClosed), string(event.FilterAll)},
				},
			},
			Required: []string{"filter"},
		},
		Output:   emittedOutput(),
		Tags:     []string{"pull-requests"},
		Dispatch: Dispatch{Emits: event.PullRequestsSetFilter},
	},
	{
		Name:        SelectPullRequest,
		Description: "Open a pull request in the detail panel.",
		Panel:       PanelPullRequests,
		Input: Schema{
			Type: "object",
			Properties: map[string]Property{
				"number": {Type: "integer", Description: "Pull request number", Minimum: intPtr(1)},
			},
			Required: []string{"number"},
		},
		Output:   emittedOutput(),
		Tags:     []string{"pull-requests", "selection"},
		Dispatch: Dispatch{Emits: event.PullRequestSelected},
	},
	{
		Name:        ClosePullRequestDetail,
		Description: "Close the pull request detail panel.",
		Panel:       PanelPRDetail,
		Input:       emptyInput,
		Output:      emittedOutput(),
		Tags:        []string{"pull-requests", "selection"},
		Dispatch:    Dispatch{Emits: event.PullRequestDeselected},
	},
	{
		Name:        RefreshGitConfig,
		Description: "Reload the git configuration.",
		Panel:       PanelGitConfig,
		Input:       emptyInput,
		Output:      emittedOutput(),
		Tags:        []string{"config", "refresh"},
		Dispatch:    Dispatch{Emits: event.ConfigRefresh},
	},
	{
		Name:        SetGitConfigView,
		Description: "Switch the git config panel between the summary and the flat entry list.",
		Panel:       PanelGitConfig,
		Input: Schema{
			Type: "object",
			Properties: map[string]Property{
				"mode": {
					Type:        "string",
					Description: "Display mode",
					Enum:        []string{string(event.ViewSummary), string(event.ViewDetailed)},
				},
			},
			Required: []string{"mode"},
		},
		Output:   emittedOutput(),
		Tags:     []string{"config"},
		Dispatch: Dispatch{Emits: event.ConfigSetView},
	},
}

// Catalog returns every tool descriptor.
func Catalog() []Descriptor {
	return slices.Clone(catalog)
}

// ForPanel returns the names of the tools belonging to a panel.
func ForPanel(panelID string) []string {
	var names []string
	for _, d := range catalog {
		if d.Panel == panelID {
			names = append(names, d.Name)
		}
	}
	return names
}

// Lookup finds a descriptor by name.
func Lookup(name string) (Descriptor, bool) {
	i := slices.IndexFunc(catalog, func(d Descriptor) bool { return d.Name == name })
	if i < 0 {
		return Descriptor{}, false
	}
	return catalog[i], true
}
