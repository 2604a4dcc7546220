package gitconfig

import "github.com/zjrosen/gitpanes/internal/git/domain"

// SectionID names a group of the summary view.
type SectionID string

const (
	SectionUser        SectionID = "user"
	SectionRemotes     SectionID = "remotes"
	SectionBranches    SectionID = "branches"
	SectionCore        SectionID = "core"
	SectionPerformance SectionID = "performance"
	SectionTransfer    SectionID = "transfer"
	SectionMergeDiff   SectionID = "merge-diff"
	SectionCommit      SectionID = "commit"
)

var sectionOrder = []SectionID{
	SectionUser,
	SectionRemotes,
	SectionBranches,
	SectionCore,
	SectionPerformance,
	SectionTransfer,
	SectionMergeDiff,
	SectionCommit,
}

var sectionTitles = map[SectionID]string{
	SectionUser:        "User",
	SectionRemotes:     "Remotes",
	SectionBranches:    "Branches",
	SectionCore:        "Core",
	SectionPerformance: "Performance",
	SectionTransfer:    "Transfer",
	SectionMergeDiff:   "Merge & Diff",
	SectionCommit:      "Commit",
}

// defaultExpanded is the expansion state on mount.
func defaultExpanded() map[SectionID]bool {
	return map[SectionID]bool{
		SectionUser:     true,
		SectionRemotes:  true,
		SectionBranches: true,
	}
}

// row is one line of a section. Boolean settings carry a tri-state instead
// of a value.
type row struct {
	label   string
	value   string
	boolean bool
	state   domain.BoolState
	current bool // branches only
}

func text(label, value string) row { return row{label: label, value: value} }

func flag(label string, b *bool) row {
	return row{label: label, boolean: true, state: domain.TriState(b)}
}

type section struct {
	id    SectionID
	title string
	count int // shown for list sections, -1 otherwise
	rows  []row
}

// buildSections groups cfg into the summary sections in display order.
func buildSections(cfg domain.GitConfig) []section {
	out := make([]section, 0, len(sectionOrder))
	for _, id := range sectionOrder {
		s := section{id: id, title: sectionTitles[id], count: -1}
		switch id {
		case SectionUser:
			s.rows = []row{
				text("Name", cfg.User.Name),
				text("Email", cfg.User.Email),
				text("Signing key", cfg.User.SigningKey),
			}
		case SectionRemotes:
			s.count = len(cfg.Remotes)
			for _, r := range cfg.Remotes {
				url := r.FetchURL
				if r.PushURL != "" && r.PushURL != r.FetchURL {
					url += " (push " + r.PushURL + ")"
				}
				s.rows = append(s.rows, text(r.Name, url))
			}
		case SectionBranches:
			s.count = len(cfg.Branches)
			for _, b := range cfg.Branches {
				r := text(b.Name, "")
				if b.Upstream != "" {
					r.value = "→ " + b.Upstream
				}
				r.current = b.IsCurrent
				s.rows = append(s.rows, r)
			}
		case SectionCore:
			c := cfg.Core
			s.rows = []row{
				text("Editor", c.Editor),
				text("Autocrlf", c.AutoCRLF),
				flag("File mode", c.FileMode),
				flag("Ignore case", c.IgnoreCase),
				flag("Bare", c.Bare),
				text("Hooks path", c.HooksPath),
				text("Excludes file", c.ExcludesFile),
			}
		case SectionPerformance:
			p := cfg.Performance
			s.rows = []row{
				flag("FS monitor", p.FSMonitor),
				flag("Untracked cache", p.UntrackedCache),
				flag("Preload index", p.PreloadIndex),
				flag("Many files", p.ManyFiles),
				flag("Commit graph", p.CommitGraph),
				text("Pack threads", p.PackThreads),
			}
		case SectionTransfer:
			t := cfg.Transfer
			s.rows = []row{
				flag("Pull rebase", t.PullRebase),
				text("Push default", t.PushDefault),
				flag("Auto setup remote", t.AutoSetupRemote),
				flag("Fetch prune", t.FetchPrune),
			}
		case SectionMergeDiff:
			md := cfg.MergeDiff
			s.rows = []row{
				text("Merge tool", md.MergeTool),
				text("Diff tool", md.DiffTool),
				text("Conflict style", md.ConflictStyle),
				text("Merge ff", md.MergeFF),
				flag("Rerere", md.RerereEnabled),
				text("Color moved", md.ColorMoved),
			}
		case SectionCommit:
			c := cfg.Commit
			s.rows = []row{
				flag("GPG sign", c.GPGSign),
				text("Template", c.Template),
				flag("Verbose", c.Verbose),
			}
		}
		out = append(out, s)
	}
	return out
}
