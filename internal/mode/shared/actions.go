// Package shared holds host helpers used by the dashboard: user-defined
// shell actions and the system clipboard.
package shared

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
	"text/template"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gitpanes/internal/config"
	"github.com/zjrosen/gitpanes/internal/git/domain"
	"github.com/zjrosen/gitpanes/internal/log"
)

// ActionContext is the data a user action command template renders against.
// Commit fields are empty when a pull request is selected and vice versa.
type ActionContext struct {
	Hash      string
	ShortHash string
	Subject   string
	Author    string

	Number int
	Title  string
	URL    string
	Head   string
	Base   string
}

// CommitContext builds an ActionContext for a commit.
func CommitContext(c domain.CommitInfo) ActionContext {
	return ActionContext{
		Hash:      c.Hash,
		ShortHash: c.ShortHash(),
		Subject:   c.Subject(),
		Author:    c.Author,
	}
}

// PullRequestContext builds an ActionContext for a pull request.
func PullRequestContext(pr domain.PullRequest) ActionContext {
	ctx := ActionContext{
		Number: pr.Number,
		Title:  pr.Title,
		URL:    pr.HTMLURL,
	}
	if pr.User != nil {
		ctx.Author = pr.User.Login
	}
	if pr.Head != nil {
		ctx.Head = pr.Head.Ref
	}
	if pr.Base != nil {
		ctx.Base = pr.Base.Ref
	}
	return ctx
}

// Empty reports whether nothing is selected.
func (c ActionContext) Empty() bool {
	return c.Hash == "" && c.Number == 0
}

// renderCommand executes tmpl against ctx. Commands without "{{" are returned
// unparsed. Missing fields are errors.
func renderCommand(tmpl string, ctx ActionContext) (string, error) {
	if !strings.Contains(tmpl, "{{") {
		return tmpl, nil
	}

	t, err := template.New("action").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("invalid template: %w", err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// ActionExecutedMsg reports that a user action was launched or failed to start.
type ActionExecutedMsg struct {
	Name string
	Err  error
}

// ExecuteAction renders the action's command and starts it with sh -c in
// workDir. It does not wait for the command to finish.
func ExecuteAction(action config.ActionConfig, actx ActionContext, workDir string) tea.Cmd {
	return func() tea.Msg {
		rendered, err := renderCommand(action.Command, actx)
		if err != nil {
			return ActionExecutedMsg{
				Name: action.Description,
				Err:  fmt.Errorf("template rendering failed: %w", err),
			}
		}

		log.Debug(log.CatHost, "Executing user action",
			"action", action.Description,
			"command", rendered,
			"workDir", workDir)

		// #nosec G204 -- command is user-configured
		cmd := exec.Command("sh", "-c", rendered)
		cmd.Dir = workDir
		if err := cmd.Start(); err != nil {
			return ActionExecutedMsg{
				Name: action.Description,
				Err:  fmt.Errorf("failed to start command: %w", err),
			}
		}

		log.Debug(log.CatHost, "User action launched",
			"action", action.Description,
			"pid", cmd.Process.Pid)

		// Reap the child so it doesn't linger as a zombie.
		go func() { _ = cmd.Wait() }()

		return ActionExecutedMsg{Name: action.Description}
	}
}

// MatchUserAction returns the action bound to the key in msg, with its name.
func MatchUserAction(msg tea.KeyMsg, actions map[string]config.ActionConfig) (config.ActionConfig, string, bool) {
	if len(actions) == 0 {
		return config.ActionConfig{}, "", false
	}

	pressed := config.NormalizeKey(msg.String())
	for name, action := range actions {
		if config.NormalizeKey(action.Key) == pressed {
			return action, name, true
		}
	}
	return config.ActionConfig{}, "", false
}
