// Package tool describes the panel operations an agent or script can drive,
// and invokes them by emitting the matching bus event.
package tool

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/gitpanes/internal/event"
)

// Tool names.
const (
	RefreshCommitHistory   = "refresh_commit_history"
	SetCommitHistoryLimit  = "set_commit_history_limit"
	SelectCommit           = "select_commit"
	CloseCommitDetail      = "close_commit_detail"
	RefreshPullRequests    = "refresh_pull_requests"
	FilterPullRequests     = "filter_pull_requests"
	SelectPullRequest      = "select_pull_request"
	ClosePullRequestDetail = "close_pull_request_detail"
	RefreshGitConfig       = "refresh_git_config"
	SetGitConfigView       = "set_git_config_view"
)

// Property describes one input or output field.
type Property struct {
	Type        string   `yaml:"type" json:"type"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Enum        []string `yaml:"enum,omitempty" json:"enum,omitempty"`
	Minimum     *int     `yaml:"minimum,omitempty" json:"minimum,omitempty"`
}

// Schema is the subset of JSON Schema the tools use: a flat object.
type Schema struct {
	Type       string              `yaml:"type" json:"type"`
	Properties map[string]Property `yaml:"properties,omitempty" json:"properties,omitempty"`
	Required   []string            `yaml:"required,omitempty" json:"required,omitempty"`
}

// Dispatch says what invoking the tool does.
type Dispatch struct {
	Emits event.Type `yaml:"emits" json:"emits"`
}

// Descriptor is the serializable description of a tool.
type Descriptor struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Panel       string   `yaml:"panel" json:"panel"`
	Input       Schema   `yaml:"input_schema" json:"input_schema"`
	Output      Schema   `yaml:"output_schema" json:"output_schema"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Dispatch    Dispatch `yaml:"dispatch" json:"dispatch"`
}

// Export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Export writes descriptors to w as YAML or JSON.
func Export(w io.Writer, format string, descs []Descriptor) error {
	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(descs); err != nil {
			return fmt.Errorf("encoding tools as yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(descs); err != nil {
			return fmt.Errorf("encoding tools as json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want yaml or json)", format)
	}
}
