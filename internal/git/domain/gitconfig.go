package domain

// ConfigScope is the git configuration file an entry came from.
type ConfigScope string

const (
	ConfigScopeLocal  ConfigScope = "local"
	ConfigScopeGlobal ConfigScope = "global"
	ConfigScopeSystem ConfigScope = "system"
)

// ConfigEntry is one raw key/value pair as printed by `git config --list --show-scope`.
type ConfigEntry struct {
	Key   string      `yaml:"key" json:"key"`
	Value string      `yaml:"value" json:"value"`
	Scope ConfigScope `yaml:"scope" json:"scope"`
}

// Boolean settings below are *bool: nil means the key is not configured, which
// is different from an explicit false.

type UserConfig struct {
	Name       string `yaml:"name,omitempty" json:"name,omitempty"`
	Email      string `yaml:"email,omitempty" json:"email,omitempty"`
	SigningKey string `yaml:"signing_key,omitempty" json:"signing_key,omitempty"`
}

type CoreConfig struct {
	Editor       string `yaml:"editor,omitempty" json:"editor,omitempty"`
	AutoCRLF     string `yaml:"autocrlf,omitempty" json:"autocrlf,omitempty"`
	FileMode     *bool  `yaml:"filemode,omitempty" json:"filemode,omitempty"`
	IgnoreCase   *bool  `yaml:"ignorecase,omitempty" json:"ignorecase,omitempty"`
	Bare         *bool  `yaml:"bare,omitempty" json:"bare,omitempty"`
	HooksPath    string `yaml:"hooks_path,omitempty" json:"hooks_path,omitempty"`
	ExcludesFile string `yaml:"excludes_file,omitempty" json:"excludes_file,omitempty"`
}

type PerformanceConfig struct {
	FSMonitor      *bool  `yaml:"fsmonitor,omitempty" json:"fsmonitor,omitempty"`
	UntrackedCache *bool  `yaml:"untracked_cache,omitempty" json:"untracked_cache,omitempty"`
	PreloadIndex   *bool  `yaml:"preload_index,omitempty" json:"preload_index,omitempty"`
	ManyFiles      *bool  `yaml:"many_files,omitempty" json:"many_files,omitempty"`
	CommitGraph    *bool  `yaml:"commit_graph,omitempty" json:"commit_graph,omitempty"`
	PackThreads    string `yaml:"pack_threads,omitempty" json:"pack_threads,omitempty"`
}

type TransferConfig struct {
	PullRebase      *bool  `yaml:"pull_rebase,omitempty" json:"pull_rebase,omitempty"`
	PushDefault     string `yaml:"push_default,omitempty" json:"push_default,omitempty"`
	AutoSetupRemote *bool  `yaml:"auto_setup_remote,omitempty" json:"auto_setup_remote,omitempty"`
	FetchPrune      *bool  `yaml:"fetch_prune,omitempty" json:"fetch_prune,omitempty"`
}

type MergeDiffConfig struct {
	MergeTool     string `yaml:"merge_tool,omitempty" json:"merge_tool,omitempty"`
	DiffTool      string `yaml:"diff_tool,omitempty" json:"diff_tool,omitempty"`
	ConflictStyle string `yaml:"conflict_style,omitempty" json:"conflict_style,omitempty"`
	MergeFF       string `yaml:"merge_ff,omitempty" json:"merge_ff,omitempty"`
	RerereEnabled *bool  `yaml:"rerere_enabled,omitempty" json:"rerere_enabled,omitempty"`
	ColorMoved    string `yaml:"color_moved,omitempty" json:"color_moved,omitempty"`
}

type CommitConfig struct {
	GPGSign  *bool  `yaml:"gpgsign,omitempty" json:"gpgsign,omitempty"`
	Template string `yaml:"template,omitempty" json:"template,omitempty"`
	Verbose  *bool  `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// GitConfig is the structured snapshot behind the git config slice.
// AllEntries is an independent flat projection used by the detailed view.
type GitConfig struct {
	User        UserConfig        `yaml:"user" json:"user"`
	Core        CoreConfig        `yaml:"core" json:"core"`
	Performance PerformanceConfig `yaml:"performance" json:"performance"`
	Transfer    TransferConfig    `yaml:"transfer" json:"transfer"`
	MergeDiff   MergeDiffConfig   `yaml:"merge_diff" json:"merge_diff"`
	Commit      CommitConfig      `yaml:"commit" json:"commit"`
	Remotes     []RemoteInfo      `yaml:"remotes" json:"remotes"`
	Branches    []BranchInfo      `yaml:"branches" json:"branches"`
	AllEntries  []ConfigEntry     `yaml:"all_entries" json:"all_entries"`
}

// BoolState is the tri-state view of an optional boolean setting.
type BoolState int

const (
	BoolUnset BoolState = iota
	BoolEnabled
	BoolDisabled
)

// TriState maps an optional boolean to its display state.
func TriState(b *bool) BoolState {
	switch {
	case b == nil:
		return BoolUnset
	case *b:
		return BoolEnabled
	default:
		return BoolDisabled
	}
}
