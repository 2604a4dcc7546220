// Package cmd implements the gitpanes command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/gitpanes/internal/config"
	"github.com/zjrosen/gitpanes/internal/event"
	"github.com/zjrosen/gitpanes/internal/fixtures"
	"github.com/zjrosen/gitpanes/internal/git/application"
	"github.com/zjrosen/gitpanes/internal/log"
	"github.com/zjrosen/gitpanes/internal/mode/dashboard"
	"github.com/zjrosen/gitpanes/internal/mode/shared"
	"github.com/zjrosen/gitpanes/internal/paths"
	"github.com/zjrosen/gitpanes/internal/slice"
	"github.com/zjrosen/gitpanes/internal/tracing"
	"github.com/zjrosen/gitpanes/internal/ui/commithistory"
	"github.com/zjrosen/gitpanes/internal/ui/gitconfig"
	"github.com/zjrosen/gitpanes/internal/ui/prdetail"
	"github.com/zjrosen/gitpanes/internal/ui/pullrequests"
	"github.com/zjrosen/gitpanes/internal/ui/shared/markdown"
	"github.com/zjrosen/gitpanes/internal/ui/styles"
)

var (
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "gitpanes",
	Short: "Terminal panels for commits, pull requests and git config",
	Long: `gitpanes shows a repository's commit history, pull requests and git
configuration as panels in one terminal dashboard. Data comes from a YAML
fixtures file, or a built-in demo when none is configured.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runDashboard,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default is ./"+paths.LocalConfigName+" or ~/.config/gitpanes/config.yaml)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "write debug logs to the state directory")
	rootCmd.Flags().StringP("fixtures", "f", "", "YAML dataset to browse (default: built-in demo)")

	_ = viper.BindPFlag("fixtures", rootCmd.Flags().Lookup("fixtures"))
	_ = viper.BindPFlag("log.enabled", rootCmd.PersistentFlags().Lookup("debug"))
}

// setDefaults registers every scalar default so environment overrides such
// as GITPANES_COMMITS_LIMIT are seen by Unmarshal.
func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("fixtures", d.Fixtures)
	v.SetDefault("auto_refresh", d.AutoRefresh)
	v.SetDefault("auto_refresh_debounce", d.AutoRefreshDebounce)
	v.SetDefault("commits.limit", d.Commits.Limit)
	v.SetDefault("pull_requests.filter", d.PullRequests.Filter)
	v.SetDefault("git_config.view", d.GitConfig.View)
	v.SetDefault("cache.detail_ttl", d.Cache.DetailTTL)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)
	v.SetDefault("ui.mouse", d.UI.Mouse)
	v.SetDefault("ui.markdown", d.UI.Markdown)
	v.SetDefault("theme.preset", d.Theme.Preset)
	v.SetDefault("theme.mode", d.Theme.Mode)
	v.SetDefault("log.enabled", d.Log.Enabled)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_files", d.Log.MaxFiles)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file", d.Tracing.File)
	v.SetDefault("tracing.endpoint", d.Tracing.Endpoint)
}

func loadConfig(_ *cobra.Command, _ []string) error {
	c, err := readConfig(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	cfg = c
	return nil
}

// readConfig loads explicit, then local, then global config into v and
// returns the validated result.
func readConfig(v *viper.Viper, explicit string) (config.Config, error) {
	setDefaults(v)

	switch {
	case explicit != "":
		v.SetConfigFile(explicit)
	case fileExists(paths.LocalConfigName):
		v.SetConfigFile(paths.LocalConfigName)
	default:
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := paths.ConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix("GITPANES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || explicit != "" {
			return config.Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	c := config.Defaults()
	if err := v.Unmarshal(&c); err != nil {
		return config.Config{}, fmt.Errorf("parsing config: %w", err)
	}
	c.Fixtures = paths.ResolveFixtures(c.Fixtures)
	if err := config.Validate(c); err != nil {
		return config.Config{}, err
	}
	return c, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	stateDir, err := paths.StateDir()
	if err != nil {
		return fmt.Errorf("resolving state directory: %w", err)
	}
	logPath, err := log.Init(cfg.Log.Options(filepath.Join(stateDir, "logs")))
	if err != nil {
		return fmt.Errorf("initializing log: %w", err)
	}
	defer log.Close()
	if logPath != "" {
		log.Info(log.CatConfig, "logging enabled", "path", logPath)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	shutdown, err := tracing.Setup(ctx, tracingConfig(cfg, stateDir))
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			log.Warn(log.CatConfig, "tracing shutdown failed", "error", err.Error())
		}
	}()

	if err := styles.ApplyTheme(cfg.Theme.Styles()); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	src, err := fixtures.NewSource(cfg.Fixtures)
	if err != nil {
		return fmt.Errorf("loading fixtures: %w", err)
	}
	loader := application.NewCachingLoader(src, cfg.Cache.DetailTTL)
	store := slice.NewMemoryStore()
	application.RegisterSlices(store, slice.ScopeRepository, loader)

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolving working directory: %w", err)
	}

	m := dashboard.New(dashboard.Deps{
		Bus:       event.NewBus(),
		Store:     store,
		Loader:    loader,
		Clipboard: shared.SystemClipboard{},
		Registry:  dashboard.Panels().Enabled(cfg.Panels),
		Now:       time.Now,
	}, dashboardConfig(cfg, workDir))
	defer m.Close()

	if cfg.AutoRefresh {
		go func() {
			if err := dashboard.AutoRefresh(ctx, src, loader, store, cfg.AutoRefreshDebounce); err != nil {
				log.Warn(log.CatHost, "auto refresh stopped", "error", err.Error())
			}
		}()
	}

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

// tracingConfig fills in the default trace file next to the logs.
func tracingConfig(c config.Config, stateDir string) tracing.Config {
	tc := c.Tracing.Tracing()
	if tc.Enabled && tc.Exporter == tracing.ExporterFile && tc.File == "" {
		tc.File = filepath.Join(stateDir, "traces.jsonl")
	}
	return tc
}

func dashboardConfig(c config.Config, workDir string) dashboard.Config {
	return dashboard.Config{
		Commits:       commithistory.Config{Limit: c.Commits.Limit},
		PullRequests:  pullrequests.Config{Filter: event.PRFilter(c.PullRequests.Filter)},
		GitConfig:     gitconfig.Config{Mode: event.ViewMode(c.GitConfig.View)},
		PRDetail:      prdetail.Config{Markdown: markdownRenderer(c.UI.Markdown)},
		Actions:       c.Actions,
		ShowStatusBar: c.UI.ShowStatusBar,
		WorkDir:       workDir,
	}
}

func markdownRenderer(style string) markdown.Renderer {
	if style == "plain" {
		return markdown.Plain{}
	}
	return markdown.NewGlamour(style)
}
