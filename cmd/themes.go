package cmd

import (
	"fmt"
	"maps"
	"slices"

	"github.com/spf13/cobra"

	"github.com/zjrosen/gitpanes/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the built-in theme presets",
	RunE:  runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	names := slices.Sorted(maps.Keys(styles.Presets))

	width := 0
	for _, n := range names {
		width = max(width, len(n))
	}
	for _, n := range names {
		mark := " "
		if n == cfg.Theme.Preset {
			mark = "*"
		}
		fmt.Fprintf(out, "%s %-*s  %s\n", mark, width, n, styles.Presets[n].Description)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Set theme.preset in your config to use one.")
	return nil
}
