package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/gitpanes/internal/mode/dashboard"
)

var panelsCmd = &cobra.Command{
	Use:   "panels",
	Short: "List the available panels",
	Long:  `Display every built-in panel with the slices it reads and the tools it exposes. Panels disabled by the panels setting are marked.`,
	RunE:  runPanels,
}

func init() {
	rootCmd.AddCommand(panelsCmd)
}

func runPanels(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	all := dashboard.Panels()
	enabled := all.Enabled(cfg.Panels)

	width := 0
	for _, id := range all.IDs() {
		width = max(width, len(id))
	}

	for _, reg := range all.All() {
		mark := " "
		if !slices.Contains(enabled.IDs(), reg.ID) {
			mark = "-"
		}
		fmt.Fprintf(out, "%s %-*s  %s\n", mark, width, reg.ID, reg.Description)

		names := make([]string, len(reg.Slices))
		for i, s := range reg.Slices {
			names[i] = string(s)
		}
		if len(names) > 0 {
			fmt.Fprintf(out, "  %-*s  slices: %s\n", width, "", strings.Join(names, ", "))
		}
		if len(reg.Tools) > 0 {
			fmt.Fprintf(out, "  %-*s  tools:  %s\n", width, "", strings.Join(reg.Tools, ", "))
		}
	}
	return nil
}
