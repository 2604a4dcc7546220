package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/gitpanes/internal/tool"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Print the panel tool descriptors",
	Long: `Print the descriptor of every panel tool: its input and output schema
and the event it emits. Tools can be run from the dashboard with ":".`,
	RunE: runTools,
}

func init() {
	toolsCmd.Flags().String("format", tool.FormatYAML, "output format: yaml or json")
	toolsCmd.Flags().String("panel", "", "only tools of this panel")
	rootCmd.AddCommand(toolsCmd)
}

func runTools(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	panelID, _ := cmd.Flags().GetString("panel")

	descs := tool.Catalog()
	if panelID != "" {
		names := tool.ForPanel(panelID)
		if len(names) == 0 {
			return fmt.Errorf("no tools for panel %q", panelID)
		}
		descs = descs[:0]
		for _, name := range names {
			d, _ := tool.Lookup(name)
			descs = append(descs, d)
		}
	}
	return tool.Export(cmd.OutOrStdout(), format, descs)
}
