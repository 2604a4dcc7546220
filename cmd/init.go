package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/gitpanes/internal/config"
	"github.com/zjrosen/gitpanes/internal/paths"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a commented default config file",
	Long: `Write the default configuration, with every option documented, to
~/.config/gitpanes/config.yaml, or to ./` + paths.LocalConfigName + ` with --local.`,
	// The config being created may not exist or parse yet.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              runInit,
}

func init() {
	initCmd.Flags().Bool("local", false, "write "+paths.LocalConfigName+" in the current directory")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, _ []string) error {
	local, _ := cmd.Flags().GetBool("local")
	force, _ := cmd.Flags().GetBool("force")

	path := paths.LocalConfigName
	if !local {
		var err error
		if path, err = paths.DefaultConfigPath(); err != nil {
			return fmt.Errorf("resolving config path: %w", err)
		}
	}
	if fileExists(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.WriteDefaultConfig(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
