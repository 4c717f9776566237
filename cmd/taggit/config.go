// ABOUTME: Config and version commands.
// ABOUTME: Print the effective configuration and build information.

package main

import (
	"fmt"

	"github.com/harper/taggit/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		save, _ := cmd.Flags().GetBool("init")
		if save {
			path, _ := cmd.Flags().GetString("config")
			if err := config.SaveConfig(path, cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "taggit %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	configCmd.Flags().Bool("init", false, "write the effective config to the config file")
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
