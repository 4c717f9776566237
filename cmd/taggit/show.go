// ABOUTME: Show command rendering a file's tags as a markdown report.
// ABOUTME: Uses glamour for terminal rendering.

package main

import (
	"fmt"

	"github.com/harper/taggit/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show a tag report for a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		raw, _ := cmd.Flags().GetBool("raw")

		list, err := tagManager.List(path)
		if err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}

		if raw {
			fmt.Fprint(cmd.OutOrStdout(), ui.ReportMarkdown(path, list))
			return nil
		}

		rendered, err := ui.RenderReport(path, list)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("raw", false, "print markdown without rendering")
	rootCmd.AddCommand(showCmd)
}
