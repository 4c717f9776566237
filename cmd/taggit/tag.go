// ABOUTME: Commands that change the tags of a file.
// ABOUTME: Provides add, rm, and clear.

package main

import (
	"errors"
	"fmt"

	"github.com/harper/taggit/internal/ui"
	"github.com/harper/taggit/pkg/tagmanager"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <file> <tag[:color]>...",
	Short: "Add tags to a file",
	Long: `Add tags to a file. A tag already present with the same color is
left alone; the same name with another color is added as a separate tag.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		defaultColor := cfg.DefaultColor
		if cmd.Flags().Changed("color") {
			defaultColor, _ = cmd.Flags().GetString("color")
		}
		replace, _ := cmd.Flags().GetBool("replace")

		inputs, err := parseTagArgs(args[1:], defaultColor)
		if err != nil {
			return err
		}

		if replace {
			r, ok := tagManager.(tagmanager.Replacer)
			if !ok {
				return errors.New("--replace is not supported on this platform")
			}
			if err := r.Set(path, inputs...); err != nil {
				return fmt.Errorf("failed to set tags: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Set %d tag(s) on %s", len(inputs), path)))
			return nil
		}

		if err := tagManager.Add(path, inputs...); err != nil {
			return fmt.Errorf("failed to add tags: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Added %d tag(s) to %s", len(inputs), path)))
		return nil
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <file> <tag[:color]>...",
	Short: "Remove tags from a file",
	Long:  `Remove tags from a file. Name and color must both match.`,
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		defaultColor := cfg.DefaultColor
		if cmd.Flags().Changed("color") {
			defaultColor, _ = cmd.Flags().GetString("color")
		}

		inputs, err := parseTagArgs(args[1:], defaultColor)
		if err != nil {
			return err
		}

		if err := tagManager.Remove(path, inputs...); err != nil {
			return fmt.Errorf("failed to remove tags: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Removed %d tag(s) from %s", len(inputs), path)))
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear <file>...",
	Short: "Remove all tags from files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, path := range args {
			if err := tagManager.RemoveAll(path); err != nil {
				return fmt.Errorf("failed to clear %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Cleared tags on %s", path)))
		}
		return nil
	},
}

func init() {
	addCmd.Flags().StringP("color", "c", "", "color for tags given without one")
	addCmd.Flags().Bool("replace", false, "replace all existing tags")
	rmCmd.Flags().StringP("color", "c", "", "color for tags given without one")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(clearCmd)
}
