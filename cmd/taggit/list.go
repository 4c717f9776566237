// ABOUTME: List command for displaying the tags of files.
// ABOUTME: Supports JSON output and a membership check.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/harper/taggit/internal/ui"
	"github.com/harper/taggit/pkg/tagmanager"
	"github.com/harper/taggit/pkg/tags"
	"github.com/spf13/cobra"
)

// errTagMissing makes `ls --has` exit non-zero without printing much.
var errTagMissing = errors.New("tag not present")

type fileTags struct {
	Path string     `json:"path" yaml:"path"`
	Tags []tags.Tag `json:"tags" yaml:"tags"`
}

var listCmd = &cobra.Command{
	Use:     "ls <file>...",
	Aliases: []string{"list"},
	Short:   "List tags of files",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		has, _ := cmd.Flags().GetString("has")

		if has != "" {
			return listHas(cmd.OutOrStdout(), args, has)
		}

		results, err := collectTags(args)
		if err != nil {
			return err
		}

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(results)
		}

		for _, r := range results {
			fmt.Fprint(cmd.OutOrStdout(), ui.FormatTagList(r.Path, r.Tags))
		}
		return nil
	},
}

func collectTags(paths []string) ([]fileTags, error) {
	results := make([]fileTags, 0, len(paths))
	for _, path := range paths {
		list, err := tagManager.List(path)
		if err != nil {
			return nil, fmt.Errorf("failed to list tags of %s: %w", path, err)
		}
		results = append(results, fileTags{Path: path, Tags: list})
	}
	return results, nil
}

// listHas prints the files carrying tag and fails if any does not.
func listHas(w io.Writer, paths []string, arg string) error {
	checker, ok := tagManager.(tagmanager.Checker)
	if !ok {
		return errors.New("--has is not supported on this platform")
	}
	t, err := parseTagArg(arg, cfg.DefaultColor)
	if err != nil {
		return err
	}

	missing := 0
	for _, path := range paths {
		found, err := checker.Has(path, t)
		if err != nil {
			return err
		}
		if found {
			fmt.Fprintln(w, path)
		} else {
			missing++
		}
	}
	if missing > 0 {
		return fmt.Errorf("%w on %d file(s)", errTagMissing, missing)
	}
	return nil
}

func init() {
	listCmd.Flags().Bool("json", false, "output JSON")
	listCmd.Flags().String("has", "", "only print files that carry this tag[:color]")
	rootCmd.AddCommand(listCmd)
}
