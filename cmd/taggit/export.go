// ABOUTME: Export command for dumping tags of files.
// ABOUTME: Supports JSON and YAML export formats.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/harper/taggit/internal/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type ExportData struct {
	ExportedAt time.Time  `json:"exported_at" yaml:"exported_at"`
	Version    string     `json:"version" yaml:"version"`
	Files      []fileTags `json:"files" yaml:"files"`
}

var exportCmd = &cobra.Command{
	Use:   "export <file>...",
	Short: "Export tags",
	Long:  `Export the tags of files to JSON or YAML.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outputPath, _ := cmd.Flags().GetString("output")

		files, err := collectTags(args)
		if err != nil {
			return err
		}
		export := ExportData{
			ExportedAt: time.Now(),
			Version:    "1.0",
			Files:      files,
		}

		var w io.Writer = cmd.OutOrStdout()
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() { _ = f.Close() }()
			w = f
		}

		switch format {
		case "json":
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			err = enc.Encode(export)
		case "yaml":
			enc := yaml.NewEncoder(w)
			enc.SetIndent(2)
			err = enc.Encode(export)
			if err == nil {
				err = enc.Close()
			}
		default:
			return fmt.Errorf("unknown format: %s", format)
		}
		if err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}

		if outputPath != "" {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.Success(fmt.Sprintf("Exported %d file(s) to %s", len(files), outputPath)))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format: json or yaml")
	exportCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
