// ABOUTME: Root command wiring config, logging, and the tag manager.
// ABOUTME: Selects the manager for the current platform from the registry.

package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/harper/taggit/internal/config"
	"github.com/harper/taggit/internal/logging"
	"github.com/harper/taggit/internal/ui"
	"github.com/harper/taggit/pkg/tagmanager"
	"github.com/harper/taggit/pkg/tags"
	"github.com/harper/taggit/pkg/xattrs"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	logger     zerolog.Logger
	reporter   tags.Reporter
	tagManager tagmanager.Manager

	// newStore returns the attribute store; tests swap in a MemStore.
	newStore = func() xattrs.Store { return xattrs.NewFileStore() }
)

var rootCmd = &cobra.Command{
	Use:   "taggit",
	Short: "Manage Finder tags on files",
	Long: `taggit reads and writes the colored tags Finder shows on files.

Tags are written as name[:color], where color is a name
(none, gray, green, purple, blue, yellow, red, orange) or a code 0-7.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
}

func setup(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	loaded, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = loaded

	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.LogLevel = "debug"
	}
	if cmd.Flags().Changed("platform") {
		cfg.Platform, _ = cmd.Flags().GetString("platform")
	}
	if v, _ := cmd.Flags().GetBool("no-color"); v {
		cfg.NoColor = true
	}
	ui.DisableColor(cfg.NoColor)

	logger = logging.New(os.Stderr, logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	reporter = logging.NewReporter(logger)

	if skipsManager(cmd) {
		return nil
	}

	platform := cfg.Platform
	if platform == "" {
		platform = runtime.GOOS
	}

	registry := tagmanager.DefaultRegistry()
	m, err := registry.Create(platform, tagmanager.Deps{
		Store:    newStore(),
		Options:  []xattrs.Option{xattrs.WithLogger(logger)},
		Reporter: reporter,
	})
	if err != nil {
		return err
	}
	tagManager = m
	logger.Debug().Str("platform", platform).Msg("tag manager ready")
	return nil
}

// skipsManager reports whether cmd runs without touching any file.
func skipsManager(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "config", "help", "completion":
		return true
	}
	return false
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file (default $XDG_CONFIG_HOME/taggit/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("platform", "", "override the detected operating system")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored output")
}
