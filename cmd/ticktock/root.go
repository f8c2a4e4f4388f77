// Package main provides the CLI entrypoint for ticktock.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tickclock/ticktock/internal/clock"
	"github.com/tickclock/ticktock/internal/config"
	"github.com/tickclock/ticktock/internal/theme"
	"github.com/tickclock/ticktock/internal/tui"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
		themesFile string
	}
	logger *slog.Logger
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "ticktock [theme]",
	Short: "Full-screen terminal clock with color themes",
	Long: `ticktock renders the current time as large digits that fill the
terminal, refreshed every second.

The optional positional argument selects a color theme. Themes are read
from a themes.json file (~/.config/ticktock/themes.json if present,
otherwise the bundled set). Run 'ticktock themes' to list them.

Press q to quit.`,
	Args:    cobra.MaximumNArgs(1),
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Setup logging
		setupLogger()

		// Load configuration
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return nil
	},
	RunE: runClock,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/ticktock/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globalOpts.themesFile, "themes-file", "",
		"Path to themes file (default: ~/.config/ticktock/themes.json, falling back to the bundled themes)")
}

// runClock resolves the requested theme and enters the display loop.
// Resolution happens before any UI is constructed so that a bad theme name
// is reported without ever touching the terminal.
func runClock(cmd *cobra.Command, args []string) error {
	reg, err := openRegistry()
	if err != nil {
		return err
	}

	name := cfg.Theme
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		name = config.DefaultTheme
	}

	t, err := reg.Resolve(name)
	if err != nil {
		var unknown *theme.UnknownThemeError
		if errors.As(err, &unknown) {
			fmt.Fprintf(os.Stderr, "Error: Theme '%s' not found. Available: %s\n",
				unknown.Name, strings.Join(unknown.Available, ", "))
			os.Exit(1)
		}
		return err
	}

	// Hot reload only applies to file-backed registries
	var watcher *theme.Watcher
	if cfg.Clock.HotReload && reg.Path() != "" {
		watcher, err = theme.NewWatcher(reg.Path(), t.Name)
		if err != nil {
			logger.Warn("failed to create themes watcher", "error", err)
			watcher = nil
		}
	}

	return tui.Run(tui.RunOptions{
		Theme: t,
		Clock: clock.Options{
			SecondHand: cfg.Clock.SecondHand,
			TwelveHour: cfg.Clock.TwelveHour,
		},
		Watcher: watcher,
	})
}

// openRegistry loads the theme registry. Resolution order:
//  1. --themes-file flag
//  2. themes_file from config.toml
//  3. user themes file (~/.config/ticktock/themes.json)
//  4. bundled themes
func openRegistry() (*theme.Registry, error) {
	if globalOpts.themesFile != "" {
		return theme.Load(globalOpts.themesFile)
	}
	if cfg.ThemesFile != "" {
		return theme.Load(cfg.ThemesFile)
	}

	userPath := config.ThemesPath()
	if _, err := os.Stat(userPath); err == nil {
		return theme.Load(userPath)
	}

	return theme.LoadDefault()
}

// setupLogger configures the global slog logger.
func setupLogger() {
	level := slog.LevelWarn
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout is clean for output
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}
