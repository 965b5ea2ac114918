// Package cli implements the gridboard command-line interface.
//
// This package provides commands for editing dashboard boards interactively,
// inspecting and arranging saved layouts, exporting wireframes, and serving
// boards over HTTP. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - edit: Open a board in the interactive terminal canvas
//   - show: Print a board's layout as a table
//   - arrange: Repack a board into tidy rows
//   - widget: Add, remove, and list board widgets
//   - export: Write a board wireframe as SVG
//   - serve: Expose boards over HTTP
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridboard/pkg/buildinfo"
	"github.com/matzehuels/gridboard/pkg/config"
	"github.com/matzehuels/gridboard/pkg/storage"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "gridboard"

	// defaultBoardID is used when no board argument is given.
	defaultBoardID = "default"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Gridboard edits dashboard layouts in the terminal",
		Long:         `Gridboard is a CLI tool for arranging dashboard widgets on a mixed percent/pixel canvas, with drag and resize gestures, deterministic auto-arrange, and pluggable board storage.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/gridboard/config.toml)")

	// Register all subcommands
	root.AddCommand(c.editCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.arrangeCommand())
	root.AddCommand(c.widgetCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Gateway Factory
// =============================================================================

// loadConfig reads the config file named by --config, or the default location.
func (c *CLI) loadConfig() (config.Config, error) {
	return config.Load(c.configPath)
}

// openGateway builds the storage gateway for the configured backend.
// The returned closer releases backend connections.
func (c *CLI) openGateway(ctx context.Context, cfg config.Config) (*storage.Gateway, func(), error) {
	backend, err := config.OpenBackend(ctx, cfg.Storage)
	if err != nil {
		return nil, nil, err
	}
	gw := storage.NewGateway(backend)
	closer := func() {
		if err := gw.Close(); err != nil {
			c.Logger.Debug("closing storage backend", "error", err)
		}
	}
	return gw, closer, nil
}

// boardIDFromArgs returns the board ID argument, or the default board.
func boardIDFromArgs(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return defaultBoardID
}
