// Package cli implements the cssel command-line interface.
//
// This package provides commands for building compound CSS selectors
// from ordered fragments, combining built selectors, rendering TOML
// manifests of named selectors, serving the builder over HTTP, and an
// interactive composer. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - build: Build a compound selector from ordered kind=value fragments
//   - combine: Join two built selectors with a combinator
//   - manifest: Build every named selector in a TOML manifest
//   - serve: Expose the builder as a small HTTP API
//   - tui: Compose a selector interactively with live validation
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The
// serve command additionally attaches a request-scoped logger to the
// request context.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cssel/pkg/buildinfo"
)

// appName is the application name used for display and completions.
const appName = "cssel"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "cssel builds CSS selector strings from typed fragments",
		Long:         `cssel is a CLI tool for assembling compound CSS selectors from typed fragments (element, id, class, attribute, pseudo-class, pseudo-element), enforcing the fixed fragment order and the one-per-selector slots.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.combineCommand())
	root.AddCommand(c.manifestCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.tuiCommand())
	root.AddCommand(c.completionCommand())

	return root
}
