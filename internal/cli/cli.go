// Package cli implements the floorforge command-line interface.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/floorforge/floorforge/pkg/buildinfo"
	"github.com/floorforge/floorforge/pkg/codecheck"
	"github.com/floorforge/floorforge/pkg/knowledge"
	"github.com/floorforge/floorforge/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "floorforge",
		Short:        "FloorForge generates and validates residential floor plans",
		Long:         `FloorForge is a CLI tool for generating single-story residential floor plans from program requirements and checking them against residential building codes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. When codesPath is
// non-empty, the referenced TOML file overrides the default building codes.
// An empty path falls back to the FLOORFORGE_CODES environment variable.
func (c *CLI) newRunner(codesPath string) (*pipeline.Runner, error) {
	if codesPath == "" {
		codesPath = os.Getenv("FLOORFORGE_CODES")
	}
	validator, err := newValidator(codesPath)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(validator, c.Logger), nil
}

func newValidator(codesPath string) (*codecheck.Validator, error) {
	if codesPath == "" {
		return codecheck.NewValidator(knowledge.DefaultCodes()), nil
	}
	codes, err := knowledge.LoadCodes(codesPath)
	if err != nil {
		return nil, err
	}
	return codecheck.NewValidator(codes), nil
}
