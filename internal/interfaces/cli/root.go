// Package cli implements the gpcrctl command tree: a local predict command
// that runs the submission pipeline without a server, and a serve command
// that starts the HTTP API.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/turtacn/gpcr-studio/internal/config"
	"github.com/turtacn/gpcr-studio/internal/infrastructure/monitoring/logging"
)

// RootOptions holds global CLI flags shared by every subcommand.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Verbose    bool
}

// NewRootCommand creates the root cobra command with global flags and all
// subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "gpcrctl",
		Short: "GPCR Activity Studio CLI — score SMILES ligands from the command line",
		Long: "gpcrctl runs the GPCR functional-activity prediction pipeline locally\n" +
			"or serves it over HTTP.  Ligands are classified as agonist, antagonist,\n" +
			"or inactive; the current scoring backend is the constant mock.",
		Version:       config.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.ConfigPath, "config", "c", "", "config file path (default: env + built-in defaults)")
	pf.StringVar(&opts.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.BoolVarP(&opts.Verbose, "verbose", "v", false, "enable verbose output")

	cmd.AddCommand(
		newPredictCmd(opts),
		newServeCmd(opts),
	)

	return cmd
}

// loadConfig resolves configuration with priority: --config file > GPCR_* env
// variables > built-in defaults.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath != "" {
		return config.Load(opts.ConfigPath)
	}
	return config.LoadFromEnv()
}

// newCLILogger creates a logger configured for CLI usage: console format on
// stderr so stdout stays clean for command output.  Level comes from the CLI
// flags, not the config file — the file's log section tunes the server.
func newCLILogger(opts *RootOptions) (logging.Logger, error) {
	level := opts.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	return logging.NewLogger(logging.LogConfig{
		Level:            level,
		Format:           "console",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	})
}

// Execute runs the root command.  It is the single entry point for
// cmd/gpcrctl/main.go.
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		return err
	}
	return nil
}
