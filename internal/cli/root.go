// Package cli implements the edifact command line tool.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X .../internal/cli.version=...".
var version = "dev"

var (
	configPath       string
	logLevel         string
	validateTrailers bool

	cfg    = DefaultConfig()
	logger = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "edifact",
	Short: "Tokenize and inspect UN/EDIFACT interchanges",
	Long: `edifact tokenizes UN/EDIFACT interchanges into messages, segments,
elements and components. Delimiters are taken from the UNA service string
advice when present.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); overrides the config file")
	rootCmd.PersistentFlags().BoolVar(&validateTrailers, "validate-trailers", false, "check UNT and UNZ counts and references")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// setup loads the configuration and builds the logger before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	cfg = DefaultConfig()
	if configPath != "" {
		loaded, err := LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if validateTrailers {
		cfg.Envelope.ValidateTrailers = true
	}

	l, err := NewLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}
	logger = l
	return nil
}
