// Package cli implements the stylecfg command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/stylecfg/internal/config"
	"github.com/opencode-ai/stylecfg/internal/logging"
)

var (
	// Version is set via -ldflags at build time.
	Version = "dev"

	cfgFile        string
	logLevel       string
	logFormat      string
	jsonOutput     bool
	noColor        bool
	nonInteractive bool
	themePath      string
	builtinName    string

	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "stylecfg",
	Short:         "Inspect, validate and live-preview widget style documents",
	Long:          "stylecfg parses widget style documents (TOML or YAML), resolves color aliases and per-widget style cascades, and previews them with live reload.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format = logFormat
		}
		if err := logging.Init(cfg.Logging()); err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/stylecfg/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, json)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "write machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color swatches")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "never start interactive views")
	rootCmd.PersistentFlags().StringVarP(&themePath, "theme", "t", "", "theme document path (overrides theme.path)")
	rootCmd.PersistentFlags().StringVarP(&builtinName, "builtin", "b", "", "use a bundled theme instead of a file")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// GetConfig returns the loaded configuration, or nil before the root command ran.
func GetConfig() *config.Config {
	return appConfig
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var pe *PreflightError
	if errors.As(err, &pe) {
		return 2
	}
	return 1
}

// PrintError writes err with its hint, if any.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
	var pe *PreflightError
	if errors.As(err, &pe) {
		if pe.Hint != "" {
			fmt.Fprintf(w, "Hint: %s\n", pe.Hint)
		}
		if pe.NextStep != "" {
			fmt.Fprintf(w, "Try: %s\n", pe.NextStep)
		}
	}
}

// PreflightError reports a problem the user can fix before retrying.
type PreflightError struct {
	Message  string
	Hint     string
	NextStep string
}

func (e *PreflightError) Error() string {
	return e.Message
}
