// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/presidio-build/presidio-configs/internal/output"
	"github.com/presidio-build/presidio-configs/internal/version"
)

var (
	// Global flags
	verboseFlag    bool
	timestampsFlag bool
)

// NewRootCmd creates the root command. Running it without a subcommand
// generates the configuration set.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "presidio-configs",
		Short: "Generate Presidio configuration for a set of languages",
		Long: `Generate Presidio analyzer configuration from the language registry.

Validates --languages against the registry and writes:
  nlp-config.yaml          spaCy NLP engine configuration
  analyzer-config.yaml     analyzer supported languages
  recognizers-config.yaml  predefined recognizers per language
  install-models.sh        script installing the spaCy models

Nothing is written unless every requested language is in the registry.

Examples:
  # Generate configs for English and German
  presidio-configs --languages=en,de

  # Use a local registry and output directory
  presidio-configs --languages=en --registry=./languages.yaml --output=./out`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runGenerate,
	}

	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	addSettingsFlags(rootCmd)

	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewLanguagesCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	}

	output.SetupLoggingTo(cmd.ErrOrStderr(), logCfg)

	output.Debug("presidio-configs started", "version", version.Get().Version)
	return nil
}
