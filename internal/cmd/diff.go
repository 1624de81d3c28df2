package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/presidio-build/presidio-configs/internal/artifact"
	oerrors "github.com/presidio-build/presidio-configs/internal/errors"
	"github.com/presidio-build/presidio-configs/internal/output"
)

var diffExitCode bool

// errDrift is returned by diff --exit-code when the output is stale.
var errDrift = errors.New("output directory is out of date")

// NewDiffCmd creates the diff command.
func NewDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how the output directory differs from a fresh generation",
		Long: `Render the configuration set in memory and compare it with the files
already in the output directory. Nothing is written.

YAML documents are compared structurally; install-models.sh line by line.

Examples:
  # Check whether /output is up to date
  presidio-configs diff --languages=en,de

  # Fail in CI when regeneration would change anything
  presidio-configs diff --languages=en,de --exit-code`,
		Args: cobra.NoArgs,
		RunE: runDiff,
	}

	addSettingsFlags(cmd)
	cmd.Flags().BoolVar(&diffExitCode, "exit-code", false,
		"Exit with status 1 when differences are found")

	return cmd
}

func runDiff(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return exitError(err)
	}

	set, err := renderArtifacts(settings)
	if err != nil {
		return exitError(err)
	}

	report, err := artifact.Compare(set, settings.OutputDir, output.IsTerminal())
	if err != nil {
		return exitError(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.String())

	if diffExitCode && report.HasChanges() {
		// The report above is the diagnostic.
		exitErr := oerrors.NewExitError(fmt.Errorf("%w: %s", errDrift, settings.OutputDir), oerrors.ExitGeneralError)
		exitErr.Printed = true
		return exitErr
	}

	return nil
}
