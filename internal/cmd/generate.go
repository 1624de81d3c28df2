package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/presidio-build/presidio-configs/internal/output"
)

func runGenerate(cmd *cobra.Command, _ []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return exitError(err)
	}

	set, err := renderArtifacts(settings)
	if err != nil {
		return exitError(err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generating configs for: %s\n", strings.Join(set.Languages, ", "))

	if err := set.Write(settings.OutputDir); err != nil {
		return exitError(err)
	}

	for _, name := range set.Names() {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	fmt.Fprintln(out, "Done!")

	output.Debug("configs generated",
		"output", settings.OutputDir,
		"languages", len(set.Languages),
	)

	return nil
}
