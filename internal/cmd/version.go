package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/presidio-build/presidio-configs/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show presidio-configs version information.

Displays the CLI version, commit, build date and Go version.`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
	return nil
}
