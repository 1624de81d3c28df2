package cmd

import (
	"github.com/spf13/cobra"

	"github.com/presidio-build/presidio-configs/internal/artifact"
	"github.com/presidio-build/presidio-configs/internal/config"
	oerrors "github.com/presidio-build/presidio-configs/internal/errors"
	"github.com/presidio-build/presidio-configs/internal/registry"
)

// addSettingsFlags registers the generator flags on cmd. Values are read
// back through config.Loader, which layers env vars and defaults.
func addSettingsFlags(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.String(config.KeyLanguages, "",
		"Comma-separated language codes, e.g. en,de,fr (env: PRESIDIO_LANGUAGES)")
	addRegistryFlag(cmd)
	fs.String(config.KeyOutput, config.DefaultOutputDir,
		"Output directory for generated files (env: PRESIDIO_OUTPUT)")
	fs.String(config.KeyInstallCommand, config.DefaultInstallCommand,
		"Command prefixed to each model URL in install-models.sh (env: PRESIDIO_INSTALL_COMMAND)")
}

func addRegistryFlag(cmd *cobra.Command) {
	cmd.Flags().String(config.KeyRegistry, config.DefaultRegistryPath,
		"Path to the languages.yaml registry (env: PRESIDIO_REGISTRY)")
}

// resolveSettings reads the command's flags, env vars and defaults.
func resolveSettings(cmd *cobra.Command) (*config.Settings, error) {
	loader := config.NewLoader()
	if err := loader.BindFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	settings, values, err := loader.Load(cmd.Flags())
	if err != nil {
		return nil, err
	}
	config.LogResolvedValues(values)

	return settings, nil
}

// renderArtifacts runs the full pipeline short of writing: language list
// check, registry load, validation, rendering.
func renderArtifacts(settings *config.Settings) (*artifact.Set, error) {
	if err := settings.RequireLanguages(); err != nil {
		return nil, err
	}

	reg, err := registry.Load(settings.RegistryPath)
	if err != nil {
		return nil, err
	}

	langs, err := registry.Validate(settings.Languages, reg)
	if err != nil {
		return nil, err
	}

	return artifact.Build(langs, reg, artifact.Options{
		InstallCommand: settings.InstallCommand,
	})
}

// exitError wraps err as a general failure.
func exitError(err error) error {
	return oerrors.NewExitError(err, oerrors.ExitGeneralError)
}
