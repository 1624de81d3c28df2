// Package config resolves generator settings from flags, environment
// variables and built-in defaults.
package config

import (
	"strings"

	oerrors "github.com/presidio-build/presidio-configs/internal/errors"
	"github.com/presidio-build/presidio-configs/internal/projector"
	"github.com/presidio-build/presidio-configs/internal/registry"
)

// Setting keys. Each doubles as the flag name; the environment variable is
// PRESIDIO_<KEY> with dashes replaced by underscores.
const (
	KeyLanguages      = "languages"
	KeyRegistry       = "registry"
	KeyOutput         = "output"
	KeyInstallCommand = "install-command"
)

// Defaults.
const (
	DefaultRegistryPath   = registry.DefaultPath
	DefaultOutputDir      = "/output"
	DefaultInstallCommand = projector.DefaultInstallCommand
)

// Settings is the resolved configuration of one run.
type Settings struct {
	// Languages is the parsed --languages list, order preserved.
	Languages []string

	// RegistryPath is the languages.yaml location.
	RegistryPath string

	// OutputDir receives the generated files.
	OutputDir string

	// InstallCommand prefixes each model URL in install-models.sh.
	InstallCommand string
}

// RequireLanguages fails with ErrEmptyLanguageList when no usable code
// was given.
func (s *Settings) RequireLanguages() error {
	if len(s.Languages) == 0 {
		return oerrors.NewEmptyLanguageListError()
	}
	return nil
}

// ParseLanguages splits a comma-separated list, trims each entry and drops
// entries that are empty after trimming. Order and duplicates are kept.
func ParseLanguages(raw string) []string {
	var langs []string
	for _, part := range strings.Split(raw, ",") {
		if lang := strings.TrimSpace(part); lang != "" {
			langs = append(langs, lang)
		}
	}
	return langs
}
