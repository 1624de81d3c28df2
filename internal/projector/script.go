package projector

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/presidio-build/presidio-configs/internal/registry"
)

// DefaultInstallCommand installs a wheel into the analyzer's poetry environment.
const DefaultInstallCommand = "poetry run pip install --no-cache-dir"

const modelURLFormat = "https://github.com/explosion/spacy-models/releases/download/%[1]s-%[2]s/%[1]s-%[2]s-py3-none-any.whl"

//go:embed templates/install-models.sh.tmpl
var installScriptTemplate string

var installScript = template.Must(template.New("install-models.sh").Parse(installScriptTemplate))

type scriptBlock struct {
	Language string
	Model    string
	URL      string
}

type scriptData struct {
	InstallCommand string
	Blocks         []scriptBlock
}

// ModelURL returns the release asset URL of a spaCy model wheel.
func ModelURL(model, version string) string {
	return fmt.Sprintf(modelURLFormat, model, version)
}

// NewInstallScript renders the shell script that installs one spaCy model
// per language, in language order. An empty installCommand falls back to
// DefaultInstallCommand.
func NewInstallScript(langs []string, reg *registry.Registry, installCommand string) (string, error) {
	if installCommand == "" {
		installCommand = DefaultInstallCommand
	}

	data := scriptData{
		InstallCommand: installCommand,
		Blocks:         make([]scriptBlock, 0, len(langs)),
	}
	for _, lang := range langs {
		model := reg.Lookup(lang).Model
		data.Blocks = append(data.Blocks, scriptBlock{
			Language: lang,
			Model:    model,
			URL:      ModelURL(model, reg.SpacyVersion),
		})
	}

	var buf bytes.Buffer
	if err := installScript.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing install script template: %w", err)
	}

	return buf.String(), nil
}
