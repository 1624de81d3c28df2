// Package artifact renders the generated configuration set and writes it
// to an output directory.
package artifact

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/presidio-build/presidio-configs/internal/projector"
	"github.com/presidio-build/presidio-configs/internal/registry"
)

// Generated file names, in write order.
const (
	NLPConfigFile         = "nlp-config.yaml"
	AnalyzerConfigFile    = "analyzer-config.yaml"
	RecognizersConfigFile = "recognizers-config.yaml"
	InstallScriptFile     = "install-models.sh"
)

const (
	yamlFileMode   os.FileMode = 0o644
	scriptFileMode os.FileMode = 0o755
)

// File is one rendered artifact.
type File struct {
	Name string
	Data []byte
	Mode os.FileMode
}

// IsYAML reports whether the file is a structured config document.
func (f File) IsYAML() bool {
	return filepath.Ext(f.Name) == ".yaml"
}

// Set is the full collection of rendered artifacts for one run.
type Set struct {
	Languages []string
	Files     []File
}

// Names returns the file names in write order.
func (s *Set) Names() []string {
	names := make([]string, len(s.Files))
	for i, f := range s.Files {
		names[i] = f.Name
	}
	return names
}

// Options tunes rendering.
type Options struct {
	// InstallCommand prefixes each model URL in the install script.
	// Empty means projector.DefaultInstallCommand.
	InstallCommand string
}

// Build renders every artifact in memory. langs must already be validated
// against reg. Nothing is written, so a failure here leaves the output
// directory untouched.
func Build(langs []string, reg *registry.Registry, opts Options) (*Set, error) {
	set := &Set{Languages: langs}

	docs := []struct {
		name string
		doc  interface{}
	}{
		{NLPConfigFile, projector.NewNLPConfig(langs, reg)},
		{AnalyzerConfigFile, projector.NewAnalyzerConfig(langs)},
		{RecognizersConfigFile, projector.NewRecognizersConfig(langs, reg)},
	}
	for _, d := range docs {
		data, err := EncodeYAML(d.doc)
		if err != nil {
			return nil, fmt.Errorf("encoding %s: %w", d.name, err)
		}
		set.Files = append(set.Files, File{Name: d.name, Data: data, Mode: yamlFileMode})
	}

	script, err := projector.NewInstallScript(langs, reg, opts.InstallCommand)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", InstallScriptFile, err)
	}
	set.Files = append(set.Files, File{Name: InstallScriptFile, Data: []byte(script), Mode: scriptFileMode})

	return set, nil
}

// EncodeYAML serializes v in block style with two-space indentation.
// Key order follows struct field order and unicode is written literally.
func EncodeYAML(v interface{}) ([]byte, error) {
	var buf bytes.Buffer

	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
