// Package registry loads the language registry and validates requested
// language codes against it.
package registry

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	oerrors "github.com/presidio-build/presidio-configs/internal/errors"
	"github.com/presidio-build/presidio-configs/internal/output"
)

// DefaultPath is where the build image ships the registry.
const DefaultPath = "/build/languages.yaml"

// Registry is the catalog of supported languages.
type Registry struct {
	// SpacyVersion is the spaCy release used to build model download URLs.
	SpacyVersion string `yaml:"spacy_version"`

	// Languages maps a language code (e.g. "en") to its entry.
	Languages map[string]Language `yaml:"languages"`
}

// Language is a single registry entry.
type Language struct {
	// Model is the spaCy model identifier (e.g. "en_core_web_lg").
	Model string `yaml:"model"`

	// PhoneContext holds context words for the phone-number recognizer.
	// nil means the registry entry has no phone_context key.
	PhoneContext []string `yaml:"phone_context"`
}

// Load reads and decodes the registry at path.
// The file is re-read on every call.
func Load(path string) (*Registry, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, oerrors.NewRegistryNotFoundError(path)
		}
		return nil, fmt.Errorf("stat registry %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}

	reg, err := Parse(data)
	if err != nil {
		return nil, oerrors.NewRegistryParseError(path, err)
	}

	output.Debug("registry loaded",
		"path", path,
		"spacy_version", reg.SpacyVersion,
		"languages", len(reg.Languages),
	)

	return reg, nil
}

// Parse decodes registry YAML.
func Parse(data []byte) (*Registry, error) {
	var reg Registry

	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&reg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("registry document is empty")
		}
		return nil, err
	}

	if reg.Languages == nil {
		reg.Languages = map[string]Language{}
	}

	return &reg, nil
}

// Has reports whether code is a key of the registry.
func (r *Registry) Has(code string) bool {
	_, ok := r.Languages[code]
	return ok
}

// Codes returns every language code in the registry, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.Languages))
	for code := range r.Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Lookup returns the entry for code. Callers validate codes first.
func (r *Registry) Lookup(code string) Language {
	return r.Languages[code]
}
