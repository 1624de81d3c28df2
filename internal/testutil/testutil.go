// Package testutil provides test helpers for registry and CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ScenarioRegistry is the two-language registry used by end-to-end tests.
const ScenarioRegistry = `spacy_version: "3.7.0"
languages:
  en:
    model: en_core_web_lg
  de:
    model: de_core_news_lg
    phone_context: ["telefon", "tel"]
`

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// WriteRegistry writes content as languages.yaml in a fresh temp dir and
// returns its path.
func WriteRegistry(t *testing.T, content string) string {
	t.Helper()
	return WriteFile(t, t.TempDir(), "languages.yaml", content)
}
