package artifact

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/presidio-build/presidio-configs/internal/registry"
)

func scenarioRegistry() *registry.Registry {
	return &registry.Registry{
		SpacyVersion: "3.7.0",
		Languages: map[string]registry.Language{
			"en": {Model: "en_core_web_lg"},
			"de": {Model: "de_core_news_lg", PhoneContext: []string{"telefon", "tel"}},
			"pl": {Model: "pl_core_news_lg", PhoneContext: []string{"telefon", "komórka"}},
		},
	}
}

func buildScenario(t *testing.T, langs ...string) *Set {
	t.Helper()
	set, err := Build(langs, scenarioRegistry(), Options{})
	require.NoError(t, err)
	return set
}

func fileByName(t *testing.T, set *Set, name string) File {
	t.Helper()
	for _, f := range set.Files {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("artifact %s not rendered", name)
	return File{}
}

func TestBuild_FileOrder(t *testing.T) {
	set := buildScenario(t, "en", "de")

	assert.Equal(t, []string{
		NLPConfigFile,
		AnalyzerConfigFile,
		RecognizersConfigFile,
		InstallScriptFile,
	}, set.Names())
	assert.Equal(t, []string{"en", "de"}, set.Languages)
}

func TestBuild_AnalyzerConfig(t *testing.T) {
	set := buildScenario(t, "en", "de")

	got := string(fileByName(t, set, AnalyzerConfigFile).Data)
	assert.Equal(t, "supported_languages:\n  - en\n  - de\ndefault_score_threshold: 0\n", got)
}

func TestBuild_NLPConfig(t *testing.T) {
	set := buildScenario(t, "en", "de")
	got := string(fileByName(t, set, NLPConfigFile).Data)

	assert.True(t, strings.HasPrefix(got,
		"nlp_engine_name: spacy\n"+
			"models:\n"+
			"  - lang_code: en\n"+
			"    model_name: en_core_web_lg\n"+
			"  - lang_code: de\n"+
			"    model_name: de_core_news_lg\n"+
			"ner_model_configuration:\n"+
			"  model_to_presidio_entity_mapping:\n"+
			"    PER: PERSON\n"+
			"    PERSON: PERSON\n"), got)
	assert.Contains(t, got, "  low_confidence_score_multiplier: 0.4\n")
	assert.Contains(t, got, "  low_score_entity_names:\n    - ORG\n")
	assert.Contains(t, got, "    - WORK_OF_ART\n")

	order := []string{"PER:", "persName:", "PS:", "PRS:", "GPE_LOC:", "low_confidence_score_multiplier:", "labels_to_ignore:"}
	last := -1
	for _, key := range order {
		idx := strings.Index(got, key)
		require.NotEqual(t, -1, idx, key)
		assert.Greater(t, idx, last, "%s out of order", key)
		last = idx
	}
}

func TestBuild_RecognizersConfig(t *testing.T) {
	set := buildScenario(t, "en", "de")
	got := string(fileByName(t, set, RecognizersConfigFile).Data)

	assert.True(t, strings.HasPrefix(got,
		"supported_languages:\n  - en\n  - de\nglobal_regex_flags: 26\nrecognizers:\n  - name: SpacyRecognizer\n"), got)

	phone := "  - name: PhoneRecognizer\n" +
		"    supported_languages:\n" +
		"      - language: en\n" +
		"      - language: de\n" +
		"        context:\n" +
		"          - telefon\n" +
		"          - tel\n" +
		"    type: predefined\n"
	assert.Contains(t, got, phone)
	assert.Equal(t, 1, strings.Count(got, "context:"), "only the phone recognizer carries context")
	assert.Equal(t, 6, strings.Count(got, "type: predefined"))
}

func TestBuild_UnicodeLiteral(t *testing.T) {
	set := buildScenario(t, "pl")
	got := string(fileByName(t, set, RecognizersConfigFile).Data)

	assert.Contains(t, got, "komórka")
	assert.NotContains(t, got, `\u00f3`)
}

func TestBuild_InstallScript(t *testing.T) {
	set := buildScenario(t, "en", "de")
	script := fileByName(t, set, InstallScriptFile)

	assert.False(t, script.IsYAML())
	assert.Equal(t, os.FileMode(0o755), script.Mode)
	assert.Contains(t, string(script.Data),
		"/en_core_web_lg-3.7.0/en_core_web_lg-3.7.0-py3-none-any.whl\n")
	assert.True(t, strings.HasSuffix(string(script.Data), `echo "All models installed successfully"`))
}

func TestBuild_CustomInstallCommand(t *testing.T) {
	set, err := Build([]string{"en"}, scenarioRegistry(), Options{InstallCommand: "uv pip install"})
	require.NoError(t, err)
	assert.Contains(t, string(fileByName(t, set, InstallScriptFile).Data), "\nuv pip install https://")
}

func TestBuild_Deterministic(t *testing.T) {
	first := buildScenario(t, "de", "en", "pl")
	second := buildScenario(t, "de", "en", "pl")
	assert.Equal(t, first.Files, second.Files)
}

func TestEncodeYAML(t *testing.T) {
	out, err := EncodeYAML(map[string]interface{}{"a": []string{"x"}})
	require.NoError(t, err)
	assert.Equal(t, "a:\n  - x\n", string(out))
}

func TestSetWrite(t *testing.T) {
	t.Run("creates missing parent directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")
		require.NoError(t, buildScenario(t, "en").Write(dir))

		for _, name := range []string{NLPConfigFile, AnalyzerConfigFile, RecognizersConfigFile, InstallScriptFile} {
			assert.FileExists(t, filepath.Join(dir, name))
		}
	})

	t.Run("marks the install script executable", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, buildScenario(t, "en").Write(dir))

		info, err := os.Stat(filepath.Join(dir, InstallScriptFile))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

		info, err = os.Stat(filepath.Join(dir, NLPConfigFile))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
	})

	t.Run("overwrites existing files", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, AnalyzerConfigFile)
		require.NoError(t, os.WriteFile(target, []byte("stale: true\n"), 0o644))

		set := buildScenario(t, "de")
		require.NoError(t, set.Write(dir))

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, fileByName(t, set, AnalyzerConfigFile).Data, got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, buildScenario(t, "en", "de").Write(dir))
		first := readDir(t, dir)

		require.NoError(t, buildScenario(t, "en", "de").Write(dir))
		assert.Equal(t, first, readDir(t, dir))
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, buildScenario(t, "en").Write(dir))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 4)
	})
}

func readDir(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	files := make(map[string][]byte, len(entries))
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		files[e.Name()] = data
	}
	return files
}
