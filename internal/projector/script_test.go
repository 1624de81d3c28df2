package projector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelURL(t *testing.T) {
	assert.Equal(t,
		"https://github.com/explosion/spacy-models/releases/download/en_core_web_lg-3.7.0/en_core_web_lg-3.7.0-py3-none-any.whl",
		ModelURL("en_core_web_lg", "3.7.0"),
	)
}

func TestNewInstallScript(t *testing.T) {
	script, err := NewInstallScript([]string{"en", "de"}, scenarioRegistry(), "")
	require.NoError(t, err)

	want := `#!/bin/sh
set -e

echo "Installing en_core_web_lg for en..."
poetry run pip install --no-cache-dir https://github.com/explosion/spacy-models/releases/download/en_core_web_lg-3.7.0/en_core_web_lg-3.7.0-py3-none-any.whl

echo "Installing de_core_news_lg for de..."
poetry run pip install --no-cache-dir https://github.com/explosion/spacy-models/releases/download/de_core_news_lg-3.7.0/de_core_news_lg-3.7.0-py3-none-any.whl

echo "All models installed successfully"`

	assert.Equal(t, want, script)
}

func TestNewInstallScript_NoTrailingNewline(t *testing.T) {
	script, err := NewInstallScript([]string{"en"}, scenarioRegistry(), "")
	require.NoError(t, err)
	assert.False(t, strings.HasSuffix(script, "\n"))
}

func TestNewInstallScript_CustomCommand(t *testing.T) {
	script, err := NewInstallScript([]string{"de"}, scenarioRegistry(), "pip install")
	require.NoError(t, err)

	assert.Contains(t, script, "\npip install https://github.com/explosion/spacy-models/releases/download/de_core_news_lg-3.7.0/")
	assert.NotContains(t, script, "poetry")
}

func TestNewInstallScript_OrderFollowsInput(t *testing.T) {
	script, err := NewInstallScript([]string{"de", "en"}, scenarioRegistry(), "")
	require.NoError(t, err)

	de := strings.Index(script, "for de...")
	en := strings.Index(script, "for en...")
	require.NotEqual(t, -1, de)
	require.NotEqual(t, -1, en)
	assert.Less(t, de, en)
}

func TestNewInstallScript_Header(t *testing.T) {
	script, err := NewInstallScript(nil, scenarioRegistry(), "")
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\nset -e\n\necho \"All models installed successfully\"", script)
}
