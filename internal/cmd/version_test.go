package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
}

func TestVersion_Output(t *testing.T) {
	stdout, err := execute(t, "version")
	require.NoError(t, err)

	assert.Contains(t, stdout, "presidio-configs version")
}

func TestVersion_RejectsArgs(t *testing.T) {
	_, err := execute(t, "version", "extra")
	require.Error(t, err)
}
