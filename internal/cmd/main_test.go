package cmd

import (
	"bytes"
	"testing"

	"go.uber.org/goleak"

	"github.com/presidio-build/presidio-configs/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// writeRegistry writes the en/de scenario registry and returns its path.
func writeRegistry(t *testing.T) string {
	t.Helper()
	return testutil.WriteRegistry(t, testutil.ScenarioRegistry)
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}
