package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// execute runs a subcommand built by newCmd with a fresh RootOptions and
// returns its stdout.
func execute(t *testing.T, format string, newCmd func(*RootOptions) *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := newCmd(&RootOptions{Format: format})
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func fixture(name string) string {
	return filepath.Join("testdata", name)
}
