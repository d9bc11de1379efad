package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// executeCommand runs cmd under a bare root with a system config path that
// does not exist, so the built-in defaults apply. args start with the
// subcommand name.
func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	root := &cobra.Command{Use: "modmaker", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("system-config", filepath.Join(t.TempDir(), "config.yaml"), "")
	root.AddCommand(cmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}
