package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/halden-labs/prepkit-cli/internal/adapters/driven/config/file"
)

// setupTestConfig points the CLI at a throwaway config store so tests
// never touch the user's home directory.
func setupTestConfig(t *testing.T) *file.ConfigStore {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	prev := configStore
	configStore = store
	t.Cleanup(func() { configStore = prev })

	return store
}

// execute runs the root command with the given args and captures output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlag clears a flag's changed state so a later test sees the
// "flag not given" path again.
func resetFlag(t *testing.T, cmd *cobra.Command, name string) {
	t.Helper()

	f := cmd.Flags().Lookup(name)
	require.NotNil(t, f)
	require.NoError(t, f.Value.Set(f.DefValue))
	f.Changed = false
}
