// Package cli provides the cobra command tree for prepkit.
// Commands parse command-line list literals, call the transform
// library, and print the formatted result.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/halden-labs/prepkit-cli/internal/adapters/driven/config/file"
	"github.com/halden-labs/prepkit-cli/internal/logger"
)

// version is the prepkit release version.
var version = "0.1.0"

var (
	verboseFlag bool

	// configStore holds the persisted CLI defaults. Lazily initialised;
	// tests inject a temp-dir store instead.
	configStore *file.ConfigStore
)

var rootCmd = &cobra.Command{
	Use:   "prepkit",
	Short: "Stateless data-preprocessing toolkit",
	Long: `prepkit applies stateless preprocessing transforms to numeric, text,
and nested-list data supplied on the command line.

Transforms are grouped by kind: clean (missing values, duplicates),
numeric (scaling, conversion), text (tokenisation, stopwords), and
structure (flatten, shuffle).`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command. The caller translates a returned error
// into a non-zero exit code.
func Execute() error {
	return rootCmd.Execute()
}

// defaults returns the persisted CLI defaults, falling back to the
// built-in ones when the config file cannot be opened.
func defaults() file.Defaults {
	if configStore == nil {
		store, err := file.NewConfigStore("")
		if err != nil {
			logger.Warn("config unavailable, using built-in defaults: %v", err)
			return file.DefaultDefaults()
		}
		configStore = store
	}
	return configStore.Defaults()
}
