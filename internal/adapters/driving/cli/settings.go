package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage CLI defaults",
	Long: `View and configure the defaults applied when a flag is not given:
output decimal places, shuffle seed, fill value, and stopword list.

Settings persist in a TOML file under ~/.prepkit.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current defaults",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a default",
	Long: `Set one of the persisted defaults.

Keys:
  decimals   - decimal places for printed floats (integer)
  seed       - default shuffle seed (integer)
  fill       - default fill value for fill-missing
  stopwords  - comma-separated default stopword list`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore built-in defaults",
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	d := defaults()

	cmd.Println("Current Defaults")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Decimals:  %d\n", d.Decimals)
	cmd.Printf("  Seed:      %d\n", d.Seed)
	cmd.Printf("  Fill:      %s\n", d.Fill)
	if len(d.Stopwords) == 0 {
		cmd.Printf("  Stopwords: (none)\n")
	} else {
		cmd.Printf("  Stopwords: %s\n", strings.Join(d.Stopwords, ", "))
	}
	if configStore != nil {
		cmd.Println()
		cmd.Printf("  Config file: %s\n", configStore.Path())
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	// Force lazy initialisation before writing.
	defaults()
	if configStore == nil {
		return errors.New("config store not available")
	}

	key, value := args[0], args[1]
	switch key {
	case "decimals":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("decimals must be a non-negative integer, got %q", value)
		}
		if err := configStore.SetDecimals(n); err != nil {
			return fmt.Errorf("saving decimals: %w", err)
		}
	case "seed":
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be an integer, got %q", value)
		}
		if err := configStore.SetSeed(seed); err != nil {
			return fmt.Errorf("saving seed: %w", err)
		}
	case "fill":
		if err := configStore.SetFill(value); err != nil {
			return fmt.Errorf("saving fill: %w", err)
		}
	case "stopwords":
		var words []string
		for _, w := range strings.Split(value, ",") {
			if w = strings.TrimSpace(w); w != "" {
				words = append(words, w)
			}
		}
		if err := configStore.SetStopwords(words); err != nil {
			return fmt.Errorf("saving stopwords: %w", err)
		}
	default:
		return fmt.Errorf("unknown setting %q (want decimals, seed, fill, or stopwords)", key)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	defaults()
	if configStore == nil {
		return errors.New("config store not available")
	}

	if err := configStore.Reset(); err != nil {
		return fmt.Errorf("resetting defaults: %w", err)
	}

	cmd.Println("Defaults restored.")
	return nil
}
