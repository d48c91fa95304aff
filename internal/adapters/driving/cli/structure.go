package cli

import (
	"github.com/spf13/cobra"

	"github.com/halden-labs/prepkit-cli/internal/adapters/driving/values"
	"github.com/halden-labs/prepkit-cli/internal/logger"
	"github.com/halden-labs/prepkit-cli/internal/transforms/structural"
)

var (
	flattenLists string

	shuffleValues string
	shuffleSeed   int64
)

var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Structural list operations",
	Long:  `Flatten nested lists and shuffle lists reproducibly.`,
}

var flattenCmd = &cobra.Command{
	Use:   "flatten",
	Short: "Flatten a list of lists",
	Long: `Unnests one level of contained lists, preserving element order.

Example:
  prepkit structure flatten --lists '[[1,2],[3,4]]'`,
	RunE: runFlatten,
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Shuffle a list with a seed",
	Long: `Reorders the list pseudo-randomly. The same seed and input always
produce the same order. Without --seed the configured default seed is used.

Example:
  prepkit structure shuffle --values '1,2,3' --seed 42`,
	RunE: runShuffle,
}

func init() {
	flattenCmd.Flags().StringVar(&flattenLists, "lists", "", "nested list literal, e.g. '[[1,2],[3,4]]'")
	flattenCmd.MarkFlagRequired("lists") //nolint:errcheck

	shuffleCmd.Flags().StringVar(&shuffleValues, "values", "", "comma-separated list of values")
	shuffleCmd.Flags().Int64Var(&shuffleSeed, "seed", 0, "seed for reproducibility (default from config)")
	shuffleCmd.MarkFlagRequired("values") //nolint:errcheck

	structureCmd.AddCommand(flattenCmd)
	structureCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(structureCmd)
}

func runFlatten(cmd *cobra.Command, _ []string) error {
	nested, err := values.ParseNested(flattenLists)
	if err != nil {
		return err
	}

	out := structural.Flatten(nested)

	logger.Debug("flatten: %d lists, %d elements", len(nested), len(out))
	cmd.Println(values.FormatValues(out))
	return nil
}

func runShuffle(cmd *cobra.Command, _ []string) error {
	seed := shuffleSeed
	if !cmd.Flags().Changed("seed") {
		seed = defaults().Seed
	}

	in := values.Parse(shuffleValues)
	out := structural.Shuffle(in, seed)

	logger.Debug("shuffle: seed %d", seed)
	cmd.Println(values.FormatValues(out))
	return nil
}
