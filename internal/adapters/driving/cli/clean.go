package cli

import (
	"github.com/spf13/cobra"

	"github.com/halden-labs/prepkit-cli/internal/adapters/driving/values"
	"github.com/halden-labs/prepkit-cli/internal/logger"
	"github.com/halden-labs/prepkit-cli/internal/transforms/cleaning"
)

var (
	removeMissingValues string
	fillMissingValues   string
	fillMissingFill     string
	uniqueValues        string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Data cleaning operations",
	Long:  `Remove or fill missing values and drop duplicates.`,
}

var removeMissingCmd = &cobra.Command{
	Use:   "remove-missing",
	Short: "Remove missing values from a list",
	Long: `Removes empty, None, and NaN entries from a comma-separated list.

Example:
  prepkit clean remove-missing --values '1,2,,None,4'`,
	RunE: runRemoveMissing,
}

var fillMissingCmd = &cobra.Command{
	Use:   "fill-missing",
	Short: "Fill missing values in a list",
	Long: `Replaces empty, None, and NaN entries with a fill value.

Example:
  prepkit clean fill-missing --values '1,2,,None,4' --fill 0`,
	RunE: runFillMissing,
}

var uniqueCmd = &cobra.Command{
	Use:   "unique",
	Short: "Remove duplicate values",
	Long: `Keeps each distinct value exactly once. Output order is not
guaranteed.

Example:
  prepkit clean unique --values '1,2,2,3'`,
	RunE: runUnique,
}

func init() {
	removeMissingCmd.Flags().StringVar(&removeMissingValues, "values", "", "comma-separated list of values")
	removeMissingCmd.MarkFlagRequired("values") //nolint:errcheck

	fillMissingCmd.Flags().StringVar(&fillMissingValues, "values", "", "comma-separated list of values")
	fillMissingCmd.Flags().StringVar(&fillMissingFill, "fill", "", "value to fill missing entries (default from config)")
	fillMissingCmd.MarkFlagRequired("values") //nolint:errcheck

	uniqueCmd.Flags().StringVar(&uniqueValues, "values", "", "comma-separated list of values")
	uniqueCmd.MarkFlagRequired("values") //nolint:errcheck

	cleanCmd.AddCommand(removeMissingCmd)
	cleanCmd.AddCommand(fillMissingCmd)
	cleanCmd.AddCommand(uniqueCmd)
	rootCmd.AddCommand(cleanCmd)
}

func runRemoveMissing(cmd *cobra.Command, _ []string) error {
	in := values.Parse(removeMissingValues)
	out := cleaning.RemoveMissing(in)

	logger.Debug("remove-missing: %d in, %d out", len(in), len(out))
	cmd.Println(values.FormatValues(out))
	return nil
}

func runFillMissing(cmd *cobra.Command, _ []string) error {
	fill := fillMissingFill
	if !cmd.Flags().Changed("fill") {
		fill = defaults().Fill
	}

	in := values.Parse(fillMissingValues)
	out := cleaning.FillMissing(in, values.ParseOne(fill))

	cmd.Println(values.FormatValues(out))
	return nil
}

func runUnique(cmd *cobra.Command, _ []string) error {
	in := values.Parse(uniqueValues)
	out := cleaning.Deduplicate(in)

	logger.Debug("unique: %d in, %d distinct", len(in), len(out))
	cmd.Println(values.FormatValues(out))
	return nil
}
