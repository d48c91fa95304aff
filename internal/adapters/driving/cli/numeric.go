package cli

import (
	"github.com/spf13/cobra"

	"github.com/halden-labs/prepkit-cli/internal/adapters/driving/values"
	"github.com/halden-labs/prepkit-cli/internal/logger"
	"github.com/halden-labs/prepkit-cli/internal/transforms/numeric"
)

var (
	normalizeValues string
	normalizeMin    float64
	normalizeMax    float64

	standardizeValues string

	clipValues string
	clipMin    float64
	clipMax    float64

	toIntValues string

	logTransformValues string
)

var numericCmd = &cobra.Command{
	Use:   "numeric",
	Short: "Numeric transformations",
	Long:  `Scale, standardise, clip, convert, and log-transform numeric lists.`,
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Min-max rescale to a target range",
	Long: `Rescales values linearly so the input minimum maps to --new-min and
the input maximum to --new-max. Fails when all values are equal.

Example:
  prepkit numeric normalize --values '1,2,3' --new-min 0 --new-max 1`,
	RunE: runNormalize,
}

var standardizeCmd = &cobra.Command{
	Use:   "standardize",
	Short: "Z-score standardisation",
	Long: `Centres and scales values to zero mean and unit population standard
deviation. Fails when the values have zero variance.

Example:
  prepkit numeric standardize --values '1,2,3'`,
	RunE: runStandardize,
}

var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Clamp values into a range",
	Long: `Clamps every value into [--min-value, --max-value].

Example:
  prepkit numeric clip --values '1,5,10' --min-value 2 --max-value 8`,
	RunE: runClip,
}

var toIntCmd = &cobra.Command{
	Use:   "to-int",
	Short: "Convert values to integers",
	Long: `Converts each value to an integer, silently dropping entries that do
not convert. The drop is intentional best-effort filtering, not an error.

Example:
  prepkit numeric to-int --values '1,2,3,a'`,
	RunE: runToInt,
}

var logTransformCmd = &cobra.Command{
	Use:   "log-transform",
	Short: "Natural log element-wise",
	Long: `Applies the natural logarithm to every value. Any value <= 0 rejects
the whole list.

Example:
  prepkit numeric log-transform --values '1,10,100'`,
	RunE: runLogTransform,
}

func init() {
	normalizeCmd.Flags().StringVar(&normalizeValues, "values", "", "comma-separated list of numbers")
	normalizeCmd.Flags().Float64Var(&normalizeMin, "new-min", 0, "new minimum value")
	normalizeCmd.Flags().Float64Var(&normalizeMax, "new-max", 1, "new maximum value")
	normalizeCmd.MarkFlagRequired("values") //nolint:errcheck

	standardizeCmd.Flags().StringVar(&standardizeValues, "values", "", "comma-separated list of numbers")
	standardizeCmd.MarkFlagRequired("values") //nolint:errcheck

	clipCmd.Flags().StringVar(&clipValues, "values", "", "comma-separated list of numbers")
	clipCmd.Flags().Float64Var(&clipMin, "min-value", 0, "minimum clip value")
	clipCmd.Flags().Float64Var(&clipMax, "max-value", 1, "maximum clip value")
	clipCmd.MarkFlagRequired("values") //nolint:errcheck

	toIntCmd.Flags().StringVar(&toIntValues, "values", "", "comma-separated list of values")
	toIntCmd.MarkFlagRequired("values") //nolint:errcheck

	logTransformCmd.Flags().StringVar(&logTransformValues, "values", "", "comma-separated list of positive numbers")
	logTransformCmd.MarkFlagRequired("values") //nolint:errcheck

	numericCmd.AddCommand(normalizeCmd)
	numericCmd.AddCommand(standardizeCmd)
	numericCmd.AddCommand(clipCmd)
	numericCmd.AddCommand(toIntCmd)
	numericCmd.AddCommand(logTransformCmd)
	rootCmd.AddCommand(numericCmd)
}

func runNormalize(cmd *cobra.Command, _ []string) error {
	in, err := values.ParseFloats(normalizeValues)
	if err != nil {
		return err
	}

	out, err := numeric.Normalize(in, normalizeMin, normalizeMax)
	if err != nil {
		return err
	}

	cmd.Println(values.FormatFloats(out, defaults().Decimals))
	return nil
}

func runStandardize(cmd *cobra.Command, _ []string) error {
	in, err := values.ParseFloats(standardizeValues)
	if err != nil {
		return err
	}

	out, err := numeric.Standardize(in)
	if err != nil {
		return err
	}

	cmd.Println(values.FormatFloats(out, defaults().Decimals))
	return nil
}

func runClip(cmd *cobra.Command, _ []string) error {
	in, err := values.ParseFloats(clipValues)
	if err != nil {
		return err
	}

	out, err := numeric.Clip(in, clipMin, clipMax)
	if err != nil {
		return err
	}

	cmd.Println(values.FormatFloats(out, defaults().Decimals))
	return nil
}

func runToInt(cmd *cobra.Command, _ []string) error {
	in := values.Parse(toIntValues)
	out, rejected := numeric.ToInt(in)

	if rejected > 0 {
		logger.Debug("to-int: dropped %d non-convertible values", rejected)
	}
	cmd.Println(values.FormatInts(out))
	return nil
}

func runLogTransform(cmd *cobra.Command, _ []string) error {
	in, err := values.ParseFloats(logTransformValues)
	if err != nil {
		return err
	}

	out, err := numeric.LogTransform(in)
	if err != nil {
		return err
	}

	cmd.Println(values.FormatFloats(out, defaults().Decimals))
	return nil
}
