package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/halden-labs/prepkit-cli/internal/adapters/driving/values"
	"github.com/halden-labs/prepkit-cli/internal/core/domain"
	"github.com/halden-labs/prepkit-cli/internal/logger"
	"github.com/halden-labs/prepkit-cli/internal/transforms/text"
)

var (
	tokenizeInput string

	cleanTextInput string

	stopwordsInput string
	stopwordsList  string
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Text processing",
	Long:  `Tokenise, clean, and filter free-form text.`,
}

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize",
	Short: "Split text into lowercase tokens",
	Long: `Lowercases the input and splits it into runs of letters and digits.

Example:
  prepkit text tokenize --input-text 'Hello World!'`,
	RunE: runTokenize,
}

var cleanTextCmd = &cobra.Command{
	Use:   "clean",
	Short: "Keep only letters, digits, and spaces",
	Long: `Lowercases the input and removes punctuation. Whitespace is
preserved exactly as entered.

Example:
  prepkit text clean --input-text 'Hello, World!!!'`,
	RunE: runCleanText,
}

var removeStopwordsCmd = &cobra.Command{
	Use:   "remove-stopwords",
	Short: "Remove stopwords from text",
	Long: `Tokenises the input and drops tokens found in the stopword list.
Without --stopwords the configured default list is used.

Example:
  prepkit text remove-stopwords --input-text 'this is a test' --stopwords 'is,a'`,
	RunE: runRemoveStopwords,
}

func init() {
	tokenizeCmd.Flags().StringVar(&tokenizeInput, "input-text", "", "input text to tokenise")
	tokenizeCmd.MarkFlagRequired("input-text") //nolint:errcheck

	cleanTextCmd.Flags().StringVar(&cleanTextInput, "input-text", "", "input text to clean")
	cleanTextCmd.MarkFlagRequired("input-text") //nolint:errcheck

	removeStopwordsCmd.Flags().StringVar(&stopwordsInput, "input-text", "", "input text to process")
	removeStopwordsCmd.Flags().StringVar(&stopwordsList, "stopwords", "", "comma-separated stopwords (default from config)")
	removeStopwordsCmd.MarkFlagRequired("input-text") //nolint:errcheck

	textCmd.AddCommand(tokenizeCmd)
	textCmd.AddCommand(cleanTextCmd)
	textCmd.AddCommand(removeStopwordsCmd)
	rootCmd.AddCommand(textCmd)
}

func runTokenize(cmd *cobra.Command, _ []string) error {
	tokens := text.Tokenize(tokenizeInput)

	logger.Debug("tokenize: %d tokens", len(tokens))
	cmd.Println(values.FormatStrings(tokens))
	return nil
}

func runCleanText(cmd *cobra.Command, _ []string) error {
	cmd.Println(text.Clean(cleanTextInput))
	return nil
}

func runRemoveStopwords(cmd *cobra.Command, _ []string) error {
	words := strings.Split(stopwordsList, ",")
	if !cmd.Flags().Changed("stopwords") {
		words = defaults().Stopwords
	}

	set := domain.NewStopwords(words...)
	tokens := text.RemoveStopwords(stopwordsInput, set)

	logger.Debug("remove-stopwords: %d stopwords, %d tokens kept", len(set), len(tokens))
	cmd.Println(values.FormatStrings(tokens))
	return nil
}
