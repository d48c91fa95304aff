// Package text provides tokenisation, cleaning, and stopword filtering
// for free-form strings.
package text

import (
	"strings"
	"unicode"

	"github.com/halden-labs/prepkit-cli/internal/core/domain"
)

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Tokenize lowercases the input and splits it into maximal runs of
// letters and digits. Punctuation and whitespace are separators and do
// not appear in the output.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), isSeparator)
}

// Clean lowercases the input and keeps only letters, digits, and
// whitespace. Whitespace runs are preserved exactly as they appear in
// the input; only punctuation is removed.
func Clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// RemoveStopwords tokenizes the input and drops every token present in
// the stopword set. The relative order of surviving tokens is preserved.
func RemoveStopwords(s string, stopwords domain.Stopwords) []string {
	tokens := Tokenize(s)
	result := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if stopwords.Contains(tok) {
			continue
		}
		result = append(result, tok)
	}
	return result
}
