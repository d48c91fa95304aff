package domain

import "strings"

// Stopwords is a set of words excluded from text analysis.
// Membership is case-insensitive; entries are lowercased on the way in.
type Stopwords map[string]struct{}

// NewStopwords builds a stopword set from the given words.
// Empty entries are ignored.
func NewStopwords(words ...string) Stopwords {
	set := make(Stopwords, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return set
}

// Contains reports whether the (already lowercased) word is in the set.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[word]
	return ok
}
