package zxmatch

import (
	"github.com/rafaelsanzio/zxcvbn/internal/zxcdata"
)

// ReverseDictionaryMatch runs the dictionary matcher over the reversed
// password, then remaps each hit's span and token back onto the original
// password and tags it Reversed. Grounded on pyzxcvbn/matching.py's
// reverse_dictionary_match.
func ReverseDictionaryMatch(password string, dicts zxcdata.Dictionaries) []Match {
	runes := []rune(password)
	n := len(runes)
	if n == 0 {
		return nil
	}
	reversed := make([]rune, n)
	for i, r := range runes {
		reversed[n-1-i] = r
	}

	hits := DictionaryMatch(string(reversed), dicts)
	matches := make([]Match, 0, len(hits))
	for _, m := range hits {
		i, j := n-1-m.J, n-1-m.I
		matches = append(matches, Match{
			Pattern:        PatternDictionary,
			I:              i,
			J:              j,
			Token:          string(runes[i : j+1]),
			MatchedWord:    m.MatchedWord,
			Rank:           m.Rank,
			DictionaryName: m.DictionaryName,
			Reversed:       true,
		})
	}
	return matches
}
