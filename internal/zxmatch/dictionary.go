package zxmatch

import (
	"sort"
	"strings"

	"github.com/rafaelsanzio/zxcvbn/internal/zxcdata"
)

// DictionaryMatch checks every substring of password against every ranked
// dictionary in dicts and emits a match for each hit. O(n^2 * D), fine for
// the short passwords this package is built for (spec §5).
func DictionaryMatch(password string, dicts zxcdata.Dictionaries) []Match {
	orig := []rune(password)
	lower := []rune(strings.ToLower(password))
	n := len(lower)
	var matches []Match
	names := sortedDictNames(dicts)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			candidate := string(lower[i : j+1])
			for _, name := range names {
				rank, ok := dicts[name][candidate]
				if !ok {
					continue
				}
				matches = append(matches, Match{
					Pattern:        PatternDictionary,
					I:              i,
					J:              j,
					Token:          string(orig[i : j+1]),
					MatchedWord:    candidate,
					Rank:           rank,
					DictionaryName: name,
				})
			}
		}
	}
	return matches
}

// sortedDictNames returns dicts' keys in a fixed, deterministic order so
// that when the same word appears in two dictionaries the emitted matches
// are always in the same relative order: the built-in dictionaries first,
// then any other names in dicts, sorted.
func sortedDictNames(dicts zxcdata.Dictionaries) []string {
	order := []string{
		zxcdata.DictPasswords,
		zxcdata.DictEnglish,
		zxcdata.DictSurnames,
		zxcdata.DictMaleNames,
		zxcdata.DictFemaleNames,
		zxcdata.DictUserInputs,
	}
	out := make([]string, 0, len(dicts))
	known := make(map[string]bool, len(order))
	for _, name := range order {
		known[name] = true
		if _, ok := dicts[name]; ok {
			out = append(out, name)
		}
	}
	var extra []string
	for name := range dicts {
		if !known[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}
