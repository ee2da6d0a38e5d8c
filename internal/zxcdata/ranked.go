// Package zxcdata is the static data loader: ranked frequency dictionaries,
// keyboard adjacency graphs, and the l33t substitution table that every
// matcher in internal/zxmatch reads from. All of it is immutable after
// package init except the per-call user_inputs dictionary, which callers
// rebuild fresh for each password via [WithUserInputs] (see spec §5:
// scoping user inputs to the call instead of sharing process state).
package zxcdata

import (
	"fmt"
	"strings"
)

// DictionaryName enumerates the built-in ranked dictionaries plus the
// per-call user_inputs dictionary.
const (
	DictPasswords   = "passwords"
	DictEnglish     = "english"
	DictSurnames    = "surnames"
	DictMaleNames   = "male_names"
	DictFemaleNames = "female_names"
	DictUserInputs  = "user_inputs"
)

// RankedDictionary maps a lowercase word to its 1-based rank (smaller is
// more common).
type RankedDictionary map[string]int

// BuildRankedDict assigns ranks 1..len(orderedList) in list order.
func BuildRankedDict(orderedList []string) RankedDictionary {
	d := make(RankedDictionary, len(orderedList))
	rank := 1
	for _, word := range orderedList {
		if _, exists := d[word]; !exists {
			d[word] = rank
		}
		rank++
	}
	return d
}

// Dictionaries holds the full set of ranked dictionaries consulted by the
// dictionary matcher, the built-ins plus a per-call user_inputs set.
type Dictionaries map[string]RankedDictionary

// builtins is computed once at package init; never mutated afterwards.
var builtins Dictionaries

func init() {
	builtins = Dictionaries{
		DictPasswords:   BuildRankedDict(commonPasswords),
		DictEnglish:     BuildRankedDict(commonEnglishWords),
		DictSurnames:    BuildRankedDict(commonSurnames),
		DictMaleNames:   BuildRankedDict(commonMaleNames),
		DictFemaleNames: BuildRankedDict(commonFemaleNames),
	}
}

// WithUserInputs returns a Dictionaries set containing the built-ins plus
// a freshly built user_inputs dictionary from userInputs (order preserved,
// later duplicates keep the earlier, more significant rank).
//
// Per spec §4.1, userInputs elements that are strings are lowercased;
// integers and booleans are converted to their decimal/textual form then
// lowercased; any other type is dropped silently.
func WithUserInputs(userInputs []any) Dictionaries {
	return WithUserInputWords(NormalizeUserInputs(userInputs))
}

// WithUserInputWords is like WithUserInputs but takes an already-flattened,
// already-lowercased word list (see internal/userinput.Expand), letting
// callers enrich the raw inputs before they become dictionary entries.
func WithUserInputWords(words []string) Dictionaries {
	out := make(Dictionaries, len(builtins)+1)
	for name, d := range builtins {
		out[name] = d
	}
	if len(words) > 0 {
		out[DictUserInputs] = BuildRankedDict(words)
	}
	return out
}

// NormalizeUserInputs converts caller-supplied values into lowercase
// strings usable as dictionary entries, per spec §4.1's conversion rule.
func NormalizeUserInputs(userInputs []any) []string {
	var out []string
	for _, v := range userInputs {
		switch t := v.(type) {
		case string:
			out = append(out, strings.ToLower(t))
		case int:
			out = append(out, fmt.Sprintf("%d", t))
		case int64:
			out = append(out, fmt.Sprintf("%d", t))
		case bool:
			out = append(out, strings.ToLower(fmt.Sprintf("%t", t)))
		default:
			// unsupported types are silently dropped (spec §7).
		}
	}
	return out
}
