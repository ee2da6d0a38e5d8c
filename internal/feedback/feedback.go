// Package feedback turns the winning match sequence and score into a
// short, actionable {warning, suggestions} pair, keyed on the
// sequence's single longest match rather than ranking a flat list of
// issues (there's only ever one winning sequence to describe).
package feedback

import (
	"strings"
	"unicode"

	"github.com/rafaelsanzio/zxcvbn/internal/zxmodel"
)

// Feedback is the {warning, suggestions} pair attached to a Result.
type Feedback struct {
	Warning     string
	Suggestions []string
}

var defaultSuggestions = []string{
	"Use a few words, avoid common phrases",
	"No need for symbols, digits, or uppercase letters",
}

const addAnotherWord = "Add another word or two. Uncommon words are better."

// Select picks feedback for the winning sequence at the given score.
// A strong-enough score (3 or 4) gets no feedback at all; an empty
// sequence (empty password) gets generic starter advice; otherwise the
// longest match in the sequence drives a specific warning plus
// suggestions, with a generic "add another word" nudge always first.
func Select(sequence []zxmodel.Match, score int) Feedback {
	if len(sequence) == 0 {
		return Feedback{Suggestions: append([]string(nil), defaultSuggestions...)}
	}
	if score > 2 {
		return Feedback{}
	}

	longest := sequence[0]
	for _, m := range sequence[1:] {
		if len(m.Token) > len(longest.Token) {
			longest = m
		}
	}

	fb := matchFeedback(longest, len(sequence) == 1)
	suggestions := make([]string, 0, len(fb.Suggestions)+1)
	suggestions = append(suggestions, addAnotherWord)
	suggestions = append(suggestions, fb.Suggestions...)
	return Feedback{Warning: fb.Warning, Suggestions: suggestions}
}

// matchFeedback dispatches on the match's pattern for a warning and
// suggestions specific to that pattern, or a zero Feedback if the
// pattern (bruteforce) has nothing specific to say.
func matchFeedback(m zxmodel.Match, isSoleMatch bool) Feedback {
	switch m.Pattern {
	case zxmodel.PatternDictionary:
		return dictionaryFeedback(m, isSoleMatch)
	case zxmodel.PatternSpatial:
		warning := "Short keyboard patterns are easy to guess"
		if m.Turns == 1 {
			warning = "Straight rows of keys are easy to guess"
		}
		return Feedback{Warning: warning, Suggestions: []string{"Use a longer keyboard pattern with more turns"}}
	case zxmodel.PatternRepeat:
		warning := `Repeats like "abcabcabc" are only slightly harder to guess than "abc"`
		if len([]rune(m.BaseToken)) == 1 {
			warning = `Repeats like "aaa" are easy to guess`
		}
		return Feedback{Warning: warning, Suggestions: []string{"Avoid repeated words and characters"}}
	case zxmodel.PatternSequence:
		return Feedback{
			Warning:     "Sequences like abc or 6543 are easy to guess",
			Suggestions: []string{"Avoid sequences"},
		}
	case zxmodel.PatternRegex:
		if m.RegexName == "recent_year" {
			return Feedback{
				Warning:     "Recent years are easy to guess",
				Suggestions: []string{"Avoid recent years", "Avoid years that are associated with you"},
			}
		}
		return Feedback{}
	case zxmodel.PatternDate:
		return Feedback{
			Warning:     "Dates are often easy to guess",
			Suggestions: []string{"Avoid dates and years that are associated with you"},
		}
	default:
		return Feedback{}
	}
}

// dictionaryFeedback mirrors get_dictionary_match_feedback: a rank-based
// warning for common passwords, a "by itself" warning for plain words
// and names, plus suggestions about capitalization, reversal, and
// leetspeak substitution not helping much.
func dictionaryFeedback(m zxmodel.Match, isSoleMatch bool) Feedback {
	var warning string
	switch m.DictionaryName {
	case "passwords":
		if isSoleMatch && !m.L33t && !m.Reversed {
			switch {
			case m.Rank <= 10:
				warning = "This is a top-10 common password"
			case m.Rank <= 100:
				warning = "This is a top-100 common password"
			default:
				warning = "This is a very common password"
			}
		} else if m.GuessesLog10 <= 4 {
			warning = "This is similar to a commonly used password"
		}
	case "english":
		if isSoleMatch {
			warning = "A word by itself is easy to guess"
		}
	case "surnames", "male_names", "female_names":
		if isSoleMatch {
			warning = "Names and surnames by themselves are easy to guess"
		} else {
			warning = "Common names and surnames are easy to guess"
		}
	}

	var suggestions []string
	if hasUpperVariation(m.Token) {
		if isAllUpper(m.Token) {
			suggestions = append(suggestions, "All-uppercase is almost as easy to guess as all-lowercase")
		} else {
			suggestions = append(suggestions, "Capitalization doesn't help very much")
		}
	}
	if m.Reversed && len([]rune(m.Token)) >= 4 {
		suggestions = append(suggestions, "Reversed words aren't much harder to guess")
	}
	if m.L33t {
		suggestions = append(suggestions, `Predictable substitutions like '@' instead of 'a' don't help very much`)
	}

	return Feedback{Warning: warning, Suggestions: suggestions}
}

func hasUpperVariation(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

func isAllUpper(s string) bool {
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}
