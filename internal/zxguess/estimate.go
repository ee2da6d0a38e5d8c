// Package zxguess turns a single Match's pattern-specific fields into a
// guess estimate: "how many attempts would an attacker need, guessing in
// roughly most-likely-first order, to produce this exact token". Every
// estimator here is a pure function of the match (plus the dictionaries
// and graphs used to build it); none of them look at the rest of the
// password. Grounded on pyzxcvbn/scoring.py's estimate_guesses and its
// per-pattern helpers.
package zxguess

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/rafaelsanzio/zxcvbn/internal/zxmodel"
)

// Constants named and valued exactly as pyzxcvbn/scoring.py's.
const (
	BruteforceCardinality        = 10
	MinSubmatchGuessesSingleChar = 10
	MinSubmatchGuessesMultiChar  = 50
	MinYearSpace                 = 20
	ReferenceYear                = 2000

	KeyboardStartingPositions = 94
	KeyboardAverageDegree     = 4.595744680851064
	KeypadStartingPositions   = 13
	KeypadAverageDegree       = 5.541666666666667
)

var charClassCardinality = map[string]float64{
	"alpha_lower":   26,
	"alpha_upper":   26,
	"alpha":         52,
	"alphanumeric":  62,
	"digits":        10,
	"symbols":       33,
}

// Estimate dispatches on match.Pattern and returns the guess count for
// that single match. The caller (internal/scoring) is responsible for
// caching it onto the match exactly once, per spec invariant.
func Estimate(m zxmodel.Match) float64 {
	switch m.Pattern {
	case zxmodel.PatternBruteforce:
		return bruteforceGuesses(m)
	case zxmodel.PatternDictionary:
		return dictionaryGuesses(m)
	case zxmodel.PatternSpatial:
		return spatialGuesses(m)
	case zxmodel.PatternRepeat:
		return repeatGuesses(m)
	case zxmodel.PatternSequence:
		return sequenceGuesses(m)
	case zxmodel.PatternRegex:
		return regexGuesses(m)
	case zxmodel.PatternDate:
		return dateGuesses(m)
	default:
		return bruteforceGuesses(m)
	}
}

func bruteforceGuesses(m zxmodel.Match) float64 {
	guesses := math.Pow(BruteforceCardinality, float64(m.Len()))
	if math.IsInf(guesses, 1) {
		guesses = math.MaxFloat64
	}
	var floor float64
	if m.Len() == 1 {
		floor = MinSubmatchGuessesSingleChar + 1
	} else {
		floor = MinSubmatchGuessesMultiChar + 1
	}
	return math.Max(guesses, floor)
}

func dictionaryGuesses(m zxmodel.Match) float64 {
	guesses := float64(m.Rank)
	guesses *= uppercaseVariations(m.Token)
	if m.L33t {
		guesses *= l33tVariations(m.Token, m.Sub)
	}
	if m.Reversed {
		guesses *= 2
	}
	return guesses
}

var (
	reStartUpper = regexp.MustCompile(`^[A-Z][^A-Z]+$`)
	reEndUpper   = regexp.MustCompile(`^[^A-Z]+[A-Z]$`)
	reAllUpper   = regexp.MustCompile(`^[^a-z]+$`)
	reAllLower   = regexp.MustCompile(`^[^A-Z]+$`)
)

// uppercaseVariations estimates how many ways an attacker guessing
// case-insensitively-first would need to try before hitting this exact
// capitalization.
func uppercaseVariations(word string) float64 {
	if word == "" || reAllLower.MatchString(word) {
		return 1
	}
	for _, re := range []*regexp.Regexp{reStartUpper, reEndUpper, reAllUpper} {
		if re.MatchString(word) {
			return 2
		}
	}
	var upper, lower int
	for _, r := range word {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		}
	}
	return binomSum(upper, lower)
}

// l33tVariations estimates how many ways an attacker guessing
// unsubstituted-first would need to try before hitting this exact l33t
// substitution, one factor per distinct substituted rune.
func l33tVariations(token string, sub map[rune]rune) float64 {
	if len(sub) == 0 {
		return 1
	}
	lower := []rune(strings.ToLower(token))
	variations := 1.0
	for subbed, plain := range sub {
		var s, u int
		for _, r := range lower {
			if r == subbed {
				s++
			} else if r == plain {
				u++
			}
		}
		if s == 0 || u == 0 {
			variations *= 2
			continue
		}
		variations *= binomSum(s, u)
	}
	return variations
}

// binomSum is the sum_{i=1}^{min(a,b)} C(a+b, i), the combinatorics used
// throughout for "how many of these a+b positions could plausibly be the
// i substituted/uppercased ones".
func binomSum(a, b int) float64 {
	lo := a
	if b < lo {
		lo = b
	}
	if lo <= 0 {
		return 1
	}
	sum := 0.0
	for i := 1; i <= lo; i++ {
		sum += binom(a+b, i)
	}
	return sum
}

func binom(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1.0
	for i := 0; i < k; i++ {
		result *= float64(n-i) / float64(i+1)
	}
	return result
}

func spatialGuesses(m zxmodel.Match) float64 {
	var s float64 = KeyboardStartingPositions
	var d float64 = KeyboardAverageDegree
	if m.Graph == "keypad" || m.Graph == "mac_keypad" {
		s, d = KeypadStartingPositions, KeypadAverageDegree
	}

	l := m.Len()
	t := m.Turns
	if t < 1 {
		t = 1
	}

	var guesses float64
	for i := 2; i <= l; i++ {
		possibleTurns := t
		if i-1 < possibleTurns {
			possibleTurns = i - 1
		}
		for j := 1; j <= possibleTurns; j++ {
			guesses += binom(i-1, j-1) * s * math.Pow(d, float64(j))
		}
	}

	if m.ShiftedCount > 0 {
		shifted := m.ShiftedCount
		unshifted := l - shifted
		if unshifted <= 0 {
			guesses *= 2
		} else {
			guesses *= binomSum(shifted, unshifted)
		}
	}
	return guesses
}

func repeatGuesses(m zxmodel.Match) float64 {
	return m.BaseGuesses * float64(m.RepeatCount)
}

// sequenceStartChars are the characters a naturally-bounded run would
// start or end on (the first/last letter of the alphabet, or a digit an
// attacker would try very early): these runs cost an attacker the least.
var sequenceStartChars = map[rune]bool{
	'a': true, 'A': true, 'z': true, 'Z': true, '0': true, '1': true, '9': true,
}

func sequenceGuesses(m zxmodel.Match) float64 {
	if m.Token == "" {
		return 1
	}
	first := rune(m.Token[0])
	var base float64
	switch {
	case sequenceStartChars[first]:
		base = 4
	case first >= '0' && first <= '9':
		base = 10
	default:
		base = 26
	}
	if !m.Ascending {
		base *= 2
	}
	return base * float64(m.Len())
}

func regexGuesses(m zxmodel.Match) float64 {
	if card, ok := charClassCardinality[m.RegexName]; ok {
		return math.Pow(card, float64(m.Len()))
	}
	if m.RegexName == "recent_year" {
		yearSpace := math.Abs(float64(m.YearValue - ReferenceYear))
		return math.Max(yearSpace, MinYearSpace)
	}
	return bruteforceGuesses(m)
}

func dateGuesses(m zxmodel.Match) float64 {
	yearSpace := math.Max(math.Abs(float64(m.Year-ReferenceYear)), MinYearSpace)
	guesses := yearSpace * 31 * 12
	if m.HasFullYear {
		guesses *= 2
	}
	if m.Separator != "" {
		guesses *= 4
	}
	return guesses
}
