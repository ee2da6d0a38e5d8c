package zxmatch

import (
	"github.com/rafaelsanzio/zxcvbn/internal/scoring"
	"github.com/rafaelsanzio/zxcvbn/internal/zxcdata"
)

// RepeatMatch scans password for runs that are a short unit repeated two
// or more times (e.g. "aaaaa", "abcabcabc"), recursively scoring the
// repeating unit itself to price the whole run. Grounded on
// pyzxcvbn/matching.py's repeat_match, reimplemented without a
// backreference regex engine (RE2 doesn't support `\1`): for each
// candidate start we directly search for the longest span tileable by a
// repeated unit, preferring the smallest unit on ties, which is
// equivalent to the greedy/lazy-regex comparison the original performs.
//
// Runs of total length 2 are excluded (mirrors the spatial matcher's own
// "longer than 2" floor) so that a two-character repeat like the "11" in
// "11aaa11" is left for the regex/dictionary matchers to claim instead;
// without this floor the recursive base-token pricing makes every
// two-character repeat strictly cheaper than any alternative, which
// swamps the decomposition with trivial repeat matches.
func RepeatMatch(password string, dicts zxcdata.Dictionaries) []Match {
	runes := []rune(password)
	n := len(runes)
	var matches []Match

	lastIndex := 0
	for lastIndex < n {
		foundAt := -1
		var bestLen, bestBase int
		for p := lastIndex; p < n && foundAt == -1; p++ {
			maxR := n - p
			for r := maxR; r >= 3; r-- {
				b := minimalTilingBase(runes, p, r)
				if b > 0 {
					foundAt, bestLen, bestBase = p, r, b
					break
				}
			}
		}
		if foundAt == -1 {
			break
		}

		i, j := foundAt, foundAt+bestLen-1
		baseToken := string(runes[i : i+bestBase])
		repeatCount := bestLen / bestBase

		baseMatches := Omnimatch(baseToken, dicts)
		baseSeq := scoring.MostGuessableMatchSequence(baseToken, baseMatches, false)

		matches = append(matches, Match{
			Pattern:     PatternRepeat,
			I:           i,
			J:           j,
			Token:       string(runes[i : j+1]),
			BaseToken:   baseToken,
			BaseGuesses: baseSeq.Guesses,
			RepeatCount: repeatCount,
		})
		lastIndex = j + 1
	}
	return matches
}

// minimalTilingBase returns the smallest b (1 <= b <= r/2) such that
// runes[p:p+r] is exactly r/b back-to-back copies of runes[p:p+b], or 0
// if no such b exists.
func minimalTilingBase(runes []rune, p, r int) int {
	for b := 1; b*2 <= r; b++ {
		if r%b != 0 {
			continue
		}
		if tiles(runes, p, b, r) {
			return b
		}
	}
	return 0
}

func tiles(runes []rune, p, b, r int) bool {
	for k := b; k < r; k++ {
		if runes[p+k] != runes[p+k%b] {
			return false
		}
	}
	return true
}
