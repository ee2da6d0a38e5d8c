// Package scoring picks, out of every candidate match the detectors in
// internal/zxmatch produced, the non-overlapping subsequence that an
// attacker guessing smartest-first would try last: the minimum-guesses
// decomposition of the whole password.
package scoring

import (
	"math"

	"github.com/rafaelsanzio/zxcvbn/internal/zxguess"
	"github.com/rafaelsanzio/zxcvbn/internal/zxmodel"
)

// MinGuessesBeforeGrowingSequence penalizes sequences with more matches:
// adding an (l+1)th match to a sequence only pays off once the existing
// product of guesses has grown past this threshold.
const MinGuessesBeforeGrowingSequence = 10000

// Sequence is the result of the optimal decomposition: the minimum total
// guesses and the non-overlapping match run that achieves it.
type Sequence struct {
	Password     string
	Guesses      float64
	GuessesLog10 float64
	Sequence     []zxmodel.Match
}

// optimalState tracks, for every prefix-ending index k and every
// candidate sequence length l, the cheapest way to cover password[0:k+1]
// with exactly l matches: the match that ends the sequence (m), the
// running product of per-match guesses (pi), and the overall DP metric
// (g) factorial(l)*pi[+ the length-growth penalty].
type optimalState struct {
	m  []map[int]*zxmodel.Match
	pi []map[int]float64
	g  []map[int]float64
}

func newOptimalState(n int) *optimalState {
	s := &optimalState{
		m:  make([]map[int]*zxmodel.Match, n),
		pi: make([]map[int]float64, n),
		g:  make([]map[int]float64, n),
	}
	for k := 0; k < n; k++ {
		s.m[k] = make(map[int]*zxmodel.Match)
		s.pi[k] = make(map[int]float64)
		s.g[k] = make(map[int]float64)
	}
	return s
}

// MostGuessableMatchSequence runs the DP over password's candidate
// matches and returns the minimum-guesses decomposition. excludeAdditive
// drops the length-growth penalty, used when comparing raw guess counts
// rather than ranking full sequences (spec §4.12's testing hook).
func MostGuessableMatchSequence(password string, matches []zxmodel.Match, excludeAdditive bool) Sequence {
	runes := []rune(password)
	n := len(runes)
	if n == 0 {
		return Sequence{Password: password, Guesses: 1, GuessesLog10: 0}
	}

	matchesByEnd := make([][]*zxmodel.Match, n)
	for i := range matches {
		m := &matches[i]
		matchesByEnd[m.J] = append(matchesByEnd[m.J], m)
	}

	opt := newOptimalState(n)

	estimate := func(m *zxmodel.Match) float64 {
		return estimateGuesses(m, n)
	}

	update := func(m *zxmodel.Match, l int) {
		k := m.J
		pi := estimate(m)
		if l > 1 {
			pi *= opt.pi[m.I-1][l-1]
		}
		g := factorial(l) * pi
		if !excludeAdditive {
			g += math.Pow(MinGuessesBeforeGrowingSequence, float64(l-1))
		}
		for competingL, competingG := range opt.g[k] {
			if competingL > l {
				continue
			}
			if competingG <= g {
				return
			}
		}
		opt.g[k][l] = g
		opt.m[k][l] = m
		opt.pi[k][l] = pi
	}

	bruteforceUpdate := func(k int) {
		m := makeBruteforceMatch(runes, 0, k)
		update(m, 1)
		for i := 1; i <= k; i++ {
			candidate := makeBruteforceMatch(runes, i, k)
			for l, lastM := range opt.m[i-1] {
				if lastM.Pattern == zxmodel.PatternBruteforce {
					continue
				}
				update(candidate, l+1)
			}
		}
	}

	for k := 0; k < n; k++ {
		for _, m := range matchesByEnd[k] {
			if m.I > 0 {
				for l := range opt.m[m.I-1] {
					update(m, l+1)
				}
			} else {
				update(m, 1)
			}
		}
		bruteforceUpdate(k)
	}

	seq, guesses := unwind(opt, n)

	out := make([]zxmodel.Match, len(seq))
	for i, m := range seq {
		out[i] = *m
	}

	return Sequence{
		Password:     password,
		Guesses:      guesses,
		GuessesLog10: math.Log10(guesses),
		Sequence:     out,
	}
}

// unwind walks optimal.m backwards from the cheapest sequence ending at
// the password's last index to recover the match sequence in order.
func unwind(opt *optimalState, n int) ([]*zxmodel.Match, float64) {
	k := n - 1
	l := -1
	g := math.Inf(1)
	for candidateL, candidateG := range opt.g[k] {
		if candidateG < g {
			l, g = candidateL, candidateG
		}
	}

	var seq []*zxmodel.Match
	for k >= 0 && l > 0 {
		m := opt.m[k][l]
		seq = append([]*zxmodel.Match{m}, seq...)
		k = m.I - 1
		l--
	}
	if math.IsInf(g, 1) {
		g = 1
	}
	return seq, g
}

func makeBruteforceMatch(runes []rune, i, j int) *zxmodel.Match {
	return &zxmodel.Match{
		Pattern: zxmodel.PatternBruteforce,
		I:       i,
		J:       j,
		Token:   string(runes[i : j+1]),
	}
}

// estimateGuesses caches the per-pattern guess estimate on the match
// (never recomputed, never mutated again afterwards) and applies the
// floor that keeps a short structured match from ever costing an
// attacker less than the corresponding bruteforce prefix would.
func estimateGuesses(m *zxmodel.Match, passwordLen int) float64 {
	if m.Guesses > 0 {
		return m.Guesses
	}
	minGuesses := 1.0
	if m.Len() < passwordLen {
		if m.Len() == 1 {
			minGuesses = zxguess.MinSubmatchGuessesSingleChar
		} else {
			minGuesses = zxguess.MinSubmatchGuessesMultiChar
		}
	}
	guesses := zxguess.Estimate(*m)
	if guesses < minGuesses {
		guesses = minGuesses
	}
	m.Guesses = guesses
	m.GuessesLog10 = math.Log10(guesses)
	return guesses
}

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}
