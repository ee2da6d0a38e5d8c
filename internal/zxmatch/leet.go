package zxmatch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rafaelsanzio/zxcvbn/internal/zxcdata"
)

// L33tMatch finds dictionary words hiding behind leet substitutions: for
// every distinct substitution scheme the password's characters could
// plausibly encode, translate the password back to plain letters and run
// the dictionary matcher against the result. Grounded on
// pyzxcvbn/matching.py's l33t_match / enumerate_l33t_subs /
// relevant_l33t_subtable.
func L33tMatch(password string, dicts zxcdata.Dictionaries) []Match {
	subtable := relevantL33tSubtable(password)
	if len(subtable) == 0 {
		return nil
	}

	runes := []rune(password)
	var matches []Match

	for _, sub := range enumerateL33tSubs(subtable) {
		if len(sub) == 0 {
			continue
		}
		subbed := translate(password, sub)
		for _, m := range DictionaryMatch(subbed, dicts) {
			token := string(runes[m.I : m.J+1])
			if strings.ToLower(token) == m.MatchedWord {
				continue // no substitution actually fired in this span
			}
			tokenLower := []rune(strings.ToLower(token))
			matchSub := make(map[rune]rune)
			var parts []string
			// iterate sub in deterministic key order for a stable sub_display
			keys := make([]rune, 0, len(sub))
			for k := range sub {
				keys = append(keys, k)
			}
			sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
			for _, subbedChr := range keys {
				if containsRune(tokenLower, subbedChr) {
					orig := sub[subbedChr]
					matchSub[subbedChr] = orig
					parts = append(parts, fmt.Sprintf("%c -> %c", subbedChr, orig))
				}
			}
			matches = append(matches, Match{
				Pattern:        PatternDictionary,
				I:              m.I,
				J:              m.J,
				Token:          token,
				MatchedWord:    m.MatchedWord,
				Rank:           m.Rank,
				DictionaryName: m.DictionaryName,
				L33t:           true,
				Sub:            matchSub,
				SubDisplay:     strings.Join(parts, ", "),
			})
		}
	}

	filtered := matches[:0]
	for _, m := range matches {
		if len([]rune(m.Token)) > 1 {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// relevantL33tSubtable drops table entries whose substitute characters
// never appear anywhere in password.
func relevantL33tSubtable(password string) map[rune][]rune {
	present := make(map[rune]bool)
	for _, r := range password {
		present[r] = true
	}
	out := make(map[rune][]rune)
	for letter, subs := range zxcdata.L33tTable {
		var relevant []rune
		for _, s := range subs {
			if present[s] {
				relevant = append(relevant, s)
			}
		}
		if len(relevant) > 0 {
			out[letter] = relevant
		}
	}
	return out
}

type l33tPair struct {
	from, to rune
}

// enumerateL33tSubs produces every distinct substitution scheme the
// relevant subtable allows: for each letter (key), pick one of its
// present substitute characters, branching whenever a substitute
// character could plausibly stand for more than one letter. Deduplicates
// schemes by their canonical sorted form.
func enumerateL33tSubs(table map[rune][]rune) []map[rune]rune {
	keys := make([]rune, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	subs := [][]l33tPair{{}}

	for _, key := range keys {
		var next [][]l33tPair
		for _, chr := range table[key] {
			for _, s := range subs {
				dupIdx := -1
				for i, p := range s {
					if p.from == chr {
						dupIdx = i
						break
					}
				}
				if dupIdx == -1 {
					ext := make([]l33tPair, len(s), len(s)+1)
					copy(ext, s)
					ext = append(ext, l33tPair{from: chr, to: key})
					next = append(next, ext)
				} else {
					alt := make([]l33tPair, 0, len(s))
					alt = append(alt, s[:dupIdx]...)
					alt = append(alt, s[dupIdx+1:]...)
					alt = append(alt, l33tPair{from: chr, to: key})
					next = append(next, s, alt)
				}
			}
		}
		subs = dedupL33tSubs(next)
	}

	out := make([]map[rune]rune, 0, len(subs))
	for _, s := range subs {
		m := make(map[rune]rune, len(s))
		for _, p := range s {
			m[p.from] = p.to
		}
		out = append(out, m)
	}
	return out
}

func dedupL33tSubs(subs [][]l33tPair) [][]l33tPair {
	seen := make(map[string]bool, len(subs))
	out := make([][]l33tPair, 0, len(subs))
	for _, s := range subs {
		sorted := append([]l33tPair(nil), s...)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].from != sorted[j].from {
				return sorted[i].from < sorted[j].from
			}
			return sorted[i].to < sorted[j].to
		})
		var label strings.Builder
		for _, p := range sorted {
			label.WriteRune(p.from)
			label.WriteByte(',')
			label.WriteRune(p.to)
			label.WriteByte('-')
		}
		key := label.String()
		if !seen[key] {
			seen[key] = true
			out = append(out, s)
		}
	}
	return out
}

// translate returns password with every rune present in sub replaced by
// its mapped plain letter; runes absent from sub pass through unchanged.
func translate(password string, sub map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(password))
	for _, r := range password {
		if plain, ok := sub[r]; ok {
			b.WriteRune(plain)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func containsRune(rs []rune, target rune) bool {
	for _, r := range rs {
		if r == target {
			return true
		}
	}
	return false
}
