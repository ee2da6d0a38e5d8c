package zxmatch

import "regexp"

// regexPrecedence ranks the named classes low-to-high; when two matches
// share the same (i, j) span, only the highest-precedence one survives.
// Grounded on pyzxcvbn/matching.py's REGEXEN / REGEX_PRECEDENCE.
var regexPrecedence = map[string]int{
	"alphanumeric": 0,
	"alpha":        1,
	"alpha_lower":  2,
	"alpha_upper":  2,
	"digits":       2,
	"symbols":      2,
	"recent_year":  3,
}

var namedRegexen = []struct {
	name string
	re   *regexp.Regexp
}{
	{"recent_year", regexp.MustCompile(`19\d\d|200\d|201\d`)},
	{"alpha_lower", regexp.MustCompile(`[a-z]{2,}`)},
	{"alpha_upper", regexp.MustCompile(`[A-Z]{2,}`)},
	{"digits", regexp.MustCompile(`[0-9]{2,}`)},
	{"symbols", regexp.MustCompile(`[^a-zA-Z0-9]{2,}`)},
	{"alpha", regexp.MustCompile(`[a-zA-Z]{2,}`)},
	{"alphanumeric", regexp.MustCompile(`[a-zA-Z0-9]{2,}`)},
}

// RegexMatch runs each named character-class regex over password and
// resolves overlapping same-span hits by precedence.
func RegexMatch(password string) []Match {
	runes := []rune(password)
	byteToRune := byteIndexToRuneIndex(password)

	best := make(map[[2]int]Match)
	for _, nr := range namedRegexen {
		for _, loc := range nr.re.FindAllStringIndex(password, -1) {
			i := byteToRune[loc[0]]
			j := byteToRune[loc[1]] - 1
			span := [2]int{i, j}

			var yearValue int
			if nr.name == "recent_year" {
				yearValue = atoiRunes(runes[i : j+1])
			}

			cand := Match{
				Pattern:   PatternRegex,
				I:         i,
				J:         j,
				Token:     string(runes[i : j+1]),
				RegexName: nr.name,
				YearValue: yearValue,
			}

			existing, ok := best[span]
			if !ok || regexPrecedence[nr.name] > regexPrecedence[existing.RegexName] {
				best[span] = cand
			}
		}
	}

	matches := make([]Match, 0, len(best))
	for _, m := range best {
		matches = append(matches, m)
	}
	return matches
}

// byteIndexToRuneIndex maps every byte offset in s (including the
// one-past-the-end offset) to its rune index, so regexp's byte-based
// match locations can be translated into the rune-indexed spans the
// rest of the package uses.
func byteIndexToRuneIndex(s string) map[int]int {
	m := make(map[int]int, len(s)+1)
	runeIdx := 0
	for byteIdx := range s {
		m[byteIdx] = runeIdx
		runeIdx++
	}
	m[len(s)] = runeIdx
	return m
}

func atoiRunes(rs []rune) int {
	n := 0
	for _, r := range rs {
		if r < '0' || r > '9' {
			return n
		}
		n = n*10 + int(r-'0')
	}
	return n
}
