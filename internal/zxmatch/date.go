package zxmatch

import (
	"regexp"
	"strconv"
)

const (
	dateMinYear   = 1000
	dateMaxYear   = 2050
	dateReference = 2000
)

// dateSplits is the fixed table of (k, l) cuts used to turn an all-digit
// token of a given length into three integer fields, per spec §6.
var dateSplits = map[int][][2]int{
	4: {{1, 2}, {2, 3}},
	5: {{1, 3}, {2, 3}},
	6: {{1, 2}, {2, 4}, {4, 5}},
	7: {{1, 3}, {2, 3}, {4, 5}, {4, 6}},
	8: {{2, 4}, {4, 6}},
}

var allDigitsRe = regexp.MustCompile(`^\d+$`)

// dateSeparatorRe matches a separated date with the two separator
// occurrences captured independently (RE2 has no backreferences); the
// caller checks they're equal.
var dateSeparatorRe = regexp.MustCompile(`^(\d{1,4})([\s/\\_.-])(\d{1,2})([\s/\\_.-])(\d{1,4})$`)

type dmy struct {
	year, month, day int
	hasFullYear      bool
}

type dateCandidate struct {
	i, j      int
	dmy       dmy
	separator string
}

// DateMatch finds calendar dates, with or without separators, choosing
// among ambiguous field-order splits by proximity to a reference year
// and discarding any candidate fully contained in a longer one. Grounded
// on pyzxcvbn/matching.py's date_match / map_ints_to_dmy / map_ints_to_dm.
func DateMatch(password string) []Match {
	runes := []rune(password)
	n := len(runes)
	var candidates []dateCandidate

	for i := 0; i < n; i++ {
		for length := 4; length <= 8 && i+length <= n; length++ {
			sub := runes[i : i+length]
			if !allDigitsRe.MatchString(string(sub)) {
				continue
			}
			splits, ok := dateSplits[length]
			if !ok {
				continue
			}
			var best dmy
			found := false
			bestDiff := 0
			for _, kl := range splits {
				k, l := kl[0], kl[1]
				f1 := atoiRunes(sub[0:k])
				f2 := atoiRunes(sub[k:l])
				f3 := atoiRunes(sub[l:])
				d, ok := mapIntsToDMY([3]int{f1, f2, f3})
				if !ok {
					continue
				}
				diff := abs(d.year - dateReference)
				if !found || diff < bestDiff {
					found, bestDiff, best = true, diff, d
				}
			}
			if found {
				candidates = append(candidates, dateCandidate{i: i, j: i + length - 1, dmy: best})
			}
		}
	}

	for i := 0; i < n; i++ {
		for length := 6; length <= 10 && i+length <= n; length++ {
			sub := string(runes[i : i+length])
			m := dateSeparatorRe.FindStringSubmatch(sub)
			if m == nil || m[2] != m[4] {
				continue
			}
			n1, _ := strconv.Atoi(m[1])
			n2, _ := strconv.Atoi(m[3])
			n3, _ := strconv.Atoi(m[5])
			d, ok := mapIntsToDMY([3]int{n1, n2, n3})
			if !ok {
				continue
			}
			candidates = append(candidates, dateCandidate{i: i, j: i + length - 1, dmy: d, separator: m[2]})
		}
	}

	candidates = removeContainedDateCandidates(candidates)

	matches := make([]Match, 0, len(candidates))
	for _, c := range candidates {
		matches = append(matches, Match{
			Pattern:     PatternDate,
			I:           c.i,
			J:           c.j,
			Token:       string(runes[c.i : c.j+1]),
			Year:        c.dmy.year,
			Month:       c.dmy.month,
			Day:         c.dmy.day,
			Separator:   c.separator,
			HasFullYear: c.dmy.hasFullYear,
		})
	}
	return matches
}

// removeContainedDateCandidates drops any candidate whose span is
// strictly contained within another candidate's span.
func removeContainedDateCandidates(cands []dateCandidate) []dateCandidate {
	out := make([]dateCandidate, 0, len(cands))
	for idx, c := range cands {
		contained := false
		for other := range cands {
			if other == idx {
				continue
			}
			o := cands[other]
			if o.i <= c.i && o.j >= c.j && (o.i < c.i || o.j > c.j) {
				contained = true
				break
			}
		}
		if !contained {
			out = append(out, c)
		}
	}
	return out
}

// mapIntsToDMY is spec §4.10's integer-triple-to-date resolver.
func mapIntsToDMY(ints [3]int) (dmy, bool) {
	if ints[1] > 31 || ints[1] <= 0 {
		return dmy{}, false
	}
	var over31, over12, under1 int
	for _, v := range ints {
		if (v > 99 && v < dateMinYear) || v > dateMaxYear {
			return dmy{}, false
		}
		if v > 31 {
			over31++
		}
		if v > 12 {
			over12++
		}
		if v <= 0 {
			under1++
		}
	}
	if over31 >= 2 || over12 == 3 || under1 >= 2 {
		return dmy{}, false
	}

	type split struct {
		y    int
		rest [2]int
	}
	splits := []split{
		{ints[2], [2]int{ints[0], ints[1]}},
		{ints[0], [2]int{ints[1], ints[2]}},
	}

	for _, sp := range splits {
		if sp.y >= dateMinYear && sp.y <= dateMaxYear {
			if d, m, ok := mapIntsToDM(sp.rest); ok {
				return dmy{year: sp.y, month: m, day: d, hasFullYear: true}, true
			}
			return dmy{}, false
		}
	}

	for _, sp := range splits {
		if d, m, ok := mapIntsToDM(sp.rest); ok {
			return dmy{year: twoToFourDigitYear(sp.y), month: m, day: d, hasFullYear: false}, true
		}
	}
	return dmy{}, false
}

// mapIntsToDM tries both (day, month) orderings of rest, returning the
// first that's calendar-plausible.
func mapIntsToDM(rest [2]int) (day, month int, ok bool) {
	if rest[0] >= 1 && rest[0] <= 31 && rest[1] >= 1 && rest[1] <= 12 {
		return rest[0], rest[1], true
	}
	if rest[1] >= 1 && rest[1] <= 31 && rest[0] >= 1 && rest[0] <= 12 {
		return rest[1], rest[0], true
	}
	return 0, 0, false
}

func twoToFourDigitYear(y int) int {
	if y > 99 {
		return y
	}
	if y > 50 {
		return y + 1900
	}
	return y + 2000
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
