package zxmatch

import (
	"strings"

	"github.com/rafaelsanzio/zxcvbn/internal/zxcdata"
)

// SpatialMatch walks every keyboard graph over the password greedily,
// extending a run while each next character is adjacent to the previous
// one, counting direction changes (turns) and shifted keys along the way.
// Grounded on pyzxcvbn/matching.py's spatial_match / spatial_match_helper.
func SpatialMatch(password string) []Match {
	var matches []Match
	for _, g := range zxcdata.Graphs {
		matches = append(matches, spatialMatchGraph(password, g)...)
	}
	return matches
}

func spatialMatchGraph(password string, g *zxcdata.Graph) []Match {
	runes := []rune(password)
	n := len(runes)
	var matches []Match

	i := 0
	for i < n-1 {
		j := i
		lastDirection := -2
		turns := 0
		shiftedCount := 0
		if isShiftedSlot(g, runes[i]) {
			shiftedCount++
		}

		for j+1 < n {
			prevChar := runes[j]
			curChar := runes[j+1]
			neighbors, ok := g.Neighbors[prevChar]
			if !ok {
				break
			}
			foundDirection := -1
			for idx, slot := range neighbors {
				if slotContains(slot, curChar) {
					foundDirection = idx
					if len(slot) > 1 && slot[1] == byte(curChar) {
						shiftedCount++
					}
					break
				}
			}
			if foundDirection == -1 {
				break
			}
			if foundDirection != lastDirection {
				turns++
				lastDirection = foundDirection
			}
			j++
		}

		if j-i > 1 {
			matches = append(matches, Match{
				Pattern:      PatternSpatial,
				I:            i,
				J:            j,
				Token:        string(runes[i : j+1]),
				Graph:        g.Name,
				Turns:        turns,
				ShiftedCount: shiftedCount,
			})
		}
		if j == i {
			i++
		} else {
			i = j
		}
	}
	return matches
}

// isShiftedSlot reports whether r is a graph character that only exists
// in the shifted position of some key (qwerty/dvorak uppercase/symbol
// row); counted once against the run's shifted total when it starts a
// run, per spec §4.5.
func isShiftedSlot(g *zxcdata.Graph, r rune) bool {
	if g.Name != "qwerty" && g.Name != "dvorak" {
		return false
	}
	return strings.ContainsRune("~!@#$%^&*()_+{}|:\"<>?QWERTYUIOPASDFGHJKLZXCVBNM", r)
}

func slotContains(slot string, r rune) bool {
	for _, c := range slot {
		if c == r {
			return true
		}
	}
	return false
}
