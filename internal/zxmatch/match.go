// Package zxmatch is the pattern matcher: eight independent detectors
// that each scan a password and emit candidate Match values, plus
// Omnimatch, which runs all of them and returns the combined,
// (i,j)-sorted candidate list the optimal-sequence DP consumes.
package zxmatch

import (
	"sort"

	"github.com/rafaelsanzio/zxcvbn/internal/zxcdata"
	"github.com/rafaelsanzio/zxcvbn/internal/zxmodel"
)

// Match and Pattern are aliases onto the shared leaf type so callers never
// need to import internal/zxmodel directly.
type Match = zxmodel.Match
type Pattern = zxmodel.Pattern

const (
	PatternDictionary = zxmodel.PatternDictionary
	PatternSpatial    = zxmodel.PatternSpatial
	PatternRepeat     = zxmodel.PatternRepeat
	PatternSequence   = zxmodel.PatternSequence
	PatternRegex      = zxmodel.PatternRegex
	PatternDate       = zxmodel.PatternDate
	PatternBruteforce = zxmodel.PatternBruteforce
)

// Omnimatch runs every detector against password and returns the combined
// candidate list sorted by (i, j), the order the DP in internal/scoring
// expects matches grouped by end index.
func Omnimatch(password string, dicts zxcdata.Dictionaries) []Match {
	var all []Match
	all = append(all, DictionaryMatch(password, dicts)...)
	all = append(all, ReverseDictionaryMatch(password, dicts)...)
	all = append(all, L33tMatch(password, dicts)...)
	all = append(all, SpatialMatch(password)...)
	all = append(all, RepeatMatch(password, dicts)...)
	all = append(all, SequenceMatch(password)...)
	all = append(all, RegexMatch(password)...)
	all = append(all, DateMatch(password)...)

	sort.Sort(zxmodel.ByStartEnd(all))
	return all
}
