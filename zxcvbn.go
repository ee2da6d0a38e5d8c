// Package zxcvbn estimates password strength by modeling an attacker who
// knows common passwords, names, dates, English words, keyboard patterns,
// and simple transforms (reversal, leetspeak, repetition) rather than one
// who only tries raw brute force.
//
// It pattern-matches the password against that model, finds the
// minimum-guesses way to cover the whole string with non-overlapping
// matches, and reports the resulting guess count alongside a 0-4 score
// and estimated crack times under several attack scenarios.
//
// # Usage
//
//	res := zxcvbn.Analyze("correcthorsebatterystaple", nil)
//	fmt.Println(res.Score)   // 0: the phrase is in the built-in common-password list
//	fmt.Println(res.Guesses) // 183
//	fmt.Println(res.CrackTimesDisplay.OfflineSlowHashing1e4PerSecond) // less than a second
//
// # Custom configuration
//
//	cfg := zxcvbn.DefaultConfig()
//	cfg.DisableL33tMatcher = true
//	result, err := zxcvbn.AnalyzeWithConfig("hunter2", []any{"alice", "alice@example.com"}, cfg)
//
// # User inputs
//
// Site-specific context (usernames, email addresses, names, the name of
// the service) should be passed as userInputs. It is folded into a
// per-call dictionary scoped to that single Analyze invocation — never
// shared across calls — so concurrent analyses never interfere with each
// other's notion of what counts as "in the dictionary".
//
// # Security considerations
//
// Passwords are Go strings, which are immutable and garbage-collected;
// this package cannot zero them from memory after use. For input that
// arrives as a mutable []byte (e.g. an HTTP request body), [AnalyzeBytes]
// zeroes the slice immediately after copying it into a string, shrinking
// the window plaintext spends in process memory.
//
// This package never logs, prints, or persists passwords. Results carry
// only guess counts, match metadata (spans, dictionary ranks, pattern
// names), and generic feedback strings — never the password itself.
//
// A maximum input length of [MaxPasswordLength] runes is enforced to
// bound the quadratic dictionary scan and the leetspeak substitution
// enumeration against pathologically long input.
package zxcvbn

import (
	"fmt"
	"time"

	"github.com/rafaelsanzio/zxcvbn/internal/feedback"
	"github.com/rafaelsanzio/zxcvbn/internal/safemem"
	"github.com/rafaelsanzio/zxcvbn/internal/scoring"
	"github.com/rafaelsanzio/zxcvbn/internal/userinput"
	"github.com/rafaelsanzio/zxcvbn/internal/zxcdata"
	"github.com/rafaelsanzio/zxcvbn/internal/zxmatch"
	"github.com/rafaelsanzio/zxcvbn/internal/zxmodel"
)

// MaxPasswordLength is the maximum number of runes analyzed. Input beyond
// this is truncated before matching, bounding the worst-case work of the
// O(n^2) dictionary scan and the leetspeak enumeration.
const MaxPasswordLength = 1024

// Match is a single pattern occurrence in the winning sequence: a
// dictionary hit, a spatial walk, a repeat, a sequence run, a regex
// character class, a date, or a bruteforce filler span.
type Match = zxmodel.Match

// Feedback is the short, user-facing verdict attached to a Result: an
// optional warning about the dominant weak pattern, plus suggestions for
// improving the password.
type Feedback struct {
	Warning     string   `json:"warning"`
	Suggestions []string `json:"suggestions"`
}

// CrackTimesSeconds estimates, in seconds, how long each of four attacker
// profiles needs to exhaust the guess count.
type CrackTimesSeconds struct {
	OnlineThrottling100PerHour     float64 `json:"online_throttling_100_per_hour"`
	OnlineNoThrottling10PerSecond  float64 `json:"online_no_throttling_10_per_second"`
	OfflineSlowHashing1e4PerSecond float64 `json:"offline_slow_hashing_1e4_per_second"`
	OfflineFastHashing1e10PerSec   float64 `json:"offline_fast_hashing_1e10_per_second"`
}

// CrackTimesDisplay is CrackTimesSeconds rendered as human-readable
// strings ("3 hours", "centuries", ...).
type CrackTimesDisplay struct {
	OnlineThrottling100PerHour     string `json:"online_throttling_100_per_hour"`
	OnlineNoThrottling10PerSecond  string `json:"online_no_throttling_10_per_second"`
	OfflineSlowHashing1e4PerSecond string `json:"offline_slow_hashing_1e4_per_second"`
	OfflineFastHashing1e10PerSec   string `json:"offline_fast_hashing_1e10_per_second"`
}

// Result holds the outcome of a password strength analysis.
type Result struct {
	// Password is the (possibly truncated) input this result describes.
	Password string `json:"password"`

	// Guesses is the estimated number of guesses needed to find this
	// password under the attacker model, i.e. the lowest score over match
	// sequences: l! times the product of the l matches' guesses, plus
	// 10000^(l-1) unless the additive term is excluded.
	Guesses float64 `json:"guesses"`

	// GuessesLog10 is log10(Guesses); more convenient to compare and plot.
	GuessesLog10 float64 `json:"guesses_log10"`

	// Sequence is the winning, non-overlapping, span-covering decomposition
	// of the password into matches, ordered by starting index.
	Sequence []Match `json:"sequence"`

	// Score is the overall strength classification, 0 (weakest) to 4
	// (strongest), derived from Guesses.
	Score int `json:"score"`

	CrackTimesSeconds CrackTimesSeconds `json:"crack_times_seconds"`
	CrackTimesDisplay CrackTimesDisplay `json:"crack_times_display"`

	// CalcTime is how long the analysis itself took.
	CalcTime time.Duration `json:"calc_time"`

	Feedback Feedback `json:"feedback"`
}

// Analyze estimates the strength of password using the default
// configuration. userInputs may contain strings, ints, or bools; any
// other element type is silently dropped (spec §7).
//
// This is a convenience wrapper around [AnalyzeWithConfig] using
// [DefaultConfig]. It never returns an error because the default
// configuration is always valid.
func Analyze(password string, userInputs []any) Result {
	result, _ := AnalyzeWithConfig(password, userInputs, DefaultConfig())
	return result
}

// AnalyzeWithConfig estimates the strength of password using a custom
// configuration. It returns an error if the configuration is invalid.
//
// It runs the password through the full pipeline: the enabled matchers
// find every candidate pattern occurrence, the optimal-sequence DP picks
// the minimum-guesses non-overlapping decomposition, the result is
// classified into a 0-4 score, crack times are derived for four attacker
// profiles, and feedback is selected from the winning sequence.
//
// Passwords longer than cfg.MaxPasswordLength runes are truncated before
// analysis.
func AnalyzeWithConfig(password string, userInputs []any, cfg Config) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	start := time.Now()

	pw := truncate(password, cfg.MaxPasswordLength)

	words := zxcdata.NormalizeUserInputs(userInputs)
	if cfg.ExpandUserInputs {
		words = userinput.Expand(words)
	}
	dicts := zxcdata.WithUserInputWords(words)

	matches := runMatchers(pw, dicts, cfg)
	seq := scoring.MostGuessableMatchSequence(pw, matches, cfg.ExcludeAdditive)

	score := Classify(seq.Guesses)
	fb := feedback.Select(seq.Sequence, score)
	suggestions := fb.Suggestions
	if cfg.HIBPClient != nil {
		if breached, count, err := cfg.HIBPClient.Check(pw); err == nil && breached {
			suggestions = append(suggestions, hibpSuggestion(count))
		}
	}

	result := Result{
		Password:          pw,
		Guesses:           seq.Guesses,
		GuessesLog10:      seq.GuessesLog10,
		Sequence:          seq.Sequence,
		Score:             score,
		CrackTimesSeconds: crackTimesSeconds(seq.Guesses),
		CalcTime:          time.Since(start),
		Feedback:          Feedback{Warning: fb.Warning, Suggestions: suggestions},
	}
	result.CrackTimesDisplay = displayCrackTimes(result.CrackTimesSeconds)
	return result, nil
}

// hibpSuggestion formats a breach-database hit as a feedback suggestion.
func hibpSuggestion(count int) string {
	if count <= 0 {
		return "This password has appeared in a known data breach"
	}
	return fmt.Sprintf("This password has appeared in %d known data breaches", count)
}

// AnalyzeBytes estimates password strength from a mutable byte slice
// using the default configuration.
//
// After copying the input into a string for analysis, the original byte
// slice is zeroed to shrink the window during which plaintext resides in
// process memory. The caller should not reuse the slice after this call.
func AnalyzeBytes(password []byte) Result {
	s := string(password)
	safemem.Zero(password)
	return Analyze(s, nil)
}

// AnalyzeBytesWithConfig is [AnalyzeBytes] with a custom configuration
// and optional user inputs. The input is zeroed right after it is copied,
// before analysis.
func AnalyzeBytesWithConfig(password []byte, userInputs []any, cfg Config) (Result, error) {
	s := string(password)
	safemem.Zero(password)
	return AnalyzeWithConfig(s, userInputs, cfg)
}

// runMatchers runs every matcher enabled by cfg and returns the combined,
// unsorted-by-cost candidate list (internal/zxmatch.Omnimatch already
// sorts by span for the DP, but disabled matchers are simply skipped
// here rather than threaded through Omnimatch's fixed fan-out).
func runMatchers(pw string, dicts zxcdata.Dictionaries, cfg Config) []Match {
	if cfg.allMatchersEnabled() {
		return zxmatch.Omnimatch(pw, dicts)
	}

	var all []Match
	all = append(all, zxmatch.DictionaryMatch(pw, dicts)...)
	if !cfg.DisableReverseDictionaryMatcher {
		all = append(all, zxmatch.ReverseDictionaryMatch(pw, dicts)...)
	}
	if !cfg.DisableL33tMatcher {
		all = append(all, zxmatch.L33tMatch(pw, dicts)...)
	}
	if !cfg.DisableSpatialMatcher {
		all = append(all, zxmatch.SpatialMatch(pw)...)
	}
	if !cfg.DisableRepeatMatcher {
		all = append(all, zxmatch.RepeatMatch(pw, dicts)...)
	}
	if !cfg.DisableSequenceMatcher {
		all = append(all, zxmatch.SequenceMatch(pw)...)
	}
	if !cfg.DisableRegexMatcher {
		all = append(all, zxmatch.RegexMatch(pw)...)
	}
	if !cfg.DisableDateMatcher {
		all = append(all, zxmatch.DateMatch(pw)...)
	}
	return all
}

// truncate returns password unchanged if it is within maxLen runes, or
// the first maxLen runes otherwise.
func truncate(password string, maxLen int) string {
	runes := []rune(password)
	if len(runes) <= maxLen {
		return password
	}
	return string(runes[:maxLen])
}
