package zxcvbn

import (
	"fmt"
	"math"
)

// Attempt rates (guesses per second) for the four attacker profiles.
const (
	onlineThrottlingRate    = 100.0 / 3600.0
	onlineNoThrottlingRate  = 100.0
	offlineSlowHashingRate  = 1e4
	offlineFastHashingRate  = 1e10
)

// crackTimesSeconds derives the four scenario crack times from a guess
// count, each simply guesses divided by that scenario's attempt rate.
func crackTimesSeconds(guesses float64) CrackTimesSeconds {
	return CrackTimesSeconds{
		OnlineThrottling100PerHour:     guesses / onlineThrottlingRate,
		OnlineNoThrottling10PerSecond:  guesses / onlineNoThrottlingRate,
		OfflineSlowHashing1e4PerSecond: guesses / offlineSlowHashingRate,
		OfflineFastHashing1e10PerSec:   guesses / offlineFastHashingRate,
	}
}

func displayCrackTimes(s CrackTimesSeconds) CrackTimesDisplay {
	return CrackTimesDisplay{
		OnlineThrottling100PerHour:     DisplayTime(s.OnlineThrottling100PerHour),
		OnlineNoThrottling10PerSecond:  DisplayTime(s.OnlineNoThrottling10PerSecond),
		OfflineSlowHashing1e4PerSecond: DisplayTime(s.OfflineSlowHashing1e4PerSecond),
		OfflineFastHashing1e10PerSec:   DisplayTime(s.OfflineFastHashing1e10PerSec),
	}
}

// DisplayTime renders a duration in seconds as a rounded, pluralized,
// human-readable string, bucketed the way pyzxcvbn/time_estimates.py's
// display_time does.
func DisplayTime(seconds float64) string {
	const (
		minute  = 60.0
		hour    = minute * 60
		day     = hour * 24
		month   = day * 31
		year    = month * 12
		century = year * 100
	)

	switch {
	case seconds < 1:
		return "less than a second"
	case seconds < minute:
		return pluralize(seconds, "second")
	case seconds < hour:
		return pluralize(seconds/minute, "minute")
	case seconds < day:
		return pluralize(seconds/hour, "hour")
	case seconds < month:
		return pluralize(seconds/day, "day")
	case seconds < year:
		return pluralize(seconds/month, "month")
	case seconds < century:
		return pluralize(seconds/year, "year")
	default:
		return "centuries"
	}
}

func pluralize(n float64, unit string) string {
	rounded := math.Round(n)
	if rounded == 1 {
		return fmt.Sprintf("%d %s", int64(rounded), unit)
	}
	return fmt.Sprintf("%d %ss", int64(rounded), unit)
}
