package zxcvbn

// Classify maps a guess count to the 0-4 strength score. The thresholds
// sit 5 guesses above each power-of-ten boundary so a guess count that
// lands exactly on 1e3, 1e6, 1e8, or 1e10 still falls on the weaker
// side.
func Classify(guesses float64) int {
	switch {
	case guesses < 1e3+5:
		return 0
	case guesses < 1e6+5:
		return 1
	case guesses < 1e8+5:
		return 2
	case guesses < 1e10+5:
		return 3
	default:
		return 4
	}
}
