package zxcdata

// L33tTable maps a plain letter to the runes commonly substituted for it.
// Holds every plausible substitution per letter, not just one, so the
// l33t matcher can enumerate every relevant subset instead of stopping
// at the first hit.
var L33tTable = map[rune][]rune{
	'a': {'4', '@'},
	'b': {'8'},
	'c': {'(', '{', '[', '<'},
	'e': {'3'},
	'g': {'6', '9'},
	'i': {'1', '!', '|'},
	'l': {'1', '|', '7'},
	'o': {'0'},
	's': {'$', '5'},
	't': {'+', '7'},
	'x': {'%'},
	'z': {'2'},
}
