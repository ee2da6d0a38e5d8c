package zxcdata

import "sort"

// Graph is a keyboard adjacency graph: each key maps to a fixed-length
// ordered array of neighbor slots. A slot is "" when that direction falls
// off the edge of the layout, a single character for layouts with no
// shift layer (keypad, mac_keypad), or a two-character
// "unshifted+shifted" string for layouts where the same physical key
// produces two characters (qwerty, dvorak).
type Graph struct {
	Name      string
	Neighbors map[rune][]string
}

// row is one horizontal rank of a slanted keyboard: unshifted and shifted
// character sets in column order, plus the row's horizontal slant offset
// (in key widths) relative to column 0 of row 0.
type row struct {
	unshifted string
	shifted   string
	xOffset   float64 // in key widths
	y         float64
}

// direction indexes are fixed per layout so that a straight run of keys
// (same relative direction every step) reports a single turn: a turn is
// counted only when the direction index changes.
var slantedDirections = [6][2]float64{
	{-1, 0},  // left
	{-0.5, -1}, // upper-left
	{0.5, -1},  // upper-right
	{1, 0},   // right
	{0.5, 1},   // lower-right
	{-0.5, 1},  // lower-left
}

func buildSlantedGraph(name string, rows []row) *Graph {
	type placed struct {
		r, c   int
		x, y   float64
		un, sh byte
	}
	var keys []placed
	for ri, rw := range rows {
		for c := 0; c < len(rw.unshifted); c++ {
			var sh byte
			if c < len(rw.shifted) {
				sh = rw.shifted[c]
			}
			keys = append(keys, placed{
				r: ri, c: c,
				x:  float64(c) + rw.xOffset,
				y:  rw.y,
				un: rw.unshifted[c],
				sh: sh,
			})
		}
	}

	slot := func(un, sh byte) string {
		if sh == 0 {
			return string(un)
		}
		return string([]byte{un, sh})
	}

	g := &Graph{Name: name, Neighbors: make(map[rune][]string, len(keys))}
	for _, k := range keys {
		neighbors := make([]string, 6)
		for _, other := range keys {
			if other.r == k.r && other.c == k.c {
				continue
			}
			dx, dy := other.x-k.x, other.y-k.y
			best, bestScore := -1, -1.0
			for i, d := range slantedDirections {
				score := dx*d[0] + dy*d[1]
				dist := dx*dx + dy*dy
				if dist > 2.0 {
					continue
				}
				if score > 0.55 && score > bestScore {
					bestScore, best = score, i
				}
			}
			if best >= 0 && neighbors[best] == "" {
				neighbors[best] = slot(other.un, other.sh)
			}
		}
		g.Neighbors[rune(k.un)] = neighbors
		if k.sh != 0 {
			g.Neighbors[rune(k.sh)] = neighbors
		}
	}
	return g
}

// QWERTY is the standard US QWERTY layout, built from four slanted rows.
var QWERTY = buildSlantedGraph("qwerty", []row{
	{unshifted: "`1234567890-=", shifted: "~!@#$%^&*()_+", xOffset: 0.0, y: 0},
	{unshifted: "qwertyuiop[]\\", shifted: "QWERTYUIOP{}|", xOffset: 0.5, y: 1},
	{unshifted: "asdfghjkl;'", shifted: "ASDFGHJKL:\"", xOffset: 0.75, y: 2},
	{unshifted: "zxcvbnm,./", shifted: "ZXCVBNM<>?", xOffset: 1.25, y: 3},
})

// Dvorak is the standard Dvorak layout, same slant geometry as QWERTY.
var Dvorak = buildSlantedGraph("dvorak", []row{
	{unshifted: "`1234567890[]", shifted: "~!@#$%^&*(){}", xOffset: 0.0, y: 0},
	{unshifted: "',.pyfgcrl/=\\", shifted: "\"<>PYFGCRL?+|", xOffset: 0.5, y: 1},
	{unshifted: "aoeuidhtns-", shifted: "AOEUIDHTNS_", xOffset: 0.75, y: 2},
	{unshifted: ";qjkxbmwvz", shifted: ":QJKXBMWVZ", xOffset: 1.25, y: 3},
})

func buildGridGraph(name string, rows []string) *Graph {
	type placed struct {
		x, y int
		ch   byte
	}
	var keys []placed
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] == ' ' {
				continue
			}
			keys = append(keys, placed{x: x, y: y, ch: r[x]})
		}
	}

	// 8-neighbor grid, slot order fixed clockwise from "up".
	offsets := [8][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}

	g := &Graph{Name: name, Neighbors: make(map[rune][]string, len(keys))}
	for _, k := range keys {
		neighbors := make([]string, len(offsets))
		for i, off := range offsets {
			nx, ny := k.x+off[0], k.y+off[1]
			for _, other := range keys {
				if other.x == nx && other.y == ny {
					neighbors[i] = string(other.ch)
					break
				}
			}
		}
		g.Neighbors[rune(k.ch)] = neighbors
	}
	return g
}

// Keypad is a standard numeric keypad layout (PC style), 8-neighbor grid.
var Keypad = buildGridGraph("keypad", []string{
	"  /*-",
	"789+ ",
	"456  ",
	"123  ",
	"0 .  ",
})

// MacKeypad is the Mac numeric keypad layout, slightly different operator
// placement from the PC keypad.
var MacKeypad = buildGridGraph("mac_keypad", []string{
	" =/*",
	"789-",
	"456+",
	"123 ",
	"0 . ",
})

// Graphs is the ordered set of graphs the spatial matcher walks, in the
// order results are reported when multiple graphs match the same span.
var Graphs = []*Graph{QWERTY, Dvorak, Keypad, MacKeypad}

// graphNames returns the names of Graphs, sorted, for diagnostics/tests.
func graphNames() []string {
	names := make([]string, 0, len(Graphs))
	for _, g := range Graphs {
		names = append(names, g.Name)
	}
	sort.Strings(names)
	return names
}
