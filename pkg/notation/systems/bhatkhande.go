package systems

import "strings"

// Bhatkhande is the Devanagari sargam system. रे (Re) and नि (Ni) are
// two-rune glyphs and must be matched before their single-rune prefixes.
// Accidental suffixes use the same #/b characters as the Latin systems.
type Bhatkhande struct{}

var bhatkhandeBigraphs = []struct {
	glyph  string
	degree int
}{
	{"रे", 2},
	{"नि", 7},
}

var bhatkhandeTable = map[rune]int{
	'स': 1, 'र': 2, 'ग': 3, 'म': 4, 'प': 5, 'ध': 6, 'न': 7,
}

// Name implements System.
func (Bhatkhande) Name() string { return "bhatkhande" }

// Starts implements System.
func (Bhatkhande) Starts(r rune) bool {
	_, ok := bhatkhandeTable[r]
	return ok
}

// Match implements System.
func (Bhatkhande) Match(s string) (Pitch, bool) {
	for _, bg := range bhatkhandeBigraphs {
		if strings.HasPrefix(s, bg.glyph) {
			alter, n := readAccidentals(s[len(bg.glyph):])
			return Pitch{Glyph: s[:len(bg.glyph)+n], Degree: bg.degree, Alter: alter}, true
		}
	}
	for r, degree := range bhatkhandeTable {
		g := string(r)
		if strings.HasPrefix(s, g) {
			alter, n := readAccidentals(s[len(g):])
			return Pitch{Glyph: s[:len(g)+n], Degree: degree, Alter: alter}, true
		}
	}
	return Pitch{}, false
}
