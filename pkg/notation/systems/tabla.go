package systems

import "strings"

// Tabla matches percussion bols. Bols carry no pitch, so every match is
// degree 1 natural; the glyph itself is what emitters care about.
type Tabla struct{}

// Longest first, so "dhin" wins over "dha"+"in" leftovers and "taka" over
// "ta".
var tablaBols = []string{"dhin", "taka", "trkt", "dha", "ge", "ta", "ka"}

// Name implements System.
func (Tabla) Name() string { return "tabla" }

// Starts implements System.
func (Tabla) Starts(r rune) bool {
	switch r {
	case 'd', 'D', 't', 'T', 'k', 'K', 'g', 'G':
		return true
	}
	return false
}

// Match implements System.
func (Tabla) Match(s string) (Pitch, bool) {
	lower := strings.ToLower(s)
	for _, bol := range tablaBols {
		if strings.HasPrefix(lower, bol) {
			return Pitch{Glyph: s[:len(bol)], Degree: 1, Alter: 0}, true
		}
	}
	return Pitch{}, false
}
