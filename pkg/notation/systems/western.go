package systems

// Western is the letter system: A-G (case-insensitive) with optional
// accidental suffixes. Letters map onto degrees of a C scale, so C is
// degree 1 and B is degree 7.
type Western struct{}

var westernDegrees = map[rune]int{
	'C': 1, 'D': 2, 'E': 3, 'F': 4, 'G': 5, 'A': 6, 'B': 7,
}

// Name implements System.
func (Western) Name() string { return "western" }

// Starts implements System.
func (Western) Starts(r rune) bool {
	if r >= 'a' && r <= 'g' {
		r -= 'a' - 'A'
	}
	_, ok := westernDegrees[r]
	return ok
}

// Match implements System.
func (Western) Match(s string) (Pitch, bool) {
	if len(s) == 0 {
		return Pitch{}, false
	}
	letter := rune(s[0])
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	degree, ok := westernDegrees[letter]
	if !ok {
		return Pitch{}, false
	}
	// A lowercase 'b' is a flat suffix, not a new pitch, so "Db" consumes
	// both runes here.
	alter, n := readAccidentals(s[1:])
	return Pitch{Glyph: s[:1+n], Degree: degree, Alter: alter}, true
}
