package systems

// Number is the numeric system: scale degrees written 1-7 with optional
// #/##/b/bb accidental suffixes.
type Number struct{}

// Name implements System.
func (Number) Name() string { return "number" }

// Starts implements System.
func (Number) Starts(r rune) bool { return r >= '1' && r <= '7' }

// Match implements System.
func (Number) Match(s string) (Pitch, bool) {
	if len(s) == 0 || s[0] < '1' || s[0] > '7' {
		return Pitch{}, false
	}
	degree := int(s[0] - '0')
	alter, n := readAccidentals(s[1:])
	return Pitch{Glyph: s[:1+n], Degree: degree, Alter: alter}, true
}
