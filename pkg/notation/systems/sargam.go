package systems

// Sargam is the Indian solfège system. Case is meaningful: lowercase r g d n
// are the komal (flattened) degrees, lowercase m is shuddha Ma while capital
// M is tivra Ma, and s/p are plain aliases of S/P since Sa and Pa have no
// komal form.
type Sargam struct{}

type sargamPitch struct {
	degree int
	alter  int
}

var sargamTable = map[rune]sargamPitch{
	'S': {1, 0}, 's': {1, 0},
	'r': {2, -1}, 'R': {2, 0},
	'g': {3, -1}, 'G': {3, 0},
	'm': {4, 0}, 'M': {4, 1},
	'P': {5, 0}, 'p': {5, 0},
	'd': {6, -1}, 'D': {6, 0},
	'n': {7, -1}, 'N': {7, 0},
}

// Name implements System.
func (Sargam) Name() string { return "sargam" }

// Starts implements System.
func (Sargam) Starts(r rune) bool {
	_, ok := sargamTable[r]
	return ok
}

// Match implements System.
func (Sargam) Match(s string) (Pitch, bool) {
	if len(s) == 0 {
		return Pitch{}, false
	}
	base := rune(s[0])
	p, ok := sargamTable[base]
	if !ok {
		return Pitch{}, false
	}
	// Only the uppercase shuddha letters take accidental suffixes; komal
	// and tivra are already spelled by case.
	n := 0
	switch base {
	case 'S', 'R', 'M', 'P', 'N':
		var alter int
		alter, n = readAccidentals(s[1:])
		p.alter = clampAlter(p.alter + alter)
	}
	return Pitch{Glyph: s[:1+n], Degree: p.degree, Alter: p.alter}, true
}
