// Package systems implements the pitch alphabets of the supported notation
// systems. Each system knows how to match a pitch at the start of a string
// and reports it as a scale degree plus chromatic alteration; mapping to
// concrete letters is the transposer's job, not ours.
package systems

// Pitch is one matched pitch glyph.
type Pitch struct {
	// Glyph is the exact source text consumed, preserved for round-trips.
	Glyph string
	// Degree is the scale degree 1-7.
	Degree int
	// Alter is the chromatic alteration, -2..2.
	Alter int
}

// System matches pitches for one notation alphabet.
type System interface {
	// Name returns the system identifier, e.g. "sargam".
	Name() string
	// Match tries to read one pitch from the start of s, longest match
	// first. The second return is false when s does not start with a
	// pitch in this system.
	Match(s string) (Pitch, bool)
	// Starts reports whether r can begin a pitch in this system. Used to
	// tell "not a pitch at all" apart from "a pitch that fails to parse".
	Starts(r rune) bool
}

// For returns the system with the given name.
func For(name string) (System, bool) {
	switch name {
	case "number":
		return Number{}, true
	case "western":
		return Western{}, true
	case "sargam":
		return Sargam{}, true
	case "bhatkhande":
		return Bhatkhande{}, true
	case "tabla":
		return Tabla{}, true
	}
	return nil, false
}

// Names lists the supported system identifiers.
func Names() []string {
	return []string{"number", "western", "sargam", "bhatkhande", "tabla"}
}

// readAccidentals consumes a #/##/b/bb suffix at the start of s and returns
// the alteration delta plus the number of bytes consumed.
func readAccidentals(s string) (alter, n int) {
	switch {
	case len(s) >= 2 && s[:2] == "##":
		return 2, 2
	case len(s) >= 1 && s[0] == '#':
		return 1, 1
	case len(s) >= 2 && s[:2] == "bb":
		return -2, 2
	case len(s) >= 1 && s[0] == 'b':
		return -1, 1
	}
	return 0, 0
}

func clampAlter(a int) int {
	if a > 2 {
		return 2
	}
	if a < -2 {
		return -2
	}
	return a
}
