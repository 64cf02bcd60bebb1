package notation

import "fmt"

// PitchCode is a scale degree (1-7) with a chromatic variant, independent of
// any concrete key. Converting to a pitch letter requires a tonic; see
// TransposePitch.
type PitchCode int

// The 35 pitch codes: seven degrees x five variants (bb, b, natural, #, ##).
const (
	N1bb PitchCode = iota
	N1b
	N1
	N1s
	N1ss
	N2bb
	N2b
	N2
	N2s
	N2ss
	N3bb
	N3b
	N3
	N3s
	N3ss
	N4bb
	N4b
	N4
	N4s
	N4ss
	N5bb
	N5b
	N5
	N5s
	N5ss
	N6bb
	N6b
	N6
	N6s
	N6ss
	N7bb
	N7b
	N7
	N7s
	N7ss
)

// PitchFor builds a PitchCode from a degree (1-7) and an alteration in -2..2.
func PitchFor(degree, alter int) (PitchCode, bool) {
	if degree < 1 || degree > 7 || alter < -2 || alter > 2 {
		return N1, false
	}
	return PitchCode((degree-1)*5 + alter + 2), true
}

// Degree returns the scale degree 1-7.
func (p PitchCode) Degree() int { return int(p)/5 + 1 }

// Alter returns the chromatic alteration: -2 (double flat) to +2 (double sharp).
func (p PitchCode) Alter() int { return int(p)%5 - 2 }

var alterSuffix = map[int]string{-2: "bb", -1: "b", 0: "", 1: "#", 2: "##"}

// String renders the code in number notation, e.g. "1", "4#", "7bb".
func (p PitchCode) String() string {
	return fmt.Sprintf("%d%s", p.Degree(), alterSuffix[p.Alter()])
}

// MarshalText makes PitchCode readable in JSON documents.
func (p PitchCode) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
