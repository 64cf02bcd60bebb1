package notation

// NoteValue is one printable duration: a base value 1/Den with up to two
// dots. Den is a power of two from 1 to 128 except in the tie-chain
// fallback, where it is the raw denominator of the input.
type NoteValue struct {
	Den  int `json:"den"`
	Dots int `json:"dots"`
}

const maxDen = 128

// Decompose breaks an exact duration into printable note values to be tied
// together, largest first. Dotted and double-dotted values are preferred
// when they match exactly; if greedy reduction stalls, the whole value
// falls back to a chain of Num copies of 1/Den.
func Decompose(d Rational) ([]NoteValue, error) {
	if d.Num < 0 || d.Den <= 0 {
		return nil, compileErr(ErrLoopInDecomposition, 0, 0, d.String())
	}
	if d.Num == 0 {
		return nil, nil
	}

	var out []NoteValue
	rem := d
	seen := map[Rational]bool{}
	for !rem.IsZero() {
		if seen[rem] {
			return tieChain(d)
		}
		seen[rem] = true

		if v, ok := directValue(rem); ok {
			out = append(out, v)
			break
		}
		q, ok := largestBaseAtMost(rem)
		if !ok {
			return tieChain(d)
		}
		out = append(out, NoteValue{Den: q})
		rem = rem.Add(Rational{Num: -1, Den: q})
	}
	return out, nil
}

// directValue matches plain, dotted and double-dotted values exactly.
func directValue(r Rational) (NoteValue, bool) {
	if !powerOfTwo(r.Den) || r.Den > maxDen {
		return NoteValue{}, false
	}
	switch r.Num {
	case 1:
		return NoteValue{Den: r.Den}, true
	case 3:
		// 3/2n = dotted 1/n.
		if r.Den >= 2 {
			return NoteValue{Den: r.Den / 2, Dots: 1}, true
		}
	case 7:
		// 7/4n = double-dotted 1/n.
		if r.Den >= 4 {
			return NoteValue{Den: r.Den / 4, Dots: 2}, true
		}
	}
	return NoteValue{}, false
}

// largestBaseAtMost finds the biggest 1/q not exceeding r.
func largestBaseAtMost(r Rational) (int, bool) {
	for q := 1; q <= maxDen; q *= 2 {
		// 1/q <= num/den  <=>  den <= num*q
		if r.Den <= r.Num*q {
			return q, true
		}
	}
	return 0, false
}

func tieChain(d Rational) ([]NoteValue, error) {
	if d.Num > maxDen {
		return nil, compileErr(ErrLoopInDecomposition, 0, 0, d.String())
	}
	out := make([]NoteValue, d.Num)
	for i := range out {
		out[i] = NoteValue{Den: d.Den}
	}
	return out, nil
}
