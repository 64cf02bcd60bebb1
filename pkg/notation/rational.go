package notation

import "fmt"

// Rational is an exact duration value. Always kept in lowest terms with a
// positive denominator.
type Rational struct {
	Num int `json:"num"`
	Den int `json:"den"`
}

func gcd(a, b int) int {
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// NewRational builds a normalised rational. A zero denominator yields 0/1.
func NewRational(num, den int) Rational {
	if den == 0 {
		return Rational{0, 1}
	}
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(num, den)
	if g == 0 {
		return Rational{0, 1}
	}
	return Rational{num / g, den / g}
}

// Mul returns r * o in lowest terms.
func (r Rational) Mul(o Rational) Rational {
	return NewRational(r.Num*o.Num, r.Den*o.Den)
}

// Add returns r + o in lowest terms.
func (r Rational) Add(o Rational) Rational {
	return NewRational(r.Num*o.Den+o.Num*r.Den, r.Den*o.Den)
}

// IsZero reports whether the value is exactly zero.
func (r Rational) IsZero() bool { return r.Num == 0 }

func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}
