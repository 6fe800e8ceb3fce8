package number

import "fmt"

// AddCircle is an exact rational on the circle R/Z. All operations
// reduce the carrier modulo 1, keeping it within [0, 1).
//
// Scalar multiplication by p/q with q > 1 is mathematically multivalued;
// this implementation takes the canonical representative of the product
// and makes no attempt to disambiguate. Consumers that care (the angle
// AR table) clear denominators before testing for zero.
type AddCircle struct {
	val Rat
}

// NewAddCircle reduces a rational into [0, 1).
func NewAddCircle(r Rat) AddCircle {
	return AddCircle{mod1Rat(r)}
}

func mod1Rat(r Rat) Rat {
	v := NewRat(r.Num()%r.Den(), r.Den())
	if v.Sign() < 0 {
		v = v.Add(RatInt(1))
	}
	return v
}

// Number returns the carrier in [0, 1).
func (a AddCircle) Number() Rat { return a.val }

// Add returns a + b mod 1.
func (a AddCircle) Add(b AddCircle) AddCircle { return AddCircle{mod1Rat(a.val.Add(b.val))} }

// Sub returns a - b mod 1.
func (a AddCircle) Sub(b AddCircle) AddCircle { return AddCircle{mod1Rat(a.val.Sub(b.val))} }

// Neg returns -a mod 1.
func (a AddCircle) Neg() AddCircle { return AddCircle{mod1Rat(a.val.Neg())} }

// Scale multiplies by a rational, picking one of the q pre-images when
// the coefficient has denominator q > 1.
func (a AddCircle) Scale(c Rat) AddCircle { return AddCircle{mod1Rat(a.val.Mul(c))} }

// IsZero reports whether the value is 0 mod 1.
func (a AddCircle) IsZero() bool { return a.val.IsZero() }

// Eq reports exact equality mod 1.
func (a AddCircle) Eq(b AddCircle) bool { return a.val.Eq(b.val) }

// ApproxEqFloat compares a numerically evaluated angle sum against this
// exact value, accepting wraparound.
func (a AddCircle) ApproxEqFloat(lhs float64) bool {
	return ApproxEqMod1(lhs, a.val.Float())
}

func (a AddCircle) String() string {
	return fmt.Sprintf("AddCircle(%s)", a.val)
}
