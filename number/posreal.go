package number

import (
	"fmt"
	"math"
)

// Posreal is a positive real number with addition mapped to
// multiplication. This turns (R₊, ×) into a Q-vector space, so the
// ratio AR table becomes an ordinary linear system. The neutral element
// for Add is 1, which is also the zero value's meaning.
type Posreal struct {
	val float64
}

// NewPosreal wraps a positive float. Panics on non-positive input;
// evaluation of a degenerate configuration would be a solver bug.
func NewPosreal(x float64) Posreal {
	if x <= 0 {
		panic("Posreal is for positive numbers only")
	}
	return Posreal{x}
}

// Number returns the underlying float. The zero value reads as 1.
func (p Posreal) Number() float64 {
	if p.val == 0 {
		return 1
	}
	return p.val
}

// Add is multiplication of the underlying numbers.
func (p Posreal) Add(q Posreal) Posreal { return Posreal{p.Number() * q.Number()} }

// Sub is division of the underlying numbers.
func (p Posreal) Sub(q Posreal) Posreal { return Posreal{p.Number() / q.Number()} }

// Neg is the reciprocal.
func (p Posreal) Neg() Posreal { return Posreal{1 / p.Number()} }

// Scale is exponentiation by a rational.
func (p Posreal) Scale(c Rat) Posreal {
	return Posreal{math.Pow(p.Number(), c.Float())}
}

// ApproxEq compares the underlying numbers with the solver tolerances.
func (p Posreal) ApproxEq(q Posreal) bool {
	return ApproxEq(p.Number(), q.Number())
}

func (p Posreal) String() string {
	return fmt.Sprintf("%g", p.Number())
}
