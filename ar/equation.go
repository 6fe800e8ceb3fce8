package ar

import (
	"fmt"

	"github.com/npillmayer/geoproof/number"
)

// Equation is a linear combination of variables equated to a constant
// of the domain's RHS carrier. Algebraic operations apply componentwise
// to both sides.
type Equation[V Var[V], R RHS[R]] struct {
	lhs LinComb[V]
	rhs R
}

// NewEquation creates lhs = rhs.
func NewEquation[V Var[V], R RHS[R]](lhs LinComb[V], rhs R) Equation[V, R] {
	return Equation[V, R]{lhs: lhs, rhs: rhs}
}

// SubEqConst builds the equation a - b = rhs.
func SubEqConst[V Var[V], R RHS[R]](a, b V, rhs R) Equation[V, R] {
	return Equation[V, R]{lhs: Single(a).Sub(Single(b)), rhs: rhs}
}

// SubEqSub builds the equation a - b - c + d = rhs, i.e. a - b = c - d.
func SubEqSub[V Var[V], R RHS[R]](a, b, c, d V, rhs R) Equation[V, R] {
	lhs := Single(a).Sub(Single(b)).Sub(Single(c)).Add(Single(d))
	return Equation[V, R]{lhs: lhs, rhs: rhs}
}

// LHS returns the left-hand side.
func (eq Equation[V, R]) LHS() LinComb[V] { return eq.lhs }

// RHS returns the right-hand side.
func (eq Equation[V, R]) RHS() R { return eq.rhs }

// Add returns eq + other, componentwise.
func (eq Equation[V, R]) Add(other Equation[V, R]) Equation[V, R] {
	return Equation[V, R]{lhs: eq.lhs.Add(other.lhs), rhs: eq.rhs.Add(other.rhs)}
}

// Sub returns eq - other, componentwise.
func (eq Equation[V, R]) Sub(other Equation[V, R]) Equation[V, R] {
	return Equation[V, R]{lhs: eq.lhs.Sub(other.lhs), rhs: eq.rhs.Sub(other.rhs)}
}

// Neg negates both sides.
func (eq Equation[V, R]) Neg() Equation[V, R] {
	return Equation[V, R]{lhs: eq.lhs.Neg(), rhs: eq.rhs.Neg()}
}

// Scale multiplies both sides by a rational.
func (eq Equation[V, R]) Scale(c number.Rat) Equation[V, R] {
	return Equation[V, R]{lhs: eq.lhs.Scale(c), rhs: eq.rhs.Scale(c)}
}

// IsEmpty reports whether the equation is 0 = 0.
func (eq Equation[V, R]) IsEmpty() bool {
	return eq.lhs.Empty() && eq.rhs.IsZero()
}

// Eq reports exact componentwise equality.
func (eq Equation[V, R]) Eq(other Equation[V, R]) bool {
	return eq.lhs.Eq(other.lhs) && eq.rhs.Eq(other.rhs)
}

// CheckNumerically evaluates the LHS and compares against the RHS with
// the solver tolerances.
func (eq Equation[V, R]) CheckNumerically() bool {
	return eq.rhs.ApproxEqFloat(eq.lhs.Evaluate())
}

// Normalize returns (scale, eq·scale) such that the result's leading
// coefficient is +1. In the angle domain, where division of the RHS is
// ill-defined beyond sign, the equation is only negated when the
// leading coefficient is negative, and scale is ±1.
func (eq Equation[V, R]) Normalize() (number.Rat, Equation[V, R]) {
	if eq.lhs.Empty() {
		return number.RatInt(1), eq
	}
	if _, angular := any(eq.rhs).(number.AddCircle); angular {
		if eq.lhs.Leading().Coeff.Sign() > 0 {
			return number.RatInt(1), eq
		}
		return number.RatInt(-1), eq.Neg()
	}
	coeff := eq.lhs.Leading().Coeff.Inv()
	return coeff, eq.Scale(coeff)
}

func (eq Equation[V, R]) String() string {
	return fmt.Sprintf("%s = %s", eq.lhs, eq.rhs)
}
