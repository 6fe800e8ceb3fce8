package ar

import (
	"strings"

	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// Var constrains the variable types of the AR engines. A variable is a
// comparable geometric atom with a total order, a numerical term
// evaluation, and a point set.
type Var[V any] interface {
	comparable
	Compare(V) int
	EvalTerm(number.Rat) float64
	Points() []geom.Point
	String() string
}

// RHS constrains the right-hand-side carriers of the AR engines.
type RHS[R any] interface {
	Add(R) R
	Sub(R) R
	Neg() R
	Scale(number.Rat) R
	IsZero() bool
	Eq(R) bool
	ApproxEqFloat(float64) bool
	String() string
}

// Term is one summand of a linear combination.
type Term[V Var[V]] struct {
	Var   V
	Coeff number.Rat
}

// LinComb is a sparse linear combination of variables with rational
// coefficients. Terms are kept sorted by the variable order and never
// carry a zero coefficient.
type LinComb[V Var[V]] struct {
	terms []Term[V]
}

// SingleTerm creates the combination coeff·v, or the empty combination
// if coeff is zero.
func SingleTerm[V Var[V]](v V, coeff number.Rat) LinComb[V] {
	if coeff.IsZero() {
		return LinComb[V]{}
	}
	return LinComb[V]{terms: []Term[V]{{Var: v, Coeff: coeff}}}
}

// Single creates the combination 1·v.
func Single[V Var[V]](v V) LinComb[V] {
	return SingleTerm(v, number.RatInt(1))
}

// Empty reports whether the combination has no terms.
func (lc LinComb[V]) Empty() bool { return len(lc.terms) == 0 }

// Len returns the number of terms.
func (lc LinComb[V]) Len() int { return len(lc.terms) }

// Terms exposes the sorted term slice. Callers must not mutate it.
func (lc LinComb[V]) Terms() []Term[V] { return lc.terms }

// Leading returns the first (smallest-variable) term. Only valid for a
// nonempty combination.
func (lc LinComb[V]) Leading() Term[V] { return lc.terms[0] }

// merge combines two sorted term sequences. opLeft/opRight transform
// coefficients of one-sided terms, binop combines coefficients of a
// shared variable; zero sums are dropped.
func (lc LinComb[V]) merge(other LinComb[V],
	opLeft, opRight func(number.Rat) number.Rat,
	binop func(a, b number.Rat) number.Rat) LinComb[V] {
	//
	var res LinComb[V]
	res.terms = make([]Term[V], 0, len(lc.terms)+len(other.terms))
	i, j := 0, 0
	for i < len(lc.terms) || j < len(other.terms) {
		switch {
		case j >= len(other.terms) ||
			(i < len(lc.terms) && lc.terms[i].Var.Compare(other.terms[j].Var) < 0):
			res.terms = append(res.terms, Term[V]{lc.terms[i].Var, opLeft(lc.terms[i].Coeff)})
			i++
		case i >= len(lc.terms) || other.terms[j].Var.Compare(lc.terms[i].Var) < 0:
			res.terms = append(res.terms, Term[V]{other.terms[j].Var, opRight(other.terms[j].Coeff)})
			j++
		default:
			sum := binop(lc.terms[i].Coeff, other.terms[j].Coeff)
			if !sum.IsZero() {
				res.terms = append(res.terms, Term[V]{lc.terms[i].Var, sum})
			}
			i++
			j++
		}
	}
	return res
}

func ident(c number.Rat) number.Rat { return c }

// Add returns lc + other.
func (lc LinComb[V]) Add(other LinComb[V]) LinComb[V] {
	return lc.merge(other, ident, ident, number.Rat.Add)
}

// Sub returns lc - other.
func (lc LinComb[V]) Sub(other LinComb[V]) LinComb[V] {
	return lc.merge(other, ident, number.Rat.Neg, number.Rat.Sub)
}

// Neg returns the combination with all coefficients negated.
func (lc LinComb[V]) Neg() LinComb[V] {
	res := LinComb[V]{terms: make([]Term[V], len(lc.terms))}
	for i, t := range lc.terms {
		res.terms[i] = Term[V]{t.Var, t.Coeff.Neg()}
	}
	return res
}

// Scale returns c·lc. A zero multiplier empties the combination.
func (lc LinComb[V]) Scale(c number.Rat) LinComb[V] {
	if c.IsZero() {
		return LinComb[V]{}
	}
	res := LinComb[V]{terms: make([]Term[V], len(lc.terms))}
	for i, t := range lc.terms {
		res.terms[i] = Term[V]{t.Var, t.Coeff.Mul(c)}
	}
	return res
}

// LinearCombine returns a·lc + b·other in one merge.
func (lc LinComb[V]) LinearCombine(a, b number.Rat, other LinComb[V]) LinComb[V] {
	if a.IsZero() {
		return other.Scale(b)
	}
	if b.IsZero() {
		return lc.Scale(a)
	}
	return lc.merge(other,
		func(c number.Rat) number.Rat { return a.Mul(c) },
		func(c number.Rat) number.Rat { return b.Mul(c) },
		func(x, y number.Rat) number.Rat { return a.Mul(x).Add(b.Mul(y)) })
}

// CommonDenominator returns the least common multiple of the
// coefficients' denominators.
func (lc LinComb[V]) CommonDenominator() int64 {
	res := int64(1)
	for _, t := range lc.terms {
		res = number.Lcm64(res, t.Coeff.Den())
	}
	return res
}

// Evaluate sums the numerical term evaluations. For the multiplicative
// ratio domain the terms evaluate in log space, so the sum is the log
// of the underlying product.
func (lc LinComb[V]) Evaluate() float64 {
	sum := 0.0
	for _, t := range lc.terms {
		sum += t.Var.EvalTerm(t.Coeff)
	}
	return sum
}

// Eq reports exact term-by-term equality.
func (lc LinComb[V]) Eq(other LinComb[V]) bool {
	if len(lc.terms) != len(other.terms) {
		return false
	}
	for i, t := range lc.terms {
		if t.Var != other.terms[i].Var || !t.Coeff.Eq(other.terms[i].Coeff) {
			return false
		}
	}
	return true
}

func (lc LinComb[V]) String() string {
	if lc.Empty() {
		return "0"
	}
	var sb strings.Builder
	for i, t := range lc.terms {
		c := t.Coeff
		switch {
		case i == 0 && c.Sign() < 0:
			sb.WriteString("-")
			c = c.Neg()
		case i > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
			c = c.Neg()
		case i > 0:
			sb.WriteString(" + ")
		}
		if !c.Eq(number.RatInt(1)) {
			sb.WriteString(c.String())
		}
		sb.WriteString(t.Var.String())
	}
	return sb.String()
}
