package ar

import (
	"github.com/npillmayer/geoproof/number"
)

// ReducedEquation records the in-progress reduction of one equation
// against a linear system. The invariant
//
//	original = Σ combo_i · originals[i] + remainder
//
// holds exactly in the domain between and after Reduce calls. (For the
// angle domain the RHS part of the invariant only holds up to the
// branch ambiguity of rational multiples; IsSolved compensates by
// clearing denominators.)
type ReducedEquation[V Var[V], R RHS[R]] struct {
	original  Equation[V, R]
	sys       *System[V, R]
	combo     IndexCombo
	remainder Equation[V, R]
}

// NewReducedEquation starts a reduction of eq against sys, with an
// empty receipt and the full equation as remainder.
func NewReducedEquation[V Var[V], R RHS[R]](eq Equation[V, R], sys *System[V, R]) *ReducedEquation[V, R] {
	return &ReducedEquation[V, R]{
		original:  eq,
		sys:       sys,
		remainder: eq,
	}
}

// Original returns the equation being reduced.
func (red *ReducedEquation[V, R]) Original() Equation[V, R] { return red.original }

// System returns the linear system the reduction runs against.
func (red *ReducedEquation[V, R]) System() *System[V, R] { return red.sys }

// Combo returns the receipt over original-row indexes.
func (red *ReducedEquation[V, R]) Combo() IndexCombo { return red.combo }

// Remainder returns the current remainder.
func (red *ReducedEquation[V, R]) Remainder() Equation[V, R] { return red.remainder }

// Reduce eliminates leading remainder terms while the leading variable
// is a pivot of the system. It terminates when the remainder's LHS is
// empty or its leading variable has no pivot.
func (red *ReducedEquation[V, R]) Reduce() {
	for !red.remainder.LHS().Empty() {
		lead := red.remainder.LHS().Leading()
		row, ok := red.sys.echelon[lead.Var]
		if !ok {
			return
		}
		red.combo = red.combo.AddScaled(lead.Coeff, row.combo)
		red.remainder = red.remainder.Sub(row.eqn.Scale(lead.Coeff))
	}
}

// IsSolved reports whether the original equation is implied by the
// system: the remainder's LHS is empty and its RHS is zero. In the
// angle domain the RHS is re-derived after multiplying through by the
// common denominator of the receipt's coefficients, to cancel the
// branch ambiguity of rational angle multiples; a residue that is still
// nonzero is logged and counts as unsolved.
func (red *ReducedEquation[V, R]) IsSolved() bool {
	if !red.remainder.LHS().Empty() {
		return false
	}
	if red.remainder.RHS().IsZero() {
		return true
	}
	origRHS, angular := any(red.original.RHS()).(number.AddCircle)
	if !angular {
		return false
	}
	c := number.RatInt(red.combo.CommonDenominator())
	rhs := origRHS.Scale(c)
	for _, t := range red.combo.Terms() {
		a := c.Mul(t.Coeff) // integer after clearing denominators
		rowRHS := any(red.sys.originals[t.Index].eqn.RHS()).(number.AddCircle)
		rhs = rhs.Sub(rowRHS.Scale(a))
	}
	if !rhs.IsZero() {
		tracer().Infof("angle equation reduced to 0 = nonzero, even after multiplication by denominators")
		return false
	}
	return true
}

// Dependencies yields the provenance tags of the original rows with
// nonzero coefficients in the receipt. The list is not deduplicated.
func (red *ReducedEquation[V, R]) Dependencies() []Fact {
	deps := make([]Fact, 0, len(red.combo.Terms()))
	for _, t := range red.combo.Terms() {
		deps = append(deps, red.sys.originals[t.Index].src)
	}
	return deps
}
