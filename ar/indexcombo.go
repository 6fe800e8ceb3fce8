package ar

import (
	"fmt"
	"strings"

	"github.com/npillmayer/geoproof/number"
)

// IndexTerm is one summand of an IndexCombo.
type IndexTerm struct {
	Index int
	Coeff number.Rat
}

// IndexCombo is a sparse linear combination of original-row indexes.
// Every echelon row and every reduction trace records one: it is the
// receipt telling which original equations, with which coefficients,
// produced a derived equation.
type IndexCombo struct {
	terms []IndexTerm
}

// SingleIndex creates the combination 1·[n].
func SingleIndex(n int) IndexCombo {
	return IndexCombo{terms: []IndexTerm{{Index: n, Coeff: number.RatInt(1)}}}
}

// Empty reports whether the combination has no terms.
func (ic IndexCombo) Empty() bool { return len(ic.terms) == 0 }

// Terms exposes the sorted term slice. Callers must not mutate it.
func (ic IndexCombo) Terms() []IndexTerm { return ic.terms }

// AddScaled returns ic + c·other.
func (ic IndexCombo) AddScaled(c number.Rat, other IndexCombo) IndexCombo {
	if c.IsZero() {
		return ic
	}
	var res IndexCombo
	res.terms = make([]IndexTerm, 0, len(ic.terms)+len(other.terms))
	i, j := 0, 0
	for i < len(ic.terms) || j < len(other.terms) {
		switch {
		case j >= len(other.terms) ||
			(i < len(ic.terms) && ic.terms[i].Index < other.terms[j].Index):
			res.terms = append(res.terms, ic.terms[i])
			i++
		case i >= len(ic.terms) || other.terms[j].Index < ic.terms[i].Index:
			res.terms = append(res.terms,
				IndexTerm{other.terms[j].Index, c.Mul(other.terms[j].Coeff)})
			j++
		default:
			sum := ic.terms[i].Coeff.Add(c.Mul(other.terms[j].Coeff))
			if !sum.IsZero() {
				res.terms = append(res.terms, IndexTerm{ic.terms[i].Index, sum})
			}
			i++
			j++
		}
	}
	return res
}

// Sub returns ic - other.
func (ic IndexCombo) Sub(other IndexCombo) IndexCombo {
	return ic.AddScaled(number.RatInt(-1), other)
}

// Scale returns c·ic.
func (ic IndexCombo) Scale(c number.Rat) IndexCombo {
	if c.IsZero() {
		return IndexCombo{}
	}
	res := IndexCombo{terms: make([]IndexTerm, len(ic.terms))}
	for i, t := range ic.terms {
		res.terms[i] = IndexTerm{t.Index, t.Coeff.Mul(c)}
	}
	return res
}

// CommonDenominator returns the LCM of the coefficients' denominators.
func (ic IndexCombo) CommonDenominator() int64 {
	res := int64(1)
	for _, t := range ic.terms {
		res = number.Lcm64(res, t.Coeff.Den())
	}
	return res
}

func (ic IndexCombo) String() string {
	if ic.Empty() {
		return "0"
	}
	var sb strings.Builder
	for i, t := range ic.terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%s·Eq[%d]", t.Coeff, t.Index)
	}
	return sb.String()
}
