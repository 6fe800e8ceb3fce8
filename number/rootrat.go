package number

import (
	"fmt"
	"math"
	"strings"
)

// RootRat is a formal rational power of a positive rational, stored as
// a sorted prime factorization with rational exponents. Addition means
// multiplication of the underlying values, scalar multiplication means
// exponentiation, so RootRat is the RHS carrier of the multiplicative
// ratio AR table. The zero value represents 1.
type RootRat struct {
	terms []primePower
}

type primePower struct {
	base uint64
	exp  Rat
}

// NewRootRat factors a positive rational. Panics on r ≤ 0.
func NewRootRat(r Rat) RootRat {
	if r.Sign() <= 0 {
		panic("RootRat is for positive numbers only")
	}
	var rr RootRat
	num := uint64(r.Num())
	den := uint64(r.Den())
	for base := uint64(2); num != 1 || den != 1; base++ {
		exp := int64(0)
		for num%base == 0 {
			num /= base
			exp++
		}
		for den%base == 0 {
			den /= base
			exp--
		}
		if exp != 0 {
			rr.terms = append(rr.terms, primePower{base, RatInt(exp)})
		}
	}
	return rr
}

// NewRootRatRoot returns the formal n-th root of a positive rational.
func NewRootRatRoot(r Rat, n int64) RootRat {
	return NewRootRat(r).Scale(NewRat(1, n))
}

// AsRat extracts the exact rational value when all exponents are
// integers. Reports false for a proper root.
func (r RootRat) AsRat() (Rat, bool) {
	res := RatInt(1)
	for _, t := range r.terms {
		if !t.exp.IsInt() {
			return Rat{}, false
		}
		res = res.Mul(zpowRat(t.base, t.exp.Num()))
	}
	return res, true
}

func zpowRat(base uint64, exp int64) Rat {
	if exp >= 0 {
		return RatInt(int64(upow(base, uint64(exp))))
	}
	return NewRat(1, int64(upow(base, uint64(-exp))))
}

// Add multiplies the underlying values.
func (r RootRat) Add(s RootRat) RootRat { return r.merge(s, false) }

// Sub divides the underlying values.
func (r RootRat) Sub(s RootRat) RootRat { return r.merge(s, true) }

func (r RootRat) merge(s RootRat, negate bool) RootRat {
	var res RootRat
	i, j := 0, 0
	for i < len(r.terms) || j < len(s.terms) {
		switch {
		case j >= len(s.terms) || (i < len(r.terms) && r.terms[i].base < s.terms[j].base):
			res.terms = append(res.terms, r.terms[i])
			i++
		case i >= len(r.terms) || s.terms[j].base < r.terms[i].base:
			e := s.terms[j].exp
			if negate {
				e = e.Neg()
			}
			res.terms = append(res.terms, primePower{s.terms[j].base, e})
			j++
		default:
			e := s.terms[j].exp
			if negate {
				e = e.Neg()
			}
			sum := r.terms[i].exp.Add(e)
			if !sum.IsZero() {
				res.terms = append(res.terms, primePower{r.terms[i].base, sum})
			}
			i++
			j++
		}
	}
	return res
}

// Neg is the reciprocal of the underlying value.
func (r RootRat) Neg() RootRat {
	var res RootRat
	for _, t := range r.terms {
		res.terms = append(res.terms, primePower{t.base, t.exp.Neg()})
	}
	return res
}

// Scale exponentiates the underlying value by a rational.
func (r RootRat) Scale(c Rat) RootRat {
	if c.IsZero() {
		return RootRat{}
	}
	var res RootRat
	for _, t := range r.terms {
		res.terms = append(res.terms, primePower{t.base, t.exp.Mul(c)})
	}
	return res
}

// IsZero reports whether the value is 1 (the neutral element).
func (r RootRat) IsZero() bool { return len(r.terms) == 0 }

// Eq compares prime-exponent sequences.
func (r RootRat) Eq(s RootRat) bool { return r.Cmp(s) == 0 }

// Cmp is the lex order on prime-exponent sequences.
func (r RootRat) Cmp(s RootRat) int {
	n := len(r.terms)
	if len(s.terms) < n {
		n = len(s.terms)
	}
	for i := 0; i < n; i++ {
		if r.terms[i].base != s.terms[i].base {
			if r.terms[i].base < s.terms[i].base {
				return -1
			}
			return 1
		}
		if c := r.terms[i].exp.Cmp(s.terms[i].exp); c != 0 {
			return c
		}
	}
	switch {
	case len(r.terms) < len(s.terms):
		return -1
	case len(r.terms) > len(s.terms):
		return 1
	}
	return 0
}

// Evaluate computes the numerical value.
func (r RootRat) Evaluate() Posreal {
	res := 1.0
	for _, t := range r.terms {
		res *= math.Pow(float64(t.base), t.exp.Float())
	}
	return NewPosreal(res)
}

// ApproxEqFloat compares a log-space evaluated LHS against this RHS.
func (r RootRat) ApproxEqFloat(lhsLog float64) bool {
	return ApproxEq(math.Exp(lhsLog), r.Evaluate().Number())
}

func (r RootRat) String() string {
	if q, ok := r.AsRat(); ok {
		return q.String()
	}
	var sb strings.Builder
	for i, t := range r.terms {
		if i > 0 {
			sb.WriteString(" * ")
		}
		fmt.Fprintf(&sb, "%d^%s", t.base, t.exp)
	}
	return sb.String()
}
