package number

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/shopspring/decimal"
)

// Rat is an exact rational number on 64-bit integers.
//
// The representation is canonical: the denominator is positive and
// numerator and denominator are coprime. The zero value is 0/1.
// Arithmetic that overflows int64 panics; the solver treats overflow
// as a fatal condition rather than silently losing exactness.
type Rat struct {
	p int64 // numerator
	q int64 // denominator, > 0 after normalization
}

// NewRat creates the canonical rational p/q. Panics if q == 0.
func NewRat(p, q int64) Rat {
	if q == 0 {
		panic("rational with zero denominator")
	}
	if q < 0 {
		p, q = checkedNeg(p), checkedNeg(q)
	}
	if p == 0 {
		return Rat{0, 1}
	}
	g := gcd64(abs64(p), q)
	return Rat{p / g, q / g}
}

// RatInt creates the rational n/1.
func RatInt(n int64) Rat {
	return Rat{n, 1}
}

// Num returns the numerator of the canonical representation.
func (r Rat) Num() int64 { return r.p }

// Den returns the (positive) denominator of the canonical representation.
func (r Rat) Den() int64 {
	if r.q == 0 {
		return 1 // zero value of Rat is 0/1
	}
	return r.q
}

// IsZero reports whether the number is 0.
func (r Rat) IsZero() bool { return r.p == 0 }

// IsInt reports whether the number is an integer.
func (r Rat) IsInt() bool { return r.Den() == 1 }

// Sign returns -1, 0, or 1.
func (r Rat) Sign() int {
	switch {
	case r.p < 0:
		return -1
	case r.p > 0:
		return 1
	}
	return 0
}

// Add returns r + s.
func (r Rat) Add(s Rat) Rat {
	return NewRat(checkedAdd(checkedMul(r.Num(), s.Den()), checkedMul(s.Num(), r.Den())),
		checkedMul(r.Den(), s.Den()))
}

// Sub returns r - s.
func (r Rat) Sub(s Rat) Rat { return r.Add(s.Neg()) }

// Neg returns -r.
func (r Rat) Neg() Rat { return Rat{checkedNeg(r.p), r.Den()} }

// Mul returns r · s.
func (r Rat) Mul(s Rat) Rat {
	return NewRat(checkedMul(r.Num(), s.Num()), checkedMul(r.Den(), s.Den()))
}

// Div returns r / s. Panics if s is zero.
func (r Rat) Div(s Rat) Rat { return r.Mul(s.Inv()) }

// Inv returns 1/r. Panics if r is zero.
func (r Rat) Inv() Rat {
	if r.IsZero() {
		panic("inverse of zero rational")
	}
	return NewRat(r.Den(), r.Num())
}

// Scale returns c · r. It makes Rat usable as an equation RHS.
func (r Rat) Scale(c Rat) Rat { return r.Mul(c) }

// Abs returns |r|.
func (r Rat) Abs() Rat {
	if r.p < 0 {
		return r.Neg()
	}
	return r
}

// Cmp compares two rationals, returning -1, 0, or 1.
func (r Rat) Cmp(s Rat) int {
	lhs := checkedMul(r.Num(), s.Den())
	rhs := checkedMul(s.Num(), r.Den())
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	}
	return 0
}

// Eq reports exact equality. Representations are canonical, so this is
// a component comparison.
func (r Rat) Eq(s Rat) bool { return r.Num() == s.Num() && r.Den() == s.Den() }

// Float converts to float64.
func (r Rat) Float() float64 {
	return float64(r.Num()) / float64(r.Den())
}

// ApproxEqFloat compares a numerically evaluated LHS against this RHS.
func (r Rat) ApproxEqFloat(lhs float64) bool {
	return ApproxEq(lhs, r.Float())
}

// Sqrt returns the exact square root, if the rational is a perfect
// square of another rational.
func (r Rat) Sqrt() (Rat, bool) {
	return r.NthRoot(2)
}

// NthRoot returns the exact n-th root, if one exists.
func (r Rat) NthRoot(n uint64) (Rat, bool) {
	if r.Sign() < 0 {
		return Rat{}, false
	}
	num, ok := IntegerNthRoot(uint64(r.Num()), n)
	if !ok {
		return Rat{}, false
	}
	den, ok := IntegerNthRoot(uint64(r.Den()), n)
	if !ok {
		return Rat{}, false
	}
	return NewRat(int64(num), int64(den)), true
}

func (r Rat) String() string {
	if r.IsInt() {
		return fmt.Sprintf("%d", r.Num())
	}
	return fmt.Sprintf("%d/%d", r.Num(), r.Den())
}

// ParseRat parses a rational from "p/q", integer, or decimal notation.
// Decimal literals are converted exactly via shopspring/decimal.
func ParseRat(s string) (Rat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Rat{}, fmt.Errorf("empty rational literal")
	}
	if num, den, found := strings.Cut(s, "/"); found {
		p, errp := decimal.NewFromString(num)
		q, errq := decimal.NewFromString(den)
		if errp != nil || errq != nil || !p.IsInteger() || !q.IsInteger() {
			return Rat{}, fmt.Errorf("malformed rational %q", s)
		}
		if q.IsZero() {
			return Rat{}, fmt.Errorf("rational %q has zero denominator", s)
		}
		return NewRat(p.IntPart(), q.IntPart()), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Rat{}, fmt.Errorf("malformed rational %q: %w", s, err)
	}
	return decimalToRat(d)
}

func decimalToRat(d decimal.Decimal) (Rat, error) {
	num := d.Coefficient()
	if !num.IsInt64() {
		return Rat{}, fmt.Errorf("rational %s out of range", d)
	}
	exp := d.Exponent()
	if exp >= 0 {
		p := num.Int64()
		for ; exp > 0; exp-- {
			p = checkedMul(p, 10)
		}
		return RatInt(p), nil
	}
	q := int64(1)
	for ; exp < 0; exp++ {
		q = checkedMul(q, 10)
	}
	return NewRat(num.Int64(), q), nil
}

// Lcm64 returns the least common multiple of two positive integers.
func Lcm64(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return checkedMul(a/gcd64(abs64(a), abs64(b)), b)
}

func gcd64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(a int64) int64 {
	if a == math.MinInt64 {
		panic("rational overflow")
	}
	if a < 0 {
		return -a
	}
	return a
}

func checkedAdd(a, b int64) int64 {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		panic("rational overflow")
	}
	return s
}

func checkedNeg(a int64) int64 {
	if a == math.MinInt64 {
		panic("rational overflow")
	}
	return -a
}

func checkedMul(a, b int64) int64 {
	hi, lo := bits.Mul64(uint64(abs64a(a)), uint64(abs64a(b)))
	if hi != 0 || lo > math.MaxInt64 {
		panic("rational overflow")
	}
	p := int64(lo)
	if (a < 0) != (b < 0) {
		p = -p
	}
	return p
}

// abs64a is abs64 without the MinInt64 check folded into checkedMul's
// unsigned arithmetic.
func abs64a(a int64) uint64 {
	if a < 0 {
		return uint64(-a)
	}
	return uint64(a)
}
