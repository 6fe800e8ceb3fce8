package number

import (
	"math"
	"testing"
)

func TestAddCircleReduction(t *testing.T) {
	a := NewAddCircle(NewRat(5, 4))
	if !a.Number().Eq(NewRat(1, 4)) {
		t.Errorf("expected 5/4 to reduce to 1/4, is %s", a.Number())
	}
	b := NewAddCircle(NewRat(-1, 4))
	if !b.Number().Eq(NewRat(3, 4)) {
		t.Errorf("expected -1/4 to reduce to 3/4, is %s", b.Number())
	}
}

func TestAddCircleArithmetic(t *testing.T) {
	a := NewAddCircle(NewRat(3, 4))
	b := NewAddCircle(NewRat(1, 2))
	if !a.Add(b).Number().Eq(NewRat(1, 4)) {
		t.Errorf("expected 3/4 + 1/2 = 1/4 mod 1, is %s", a.Add(b).Number())
	}
	if !a.Sub(a).IsZero() {
		t.Error("expected a - a to be zero, isn't")
	}
	// Multiplying by 1/2 picks one representative of the two branches.
	half := a.Scale(NewRat(1, 2))
	if !half.Number().Eq(NewRat(3, 8)) {
		t.Errorf("expected (3/4)·(1/2) branch 3/8, is %s", half.Number())
	}
}

func TestAddCircleApproxWraparound(t *testing.T) {
	a := NewAddCircle(RatInt(0))
	if !a.ApproxEqFloat(0.9999999999) {
		t.Error("expected 0.9999999999 ≈ 0 mod 1, isn't")
	}
	if a.ApproxEqFloat(0.5) {
		t.Error("expected 0.5 ≉ 0 mod 1, is")
	}
}

func TestPosreal(t *testing.T) {
	two := NewPosreal(2)
	three := NewPosreal(3)
	if got := two.Add(three).Number(); got != 6 {
		t.Errorf("expected 2 ⊕ 3 = 6, is %g", got)
	}
	if got := two.Sub(three).Number(); math.Abs(got-2.0/3.0) > 1e-12 {
		t.Errorf("expected 2 ⊖ 3 = 2/3, is %g", got)
	}
	if got := two.Scale(NewRat(3, 1)).Number(); got != 8 {
		t.Errorf("expected 2^3 = 8, is %g", got)
	}
	if got := two.Neg().Number(); got != 0.5 {
		t.Errorf("expected ⊖2 = 1/2, is %g", got)
	}
	var one Posreal
	if one.Number() != 1 {
		t.Errorf("expected zero value to read as 1, is %g", one.Number())
	}
}

func TestRootRatFactorization(t *testing.T) {
	r := NewRootRat(NewRat(12, 1))
	if q, ok := r.AsRat(); !ok || !q.Eq(RatInt(12)) {
		t.Errorf("expected RootRat(12) to extract 12, is %s (ok=%v)", q, ok)
	}
	half := NewRootRat(NewRat(1, 2))
	if q, ok := half.AsRat(); !ok || !q.Eq(NewRat(1, 2)) {
		t.Errorf("expected RootRat(1/2) to extract 1/2, is %s (ok=%v)", q, ok)
	}
}

func TestRootRatArithmetic(t *testing.T) {
	a := NewRootRat(NewRat(6, 1))
	b := NewRootRat(NewRat(4, 1))
	if q, ok := a.Add(b).AsRat(); !ok || !q.Eq(RatInt(24)) {
		t.Errorf("expected 6 ⊕ 4 = 24, is %s (ok=%v)", q, ok)
	}
	if q, ok := a.Sub(a).AsRat(); !ok || !q.Eq(RatInt(1)) {
		t.Errorf("expected 6 ⊖ 6 = 1, is %s (ok=%v)", q, ok)
	}
	if !a.Sub(a).IsZero() {
		t.Error("expected 6 ⊖ 6 to be the neutral element, isn't")
	}
	sqrtTwo := NewRootRat(RatInt(2)).Scale(NewRat(1, 2))
	if _, ok := sqrtTwo.AsRat(); ok {
		t.Error("expected √2 to have no exact rational value, has one")
	}
	if q, ok := sqrtTwo.Scale(RatInt(2)).AsRat(); !ok || !q.Eq(RatInt(2)) {
		t.Errorf("expected (√2)² = 2, is %s (ok=%v)", q, ok)
	}
	if got := sqrtTwo.Evaluate().Number(); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("expected √2 to evaluate to %g, is %g", math.Sqrt2, got)
	}
}

func TestRootRatOrder(t *testing.T) {
	a := NewRootRat(RatInt(2))
	b := NewRootRat(RatInt(3))
	if a.Cmp(b) == 0 {
		t.Error("expected 2 and 3 to differ, don't")
	}
	if a.Cmp(NewRootRat(RatInt(2))) != 0 {
		t.Error("expected equal factorizations to compare equal, don't")
	}
}

func TestIntegerRoots(t *testing.T) {
	if r, ok := IntegerSqrt(144); !ok || r != 12 {
		t.Errorf("expected √144 = 12, is %d (ok=%v)", r, ok)
	}
	if _, ok := IntegerSqrt(145); ok {
		t.Error("expected 145 not to be a perfect square, is")
	}
	if r, ok := IntegerNthRoot(243, 5); !ok || r != 3 {
		t.Errorf("expected 243^(1/5) = 3, is %d (ok=%v)", r, ok)
	}
	if r, ok := IntegerNthRoot(0, 7); !ok || r != 0 {
		t.Errorf("expected 0^(1/7) = 0, is %d (ok=%v)", r, ok)
	}
}

func TestRationalPower(t *testing.T) {
	k, r := RationalPower(NewRat(8, 27), 10)
	if k != 3 || !r.Eq(NewRat(2, 3)) {
		t.Errorf("expected 8/27 = (2/3)^3, is %s^%d", r, k)
	}
	k, r = RationalPower(NewRat(5, 7), 10)
	if k != 1 || !r.Eq(NewRat(5, 7)) {
		t.Errorf("expected 5/7 to be no proper power, is %s^%d", r, k)
	}
}

func TestApproxEq(t *testing.T) {
	if !ApproxEq(1.0, 1.0+1e-9) {
		t.Error("expected values within Eps to compare equal, don't")
	}
	if ApproxEq(1.0, 1.01) {
		t.Error("expected 1.0 ≉ 1.01, is")
	}
	if !ApproxEq(1000, 1000.5) {
		t.Error("expected values within relative tolerance to compare equal, don't")
	}
}
