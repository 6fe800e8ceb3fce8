package number

import "testing"

func TestRatCanonical(t *testing.T) {
	q := NewRat(4, -6)
	if q.Num() != -2 || q.Den() != 3 {
		t.Errorf("expected 4/-6 to normalize to -2/3, is %s", q)
	}
	if !NewRat(0, 5).IsZero() {
		t.Error("expected 0/5 to be zero, isn't")
	}
	if NewRat(7, 7).String() != "1" {
		t.Errorf("expected 7/7 to print as 1, is %s", NewRat(7, 7))
	}
}

func TestRatArithmetic(t *testing.T) {
	a := NewRat(1, 2)
	b := NewRat(1, 3)
	if !a.Add(b).Eq(NewRat(5, 6)) {
		t.Errorf("expected 1/2 + 1/3 = 5/6, is %s", a.Add(b))
	}
	if !a.Sub(b).Eq(NewRat(1, 6)) {
		t.Errorf("expected 1/2 - 1/3 = 1/6, is %s", a.Sub(b))
	}
	if !a.Mul(b).Eq(NewRat(1, 6)) {
		t.Errorf("expected 1/2 * 1/3 = 1/6, is %s", a.Mul(b))
	}
	if !a.Div(b).Eq(NewRat(3, 2)) {
		t.Errorf("expected (1/2) / (1/3) = 3/2, is %s", a.Div(b))
	}
	if a.Cmp(b) <= 0 {
		t.Error("expected 1/2 > 1/3")
	}
	if !a.Neg().Add(a).IsZero() {
		t.Error("expected q + (-q) to be zero, isn't")
	}
}

func TestRatSqrt(t *testing.T) {
	r, ok := NewRat(9, 4).Sqrt()
	if !ok || !r.Eq(NewRat(3, 2)) {
		t.Errorf("expected sqrt(9/4) = 3/2, is %s (ok=%v)", r, ok)
	}
	if _, ok := NewRat(2, 1).Sqrt(); ok {
		t.Error("expected sqrt(2) to have no rational value, has one")
	}
	if _, ok := NewRat(-4, 1).Sqrt(); ok {
		t.Error("expected sqrt(-4) to have no rational value, has one")
	}
}

func TestParseRat(t *testing.T) {
	cases := []struct {
		in   string
		want Rat
	}{
		{"3", RatInt(3)},
		{"1/2", NewRat(1, 2)},
		{"-7/3", NewRat(-7, 3)},
		{"0.25", NewRat(1, 4)},
		{"1.5", NewRat(3, 2)},
	}
	for _, c := range cases {
		got, err := ParseRat(c.in)
		if err != nil {
			t.Errorf("unexpected error parsing %q: %v", c.in, err)
			continue
		}
		if !got.Eq(c.want) {
			t.Errorf("expected %q to parse as %s, is %s", c.in, c.want, got)
		}
	}
	if _, err := ParseRat("x"); err == nil {
		t.Error("expected parse error for \"x\", got none")
	}
	if _, err := ParseRat("1/0"); err == nil {
		t.Error("expected parse error for \"1/0\", got none")
	}
}

func TestLcm(t *testing.T) {
	if Lcm64(4, 6) != 12 {
		t.Errorf("expected lcm(4,6) = 12, is %d", Lcm64(4, 6))
	}
}
