package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/geom"
)

func dotSign(a, b, c geom.Point) bool {
	return (b.X()-a.X())*(c.X()-a.X())+(b.Y()-a.Y())*(c.Y()-a.Y()) > 0
}

// SameSignDot states that the dot products (B-A)·(C-A) and (E-D)·(F-D)
// have the same sign; for collinear triples this means A relates to
// [B,C] the way D relates to [E,F]. Numerical-only.
type SameSignDot struct {
	base
	a, b, c, d, e, f geom.Point
}

// NewSameSignDot creates a same-side statement.
func NewSameSignDot(a, b, c, d, e, f geom.Point) SameSignDot {
	return SameSignDot{a: a, b: b, c: c, d: d, e: e, f: f}
}

// SameSignDotOfColls builds the statement from two collinear triples.
func SameSignDotOfColls(left, right Collinear) SameSignDot {
	return NewSameSignDot(left.A(), left.B(), left.C(), right.A(), right.B(), right.C())
}

// Name returns "sameside".
func (s SameSignDot) Name() string { return "sameside" }

// Points returns the six points.
func (s SameSignDot) Points() []geom.Point {
	return []geom.Point{s.a, s.b, s.c, s.d, s.e, s.f}
}

// Normalize keeps the statement as-is.
func (s SameSignDot) Normalize() Statement { return s }

// CheckNondegen requires distinct points and equal dot-product signs.
func (s SameSignDot) CheckNondegen() bool {
	return !s.a.IsClose(s.b) && !s.b.IsClose(s.c) && !s.a.IsClose(s.c) &&
		!s.d.IsClose(s.e) && !s.e.IsClose(s.f) && !s.d.IsClose(s.f) &&
		dotSign(s.a, s.b, s.c) == dotSign(s.d, s.e, s.f)
}

// CheckEquations always holds.
func (s SameSignDot) CheckEquations() bool { return true }

// NumericalOnly marks the predicate as purely numerical.
func (s SameSignDot) NumericalOnly() bool { return true }

// Key returns the fingerprint.
func (s SameSignDot) Key() string {
	return key("sameside",
		ptKey(s.a), ptKey(s.b), ptKey(s.c), ptKey(s.d), ptKey(s.e), ptKey(s.f))
}

// JSON returns the wire form.
func (s SameSignDot) JSON() JSONObject { return jsonPoints("sameside", s.Points()) }

func (s SameSignDot) String() string {
	return fmt.Sprintf("%s on the same side of [%s,%s] as %s of [%s,%s]",
		s.a.Name(), s.b.Name(), s.c.Name(), s.d.Name(), s.e.Name(), s.f.Name())
}

// DiffSignDot is the opposite-sign counterpart of SameSignDot.
type DiffSignDot struct {
	base
	a, b, c, d, e, f geom.Point
}

// NewDiffSignDot creates an opposite-side statement.
func NewDiffSignDot(a, b, c, d, e, f geom.Point) DiffSignDot {
	return DiffSignDot{a: a, b: b, c: c, d: d, e: e, f: f}
}

// Name returns "nsameside".
func (s DiffSignDot) Name() string { return "nsameside" }

// Points returns the six points.
func (s DiffSignDot) Points() []geom.Point {
	return []geom.Point{s.a, s.b, s.c, s.d, s.e, s.f}
}

// Normalize keeps the statement as-is.
func (s DiffSignDot) Normalize() Statement { return s }

// CheckNondegen requires distinct points and opposite dot-product
// signs.
func (s DiffSignDot) CheckNondegen() bool {
	return !s.a.IsClose(s.b) && !s.b.IsClose(s.c) && !s.a.IsClose(s.c) &&
		!s.d.IsClose(s.e) && !s.e.IsClose(s.f) && !s.d.IsClose(s.f) &&
		dotSign(s.a, s.b, s.c) != dotSign(s.d, s.e, s.f)
}

// CheckEquations always holds.
func (s DiffSignDot) CheckEquations() bool { return true }

// NumericalOnly marks the predicate as purely numerical.
func (s DiffSignDot) NumericalOnly() bool { return true }

// Key returns the fingerprint.
func (s DiffSignDot) Key() string {
	return key("nsameside",
		ptKey(s.a), ptKey(s.b), ptKey(s.c), ptKey(s.d), ptKey(s.e), ptKey(s.f))
}

// JSON returns the wire form.
func (s DiffSignDot) JSON() JSONObject { return jsonPoints("nsameside", s.Points()) }

func (s DiffSignDot) String() string {
	return fmt.Sprintf("%s on the other side of [%s,%s] than %s of [%s,%s]",
		s.a.Name(), s.b.Name(), s.c.Name(), s.d.Name(), s.e.Name(), s.f.Name())
}
