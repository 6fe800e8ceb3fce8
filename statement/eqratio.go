package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// EqualRatios states |AB|:|CD| = |EF|:|GH|.
type EqualRatios struct {
	base
	numLeft  geom.Dist
	denLeft  geom.Dist
	numRight geom.Dist
	denRight geom.Dist
}

// NewEqualRatios creates an equality of ratios.
func NewEqualRatios(numLeft, denLeft, numRight, denRight geom.Dist) EqualRatios {
	return EqualRatios{
		numLeft: numLeft, denLeft: denLeft,
		numRight: numRight, denRight: denRight,
	}
}

// Name returns "eqratio".
func (s EqualRatios) Name() string { return "eqratio" }

// Points returns the eight endpoints.
func (s EqualRatios) Points() []geom.Point {
	return []geom.Point{
		s.numLeft.Left(), s.numLeft.Right(),
		s.denLeft.Left(), s.denLeft.Right(),
		s.numRight.Left(), s.numRight.Right(),
		s.denRight.Left(), s.denRight.Right(),
	}
}

// Normalize reorders the four distances so that the least one leads and
// the proportion reads in canonical order. Degenerate readings such as
// AB:CD = AB:EF are deliberately not simplified.
func (s EqualRatios) Normalize() Statement {
	a, b, c, d := s.numLeft, s.denLeft, s.numRight, s.denRight
	if minDist(a, b).Compare(minDist(c, d)) > 0 {
		a, c = c, a
		b, d = d, b
	}
	if a.Compare(b) > 0 {
		a, b = b, a
		c, d = d, c
	}
	if b.Compare(c) > 0 {
		b, c = c, b
	}
	return EqualRatios{numLeft: a, denLeft: b, numRight: c, denRight: d}
}

func minDist(a, b geom.Dist) geom.Dist {
	if b.Compare(a) < 0 {
		return b
	}
	return a
}

// CheckNondegen requires all four segments to be nondegenerate.
func (s EqualRatios) CheckNondegen() bool {
	return s.numLeft.CheckNondegen() && s.denLeft.CheckNondegen() &&
		s.numRight.CheckNondegen() && s.denRight.CheckNondegen()
}

// CheckEquations cross-multiplies the ratio equation numerically.
func (s EqualRatios) CheckEquations() bool {
	return number.ApproxEq(
		s.numLeft.Length()*s.denRight.Length(),
		s.numRight.Length()*s.denLeft.Length())
}

// Key returns the fingerprint.
func (s EqualRatios) Key() string {
	return key("eqratio",
		ptKey(s.numLeft.Left()), ptKey(s.numLeft.Right()),
		ptKey(s.denLeft.Left()), ptKey(s.denLeft.Right()),
		ptKey(s.numRight.Left()), ptKey(s.numRight.Right()),
		ptKey(s.denRight.Left()), ptKey(s.denRight.Right()))
}

// SinOrDistEquation yields nl - dl - nr + dr = 1 in the ratio table
// (squares of the distances, multiplicatively).
func (s EqualRatios) SinOrDistEquation() (ar.SinOrDistEquation, bool) {
	lhs := ar.Single(geom.NewSinOrDist(s.numLeft.Squared())).
		Sub(ar.Single(geom.NewSinOrDist(s.denLeft.Squared()))).
		Sub(ar.Single(geom.NewSinOrDist(s.numRight.Squared()))).
		Add(ar.Single(geom.NewSinOrDist(s.denRight.Squared())))
	return ar.NewEquation(lhs, number.RootRat{}), true
}

// JSON returns the wire form.
func (s EqualRatios) JSON() JSONObject { return jsonPoints("eqratio", s.Points()) }

func (s EqualRatios) String() string {
	return fmt.Sprintf("%s:%s = %s:%s", s.numLeft, s.denLeft, s.numRight, s.denRight)
}
