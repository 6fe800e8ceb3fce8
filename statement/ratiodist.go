package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// RatioDistEq states |AB| : |CD| = r for a nonnegative rational r.
type RatioDistEq struct {
	base
	left  geom.Dist
	right geom.Dist
	ratio number.Rat
}

// NewRatioDistEq creates a constant-ratio statement.
func NewRatioDistEq(d1, d2 geom.Dist, r number.Rat) RatioDistEq {
	return RatioDistEq{left: d1, right: d2, ratio: r}
}

// Left returns the numerator distance.
func (s RatioDistEq) Left() geom.Dist { return s.left }

// Right returns the denominator distance.
func (s RatioDistEq) Right() geom.Dist { return s.right }

// Ratio returns the constant.
func (s RatioDistEq) Ratio() number.Rat { return s.ratio }

// Name returns "rconst".
func (s RatioDistEq) Name() string { return "rconst" }

// Points returns the four endpoints.
func (s RatioDistEq) Points() []geom.Point {
	return []geom.Point{s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right()}
}

// Swap flips the ratio to the reciprocal reading.
func (s RatioDistEq) Swap() RatioDistEq {
	return RatioDistEq{left: s.right, right: s.left, ratio: s.ratio.Inv()}
}

// Normalize orders the two distances. A ratio of 1 is deliberately not
// collapsed to a congruence.
func (s RatioDistEq) Normalize() Statement {
	if s.left.Compare(s.right) < 0 {
		return s
	}
	return s.Swap()
}

// CheckNondegen requires nondegenerate segments.
func (s RatioDistEq) CheckNondegen() bool {
	return s.left.CheckNondegen() && s.right.CheckNondegen()
}

// CheckEquations verifies |AB| = r·|CD| numerically.
func (s RatioDistEq) CheckEquations() bool {
	return number.ApproxEq(s.left.Length(), s.ratio.Float()*s.right.Length())
}

// Key returns the fingerprint.
func (s RatioDistEq) Key() string {
	return key("rconst",
		ptKey(s.left.Left()), ptKey(s.left.Right()),
		ptKey(s.right.Left()), ptKey(s.right.Right()),
		s.ratio.String())
}

// DistEquation yields left - r·right = 0.
func (s RatioDistEq) DistEquation() (ar.DistEquation, bool) {
	lhs := ar.Single(s.left).Sub(ar.SingleTerm(s.right, s.ratio))
	return ar.NewEquation(lhs, number.Rat{}), true
}

// SquaredDistEquation delegates to the squared reading.
func (s RatioDistEq) SquaredDistEquation() (ar.SquaredDistEquation, bool) {
	r, _ := s.AsRatioSquaredDist()
	return r.SquaredDistEquation()
}

// SinOrDistEquation delegates to the squared reading.
func (s RatioDistEq) SinOrDistEquation() (ar.SinOrDistEquation, bool) {
	r, _ := s.AsRatioSquaredDist()
	return r.SinOrDistEquation()
}

// AsRatioSquaredDist reads the statement as |AB|²:|CD|² = r².
func (s RatioDistEq) AsRatioSquaredDist() (RatioSquaredDist, bool) {
	return NewRatioSquaredDist(s.left.Squared(), s.right.Squared(),
		s.ratio.Mul(s.ratio)), true
}

// JSON returns the wire form with the ratio appended.
func (s RatioDistEq) JSON() JSONObject {
	obj := jsonPoints("rconst", s.Points())
	obj.Points = append(obj.Points, s.ratio.String())
	return obj
}

func (s RatioDistEq) String() string {
	return fmt.Sprintf("%s:%s = %s", s.left, s.right, s.ratio)
}
