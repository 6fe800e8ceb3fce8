package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// DistEqDist states |AB| = |CD| (the classical "cong").
type DistEqDist struct {
	base
	left  geom.Dist
	right geom.Dist
}

// NewDistEqDist creates a congruence of segments.
func NewDistEqDist(d1, d2 geom.Dist) DistEqDist {
	return DistEqDist{left: d1, right: d2}
}

// Left returns the left distance.
func (s DistEqDist) Left() geom.Dist { return s.left }

// Right returns the right distance.
func (s DistEqDist) Right() geom.Dist { return s.right }

// Name returns "cong".
func (s DistEqDist) Name() string { return "cong" }

// Points returns the four endpoints.
func (s DistEqDist) Points() []geom.Point {
	return []geom.Point{s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right()}
}

// Normalize orders the two distances.
func (s DistEqDist) Normalize() Statement {
	if s.left.Compare(s.right) > 0 {
		return DistEqDist{left: s.right, right: s.left}
	}
	return s
}

// CheckNondegen requires both segments to be nondegenerate.
func (s DistEqDist) CheckNondegen() bool {
	return s.left.CheckNondegen() && s.right.CheckNondegen()
}

// CheckEquations compares the two lengths numerically.
func (s DistEqDist) CheckEquations() bool {
	return number.ApproxEq(s.left.Length(), s.right.Length())
}

// Key returns the fingerprint.
func (s DistEqDist) Key() string {
	return key("cong",
		ptKey(s.left.Left()), ptKey(s.left.Right()),
		ptKey(s.right.Left()), ptKey(s.right.Right()))
}

// IsRefl reports |AB| = |AB|.
func (s DistEqDist) IsRefl() bool { return s.left == s.right }

// DistEquation yields left - right = 0.
func (s DistEqDist) DistEquation() (ar.DistEquation, bool) {
	return ar.SubEqConst(s.left, s.right, number.Rat{}), true
}

// SquaredDistEquation yields left² - right² = 0.
func (s DistEqDist) SquaredDistEquation() (ar.SquaredDistEquation, bool) {
	return ar.SubEqConst(s.left.Squared(), s.right.Squared(), number.Rat{}), true
}

// SinOrDistEquation yields left²/right² = 1 in the ratio table.
func (s DistEqDist) SinOrDistEquation() (ar.SinOrDistEquation, bool) {
	return ar.SubEqConst(
		geom.NewSinOrDist(s.left.Squared()),
		geom.NewSinOrDist(s.right.Squared()),
		number.RootRat{}), true
}

// AsRatioSquaredDist reads the congruence as |AB|²:|CD|² = 1.
func (s DistEqDist) AsRatioSquaredDist() (RatioSquaredDist, bool) {
	return NewRatioSquaredDist(s.left.Squared(), s.right.Squared(), number.RatInt(1)), true
}

// JSON returns the wire form.
func (s DistEqDist) JSON() JSONObject { return jsonPoints("cong", s.Points()) }

func (s DistEqDist) String() string {
	return fmt.Sprintf("%s = %s", s.left, s.right)
}
