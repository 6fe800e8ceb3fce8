package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// RatioSquaredDist states |AB|² : |CD|² = r.
type RatioSquaredDist struct {
	base
	left  geom.SquaredDist
	right geom.SquaredDist
	ratio number.Rat
}

// NewRatioSquaredDist creates a constant squared-ratio statement.
func NewRatioSquaredDist(d1, d2 geom.SquaredDist, r number.Rat) RatioSquaredDist {
	return RatioSquaredDist{left: d1, right: d2, ratio: r}
}

// LeftSquaredDist returns the numerator.
func (s RatioSquaredDist) LeftSquaredDist() geom.SquaredDist { return s.left }

// RightSquaredDist returns the denominator.
func (s RatioSquaredDist) RightSquaredDist() geom.SquaredDist { return s.right }

// Ratio returns the constant.
func (s RatioSquaredDist) Ratio() number.Rat { return s.ratio }

// Name returns "ratio_squared_dist".
func (s RatioSquaredDist) Name() string { return "ratio_squared_dist" }

// Points returns the four endpoints.
func (s RatioSquaredDist) Points() []geom.Point {
	return []geom.Point{s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right()}
}

// Normalize converts to an rconst when the ratio is a perfect square,
// else orders the two squared distances.
func (s RatioSquaredDist) Normalize() Statement {
	if r, ok := s.ratio.Sqrt(); ok {
		return NewRatioDistEq(s.left.Dist(), s.right.Dist(), r).Normalize()
	}
	if s.left.Compare(s.right) > 0 {
		return RatioSquaredDist{left: s.right, right: s.left, ratio: s.ratio.Inv()}
	}
	return s
}

// NormalizeGenerated is the normalization used for AR-generated
// candidates: a ratio of exactly 1 collapses to a congruence.
func (s RatioSquaredDist) NormalizeGenerated() Statement {
	if s.ratio.Eq(number.RatInt(1)) {
		return NewDistEqDist(s.left.Dist(), s.right.Dist())
	}
	return s.Normalize()
}

// CheckNondegen requires nondegenerate segments.
func (s RatioSquaredDist) CheckNondegen() bool {
	return s.left.CheckNondegen() && s.right.CheckNondegen()
}

// CheckEquations verifies the squared ratio numerically.
func (s RatioSquaredDist) CheckEquations() bool {
	return number.ApproxEq(s.left.Value(), s.right.Value()*s.ratio.Float())
}

// Key returns the fingerprint.
func (s RatioSquaredDist) Key() string {
	return key("ratio_squared_dist",
		ptKey(s.left.Left()), ptKey(s.left.Right()),
		ptKey(s.right.Left()), ptKey(s.right.Right()),
		s.ratio.String())
}

// SquaredDistEquation yields left - r·right = 0.
func (s RatioSquaredDist) SquaredDistEquation() (ar.SquaredDistEquation, bool) {
	lhs := ar.Single(s.left).Sub(ar.SingleTerm(s.right, s.ratio))
	return ar.NewEquation(lhs, number.Rat{}), true
}

// SinOrDistEquation yields left - right = r in the ratio table.
func (s RatioSquaredDist) SinOrDistEquation() (ar.SinOrDistEquation, bool) {
	return ar.SubEqConst(
		geom.NewSinOrDist(s.left), geom.NewSinOrDist(s.right),
		number.NewRootRat(s.ratio)), true
}

// AsRatioSquaredDist returns the statement itself.
func (s RatioSquaredDist) AsRatioSquaredDist() (RatioSquaredDist, bool) {
	return s, true
}

// JSON returns the wire form with the ratio appended.
func (s RatioSquaredDist) JSON() JSONObject {
	obj := jsonPoints("r2const", s.Points())
	obj.Points = append(obj.Points, s.ratio.String())
	return obj
}

func (s RatioSquaredDist) String() string {
	return fmt.Sprintf("%s = %s·%s", s.left, s.ratio, s.right)
}
