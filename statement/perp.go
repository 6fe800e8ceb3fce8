package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// Perpendicular states that two lines meet at a right angle.
type Perpendicular struct {
	base
	left  geom.SlopeAngle
	right geom.SlopeAngle
}

// NewPerpendicular creates a perpendicularity statement.
func NewPerpendicular(s1, s2 geom.SlopeAngle) Perpendicular {
	return Perpendicular{left: s1, right: s2}
}

// Left returns the left line.
func (s Perpendicular) Left() geom.SlopeAngle { return s.left }

// Right returns the right line.
func (s Perpendicular) Right() geom.SlopeAngle { return s.right }

// Name returns "perp".
func (s Perpendicular) Name() string { return "perp" }

// Points returns the four endpoints.
func (s Perpendicular) Points() []geom.Point {
	return []geom.Point{s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right()}
}

// Normalize orders the two lines.
func (s Perpendicular) Normalize() Statement {
	if s.left.Compare(s.right) > 0 {
		return Perpendicular{left: s.right, right: s.left}
	}
	return s
}

// CheckNondegen requires both lines to be nondegenerate.
func (s Perpendicular) CheckNondegen() bool {
	return s.left.CheckNondegen() && s.right.CheckNondegen()
}

// CheckEquations tests the dot product of the two directions.
func (s Perpendicular) CheckEquations() bool {
	return number.ApproxEq(
		(s.left.Right().X()-s.left.Left().X())*(s.right.Right().X()-s.right.Left().X()),
		-(s.left.Right().Y()-s.left.Left().Y())*(s.right.Right().Y()-s.right.Left().Y()))
}

// Key returns the fingerprint.
func (s Perpendicular) Key() string {
	return key("perp",
		ptKey(s.left.Left()), ptKey(s.left.Right()),
		ptKey(s.right.Left()), ptKey(s.right.Right()))
}

// SlopeAngleEquation yields left - right = 1/2 (π/2).
func (s Perpendicular) SlopeAngleEquation() (ar.SlopeAngleEquation, bool) {
	return ar.SubEqConst(s.left, s.right, number.NewAddCircle(number.NewRat(1, 2))), true
}

// JSON returns the wire form.
func (s Perpendicular) JSON() JSONObject { return jsonPoints("perp", s.Points()) }

func (s Perpendicular) String() string {
	return fmt.Sprintf("%s%s ⟂ %s%s",
		s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right())
}
