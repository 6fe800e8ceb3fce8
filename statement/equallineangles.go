package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// EqualLineAngles states that the angle between two lines equals the
// angle between two other lines (the 8-point form of "eqangle").
type EqualLineAngles struct {
	base
	leftLeft   geom.SlopeAngle
	leftRight  geom.SlopeAngle
	rightLeft  geom.SlopeAngle
	rightRight geom.SlopeAngle
}

// NewEqualLineAngles creates an equality of line angles.
func NewEqualLineAngles(ll, lr, rl, rr geom.SlopeAngle) EqualLineAngles {
	return EqualLineAngles{leftLeft: ll, leftRight: lr, rightLeft: rl, rightRight: rr}
}

// Name returns "eqangle".
func (s EqualLineAngles) Name() string { return "eqangle" }

// Points returns the eight endpoints.
func (s EqualLineAngles) Points() []geom.Point {
	return []geom.Point{
		s.leftLeft.Left(), s.leftLeft.Right(),
		s.leftRight.Left(), s.leftRight.Right(),
		s.rightLeft.Left(), s.rightLeft.Right(),
		s.rightRight.Left(), s.rightRight.Right(),
	}
}

// Normalize keeps the statement as-is.
func (s EqualLineAngles) Normalize() Statement { return s }

// CheckNondegen requires all four lines to be nondegenerate.
func (s EqualLineAngles) CheckNondegen() bool {
	return s.leftLeft.CheckNondegen() && s.leftRight.CheckNondegen() &&
		s.rightLeft.CheckNondegen() && s.rightRight.CheckNondegen()
}

// CheckEquations compares the two angle differences mod π.
func (s EqualLineAngles) CheckEquations() bool {
	return number.ApproxEqMod1(
		s.leftRight.Value()-s.leftLeft.Value(),
		s.rightRight.Value()-s.rightLeft.Value())
}

// Key returns the fingerprint.
func (s EqualLineAngles) Key() string {
	return key("eqangle",
		ptKey(s.leftLeft.Left()), ptKey(s.leftLeft.Right()),
		ptKey(s.leftRight.Left()), ptKey(s.leftRight.Right()),
		ptKey(s.rightLeft.Left()), ptKey(s.rightLeft.Right()),
		ptKey(s.rightRight.Left()), ptKey(s.rightRight.Right()))
}

// IsRefl reports equality of an angle with itself.
func (s EqualLineAngles) IsRefl() bool {
	return s.leftLeft == s.rightLeft && s.leftRight == s.rightRight
}

// SlopeAngleEquation yields lr - ll - rr + rl = 0.
func (s EqualLineAngles) SlopeAngleEquation() (ar.SlopeAngleEquation, bool) {
	return ar.SubEqSub(s.leftRight, s.leftLeft, s.rightRight, s.rightLeft,
		number.AddCircle{}), true
}

// JSON returns the wire form.
func (s EqualLineAngles) JSON() JSONObject { return jsonPoints("eqangle", s.Points()) }

func (s EqualLineAngles) String() string {
	return fmt.Sprintf("∠(%s%s, %s%s) = ∠(%s%s, %s%s)",
		s.leftLeft.Left().Name(), s.leftLeft.Right().Name(),
		s.leftRight.Left().Name(), s.leftRight.Right().Name(),
		s.rightLeft.Left().Name(), s.rightLeft.Right().Name(),
		s.rightRight.Left().Name(), s.rightRight.Right().Name())
}
