package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/geom"
)

// IsOrthocenter states that a point is the orthocenter of a triangle.
type IsOrthocenter struct {
	base
	triangle    geom.Triangle
	orthocenter geom.Point
}

// NewIsOrthocenter creates an orthocenter statement.
func NewIsOrthocenter(t geom.Triangle, p geom.Point) IsOrthocenter {
	return IsOrthocenter{triangle: t, orthocenter: p}
}

// Name returns "is_orthocenter".
func (s IsOrthocenter) Name() string { return "is_orthocenter" }

// Points returns the vertices followed by the orthocenter.
func (s IsOrthocenter) Points() []geom.Point {
	return append(s.triangle.Points(), s.orthocenter)
}

// Normalize sorts the triangle's vertices.
func (s IsOrthocenter) Normalize() Statement {
	return IsOrthocenter{triangle: s.triangle.Sorted(), orthocenter: s.orthocenter}
}

// PerpA is AH ⟂ BC.
func (s IsOrthocenter) PerpA() Perpendicular {
	return NewPerpendicular(
		geom.NewSlopeAngle(s.triangle.A(), s.orthocenter),
		geom.NewSlopeAngle(s.triangle.B(), s.triangle.C()))
}

// PerpB is BH ⟂ AC.
func (s IsOrthocenter) PerpB() Perpendicular {
	return NewPerpendicular(
		geom.NewSlopeAngle(s.triangle.B(), s.orthocenter),
		geom.NewSlopeAngle(s.triangle.A(), s.triangle.C()))
}

// PerpC is CH ⟂ AB.
func (s IsOrthocenter) PerpC() Perpendicular {
	return NewPerpendicular(
		geom.NewSlopeAngle(s.triangle.C(), s.orthocenter),
		geom.NewSlopeAngle(s.triangle.A(), s.triangle.B()))
}

// CheckNondegen requires the triangle and all three altitudes
// nondegenerate.
func (s IsOrthocenter) CheckNondegen() bool {
	return s.triangle.CheckNondegen() &&
		s.PerpA().CheckNondegen() && s.PerpB().CheckNondegen() && s.PerpC().CheckNondegen()
}

// CheckEquations verifies two of the altitudes numerically.
func (s IsOrthocenter) CheckEquations() bool {
	return s.PerpA().CheckEquations() && s.PerpB().CheckEquations()
}

// Key returns the fingerprint.
func (s IsOrthocenter) Key() string {
	return key("is_orthocenter",
		ptKey(s.triangle.A()), ptKey(s.triangle.B()), ptKey(s.triangle.C()),
		ptKey(s.orthocenter))
}

// JSON returns the wire form.
func (s IsOrthocenter) JSON() JSONObject { return jsonPoints("is_orthocenter", s.Points()) }

func (s IsOrthocenter) String() string {
	return fmt.Sprintf("%s is the orthocenter of %s", s.orthocenter, s.triangle)
}
