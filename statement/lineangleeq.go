package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// LineAngleEq states that the angle from one line to another equals a
// constant multiple of π (mod π).
type LineAngleEq struct {
	base
	left  geom.SlopeAngle
	right geom.SlopeAngle
	rhs   number.AddCircle
}

// NewLineAngleEq creates a constant line-angle statement.
func NewLineAngleEq(l, r geom.SlopeAngle, v number.AddCircle) LineAngleEq {
	return LineAngleEq{left: l, right: r, rhs: v}
}

// Name returns "aconst".
func (s LineAngleEq) Name() string { return "aconst" }

// Points returns the four endpoints.
func (s LineAngleEq) Points() []geom.Point {
	return []geom.Point{s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right()}
}

// Normalize keeps the statement as-is. Collapsing to a three-point
// angle when the lines share an endpoint is deliberately not done.
func (s LineAngleEq) Normalize() Statement { return s }

// CheckNondegen requires both lines to be nondegenerate.
func (s LineAngleEq) CheckNondegen() bool {
	return s.left.CheckNondegen() && s.right.CheckNondegen()
}

// CheckEquations verifies the angle difference numerically mod π.
func (s LineAngleEq) CheckEquations() bool {
	return s.rhs.ApproxEqFloat(s.right.Value() - s.left.Value())
}

// Key returns the fingerprint.
func (s LineAngleEq) Key() string {
	return key("aconst",
		ptKey(s.left.Left()), ptKey(s.left.Right()),
		ptKey(s.right.Left()), ptKey(s.right.Right()),
		s.rhs.Number().String())
}

// SlopeAngleEquation yields right - left = r.
func (s LineAngleEq) SlopeAngleEquation() (ar.SlopeAngleEquation, bool) {
	return ar.SubEqConst(s.right, s.left, s.rhs), true
}

// JSON returns the wire form with the constant appended.
func (s LineAngleEq) JSON() JSONObject {
	obj := jsonPoints("aconst", s.Points())
	obj.Points = append(obj.Points, s.rhs.Number().String())
	return obj
}

func (s LineAngleEq) String() string {
	return fmt.Sprintf("∠(%s%s, %s%s) = %sπ",
		s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right(), s.rhs.Number())
}
