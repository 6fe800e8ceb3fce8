package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// AngleEq states that a three-point angle equals a constant multiple of
// π (mod π).
type AngleEq struct {
	base
	angle geom.Angle
	rhs   number.AddCircle
}

// NewAngleEq creates a constant-angle statement.
func NewAngleEq(a geom.Angle, r number.AddCircle) AngleEq {
	return AngleEq{angle: a, rhs: r}
}

// Angle returns the angle atom.
func (s AngleEq) Angle() geom.Angle { return s.angle }

// RHS returns the constant.
func (s AngleEq) RHS() number.AddCircle { return s.rhs }

// Name returns "aconst".
func (s AngleEq) Name() string { return "aconst" }

// Points returns left, vertex, right.
func (s AngleEq) Points() []geom.Point { return s.angle.Points() }

// Normalize orients the angle with the lesser endpoint first.
func (s AngleEq) Normalize() Statement {
	if s.angle.Left().Less(s.angle.Right()) {
		return s
	}
	return AngleEq{angle: s.angle.Neg(), rhs: s.rhs.Neg()}
}

// CheckNondegen requires a nondegenerate angle.
func (s AngleEq) CheckNondegen() bool { return s.angle.CheckNondegen() }

// CheckEquations verifies the angle value numerically mod π.
func (s AngleEq) CheckEquations() bool {
	return s.rhs.ApproxEqFloat(s.angle.Value())
}

// Key returns the fingerprint.
func (s AngleEq) Key() string {
	return key("aconst",
		ptKey(s.angle.Left()), ptKey(s.angle.Vertex()), ptKey(s.angle.Right()),
		s.rhs.Number().String())
}

// ToLineAngleEq rewrites into the 4-point line form.
func (s AngleEq) ToLineAngleEq() LineAngleEq {
	return NewLineAngleEq(s.angle.LeftSide(), s.angle.RightSide(), s.rhs)
}

// SlopeAngleEquation yields rightSide - leftSide = r.
func (s AngleEq) SlopeAngleEquation() (ar.SlopeAngleEquation, bool) {
	return ar.SubEqConst(s.angle.RightSide(), s.angle.LeftSide(), s.rhs), true
}

// JSON uses the line-angle wire form.
func (s AngleEq) JSON() JSONObject { return s.ToLineAngleEq().JSON() }

func (s AngleEq) String() string {
	return fmt.Sprintf("%s = %sπ", s.angle, s.rhs.Number())
}
