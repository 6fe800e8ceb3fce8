package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// ObtuseAngle states that an angle is obtuse (negative dot product of
// its sides). For a collinear triple this is the betweenness test.
// Numerical-only.
type ObtuseAngle struct {
	base
	angle geom.Angle
}

// NewObtuseAngle creates an obtuseness statement.
func NewObtuseAngle(a geom.Angle) ObtuseAngle {
	return ObtuseAngle{angle: a}
}

// ObtuseAngleOfColl builds the betweenness test for a collinear triple.
func ObtuseAngleOfColl(c Collinear) ObtuseAngle {
	return NewObtuseAngle(geom.NewAngle(c.A(), c.B(), c.C()))
}

// Angle returns the angle atom.
func (s ObtuseAngle) Angle() geom.Angle { return s.angle }

// Name returns "obtuse_angle".
func (s ObtuseAngle) Name() string { return "obtuse_angle" }

// Points returns left, vertex, right.
func (s ObtuseAngle) Points() []geom.Point { return s.angle.Points() }

// Normalize orients the angle with the lesser endpoint first.
func (s ObtuseAngle) Normalize() Statement {
	if s.angle.Left().Less(s.angle.Right()) {
		return s
	}
	return ObtuseAngle{angle: s.angle.Neg()}
}

// CheckNondegen tests the dot product of the sides.
func (s ObtuseAngle) CheckNondegen() bool {
	return s.angle.DotProduct() < -number.Eps
}

// CheckEquations always holds.
func (s ObtuseAngle) CheckEquations() bool { return true }

// NumericalOnly marks the predicate as purely numerical.
func (s ObtuseAngle) NumericalOnly() bool { return true }

// Key returns the fingerprint.
func (s ObtuseAngle) Key() string {
	return key("obtuse_angle",
		ptKey(s.angle.Left()), ptKey(s.angle.Vertex()), ptKey(s.angle.Right()))
}

// JSON returns the wire form.
func (s ObtuseAngle) JSON() JSONObject { return jsonPoints("obtuse_angle", s.Points()) }

func (s ObtuseAngle) String() string {
	return fmt.Sprintf("%s > π/2", s.angle)
}
