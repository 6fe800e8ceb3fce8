package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/geom"
)

// Circumcenter states that a point is the circumcenter of a triangle.
type Circumcenter struct {
	base
	center   geom.Point
	triangle geom.Triangle
}

// NewCircumcenter creates a circumcenter statement.
func NewCircumcenter(center geom.Point, tri geom.Triangle) Circumcenter {
	return Circumcenter{center: center, triangle: tri}
}

// Center returns the center point.
func (s Circumcenter) Center() geom.Point { return s.center }

// Triangle returns the triangle.
func (s Circumcenter) Triangle() geom.Triangle { return s.triangle }

// A returns the triangle's vertex a.
func (s Circumcenter) A() geom.Point { return s.triangle.A() }

// B returns the triangle's vertex b.
func (s Circumcenter) B() geom.Point { return s.triangle.B() }

// C returns the triangle's vertex c.
func (s Circumcenter) C() geom.Point { return s.triangle.C() }

// CongAB is |OA| = |OB|.
func (s Circumcenter) CongAB() DistEqDist {
	return NewDistEqDist(geom.NewDist(s.center, s.A()), geom.NewDist(s.center, s.B()))
}

// CongBC is |OB| = |OC|.
func (s Circumcenter) CongBC() DistEqDist {
	return NewDistEqDist(geom.NewDist(s.center, s.B()), geom.NewDist(s.center, s.C()))
}

// CongAC is |OA| = |OC|.
func (s Circumcenter) CongAC() DistEqDist {
	return NewDistEqDist(geom.NewDist(s.center, s.A()), geom.NewDist(s.center, s.C()))
}

// Name returns "circle".
func (s Circumcenter) Name() string { return "circle" }

// Points returns the center followed by the vertices.
func (s Circumcenter) Points() []geom.Point {
	return []geom.Point{s.center, s.A(), s.B(), s.C()}
}

// Normalize sorts the triangle's vertices.
func (s Circumcenter) Normalize() Statement {
	return Circumcenter{center: s.center, triangle: s.triangle.Sorted()}
}

// CheckNondegen requires a nondegenerate triangle.
func (s Circumcenter) CheckNondegen() bool { return s.triangle.CheckNondegen() }

// CheckEquations verifies the two defining congruences.
func (s Circumcenter) CheckEquations() bool {
	return s.CongAB().CheckEquations() && s.CongBC().CheckEquations()
}

// Key returns the fingerprint.
func (s Circumcenter) Key() string {
	return key("circle", ptKey(s.center), ptKey(s.A()), ptKey(s.B()), ptKey(s.C()))
}

// JSON returns the wire form.
func (s Circumcenter) JSON() JSONObject { return jsonPoints("circle", s.Points()) }

func (s Circumcenter) String() string {
	return fmt.Sprintf("%s = circumcenter(%s)", s.center.Name(), s.triangle)
}
