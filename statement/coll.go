package statement

import (
	"fmt"
	"sort"

	"github.com/npillmayer/geoproof/geom"
)

// Collinear states that three points lie on one line.
type Collinear struct {
	base
	a, b, c geom.Point
}

// NewCollinear creates a collinearity statement.
func NewCollinear(a, b, c geom.Point) Collinear {
	return Collinear{a: a, b: b, c: c}
}

// A returns the first point.
func (s Collinear) A() geom.Point { return s.a }

// B returns the second point.
func (s Collinear) B() geom.Point { return s.b }

// C returns the third point.
func (s Collinear) C() geom.Point { return s.c }

// Name returns "coll".
func (s Collinear) Name() string { return "coll" }

// Points returns the three points.
func (s Collinear) Points() []geom.Point { return []geom.Point{s.a, s.b, s.c} }

// Normalize sorts the points by index.
func (s Collinear) Normalize() Statement {
	pts := []geom.Point{s.a, s.b, s.c}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
	return Collinear{a: pts[0], b: pts[1], c: pts[2]}
}

// CheckNondegen requires pairwise distinct points.
func (s Collinear) CheckNondegen() bool {
	return !s.a.IsClose(s.b) && !s.b.IsClose(s.c) && !s.a.IsClose(s.c)
}

// CheckEquations tests the collinearity cross product numerically.
func (s Collinear) CheckEquations() bool {
	return geom.CollinearNumerically(s.a, s.b, s.c)
}

// Key returns the fingerprint.
func (s Collinear) Key() string {
	return key("coll", ptKey(s.a), ptKey(s.b), ptKey(s.c))
}

// CyclicPermutations returns ABC, BCA, CAB.
func (s Collinear) CyclicPermutations() [3]Collinear {
	return [3]Collinear{
		s,
		{a: s.b, b: s.c, c: s.a},
		{a: s.c, b: s.a, c: s.b},
	}
}

// IsBetween numerically tests whether b lies between a and c.
func (s Collinear) IsBetween() bool {
	return NewObtuseAngle(geom.NewAngle(s.a, s.b, s.c)).CheckNondegen()
}

// EqRatioABBC builds |AB|:|BC| = |A'B'|:|B'C'| against another triple.
func (s Collinear) EqRatioABBC(other Collinear) EqualRatios {
	return NewEqualRatios(
		geom.NewDist(s.a, s.b), geom.NewDist(s.b, s.c),
		geom.NewDist(other.a, other.b), geom.NewDist(other.b, other.c))
}

// EqRatioABAC builds |AB|:|AC| = |A'B'|:|A'C'| against another triple.
func (s Collinear) EqRatioABAC(other Collinear) EqualRatios {
	return NewEqualRatios(
		geom.NewDist(s.a, s.b), geom.NewDist(s.a, s.c),
		geom.NewDist(other.a, other.b), geom.NewDist(other.a, other.c))
}

// JSON returns the wire form.
func (s Collinear) JSON() JSONObject { return jsonPoints("coll", s.Points()) }

func (s Collinear) String() string {
	return fmt.Sprintf("%s ∈ %s%s", s.a, s.b, s.c)
}
