package statement

import (
	"fmt"
	"sort"

	"github.com/npillmayer/geoproof/geom"
)

// NotEqual states that two points are distinct. Numerical-only.
type NotEqual struct {
	base
	left  geom.Point
	right geom.Point
}

// NewNotEqual creates a distinctness statement.
func NewNotEqual(l, r geom.Point) NotEqual {
	return NotEqual{left: l, right: r}
}

// Name returns "diff".
func (s NotEqual) Name() string { return "diff" }

// Points returns the two points.
func (s NotEqual) Points() []geom.Point { return []geom.Point{s.left, s.right} }

// Normalize orders the points.
func (s NotEqual) Normalize() Statement {
	if s.left.Less(s.right) {
		return s
	}
	return NotEqual{left: s.right, right: s.left}
}

// CheckNondegen requires numerically distinct points.
func (s NotEqual) CheckNondegen() bool { return !s.left.IsClose(s.right) }

// CheckEquations always holds.
func (s NotEqual) CheckEquations() bool { return true }

// NumericalOnly marks the predicate as purely numerical.
func (s NotEqual) NumericalOnly() bool { return true }

// Key returns the fingerprint.
func (s NotEqual) Key() string { return key("diff", ptKey(s.left), ptKey(s.right)) }

// JSON returns the wire form.
func (s NotEqual) JSON() JSONObject { return jsonPoints("diff", s.Points()) }

func (s NotEqual) String() string { return fmt.Sprintf("%s ≠ %s", s.left, s.right) }

// NonCollinear states that three points do not lie on one line.
// Numerical-only.
type NonCollinear struct {
	base
	a, b, c geom.Point
}

// NewNonCollinear creates a non-collinearity statement.
func NewNonCollinear(a, b, c geom.Point) NonCollinear {
	return NonCollinear{a: a, b: b, c: c}
}

// Name returns "ncoll".
func (s NonCollinear) Name() string { return "ncoll" }

// Points returns the three points.
func (s NonCollinear) Points() []geom.Point { return []geom.Point{s.a, s.b, s.c} }

// Normalize sorts the points by index.
func (s NonCollinear) Normalize() Statement {
	pts := []geom.Point{s.a, s.b, s.c}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
	return NonCollinear{a: pts[0], b: pts[1], c: pts[2]}
}

// CheckNondegen requires distinct, non-collinear points.
func (s NonCollinear) CheckNondegen() bool {
	return !s.a.IsClose(s.b) && !s.b.IsClose(s.c) && !s.a.IsClose(s.c) &&
		!geom.CollinearNumerically(s.a, s.b, s.c)
}

// CheckEquations always holds.
func (s NonCollinear) CheckEquations() bool { return true }

// NumericalOnly marks the predicate as purely numerical.
func (s NonCollinear) NumericalOnly() bool { return true }

// Key returns the fingerprint.
func (s NonCollinear) Key() string {
	return key("ncoll", ptKey(s.a), ptKey(s.b), ptKey(s.c))
}

// JSON returns the wire form.
func (s NonCollinear) JSON() JSONObject { return jsonPoints("ncoll", s.Points()) }

func (s NonCollinear) String() string {
	return fmt.Sprintf("%s ∉ %s%s", s.a, s.b, s.c)
}

// NonParallel states that two lines are not parallel. Numerical-only.
type NonParallel struct {
	base
	left  geom.SlopeAngle
	right geom.SlopeAngle
}

// NewNonParallel creates a non-parallelism statement.
func NewNonParallel(l, r geom.SlopeAngle) NonParallel {
	return NonParallel{left: l, right: r}
}

// Name returns "npara".
func (s NonParallel) Name() string { return "npara" }

// Points returns the four endpoints.
func (s NonParallel) Points() []geom.Point {
	return []geom.Point{s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right()}
}

// Normalize orders the two lines.
func (s NonParallel) Normalize() Statement {
	if s.left.Compare(s.right) > 0 {
		return NonParallel{left: s.right, right: s.left}
	}
	return s
}

// CheckNondegen requires nondegenerate, non-parallel lines.
func (s NonParallel) CheckNondegen() bool {
	return s.left.CheckNondegen() && s.right.CheckNondegen() &&
		!NewParallel(s.left, s.right).CheckEquations()
}

// CheckEquations always holds.
func (s NonParallel) CheckEquations() bool { return true }

// NumericalOnly marks the predicate as purely numerical.
func (s NonParallel) NumericalOnly() bool { return true }

// Key returns the fingerprint.
func (s NonParallel) Key() string {
	return key("npara",
		ptKey(s.left.Left()), ptKey(s.left.Right()),
		ptKey(s.right.Left()), ptKey(s.right.Right()))
}

// JSON returns the wire form.
func (s NonParallel) JSON() JSONObject { return jsonPoints("npara", s.Points()) }

func (s NonParallel) String() string {
	return fmt.Sprintf("%s%s ∦ %s%s",
		s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right())
}

// NonPerpendicular states that two lines are not perpendicular.
// Numerical-only.
type NonPerpendicular struct {
	base
	left  geom.SlopeAngle
	right geom.SlopeAngle
}

// NewNonPerpendicular creates a non-perpendicularity statement.
func NewNonPerpendicular(l, r geom.SlopeAngle) NonPerpendicular {
	return NonPerpendicular{left: l, right: r}
}

// Name returns "nperp".
func (s NonPerpendicular) Name() string { return "nperp" }

// Points returns the four endpoints.
func (s NonPerpendicular) Points() []geom.Point {
	return []geom.Point{s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right()}
}

// Normalize orders the two lines.
func (s NonPerpendicular) Normalize() Statement {
	if s.left.Compare(s.right) > 0 {
		return NonPerpendicular{left: s.right, right: s.left}
	}
	return s
}

// CheckNondegen requires nondegenerate, non-perpendicular lines.
func (s NonPerpendicular) CheckNondegen() bool {
	return s.left.CheckNondegen() && s.right.CheckNondegen() &&
		!NewPerpendicular(s.left, s.right).CheckEquations()
}

// CheckEquations always holds.
func (s NonPerpendicular) CheckEquations() bool { return true }

// NumericalOnly marks the predicate as purely numerical.
func (s NonPerpendicular) NumericalOnly() bool { return true }

// Key returns the fingerprint.
func (s NonPerpendicular) Key() string {
	return key("nperp",
		ptKey(s.left.Left()), ptKey(s.left.Right()),
		ptKey(s.right.Left()), ptKey(s.right.Right()))
}

// JSON returns the wire form.
func (s NonPerpendicular) JSON() JSONObject { return jsonPoints("nperp", s.Points()) }

func (s NonPerpendicular) String() string {
	return fmt.Sprintf("%s%s ⟂̸ %s%s",
		s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right())
}
