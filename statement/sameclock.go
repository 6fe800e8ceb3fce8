package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/geom"
)

// SameClock states that two triangles are oriented the same way. It is
// a numerical-only predicate.
type SameClock struct {
	base
	left  geom.Triangle
	right geom.Triangle
}

// NewSameClock creates an orientation statement.
func NewSameClock(l, r geom.Triangle) SameClock {
	return SameClock{left: l, right: r}
}

// Name returns "sameclock".
func (s SameClock) Name() string { return "sameclock" }

// Points returns the six vertices.
func (s SameClock) Points() []geom.Point {
	return append(s.left.Points(), s.right.Points()...)
}

// Normalize keeps the statement as-is.
func (s SameClock) Normalize() Statement { return s }

// CheckNondegen requires nondegenerate triangles of equal orientation.
func (s SameClock) CheckNondegen() bool {
	return s.left.CheckNondegen() && s.right.CheckNondegen() &&
		(s.left.Area() > 0) == (s.right.Area() > 0)
}

// CheckEquations always holds; the predicate has no algebraic content.
func (s SameClock) CheckEquations() bool { return true }

// NumericalOnly marks the predicate as purely numerical.
func (s SameClock) NumericalOnly() bool { return true }

// Key returns the fingerprint.
func (s SameClock) Key() string {
	return key("sameclock",
		ptKey(s.left.A()), ptKey(s.left.B()), ptKey(s.left.C()),
		ptKey(s.right.A()), ptKey(s.right.B()), ptKey(s.right.C()))
}

// JSON returns the wire form.
func (s SameClock) JSON() JSONObject { return jsonPoints("sameclock", s.Points()) }

func (s SameClock) String() string {
	return fmt.Sprintf("%s oriented the same way as %s", s.left, s.right)
}

// NotSameClock states that two triangles are oriented opposite ways.
type NotSameClock struct {
	base
	left  geom.Triangle
	right geom.Triangle
}

// NewNotSameClock creates an opposite-orientation statement.
func NewNotSameClock(l, r geom.Triangle) NotSameClock {
	return NotSameClock{left: l, right: r}
}

// Name returns "nsameclock".
func (s NotSameClock) Name() string { return "nsameclock" }

// Points returns the six vertices.
func (s NotSameClock) Points() []geom.Point {
	return append(s.left.Points(), s.right.Points()...)
}

// Normalize keeps the statement as-is.
func (s NotSameClock) Normalize() Statement { return s }

// CheckNondegen requires nondegenerate triangles of opposite
// orientation.
func (s NotSameClock) CheckNondegen() bool {
	return s.left.CheckNondegen() && s.right.CheckNondegen() &&
		(s.left.Area() > 0) != (s.right.Area() > 0)
}

// CheckEquations always holds.
func (s NotSameClock) CheckEquations() bool { return true }

// NumericalOnly marks the predicate as purely numerical.
func (s NotSameClock) NumericalOnly() bool { return true }

// Key returns the fingerprint.
func (s NotSameClock) Key() string {
	return key("nsameclock",
		ptKey(s.left.A()), ptKey(s.left.B()), ptKey(s.left.C()),
		ptKey(s.right.A()), ptKey(s.right.B()), ptKey(s.right.C()))
}

// JSON returns the wire form.
func (s NotSameClock) JSON() JSONObject { return jsonPoints("nsameclock", s.Points()) }

func (s NotSameClock) String() string {
	return fmt.Sprintf("%s oriented opposite to %s", s.left, s.right)
}
