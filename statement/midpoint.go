package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/geom"
)

// Midpoint states that the middle point is the midpoint of the segment
// between left and right.
type Midpoint struct {
	base
	left   geom.Point
	middle geom.Point
	right  geom.Point
}

// NewMidpoint creates a midpoint statement.
func NewMidpoint(left, middle, right geom.Point) Midpoint {
	return Midpoint{left: left, middle: middle, right: right}
}

// Left returns the left endpoint.
func (s Midpoint) Left() geom.Point { return s.left }

// Middle returns the midpoint.
func (s Midpoint) Middle() geom.Point { return s.middle }

// Right returns the right endpoint.
func (s Midpoint) Right() geom.Point { return s.right }

// Name returns "midpoint".
func (s Midpoint) Name() string { return "midpoint" }

// Points returns left, middle, right.
func (s Midpoint) Points() []geom.Point { return []geom.Point{s.left, s.middle, s.right} }

// Normalize orders the endpoints.
func (s Midpoint) Normalize() Statement {
	if s.left.Less(s.right) {
		return s
	}
	return Midpoint{left: s.right, middle: s.middle, right: s.left}
}

// ToColl is the collinearity part of the definition.
func (s Midpoint) ToColl() Collinear { return NewCollinear(s.left, s.middle, s.right) }

// ToCong is the congruence part of the definition.
func (s Midpoint) ToCong() DistEqDist {
	return NewDistEqDist(geom.NewDist(s.left, s.middle), geom.NewDist(s.middle, s.right))
}

// CheckNondegen requires distinct collinear endpoints.
func (s Midpoint) CheckNondegen() bool {
	return s.ToColl().CheckNondegen() && !s.left.IsClose(s.right)
}

// CheckEquations verifies both defining equations.
func (s Midpoint) CheckEquations() bool {
	return s.ToColl().CheckEquations() && s.ToCong().CheckEquations()
}

// Key returns the fingerprint.
func (s Midpoint) Key() string {
	return key("midpoint", ptKey(s.left), ptKey(s.middle), ptKey(s.right))
}

// JSON returns the wire form, midpoint first as in the input syntax.
func (s Midpoint) JSON() JSONObject {
	return jsonPoints("midp", []geom.Point{s.middle, s.left, s.right})
}

func (s Midpoint) String() string {
	return fmt.Sprintf("%s is the midpoint of %s%s", s.middle, s.left, s.right)
}
