package geom

import (
	"fmt"

	"github.com/npillmayer/geoproof/number"
)

// Angle is the signed angle from line VL to line VR at vertex V, taken
// modulo π. The vertex must differ from both endpoints.
type Angle struct {
	left   Point
	vertex Point
	right  Point
}

// NewAngle creates an angle atom. Panics if the vertex equals an
// endpoint.
func NewAngle(left, vertex, right Point) Angle {
	if vertex == left || vertex == right {
		panic(fmt.Sprintf("cannot create angle %s %s %s: equal points",
			left.Name(), vertex.Name(), right.Name()))
	}
	return Angle{left: left, vertex: vertex, right: right}
}

// Left returns the left point.
func (a Angle) Left() Point { return a.left }

// Vertex returns the vertex point.
func (a Angle) Vertex() Point { return a.vertex }

// Right returns the right point.
func (a Angle) Right() Point { return a.right }

// LeftSide is the slope angle of the segment from the vertex to the
// left point.
func (a Angle) LeftSide() SlopeAngle { return NewSlopeAngle(a.vertex, a.left) }

// RightSide is the slope angle of the segment from the vertex to the
// right point.
func (a Angle) RightSide() SlopeAngle { return NewSlopeAngle(a.vertex, a.right) }

// Neg swaps the left and right points.
func (a Angle) Neg() Angle { return Angle{left: a.right, vertex: a.vertex, right: a.left} }

// Value evaluates the angle numerically in [0, 1) with 1 ≡ π.
func (a Angle) Value() float64 {
	return number.Mod1(a.RightSide().Value() - a.LeftSide().Value())
}

// DotProduct computes the dot product of the two sides.
func (a Angle) DotProduct() float64 {
	return (a.left.X()-a.vertex.X())*(a.right.X()-a.vertex.X()) +
		(a.left.Y()-a.vertex.Y())*(a.right.Y()-a.vertex.Y())
}

// EvalTerm evaluates c·∠(L,V,R) without reducing mod 1.
func (a Angle) EvalTerm(c number.Rat) float64 {
	return c.Float() * a.Value()
}

// Points returns left, vertex, right.
func (a Angle) Points() []Point { return []Point{a.left, a.vertex, a.right} }

// CheckNondegen reports whether the vertex is numerically distinct from
// both endpoints. A zero or straight angle is not rejected here;
// theorems that need more assume non-collinearity explicitly.
func (a Angle) CheckNondegen() bool {
	return !a.vertex.IsClose(a.left) && !a.vertex.IsClose(a.right)
}

// Compare orders angles lexicographically by (left, vertex, right).
func (a Angle) Compare(other Angle) int {
	if c := a.left.Compare(other.left); c != 0 {
		return c
	}
	if c := a.vertex.Compare(other.vertex); c != 0 {
		return c
	}
	return a.right.Compare(other.right)
}

func (a Angle) String() string {
	return fmt.Sprintf("∠(%s-%s-%s)", a.left.Name(), a.vertex.Name(), a.right.Name())
}
