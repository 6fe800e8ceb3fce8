package geom

import (
	"fmt"
	"math"

	"github.com/npillmayer/geoproof/number"
)

// SlopeAngle is the direction of the line through two points, modulo π.
// The value lives in [0, 1) with 1 ≡ π. Endpoints are stored in
// canonical order (left ≤ right); the atom requires distinct points.
type SlopeAngle struct {
	left  Point
	right Point
}

// NewSlopeAngle creates a slope-angle atom. Panics if the points are
// equal indexes; a degenerate line has no direction.
func NewSlopeAngle(p1, p2 Point) SlopeAngle {
	if p1 == p2 {
		panic(fmt.Sprintf("cannot create slope angle for equal points %s and %s",
			p1.Name(), p2.Name()))
	}
	return SlopeAngle{left: MinPoint(p1, p2), right: MaxPoint(p1, p2)}
}

// Left returns the smaller-indexed endpoint.
func (sa SlopeAngle) Left() Point { return sa.left }

// Right returns the larger-indexed endpoint.
func (sa SlopeAngle) Right() Point { return sa.right }

// Value evaluates the direction numerically, in [0, 1) with 1 ≡ π.
func (sa SlopeAngle) Value() float64 {
	dx := sa.right.X() - sa.left.X()
	dy := sa.right.Y() - sa.left.Y()
	return number.Mod1(math.Atan2(dy, dx) / math.Pi)
}

// Points returns both endpoints.
func (sa SlopeAngle) Points() []Point { return []Point{sa.left, sa.right} }

// CheckNondegen reports whether the endpoints are numerically distinct.
func (sa SlopeAngle) CheckNondegen() bool { return !sa.left.IsClose(sa.right) }

// Compare orders slope angles lexicographically by endpoints.
func (sa SlopeAngle) Compare(other SlopeAngle) int {
	if c := sa.left.Compare(other.left); c != 0 {
		return c
	}
	return sa.right.Compare(other.right)
}

// EvalTerm evaluates c·∠(AB) without reducing mod 1; the comparison
// side of the equation folds the sum back into [0, 1).
func (sa SlopeAngle) EvalTerm(c number.Rat) float64 {
	return c.Float() * sa.Value()
}

func (sa SlopeAngle) String() string {
	return fmt.Sprintf("∠(%s-%s)", sa.left.Name(), sa.right.Name())
}
