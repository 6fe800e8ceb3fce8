package geom

import (
	"fmt"
	"math"

	"github.com/npillmayer/geoproof/number"
)

// Dist is the undirected distance atom |AB|. Endpoints are stored in
// canonical order (left ≤ right).
type Dist struct {
	left  Point
	right Point
}

// NewDist creates a distance atom with canonically ordered endpoints.
func NewDist(p1, p2 Point) Dist {
	return Dist{left: MinPoint(p1, p2), right: MaxPoint(p1, p2)}
}

// Left returns the smaller-indexed endpoint.
func (d Dist) Left() Point { return d.left }

// Right returns the larger-indexed endpoint.
func (d Dist) Right() Point { return d.right }

// Length evaluates the Euclidean distance numerically.
func (d Dist) Length() float64 {
	dx := d.right.X() - d.left.X()
	dy := d.right.Y() - d.left.Y()
	return math.Sqrt(dx*dx + dy*dy)
}

// Points returns both endpoints.
func (d Dist) Points() []Point { return []Point{d.left, d.right} }

// CheckNondegen reports whether the endpoints are numerically distinct.
func (d Dist) CheckNondegen() bool { return !d.left.IsClose(d.right) }

// Compare orders distances lexicographically by endpoints.
func (d Dist) Compare(other Dist) int {
	if c := d.left.Compare(other.left); c != 0 {
		return c
	}
	return d.right.Compare(other.right)
}

// EvalTerm evaluates c·|AB| for a linear combination term.
func (d Dist) EvalTerm(c number.Rat) float64 {
	return c.Float() * d.Length()
}

// Squared converts to the squared-distance atom on the same endpoints.
func (d Dist) Squared() SquaredDist { return SquaredDist(d) }

func (d Dist) String() string {
	return fmt.Sprintf("|%s-%s|", d.left.Name(), d.right.Name())
}
