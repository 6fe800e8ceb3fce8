package geom

import (
	"fmt"

	"github.com/npillmayer/geoproof/number"
)

// SquaredDist is the squared distance atom |AB|². Endpoints are stored
// in canonical order (left ≤ right).
type SquaredDist struct {
	left  Point
	right Point
}

// NewSquaredDist creates a squared-distance atom with canonically
// ordered endpoints.
func NewSquaredDist(p1, p2 Point) SquaredDist {
	return SquaredDist{left: MinPoint(p1, p2), right: MaxPoint(p1, p2)}
}

// Left returns the smaller-indexed endpoint.
func (sd SquaredDist) Left() Point { return sd.left }

// Right returns the larger-indexed endpoint.
func (sd SquaredDist) Right() Point { return sd.right }

// Value evaluates the squared Euclidean distance numerically.
func (sd SquaredDist) Value() float64 {
	dx := sd.right.X() - sd.left.X()
	dy := sd.right.Y() - sd.left.Y()
	return dx*dx + dy*dy
}

// Points returns both endpoints.
func (sd SquaredDist) Points() []Point { return []Point{sd.left, sd.right} }

// CheckNondegen reports whether the endpoints are numerically distinct.
func (sd SquaredDist) CheckNondegen() bool { return !sd.left.IsClose(sd.right) }

// Compare orders squared distances lexicographically by endpoints.
func (sd SquaredDist) Compare(other SquaredDist) int {
	if c := sd.left.Compare(other.left); c != 0 {
		return c
	}
	return sd.right.Compare(other.right)
}

// EvalTerm evaluates c·|AB|² for a linear combination term.
func (sd SquaredDist) EvalTerm(c number.Rat) float64 {
	return c.Float() * sd.Value()
}

// Dist converts to the non-squared distance atom on the same endpoints.
func (sd SquaredDist) Dist() Dist { return Dist(sd) }

func (sd SquaredDist) String() string {
	return fmt.Sprintf("|%s-%s|²", sd.left.Name(), sd.right.Name())
}
