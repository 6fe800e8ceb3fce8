package geom

import (
	"fmt"

	"github.com/npillmayer/arithm"
)

// NamedPoint is a point's name together with its coordinates.
type NamedPoint struct {
	name string
	pos  arithm.Pair
}

// Name returns the point's name.
func (np NamedPoint) Name() string { return np.name }

// X returns the x-coordinate.
func (np NamedPoint) X() float64 { return np.pos.X() }

// Y returns the y-coordinate.
func (np NamedPoint) Y() float64 { return np.pos.Y() }

// Problem owns the ordered table of named points of one problem
// instance. The insertion order defines the canonical total order on
// points which all atom normalization relies on.
type Problem struct {
	points []NamedPoint
	name   string
}

// NewProblem creates an empty problem.
func NewProblem() *Problem {
	return &Problem{}
}

// SetName sets the problem's identifier.
func (prob *Problem) SetName(name string) { prob.name = name }

// Name returns the problem's identifier.
func (prob *Problem) Name() string { return prob.name }

// AddPoint appends a point with the given name and coordinates.
// Point names are unique within a problem.
func (prob *Problem) AddPoint(name string, x, y float64) (Point, error) {
	for _, p := range prob.points {
		if p.name == name {
			return Point{}, fmt.Errorf("point %q already defined", name)
		}
	}
	prob.points = append(prob.points, NamedPoint{name: name, pos: arithm.P(x, y)})
	tracer().Debugf("point %s = (%g, %g)", name, x, y)
	return Point{idx: len(prob.points) - 1, prob: prob}, nil
}

// FindPoint looks up a point by name.
func (prob *Problem) FindPoint(name string) (Point, error) {
	for i, p := range prob.points {
		if p.name == name {
			return Point{idx: i, prob: prob}, nil
		}
	}
	return Point{}, fmt.Errorf("point named %q not found in the problem", name)
}

// NumPoints returns the number of points.
func (prob *Problem) NumPoints() int { return len(prob.points) }

// At returns the point with a given index.
func (prob *Problem) At(i int) Point { return Point{idx: i, prob: prob} }

// AllPoints returns every point of the problem, in insertion order.
func (prob *Problem) AllPoints() []Point {
	pts := make([]Point, len(prob.points))
	for i := range prob.points {
		pts[i] = Point{idx: i, prob: prob}
	}
	return pts
}
