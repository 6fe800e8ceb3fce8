package geom

import (
	"math"

	"github.com/npillmayer/geoproof/number"
)

// Point is a lightweight reference into a problem's point table. Only
// the index and a back-pointer to the owning problem are stored;
// coordinates and names are looked up on demand.
type Point struct {
	idx  int
	prob *Problem
}

// Index returns the point's position in the problem's point table.
func (pt Point) Index() int { return pt.idx }

// X returns the point's x-coordinate.
func (pt Point) X() float64 { return pt.prob.points[pt.idx].X() }

// Y returns the point's y-coordinate.
func (pt Point) Y() float64 { return pt.prob.points[pt.idx].Y() }

// Name returns the point's name.
func (pt Point) Name() string { return pt.prob.points[pt.idx].name }

// IsClose reports whether both coordinates differ by at most Eps.
func (pt Point) IsClose(other Point) bool {
	return math.Abs(pt.X()-other.X()) <= number.Eps &&
		math.Abs(pt.Y()-other.Y()) <= number.Eps
}

// Compare orders points by their indexes.
func (pt Point) Compare(other Point) int {
	switch {
	case pt.idx < other.idx:
		return -1
	case pt.idx > other.idx:
		return 1
	}
	return 0
}

// Less reports index order.
func (pt Point) Less(other Point) bool { return pt.idx < other.idx }

// UpTo returns all points with a strictly smaller index.
func (pt Point) UpTo() []Point {
	pts := make([]Point, pt.idx)
	for i := 0; i < pt.idx; i++ {
		pts[i] = Point{idx: i, prob: pt.prob}
	}
	return pts
}

func (pt Point) String() string { return pt.Name() }

// MaxPoint returns the larger of two points.
func MaxPoint(a, b Point) Point {
	if a.Less(b) {
		return b
	}
	return a
}

// MinPoint returns the smaller of two points.
func MinPoint(a, b Point) Point {
	if b.Less(a) {
		return b
	}
	return a
}
