package geom

import (
	"fmt"
	"sort"

	"github.com/npillmayer/geoproof/number"
)

// Triangle is an ordered triple of vertices.
type Triangle struct {
	a, b, c Point
}

// NewTriangle creates a triangle with the given vertices.
func NewTriangle(a, b, c Point) Triangle {
	return Triangle{a: a, b: b, c: c}
}

// A returns vertex a.
func (t Triangle) A() Point { return t.a }

// B returns vertex b.
func (t Triangle) B() Point { return t.b }

// C returns vertex c.
func (t Triangle) C() Point { return t.c }

// Points returns the vertices in order.
func (t Triangle) Points() []Point { return []Point{t.a, t.b, t.c} }

// Area computes the oriented area, half the cross product of two sides.
func (t Triangle) Area() float64 {
	return ((t.b.X()-t.a.X())*(t.c.Y()-t.a.Y()) -
		(t.b.Y()-t.a.Y())*(t.c.X()-t.a.X())) / 2
}

// AngleA is the angle ∠CAB.
func (t Triangle) AngleA() Angle { return NewAngle(t.c, t.a, t.b) }

// AngleB is the angle ∠ABC.
func (t Triangle) AngleB() Angle { return NewAngle(t.a, t.b, t.c) }

// AngleC is the angle ∠BCA.
func (t Triangle) AngleC() Angle { return NewAngle(t.b, t.c, t.a) }

// DistAB is the side |AB|.
func (t Triangle) DistAB() Dist { return NewDist(t.a, t.b) }

// DistAC is the side |AC|.
func (t Triangle) DistAC() Dist { return NewDist(t.a, t.c) }

// DistBC is the side |BC|.
func (t Triangle) DistBC() Dist { return NewDist(t.b, t.c) }

// CyclicRotations returns ABC, BCA, CAB.
func (t Triangle) CyclicRotations() [3]Triangle {
	return [3]Triangle{
		t,
		{t.b, t.c, t.a},
		{t.c, t.a, t.b},
	}
}

// Permutations returns all six vertex orders.
func (t Triangle) Permutations() [6]Triangle {
	return [6]Triangle{
		t,
		{t.b, t.c, t.a},
		{t.c, t.a, t.b},
		{t.a, t.c, t.b},
		{t.c, t.b, t.a},
		{t.b, t.a, t.c},
	}
}

// Sorted returns the triangle with vertices sorted by index.
func (t Triangle) Sorted() Triangle {
	pts := []Point{t.a, t.b, t.c}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
	return Triangle{pts[0], pts[1], pts[2]}
}

// Compare orders triangles lexicographically by vertices.
func (t Triangle) Compare(other Triangle) int {
	if c := t.a.Compare(other.a); c != 0 {
		return c
	}
	if c := t.b.Compare(other.b); c != 0 {
		return c
	}
	return t.c.Compare(other.c)
}

// CheckNondegen reports whether the vertices are numerically
// non-collinear.
func (t Triangle) CheckNondegen() bool {
	if t.a.IsClose(t.b) || t.b.IsClose(t.c) || t.a.IsClose(t.c) {
		return false
	}
	return !CollinearNumerically(t.a, t.b, t.c)
}

// CollinearNumerically tests the collinearity equation on coordinates.
func CollinearNumerically(a, b, c Point) bool {
	lhs := (b.X() - a.X()) * (c.Y() - a.Y())
	rhs := (b.Y() - a.Y()) * (c.X() - a.X())
	return number.ApproxEq(lhs, rhs)
}

func (t Triangle) String() string {
	return fmt.Sprintf("▵%s%s%s", t.a.Name(), t.b.Name(), t.c.Name())
}
