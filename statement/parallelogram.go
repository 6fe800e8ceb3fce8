package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// Parallelogram states that ABCD is a parallelogram.
type Parallelogram struct {
	base
	a, b, c, d geom.Point
}

// NewParallelogram creates a parallelogram statement.
func NewParallelogram(a, b, c, d geom.Point) Parallelogram {
	return Parallelogram{a: a, b: b, c: c, d: d}
}

// Name returns "parallelogram".
func (s Parallelogram) Name() string { return "parallelogram" }

// Points returns the four vertices.
func (s Parallelogram) Points() []geom.Point {
	return []geom.Point{s.a, s.b, s.c, s.d}
}

// Permutations returns the eight symmetric readings.
func (s Parallelogram) Permutations() [8]Parallelogram {
	return [8]Parallelogram{
		s,
		{a: s.b, b: s.c, c: s.d, d: s.a},
		{a: s.c, b: s.d, c: s.a, d: s.b},
		{a: s.d, b: s.a, c: s.b, d: s.c},
		{a: s.a, b: s.d, c: s.c, d: s.b},
		{a: s.d, b: s.c, c: s.b, d: s.a},
		{a: s.c, b: s.b, c: s.a, d: s.d},
		{a: s.b, b: s.a, c: s.d, d: s.c},
	}
}

// Normalize picks the least permutation.
func (s Parallelogram) Normalize() Statement {
	best := s
	for _, p := range s.Permutations() {
		if p.compare(best) < 0 {
			best = p
		}
	}
	return best
}

func (s Parallelogram) compare(other Parallelogram) int {
	for _, pair := range [4][2]geom.Point{
		{s.a, other.a}, {s.b, other.b}, {s.c, other.c}, {s.d, other.d},
	} {
		if c := pair[0].Compare(pair[1]); c != 0 {
			return c
		}
	}
	return 0
}

// ParaABCD is AB ∥ CD.
func (s Parallelogram) ParaABCD() Parallel {
	return NewParallel(geom.NewSlopeAngle(s.a, s.b), geom.NewSlopeAngle(s.c, s.d))
}

// ParaADBC is AD ∥ BC.
func (s Parallelogram) ParaADBC() Parallel {
	return NewParallel(geom.NewSlopeAngle(s.a, s.d), geom.NewSlopeAngle(s.b, s.c))
}

// CongABCD is |AB| = |CD|.
func (s Parallelogram) CongABCD() DistEqDist {
	return NewDistEqDist(geom.NewDist(s.a, s.b), geom.NewDist(s.c, s.d))
}

// CongADBC is |AD| = |BC|.
func (s Parallelogram) CongADBC() DistEqDist {
	return NewDistEqDist(geom.NewDist(s.a, s.d), geom.NewDist(s.b, s.c))
}

// LawEquation is the parallelogram law
// 2|AB|² + 2|BC|² - |AC|² - |BD|² = 0.
func (s Parallelogram) LawEquation() SquaredDistEqn {
	lhs := ar.SingleTerm(geom.NewSquaredDist(s.a, s.b), number.RatInt(2)).
		Add(ar.SingleTerm(geom.NewSquaredDist(s.b, s.c), number.RatInt(2))).
		Sub(ar.Single(geom.NewSquaredDist(s.a, s.c))).
		Sub(ar.Single(geom.NewSquaredDist(s.b, s.d)))
	return NewSquaredDistEqn(ar.NewEquation(lhs, number.Rat{}))
}

// CheckNondegen requires nondegenerate sides and a proper quadrangle.
func (s Parallelogram) CheckNondegen() bool {
	return geom.NewDist(s.a, s.b).CheckNondegen() &&
		geom.NewDist(s.b, s.c).CheckNondegen() &&
		geom.NewDist(s.c, s.d).CheckNondegen() &&
		geom.NewDist(s.d, s.a).CheckNondegen() &&
		!geom.CollinearNumerically(s.a, s.b, s.c)
}

// CheckEquations verifies both parallelisms numerically.
func (s Parallelogram) CheckEquations() bool {
	return s.ParaABCD().CheckEquations() && s.ParaADBC().CheckEquations()
}

// Key returns the fingerprint.
func (s Parallelogram) Key() string {
	return key("parallelogram", ptKey(s.a), ptKey(s.b), ptKey(s.c), ptKey(s.d))
}

// JSON returns the wire form.
func (s Parallelogram) JSON() JSONObject { return jsonPoints("parallelogram", s.Points()) }

func (s Parallelogram) String() string {
	return fmt.Sprintf("%s%s%s%s is a parallelogram", s.a, s.b, s.c, s.d)
}
