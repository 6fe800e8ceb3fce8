package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/geom"
)

// CongruentTriangles states that two triangles are congruent, with the
// stored orientation flag. It shares the similarity structure and adds
// equality of corresponding sides.
type CongruentTriangles struct {
	SimilarTriangles
}

// NewCongruentTriangles creates a congruence statement.
func NewCongruentTriangles(t1, t2 geom.Triangle, sameClockwise bool) CongruentTriangles {
	return CongruentTriangles{NewSimilarTriangles(t1, t2, sameClockwise)}
}

// Name returns "contri" or "contrir".
func (s CongruentTriangles) Name() string {
	if s.SameClockwise() {
		return "contri"
	}
	return "contrir"
}

// CongAB is |AB| = |A'B'|.
func (s CongruentTriangles) CongAB() DistEqDist {
	return NewDistEqDist(s.LeftTriangle().DistAB(), s.RightTriangle().DistAB())
}

// CongBC is |BC| = |B'C'|.
func (s CongruentTriangles) CongBC() DistEqDist {
	return NewDistEqDist(s.LeftTriangle().DistBC(), s.RightTriangle().DistBC())
}

// CongAC is |AC| = |A'C'|.
func (s CongruentTriangles) CongAC() DistEqDist {
	return NewDistEqDist(s.LeftTriangle().DistAC(), s.RightTriangle().DistAC())
}

// Normalize picks the least permutation of the similarity reading.
func (s CongruentTriangles) Normalize() Statement {
	sim := s.SimilarTriangles.Normalize().(SimilarTriangles)
	return CongruentTriangles{sim}
}

// CheckEquations verifies the three side congruences numerically.
func (s CongruentTriangles) CheckEquations() bool {
	return s.CongAB().CheckEquations() &&
		s.CongBC().CheckEquations() &&
		s.CongAC().CheckEquations()
}

// Key returns the fingerprint.
func (s CongruentTriangles) Key() string {
	return key(s.Name(),
		ptKey(s.LeftTriangle().A()), ptKey(s.LeftTriangle().B()), ptKey(s.LeftTriangle().C()),
		ptKey(s.RightTriangle().A()), ptKey(s.RightTriangle().B()), ptKey(s.RightTriangle().C()))
}

// JSON returns the wire form.
func (s CongruentTriangles) JSON() JSONObject { return jsonPoints(s.Name(), s.Points()) }

func (s CongruentTriangles) String() string {
	op := " ≅ "
	if !s.SameClockwise() {
		op = " ≅r "
	}
	return fmt.Sprintf("%s%s%s", s.LeftTriangle(), op, s.RightTriangle())
}
