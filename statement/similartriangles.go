package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/geom"
)

// SimilarTriangles states that two triangles are similar, with the
// stored orientation flag (same or reflected clockwise order).
type SimilarTriangles struct {
	base
	left          geom.Triangle
	right         geom.Triangle
	sameClockwise bool
}

// NewSimilarTriangles creates a similarity statement.
func NewSimilarTriangles(t1, t2 geom.Triangle, sameClockwise bool) SimilarTriangles {
	return SimilarTriangles{left: t1, right: t2, sameClockwise: sameClockwise}
}

// LeftTriangle returns the left triangle.
func (s SimilarTriangles) LeftTriangle() geom.Triangle { return s.left }

// RightTriangle returns the right triangle.
func (s SimilarTriangles) RightTriangle() geom.Triangle { return s.right }

// SameClockwise reports whether the two triangles share orientation.
func (s SimilarTriangles) SameClockwise() bool { return s.sameClockwise }

// Name returns "simtri" or "simtrir".
func (s SimilarTriangles) Name() string {
	if s.sameClockwise {
		return "simtri"
	}
	return "simtrir"
}

// Points returns the six vertices.
func (s SimilarTriangles) Points() []geom.Point {
	return append(s.left.Points(), s.right.Points()...)
}

// ToSameClock is the orientation hypothesis matching the flag.
func (s SimilarTriangles) ToSameClock() SameClock {
	if s.sameClockwise {
		return NewSameClock(s.left, s.right)
	}
	return NewSameClock(s.left,
		geom.NewTriangle(s.right.A(), s.right.C(), s.right.B()))
}

// Permutations returns the twelve symmetric readings.
func (s SimilarTriangles) Permutations() []SimilarTriangles {
	left := s.left.Permutations()
	right := s.right.Permutations()
	res := make([]SimilarTriangles, 0, 12)
	for i := 0; i < 6; i++ {
		res = append(res, SimilarTriangles{left: left[i], right: right[i], sameClockwise: s.sameClockwise})
	}
	for i := 0; i < 6; i++ {
		res = append(res, SimilarTriangles{left: right[i], right: left[i], sameClockwise: s.sameClockwise})
	}
	return res
}

// CyclicRotations returns the three rotated readings.
func (s SimilarTriangles) CyclicRotations() [3]SimilarTriangles {
	left := s.left.CyclicRotations()
	right := s.right.CyclicRotations()
	return [3]SimilarTriangles{
		{left: left[0], right: right[0], sameClockwise: s.sameClockwise},
		{left: left[1], right: right[1], sameClockwise: s.sameClockwise},
		{left: left[2], right: right[2], sameClockwise: s.sameClockwise},
	}
}

// Normalize picks the least permutation.
func (s SimilarTriangles) Normalize() Statement {
	best := s
	for _, p := range s.Permutations() {
		if p.compare(best) < 0 {
			best = p
		}
	}
	return best
}

func (s SimilarTriangles) compare(other SimilarTriangles) int {
	if c := s.left.Compare(other.left); c != 0 {
		return c
	}
	return s.right.Compare(other.right)
}

// EqRatioABBC is |AB|:|BC| = |A'B'|:|B'C'|.
func (s SimilarTriangles) EqRatioABBC() EqualRatios {
	return NewEqualRatios(
		s.left.DistAB(), s.left.DistBC(),
		s.right.DistAB(), s.right.DistBC())
}

// EqRatioABAC is |AB|:|AC| = |A'B'|:|A'C'|.
func (s SimilarTriangles) EqRatioABAC() EqualRatios {
	return NewEqualRatios(
		s.left.DistAB(), s.left.DistAC(),
		s.right.DistAB(), s.right.DistAC())
}

// EqRatioBCAC is |BC|:|AC| = |B'C'|:|A'C'|.
func (s SimilarTriangles) EqRatioBCAC() EqualRatios {
	return NewEqualRatios(
		s.left.DistBC(), s.left.DistAC(),
		s.right.DistBC(), s.right.DistAC())
}

func (s SimilarTriangles) orient(a geom.Angle) geom.Angle {
	if s.sameClockwise {
		return a
	}
	return a.Neg()
}

// EqualAnglesABC is ∠ABC = ∠A'B'C' (orientation-aware).
func (s SimilarTriangles) EqualAnglesABC() EqualAngles {
	return NewEqualAngles(s.left.AngleB(), s.orient(s.right.AngleB()))
}

// EqualAnglesBCA is ∠BCA = ∠B'C'A' (orientation-aware).
func (s SimilarTriangles) EqualAnglesBCA() EqualAngles {
	return NewEqualAngles(s.left.AngleC(), s.orient(s.right.AngleC()))
}

// EqualAnglesACB is ∠ACB = ∠A'C'B' (orientation-aware).
func (s SimilarTriangles) EqualAnglesACB() EqualAngles {
	return NewEqualAngles(s.left.AngleC().Neg(), s.orient(s.right.AngleC()).Neg())
}

// EqualAnglesCAB is ∠CAB = ∠C'A'B' (orientation-aware).
func (s SimilarTriangles) EqualAnglesCAB() EqualAngles {
	return NewEqualAngles(s.left.AngleA(), s.orient(s.right.AngleA()))
}

// CheckNondegen requires both triangles nondegenerate and orientations
// matching the stored flag.
func (s SimilarTriangles) CheckNondegen() bool {
	return s.left.CheckNondegen() && s.right.CheckNondegen() &&
		s.sameClockwise == ((s.left.Area() > 0) == (s.right.Area() > 0))
}

// CheckEquations verifies the two side proportions numerically.
func (s SimilarTriangles) CheckEquations() bool {
	return s.EqRatioABAC().CheckEquations() && s.EqRatioBCAC().CheckEquations()
}

// Key returns the fingerprint.
func (s SimilarTriangles) Key() string {
	return key(s.Name(),
		ptKey(s.left.A()), ptKey(s.left.B()), ptKey(s.left.C()),
		ptKey(s.right.A()), ptKey(s.right.B()), ptKey(s.right.C()))
}

// JSON returns the wire form.
func (s SimilarTriangles) JSON() JSONObject { return jsonPoints(s.Name(), s.Points()) }

func (s SimilarTriangles) String() string {
	op := " ∼ "
	if !s.sameClockwise {
		op = " ∼r "
	}
	return fmt.Sprintf("%s%s%s", s.left, op, s.right)
}