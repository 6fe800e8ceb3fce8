package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
)

// EqualAngles states that two three-point angles are equal mod π.
type EqualAngles struct {
	base
	left  geom.Angle
	right geom.Angle
}

// NewEqualAngles creates an equality of angles.
func NewEqualAngles(a1, a2 geom.Angle) EqualAngles {
	return EqualAngles{left: a1, right: a2}
}

// LeftAngle returns the left angle.
func (s EqualAngles) LeftAngle() geom.Angle { return s.left }

// RightAngle returns the right angle.
func (s EqualAngles) RightAngle() geom.Angle { return s.right }

// Name returns "equal_angles".
func (s EqualAngles) Name() string { return "equal_angles" }

// Points returns the six points.
func (s EqualAngles) Points() []geom.Point {
	return []geom.Point{
		s.left.Left(), s.left.Vertex(), s.left.Right(),
		s.right.Left(), s.right.Vertex(), s.right.Right(),
	}
}

// Permutations returns the four symmetric readings of the equality.
func (s EqualAngles) Permutations() [4]EqualAngles {
	return [4]EqualAngles{
		s,
		{left: s.right, right: s.left},
		{left: s.left.Neg(), right: s.right.Neg()},
		{left: s.right.Neg(), right: s.left.Neg()},
	}
}

// Normalize picks the least permutation.
func (s EqualAngles) Normalize() Statement {
	best := s
	for _, p := range s.Permutations() {
		if p.compare(best) < 0 {
			best = p
		}
	}
	return best
}

func (s EqualAngles) compare(other EqualAngles) int {
	if c := s.left.Compare(other.left); c != 0 {
		return c
	}
	return s.right.Compare(other.right)
}

// ToEqualLineAngles rewrites into the 8-point line-angle form.
func (s EqualAngles) ToEqualLineAngles() EqualLineAngles {
	return NewEqualLineAngles(
		s.left.LeftSide(), s.left.RightSide(),
		s.right.LeftSide(), s.right.RightSide())
}

// CheckNondegen delegates to the line-angle form.
func (s EqualAngles) CheckNondegen() bool { return s.ToEqualLineAngles().CheckNondegen() }

// CheckEquations delegates to the line-angle form.
func (s EqualAngles) CheckEquations() bool { return s.ToEqualLineAngles().CheckEquations() }

// Key returns the fingerprint.
func (s EqualAngles) Key() string {
	return key("equal_angles",
		ptKey(s.left.Left()), ptKey(s.left.Vertex()), ptKey(s.left.Right()),
		ptKey(s.right.Left()), ptKey(s.right.Vertex()), ptKey(s.right.Right()))
}

// IsRefl reports equality of an angle with itself.
func (s EqualAngles) IsRefl() bool { return s.left == s.right }

// SlopeAngleEquation delegates to the line-angle form.
func (s EqualAngles) SlopeAngleEquation() (ar.SlopeAngleEquation, bool) {
	return s.ToEqualLineAngles().SlopeAngleEquation()
}

// JSON uses the line-angle wire form.
func (s EqualAngles) JSON() JSONObject { return s.ToEqualLineAngles().JSON() }

func (s EqualAngles) String() string {
	return fmt.Sprintf("%s = %s", s.left, s.right)
}
