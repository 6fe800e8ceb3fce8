package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// Parallel states that two lines have the same direction.
type Parallel struct {
	base
	left  geom.SlopeAngle
	right geom.SlopeAngle
}

// NewParallel creates a parallelism statement.
func NewParallel(s1, s2 geom.SlopeAngle) Parallel {
	return Parallel{left: s1, right: s2}
}

// Left returns the left line.
func (s Parallel) Left() geom.SlopeAngle { return s.left }

// Right returns the right line.
func (s Parallel) Right() geom.SlopeAngle { return s.right }

// Name returns "para".
func (s Parallel) Name() string { return "para" }

// Points returns the four endpoints.
func (s Parallel) Points() []geom.Point {
	return []geom.Point{s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right()}
}

// Normalize orders the two lines.
func (s Parallel) Normalize() Statement {
	if s.left.Compare(s.right) > 0 {
		return Parallel{left: s.right, right: s.left}
	}
	return s
}

// CheckNondegen requires both lines to be nondegenerate.
func (s Parallel) CheckNondegen() bool {
	return s.left.CheckNondegen() && s.right.CheckNondegen()
}

// CheckEquations compares the two directions numerically mod π.
func (s Parallel) CheckEquations() bool {
	return number.ApproxEqMod1(s.left.Value(), s.right.Value())
}

// Key returns the fingerprint.
func (s Parallel) Key() string {
	return key("para",
		ptKey(s.left.Left()), ptKey(s.left.Right()),
		ptKey(s.right.Left()), ptKey(s.right.Right()))
}

// IsRefl reports a line parallel to itself.
func (s Parallel) IsRefl() bool { return s.left == s.right }

// SlopeAngleEquation yields left - right = 0.
func (s Parallel) SlopeAngleEquation() (ar.SlopeAngleEquation, bool) {
	return ar.SubEqConst(s.left, s.right, number.AddCircle{}), true
}

// JSON returns the wire form.
func (s Parallel) JSON() JSONObject { return jsonPoints("para", s.Points()) }

func (s Parallel) String() string {
	return fmt.Sprintf("%s%s ∥ %s%s",
		s.left.Left(), s.left.Right(), s.right.Left(), s.right.Right())
}
