package statement

import (
	"fmt"
	"strings"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// The equation statements wrap a raw linear equation of one AR domain
// as a predicate, so theorems may assume or conclude equations
// directly (sum-of-squares forms, arc relations, the law of sines).

func eqnPoints[V ar.Var[V]](lc ar.LinComb[V]) []geom.Point {
	var pts []geom.Point
	for _, t := range lc.Terms() {
		pts = append(pts, t.Var.Points()...)
	}
	return pts
}

func eqnKey[V ar.Var[V], R ar.RHS[R]](name string, eq ar.Equation[V, R]) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, t := range eq.LHS().Terms() {
		fmt.Fprintf(&sb, " %s*", t.Coeff)
		for _, p := range t.Var.Points() {
			fmt.Fprintf(&sb, "%d,", p.Index())
		}
	}
	fmt.Fprintf(&sb, " = %s", eq.RHS())
	return sb.String()
}

// DistEqn is a raw equation over lengths.
type DistEqn struct {
	base
	eqn ar.DistEquation
}

// NewDistEqn wraps a length equation.
func NewDistEqn(eq ar.DistEquation) DistEqn { return DistEqn{eqn: eq} }

// Equation returns the wrapped equation.
func (s DistEqn) Equation() ar.DistEquation { return s.eqn }

// Name returns "equation_dist".
func (s DistEqn) Name() string { return "equation_dist" }

// Points returns the points of all terms.
func (s DistEqn) Points() []geom.Point { return eqnPoints(s.eqn.LHS()) }

// Normalize scales the leading coefficient to one.
func (s DistEqn) Normalize() Statement {
	_, eq := s.eqn.Normalize()
	return DistEqn{eqn: eq}
}

// CheckNondegen always holds; lengths of coincident points are fine in
// an additive equation.
func (s DistEqn) CheckNondegen() bool { return true }

// CheckEquations verifies the equation numerically.
func (s DistEqn) CheckEquations() bool { return s.eqn.CheckNumerically() }

// Key returns the fingerprint.
func (s DistEqn) Key() string { return eqnKey("equation_dist", s.eqn) }

// DistEquation returns the wrapped equation.
func (s DistEqn) DistEquation() (ar.DistEquation, bool) { return s.eqn, true }

// JSON returns the wire form.
func (s DistEqn) JSON() JSONObject { return jsonPoints("equation_dist", s.Points()) }

func (s DistEqn) String() string { return s.eqn.String() }

// SquaredDistEqn is a raw equation over squared lengths.
type SquaredDistEqn struct {
	base
	eqn ar.SquaredDistEquation
}

// NewSquaredDistEqn wraps a squared-length equation.
func NewSquaredDistEqn(eq ar.SquaredDistEquation) SquaredDistEqn {
	return SquaredDistEqn{eqn: eq}
}

// Equation returns the wrapped equation.
func (s SquaredDistEqn) Equation() ar.SquaredDistEquation { return s.eqn }

// Name returns "equation_squared_dist".
func (s SquaredDistEqn) Name() string { return "equation_squared_dist" }

// Points returns the points of all terms.
func (s SquaredDistEqn) Points() []geom.Point { return eqnPoints(s.eqn.LHS()) }

// Normalize scales the leading coefficient to one.
func (s SquaredDistEqn) Normalize() Statement {
	_, eq := s.eqn.Normalize()
	return SquaredDistEqn{eqn: eq}
}

// CheckNondegen always holds.
func (s SquaredDistEqn) CheckNondegen() bool { return true }

// CheckEquations verifies the equation numerically.
func (s SquaredDistEqn) CheckEquations() bool { return s.eqn.CheckNumerically() }

// Key returns the fingerprint.
func (s SquaredDistEqn) Key() string { return eqnKey("equation_squared_dist", s.eqn) }

// SquaredDistEquation returns the wrapped equation.
func (s SquaredDistEqn) SquaredDistEquation() (ar.SquaredDistEquation, bool) {
	return s.eqn, true
}

// JSON returns the wire form.
func (s SquaredDistEqn) JSON() JSONObject {
	return jsonPoints("equation_squared_dist", s.Points())
}

func (s SquaredDistEqn) String() string { return s.eqn.String() }

// SinOrDistEqn is a raw equation of the multiplicative ratio table.
type SinOrDistEqn struct {
	base
	eqn ar.SinOrDistEquation
}

// NewSinOrDistEqn wraps a ratio equation.
func NewSinOrDistEqn(eq ar.SinOrDistEquation) SinOrDistEqn { return SinOrDistEqn{eqn: eq} }

// Equation returns the wrapped equation.
func (s SinOrDistEqn) Equation() ar.SinOrDistEquation { return s.eqn }

// Name returns "equation_sin_or_dist".
func (s SinOrDistEqn) Name() string { return "equation_sin_or_dist" }

// Points returns the points of all terms.
func (s SinOrDistEqn) Points() []geom.Point { return eqnPoints(s.eqn.LHS()) }

// Normalize scales the leading coefficient to one.
func (s SinOrDistEqn) Normalize() Statement {
	_, eq := s.eqn.Normalize()
	return SinOrDistEqn{eqn: eq}
}

// CheckNondegen requires every term's atom to be nondegenerate.
func (s SinOrDistEqn) CheckNondegen() bool {
	for _, t := range s.eqn.LHS().Terms() {
		if !t.Var.CheckNondegen() {
			return false
		}
	}
	return true
}

// CheckEquations verifies the equation numerically.
func (s SinOrDistEqn) CheckEquations() bool { return s.eqn.CheckNumerically() }

// Key returns the fingerprint.
func (s SinOrDistEqn) Key() string { return eqnKey("equation_sin_or_dist", s.eqn) }

// SinOrDistEquation returns the wrapped equation.
func (s SinOrDistEqn) SinOrDistEquation() (ar.SinOrDistEquation, bool) {
	return s.eqn, true
}

// JSON returns the wire form.
func (s SinOrDistEqn) JSON() JSONObject {
	return jsonPoints("equation_sin_or_dist", s.Points())
}

func (s SinOrDistEqn) String() string { return s.eqn.String() }

// AngleEqn is a raw equation over three-point angles. For reduction it
// is rewritten into the slope-angle domain.
type AngleEqn struct {
	base
	eqn ar.AngleEquation
}

// NewAngleEqn wraps an angle equation.
func NewAngleEqn(eq ar.AngleEquation) AngleEqn { return AngleEqn{eqn: eq} }

// Equation returns the wrapped equation.
func (s AngleEqn) Equation() ar.AngleEquation { return s.eqn }

// Name returns "equation_angle".
func (s AngleEqn) Name() string { return "equation_angle" }

// Points returns the points of all terms.
func (s AngleEqn) Points() []geom.Point { return eqnPoints(s.eqn.LHS()) }

// Normalize scales the leading coefficient to canonical sign.
func (s AngleEqn) Normalize() Statement {
	_, eq := s.eqn.Normalize()
	return AngleEqn{eqn: eq}
}

// CheckNondegen requires every angle nondegenerate.
func (s AngleEqn) CheckNondegen() bool {
	for _, t := range s.eqn.LHS().Terms() {
		if !t.Var.CheckNondegen() {
			return false
		}
	}
	return true
}

// CheckEquations verifies the equation numerically mod 1.
func (s AngleEqn) CheckEquations() bool { return s.eqn.CheckNumerically() }

// Key returns the fingerprint.
func (s AngleEqn) Key() string { return eqnKey("equation_angle", s.eqn) }

// SlopeAngleEquation rewrites each angle term into its two line terms.
func (s AngleEqn) SlopeAngleEquation() (ar.SlopeAngleEquation, bool) {
	return ar.AngleToSlopeAngle(s.eqn), true
}

// JSON returns the wire form.
func (s AngleEqn) JSON() JSONObject { return jsonPoints("equation_angle", s.Points()) }

func (s AngleEqn) String() string { return s.eqn.String() }

// SubEqConstAngle builds the angle equation a - b = rhs, a convenience
// for theorem factories.
func SubEqConstAngle(a, b geom.Angle, rhs number.AddCircle) ar.AngleEquation {
	return ar.SubEqConst(a, b, rhs)
}
