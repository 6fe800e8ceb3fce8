package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/geom"
)

// Thales is the compound configuration of two collinear triples cut by
// parallel transversals. It never appears in theorems directly; its
// parts do.
type Thales struct {
	base
	left  Collinear
	right Collinear
}

// NewThales creates a Thales configuration.
func NewThales(left, right Collinear) Thales {
	return Thales{left: left, right: right}
}

// Name returns "thales".
func (s Thales) Name() string { return "thales" }

// Points returns the six points.
func (s Thales) Points() []geom.Point {
	return append(s.left.Points(), s.right.Points()...)
}

// CollLeft returns the left triple.
func (s Thales) CollLeft() Collinear { return s.left }

// CollRight returns the right triple.
func (s Thales) CollRight() Collinear { return s.right }

// ParaAB is AA' ∥ BB'.
func (s Thales) ParaAB() Parallel {
	return NewParallel(
		geom.NewSlopeAngle(s.left.A(), s.right.A()),
		geom.NewSlopeAngle(s.left.B(), s.right.B()))
}

// ParaAC is AA' ∥ CC'.
func (s Thales) ParaAC() Parallel {
	return NewParallel(
		geom.NewSlopeAngle(s.left.A(), s.right.A()),
		geom.NewSlopeAngle(s.left.C(), s.right.C()))
}

// ParaBC is BB' ∥ CC'.
func (s Thales) ParaBC() Parallel {
	return NewParallel(
		geom.NewSlopeAngle(s.left.B(), s.right.B()),
		geom.NewSlopeAngle(s.left.C(), s.right.C()))
}

// Rotate advances both triples cyclically.
func (s Thales) Rotate() Thales {
	return Thales{
		left:  NewCollinear(s.left.B(), s.left.C(), s.left.A()),
		right: NewCollinear(s.right.B(), s.right.C(), s.right.A()),
	}
}

// Normalize keeps the statement as-is; the configuration is consumed
// immediately by the matcher, never interned.
func (s Thales) Normalize() Statement { return s }

// CheckNondegen requires matching betweenness on both triples, the
// parallels nondegenerate, and the two lines distinct.
func (s Thales) CheckNondegen() bool {
	lp := s.left.CyclicPermutations()
	rp := s.right.CyclicPermutations()
	for i := range lp {
		if lp[i].IsBetween() != rp[i].IsBetween() {
			return false
		}
	}
	return s.ParaAB().CheckNondegen() && s.ParaAC().CheckNondegen() &&
		!geom.CollinearNumerically(s.left.A(), s.left.B(), s.right.A())
}

// CheckEquations verifies both collinearities and both parallels.
func (s Thales) CheckEquations() bool {
	return s.left.CheckEquations() && s.right.CheckEquations() &&
		s.ParaAB().CheckEquations() && s.ParaBC().CheckEquations()
}

// Key returns the fingerprint.
func (s Thales) Key() string {
	return key("thales",
		ptKey(s.left.A()), ptKey(s.left.B()), ptKey(s.left.C()),
		ptKey(s.right.A()), ptKey(s.right.B()), ptKey(s.right.C()))
}

// JSON returns the wire form.
func (s Thales) JSON() JSONObject { return jsonPoints("thales", s.Points()) }

func (s Thales) String() string {
	return fmt.Sprintf("thales(%s, %s)", s.left, s.right)
}
