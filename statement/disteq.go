package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// DistEq states |AB| = r for a nonnegative rational r.
type DistEq struct {
	base
	dist geom.Dist
	rhs  number.Rat
}

// NewDistEq creates a constant-length statement.
func NewDistEq(d geom.Dist, r number.Rat) DistEq {
	return DistEq{dist: d, rhs: r}
}

// Dist returns the distance atom.
func (s DistEq) Dist() geom.Dist { return s.dist }

// RHS returns the constant.
func (s DistEq) RHS() number.Rat { return s.rhs }

// Name returns "lconst".
func (s DistEq) Name() string { return "lconst" }

// Points returns the two endpoints.
func (s DistEq) Points() []geom.Point {
	return []geom.Point{s.dist.Left(), s.dist.Right()}
}

// Normalize keeps the statement as-is; the atom is already canonical.
func (s DistEq) Normalize() Statement { return s }

// CheckNondegen requires a nondegenerate segment.
func (s DistEq) CheckNondegen() bool { return s.dist.CheckNondegen() }

// CheckEquations verifies the length numerically.
func (s DistEq) CheckEquations() bool {
	return number.ApproxEq(s.dist.Length(), s.rhs.Float())
}

// Key returns the fingerprint.
func (s DistEq) Key() string {
	return key("lconst", ptKey(s.dist.Left()), ptKey(s.dist.Right()), s.rhs.String())
}

// AsSquaredDistEq squares the statement.
func (s DistEq) AsSquaredDistEq() SquaredDistEq {
	return NewSquaredDistEq(s.dist.Squared(), s.rhs.Mul(s.rhs))
}

// DistEquation yields |AB| = r.
func (s DistEq) DistEquation() (ar.DistEquation, bool) {
	return ar.NewEquation(ar.Single(s.dist), s.rhs), true
}

// SquaredDistEquation delegates to the squared reading.
func (s DistEq) SquaredDistEquation() (ar.SquaredDistEquation, bool) {
	return s.AsSquaredDistEq().SquaredDistEquation()
}

// SinOrDistEquation delegates to the squared reading.
func (s DistEq) SinOrDistEquation() (ar.SinOrDistEquation, bool) {
	return s.AsSquaredDistEq().SinOrDistEquation()
}

// JSON returns the wire form with the constant appended.
func (s DistEq) JSON() JSONObject {
	obj := jsonPoints("lconst", s.Points())
	obj.Points = append(obj.Points, s.rhs.String())
	return obj
}

func (s DistEq) String() string {
	return fmt.Sprintf("%s = %s", s.dist, s.rhs)
}
