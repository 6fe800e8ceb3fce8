package statement

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// SquaredDistEq states |AB|² = r.
type SquaredDistEq struct {
	base
	sqd geom.SquaredDist
	rhs number.Rat
}

// NewSquaredDistEq creates a constant-squared-length statement.
func NewSquaredDistEq(d geom.SquaredDist, r number.Rat) SquaredDistEq {
	return SquaredDistEq{sqd: d, rhs: r}
}

// SquaredDist returns the squared-distance atom.
func (s SquaredDistEq) SquaredDist() geom.SquaredDist { return s.sqd }

// RHS returns the constant.
func (s SquaredDistEq) RHS() number.Rat { return s.rhs }

// Name returns "squared_dist_eq".
func (s SquaredDistEq) Name() string { return "squared_dist_eq" }

// Points returns the two endpoints.
func (s SquaredDistEq) Points() []geom.Point {
	return []geom.Point{s.sqd.Left(), s.sqd.Right()}
}

// Normalize converts to lconst when the constant is a perfect square.
func (s SquaredDistEq) Normalize() Statement {
	if r, ok := s.rhs.Sqrt(); ok {
		return NewDistEq(s.sqd.Dist(), r)
	}
	return s
}

// CheckNondegen requires a nondegenerate segment.
func (s SquaredDistEq) CheckNondegen() bool { return s.sqd.CheckNondegen() }

// CheckEquations verifies the squared length numerically.
func (s SquaredDistEq) CheckEquations() bool {
	return number.ApproxEq(s.sqd.Value(), s.rhs.Float())
}

// Key returns the fingerprint.
func (s SquaredDistEq) Key() string {
	return key("squared_dist_eq", ptKey(s.sqd.Left()), ptKey(s.sqd.Right()), s.rhs.String())
}

// SquaredDistEquation yields |AB|² = r.
func (s SquaredDistEq) SquaredDistEquation() (ar.SquaredDistEquation, bool) {
	return ar.NewEquation(ar.Single(s.sqd), s.rhs), true
}

// SinOrDistEquation yields |AB|² = r in the ratio table.
func (s SquaredDistEq) SinOrDistEquation() (ar.SinOrDistEquation, bool) {
	return ar.NewEquation(ar.Single(geom.NewSinOrDist(s.sqd)),
		number.NewRootRat(s.rhs)), true
}

// JSON returns the wire form with the constant appended.
func (s SquaredDistEq) JSON() JSONObject {
	obj := jsonPoints("l2const", s.Points())
	obj.Points = append(obj.Points, s.rhs.String())
	return obj
}

func (s SquaredDistEq) String() string {
	return fmt.Sprintf("%s = %s", s.sqd, s.rhs)
}
