/*
Package statement implements the geometric predicate catalog.

A statement is a named relation on points (collinearity, congruence,
parallelism, …). The solver consumes statements through a narrow
contract: normalization to a canonical argument order, numerical
verification against the problem's coordinates, a fingerprint key for
interning, and optional translations into equations of the four AR
domains.
*/
package statement

import (
	"fmt"
	"strings"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'geoproof.statement'.
func tracer() tracing.Trace {
	return tracing.Select("geoproof.statement")
}

// JSONObject is the wire form of a statement: its head and the
// arguments rendered as strings (point names, then any constants).
type JSONObject struct {
	Name   string   `json:"name"`
	Points []string `json:"points"`
}

// Statement is a single geometric predicate. The same type covers
// problem hypotheses, goals, and theorem configurations.
type Statement interface {
	// Name returns the predicate head.
	Name() string
	// Points returns all points used by the statement.
	Points() []geom.Point
	// Normalize returns the canonical version of the statement. In
	// most cases it just reorders the arguments.
	Normalize() Statement
	// CheckNondegen numerically verifies the statement's
	// non-degeneracy assumptions.
	CheckNondegen() bool
	// CheckEquations numerically verifies the statement's equations.
	CheckEquations() bool
	// Key returns the fingerprint that uniquely identifies the
	// (normalized) statement; the solver interns statements on it.
	Key() string
	// IsRefl reports a trivially true statement like |AB| = |AB|.
	IsRefl() bool
	// NumericalOnly marks statements that have no algebraic content
	// and are established purely by their numerical check.
	NumericalOnly() bool
	// AsRatioSquaredDist reinterprets the statement as a ratio of
	// squared distances, when possible.
	AsRatioSquaredDist() (RatioSquaredDist, bool)
	// DistEquation translates to the additive length domain.
	DistEquation() (ar.DistEquation, bool)
	// SquaredDistEquation translates to the squared-length domain.
	SquaredDistEquation() (ar.SquaredDistEquation, bool)
	// SinOrDistEquation translates to the multiplicative ratio domain.
	SinOrDistEquation() (ar.SinOrDistEquation, bool)
	// SlopeAngleEquation translates to the angle domain.
	SlopeAngleEquation() (ar.SlopeAngleEquation, bool)
	// JSON returns the wire form.
	JSON() JSONObject
	String() string
}

// CheckNumerically verifies a statement numerically, combining the
// non-degeneracy and equation checks.
func CheckNumerically(s Statement) bool {
	return s.CheckNondegen() && s.CheckEquations()
}

// base provides the default contract: not reflexive, algebraic, no
// equation form in any domain, no ratio reading. Leaves embed it and
// override what applies.
type base struct{}

func (base) IsRefl() bool        { return false }
func (base) NumericalOnly() bool { return false }
func (base) AsRatioSquaredDist() (RatioSquaredDist, bool) {
	return RatioSquaredDist{}, false
}
func (base) DistEquation() (ar.DistEquation, bool) {
	return ar.DistEquation{}, false
}
func (base) SquaredDistEquation() (ar.SquaredDistEquation, bool) {
	return ar.SquaredDistEquation{}, false
}
func (base) SinOrDistEquation() (ar.SinOrDistEquation, bool) {
	return ar.SinOrDistEquation{}, false
}
func (base) SlopeAngleEquation() (ar.SlopeAngleEquation, bool) {
	return ar.SlopeAngleEquation{}, false
}

// key builds a fingerprint from the predicate head and argument parts.
func key(name string, parts ...string) string {
	var sb strings.Builder
	sb.WriteString(name)
	for _, p := range parts {
		sb.WriteByte(' ')
		sb.WriteString(p)
	}
	return sb.String()
}

func ptKey(p geom.Point) string { return fmt.Sprintf("%d", p.Index()) }

func pointNames(pts []geom.Point) []string {
	names := make([]string, len(pts))
	for i, p := range pts {
		names[i] = p.Name()
	}
	return names
}

// jsonPoints is the default wire form: head plus point names.
func jsonPoints(name string, pts []geom.Point) JSONObject {
	return JSONObject{Name: name, Points: pointNames(pts)}
}
