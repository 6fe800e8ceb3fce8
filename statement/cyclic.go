package statement

import (
	"fmt"
	"sort"

	"github.com/npillmayer/geoproof/geom"
)

// CyclicQuadrangle states that four points lie on one circle.
type CyclicQuadrangle struct {
	base
	a, b, c, d geom.Point
}

// NewCyclicQuadrangle creates a concyclicity statement.
func NewCyclicQuadrangle(a, b, c, d geom.Point) CyclicQuadrangle {
	return CyclicQuadrangle{a: a, b: b, c: c, d: d}
}

// A returns the first point.
func (s CyclicQuadrangle) A() geom.Point { return s.a }

// B returns the second point.
func (s CyclicQuadrangle) B() geom.Point { return s.b }

// C returns the third point.
func (s CyclicQuadrangle) C() geom.Point { return s.c }

// D returns the fourth point.
func (s CyclicQuadrangle) D() geom.Point { return s.d }

// Name returns "cyclic".
func (s CyclicQuadrangle) Name() string { return "cyclic" }

// Points returns the four points.
func (s CyclicQuadrangle) Points() []geom.Point {
	return []geom.Point{s.a, s.b, s.c, s.d}
}

// Normalize sorts the points by index.
func (s CyclicQuadrangle) Normalize() Statement {
	pts := []geom.Point{s.a, s.b, s.c, s.d}
	sort.Slice(pts, func(i, j int) bool { return pts[i].Less(pts[j]) })
	return CyclicQuadrangle{a: pts[0], b: pts[1], c: pts[2], d: pts[3]}
}

// EqualAnglesCADCBD is the inscribed-angle equality ∠CAD = ∠CBD.
func (s CyclicQuadrangle) EqualAnglesCADCBD() EqualAngles {
	return NewEqualAngles(geom.NewAngle(s.c, s.a, s.d), geom.NewAngle(s.c, s.b, s.d))
}

// EqualAnglesBADBCD is the inscribed-angle equality ∠BAD = ∠BCD.
func (s CyclicQuadrangle) EqualAnglesBADBCD() EqualAngles {
	return NewEqualAngles(geom.NewAngle(s.b, s.a, s.d), geom.NewAngle(s.b, s.c, s.d))
}

// EqualAnglesABDACD is the inscribed-angle equality ∠ABD = ∠ACD.
func (s CyclicQuadrangle) EqualAnglesABDACD() EqualAngles {
	return NewEqualAngles(geom.NewAngle(s.a, s.b, s.d), geom.NewAngle(s.a, s.c, s.d))
}

// CheckNondegen requires the inscribed angles to be nondegenerate and
// the first three points non-collinear.
func (s CyclicQuadrangle) CheckNondegen() bool {
	return s.EqualAnglesCADCBD().CheckNondegen() &&
		s.EqualAnglesBADBCD().CheckNondegen() &&
		!geom.CollinearNumerically(s.a, s.b, s.c)
}

// CheckEquations verifies the inscribed-angle equality numerically.
func (s CyclicQuadrangle) CheckEquations() bool {
	return s.EqualAnglesCADCBD().CheckEquations()
}

// Key returns the fingerprint.
func (s CyclicQuadrangle) Key() string {
	return key("cyclic", ptKey(s.a), ptKey(s.b), ptKey(s.c), ptKey(s.d))
}

// JSON returns the wire form.
func (s CyclicQuadrangle) JSON() JSONObject { return jsonPoints("cyclic", s.Points()) }

func (s CyclicQuadrangle) String() string {
	return fmt.Sprintf("%s ∈ ω(%s%s%s)", s.a, s.b, s.c, s.d)
}
