package solver

import (
	"sort"

	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
	"github.com/npillmayer/geoproof/statement"
)

// Matcher numerically enumerates geometric configurations of a problem
// and emits the theorem instances that hold in the picture. It runs
// once, before saturation.
type Matcher struct {
	problem  *geom.Problem
	config   *Config
	theorems []*Theorem
}

// MatchTheorems runs all matching passes and returns the theorems.
func MatchTheorems(prob *geom.Problem, config *Config) []*Theorem {
	m := &Matcher{problem: prob, config: config}
	m.matchSimilarTriangles()
	m.matchBetween()
	important := m.matchEqualAngles()
	m.matchLawOfSines(important)
	m.matchCircles()
	m.matchParallelograms()
	if m.config.ARSquared && m.config.EqnStatements {
		m.matchPerpendiculars()
	} else {
		m.matchOrthocenters()
	}
	return m.theorems
}

// insertTheorem records a theorem after verifying it numerically.
func (m *Matcher) insertTheorem(thm *Theorem) {
	if !thm.CheckNumerically() {
		return
	}
	m.theorems = append(m.theorems, thm.Normalize())
}

// forEachBucket walks a key-sorted slice and calls the callback on
// every maximal run of items whose keys stay within Eps of their
// predecessor. A bucket that drifts past ten times the tolerance in
// small steps gets a warning.
func forEachBucket[T any](items []T, keyOf func(T) float64, callback func([]T)) {
	if len(items) == 0 {
		return
	}
	start := 0
	startKey := keyOf(items[0])
	lastKey := startKey
	for i := 1; i < len(items); i++ {
		k := keyOf(items[i])
		if k < lastKey+number.Eps {
			if k >= startKey+number.BucketDrift*number.Eps {
				tracer().Infof("bucket tolerance 10x overflow while grouping matches")
			}
		} else {
			callback(items[start:i])
			start = i
			startKey = k
		}
		lastKey = k
	}
	callback(items[start:])
}

type keyed[T any] struct {
	key  float64
	item T
}

func sortKeyed[T any](items []keyed[T]) {
	sort.SliceStable(items, func(i, j int) bool { return items[i].key < items[j].key })
}

// forEachPair calls the callback on every unordered pair within each
// bucket of a key-sorted slice.
func forEachPair[T any](items []keyed[T], callback func(a, b T)) {
	forEachBucket(items, func(k keyed[T]) float64 { return k.key },
		func(bucket []keyed[T]) {
			for i := 0; i < len(bucket); i++ {
				for j := i + 1; j < len(bucket); j++ {
					callback(bucket[i].item, bucket[j].item)
				}
			}
		})
}

// --- Similar triangles -----------------------------------------------------

type triangleShape struct {
	abOverAC float64
	abOverBC float64
	tri      geom.Triangle
}

// allTriangles enumerates triples with |AB| ≤ (1+τ)|BC| ≤ (1+τ)²|AC|,
// the canonical ordering that deduplicates triangles while keeping
// near-isosceles duplicates.
func (m *Matcher) allTriangles() []triangleShape {
	var res []triangleShape
	for _, a := range m.problem.AllPoints() {
		for _, b := range m.problem.AllPoints() {
			if a.IsClose(b) {
				continue
			}
			for _, c := range m.problem.AllPoints() {
				if geom.CollinearNumerically(a, b, c) {
					continue
				}
				distAB := geom.NewDist(a, b).Length()
				distAC := geom.NewDist(a, c).Length()
				distBC := geom.NewDist(b, c).Length()
				if distAB > (1+number.RelTol)*distBC {
					continue
				}
				if distBC > (1+number.RelTol)*distAC {
					continue
				}
				res = append(res, triangleShape{
					abOverAC: distAB / distAC,
					abOverBC: distAB / distBC,
					tri:      geom.NewTriangle(a, b, c),
				})
			}
		}
	}
	return res
}

func (m *Matcher) matchSimilarTriangles() {
	triangles := m.allTriangles()
	sort.SliceStable(triangles, func(i, j int) bool {
		return triangles[i].abOverAC < triangles[j].abOverAC
	})
	forEachBucket(triangles,
		func(t triangleShape) float64 { return t.abOverAC },
		func(outer []triangleShape) {
			inner := make([]triangleShape, len(outer))
			copy(inner, outer)
			sort.SliceStable(inner, func(i, j int) bool {
				return inner[i].abOverBC < inner[j].abOverBC
			})
			forEachBucket(inner,
				func(t triangleShape) float64 { return t.abOverBC },
				m.onTriangleBucket)
		})
}

func (m *Matcher) onTriangleBucket(bucket []triangleShape) {
	for left := 0; left < len(bucket); left++ {
		areaLeft := bucket[left].tri.Area()
		for right := left + 1; right < len(bucket); right++ {
			sameClockwise := (areaLeft > 0) == (bucket[right].tri.Area() > 0)
			m.onSimilarTriangles(statement.NewSimilarTriangles(
				bucket[left].tri, bucket[right].tri, sameClockwise))
		}
	}
}

func (m *Matcher) onSimilarTriangles(simtri statement.SimilarTriangles) {
	for _, rotated := range simtri.CyclicRotations() {
		m.insertTheorem(similarTrianglesOfSAS(rotated))
	}
	congtri := statement.NewCongruentTriangles(
		simtri.LeftTriangle(), simtri.RightTriangle(), simtri.SameClockwise())
	if statement.CheckNumerically(congtri) {
		m.insertTheorem(congruentTrianglesOfSimilarTriangles(congtri))
		m.insertTheorem(congruentTrianglesProperties(congtri))
	}
	m.insertTheorem(similarTrianglesProperties(simtri))
	m.insertTheorem(similarTrianglesOfAA(simtri))
	m.insertTheorem(similarTrianglesOfSSS(simtri))
}

// --- Betweenness, midpoints, Thales ----------------------------------------

// sortedBetween enumerates triples with B between A and C, sorted by
// |AB| : |AC|. Near-midpoints are reported in both orders.
func (m *Matcher) sortedBetween() []keyed[statement.Collinear] {
	var all []keyed[statement.Collinear]
	for _, right := range m.problem.AllPoints() {
		for _, middle := range m.problem.AllPoints() {
			for _, left := range right.UpTo() {
				pred := statement.NewCollinear(left, middle, right)
				if !statement.CheckNumerically(pred) || !pred.IsBetween() {
					continue
				}
				m.onBetween(pred)
				distLeft := geom.NewDist(left, middle).Length()
				distRight := geom.NewDist(middle, right).Length()
				if distLeft <= (1+number.RelTol)*distRight {
					all = append(all, keyed[statement.Collinear]{
						key:  distLeft / (distLeft + distRight),
						item: pred,
					})
					if distRight <= (1+number.RelTol)*distLeft {
						m.onMidpoint(statement.NewMidpoint(left, middle, right))
					}
				}
				if distRight <= (1+number.RelTol)*distLeft {
					all = append(all, keyed[statement.Collinear]{
						key:  distRight / (distRight + distLeft),
						item: statement.NewCollinear(right, middle, left),
					})
				}
			}
		}
	}
	sortKeyed(all)
	return all
}

func (m *Matcher) onBetween(pred statement.Collinear) {
	if m.config.ARDist && m.config.EqnStatements {
		m.insertTheorem(collOfAddLength(pred))
		m.insertTheorem(addLengthOfBetween(pred))
	}
	for _, perm := range pred.CyclicPermutations() {
		m.insertTheorem(collOfPara(perm))
		m.insertTheorem(paraOfColl(perm))
	}
}

func (m *Matcher) onMidpoint(pred statement.Midpoint) {
	if m.config.ARSquared && m.config.EqnStatements {
		for _, other := range m.problem.AllPoints() {
			if other == pred.Left() || other == pred.Middle() || other == pred.Right() {
				continue
			}
			m.insertTheorem(sumSquaresOfMidpoint(pred, other))
		}
	}
	if !m.config.ARDist {
		m.insertTheorem(midpointRatioDist(pred))
	}
	if !m.config.EqnStatements {
		for _, other := range m.problem.AllPoints() {
			if other == pred.Left() || other == pred.Middle() || other == pred.Right() {
				continue
			}
			perp := statement.NewPerpendicular(
				geom.NewSlopeAngle(pred.Left(), other),
				geom.NewSlopeAngle(other, pred.Right()))
			if statement.CheckNumerically(perp) {
				m.insertTheorem(hypotenuseIsDiameter(pred, other))
			}
		}
	}
	m.insertTheorem(midpointOfCollCong(pred))
	m.insertTheorem(collOfMidpoint(pred))
	m.insertTheorem(congOfMidpoint(pred))
}

func (m *Matcher) matchBetween() {
	all := m.sortedBetween()
	forEachPair(all, func(left, right statement.Collinear) {
		m.onBetweenEqualRatio(left, right)
	})
}

func (m *Matcher) onBetweenEqualRatio(left, right statement.Collinear) {
	m.insertTheorem(rotateEqualRatioOfSameSide(left, right))
	m.insertTheorem(rotateEqualRatioOfSameSide(
		statement.NewCollinear(left.B(), left.C(), left.A()),
		statement.NewCollinear(right.B(), right.C(), right.A())))
	m.insertTheorem(rotateEqualRatioOfSameSide(
		statement.NewCollinear(left.C(), left.A(), left.B()),
		statement.NewCollinear(right.C(), right.A(), right.B())))
	if left.A() == right.A() || left.B() == right.B() || left.C() == right.C() {
		return
	}
	thales := statement.NewThales(left, right)
	if !statement.CheckNumerically(thales) {
		return
	}
	m.insertTheorem(thalesParaOfEqratio(thales))
	m.insertTheorem(thalesParaOfEqratio(thales.Rotate()))
	m.insertTheorem(thalesParaOfEqratio(thales.Rotate().Rotate()))
	m.insertTheorem(thalesEqratioOfPara(thales))
}

// --- Equal angles, cyclic quadrilaterals, bisectors ------------------------

func (m *Matcher) allAngles() []keyed[geom.Angle] {
	var all []keyed[geom.Angle]
	for _, left := range m.problem.AllPoints() {
		for _, vertex := range m.problem.AllPoints() {
			if vertex == left {
				continue
			}
			for _, right := range m.problem.AllPoints() {
				if right == vertex {
					continue
				}
				if geom.CollinearNumerically(left, vertex, right) {
					continue
				}
				ang := geom.NewAngle(left, vertex, right)
				all = append(all, keyed[geom.Angle]{key: ang.Value(), item: ang})
			}
		}
	}
	sortKeyed(all)
	return all
}

// equalRange yields the items whose key is within Eps of a target, on
// a key-sorted slice.
func equalRange[T any](all []keyed[T], target float64) []keyed[T] {
	lo := sort.Search(len(all), func(i int) bool {
		return all[i].key >= target-number.Eps
	})
	hi := sort.Search(len(all), func(i int) bool {
		return all[i].key >= target+number.Eps
	})
	return all[lo:hi]
}

func (m *Matcher) matchEqualAngles() map[geom.SinOrDist]struct{} {
	all := m.allAngles()
	important := make(map[geom.SinOrDist]struct{})

	forEachBucket(all,
		func(k keyed[geom.Angle]) float64 { return k.key },
		func(bucket []keyed[geom.Angle]) {
			for left := 0; left < len(bucket); left++ {
				important[geom.NewSinOfAngle(bucket[left].item)] = struct{}{}
				for right := left + 1; right < len(bucket); right++ {
					m.onEqualAngles(bucket[left].item, bucket[right].item)
				}
			}
		})

	if m.config.ARSquared && m.config.EqnStatements {
		for _, item := range equalRange(all, 0.5) {
			m.insertTheorem(pythagorasOfPerp(item.item))
			m.insertTheorem(pythagorasOfSumSquares(item.item))
		}
	}

	if m.config.EqnStatements && m.config.ARSin {
		for i, entry := range number.KnownSinSquares() {
			for _, item := range equalRange(all, entry.Angle.Float()) {
				m.insertTheorem(sinEqOfAngleEq(item.item, i))
				m.insertTheorem(angleEqOfSinEq(item.item, i))
			}
		}
	}
	return important
}

func (m *Matcher) onEqualAngles(left, right geom.Angle) {
	// An equality ∠ABD = ∠ACD with B, C < A < D is the canonical
	// reading of a cyclic quadrilateral ABCD; matching only that
	// reading visits each quadrilateral once.
	if left.Left() == right.Left() && left.Right() == right.Right() &&
		left.Left().Less(left.Right()) &&
		left.Vertex().Less(left.Left()) && right.Vertex().Less(right.Left()) {
		m.onCyclic(statement.NewCyclicQuadrangle(
			left.Vertex(), right.Vertex(), left.Left(), left.Right()))
	}

	// ∠ABC = ∠CBD at a shared vertex is a bisector; requiring A < D
	// deduplicates the two readings.
	if left.Vertex() == right.Vertex() {
		if left.Right() == right.Left() && left.Left().Less(right.Right()) {
			m.onPointOnBisector(left.Right(),
				geom.NewAngle(left.Left(), left.Vertex(), right.Right()))
		} else if left.Left() == right.Right() && right.Left().Less(left.Right()) {
			m.onPointOnBisector(left.Left(),
				geom.NewAngle(right.Left(), left.Vertex(), left.Right()))
		}
	}

	// α = β ↔ sin²α = sin²β, with the sign chosen numerically. Right
	// angles are excluded: sin²∠ABC = sin²∠CBA holds by reflexivity
	// and would hand out AB ⟂ BC for free.
	if m.config.ARSin && m.config.EqnStatements {
		if geom.NewSinOfAngle(left) != geom.NewSinOfAngle(right) {
			m.insertTheorem(sinEqSinOfEqualAngles(statement.NewEqualAngles(left, right)))
		}
		perp := statement.NewPerpendicular(
			geom.NewSlopeAngle(left.Vertex(), left.Left()),
			geom.NewSlopeAngle(left.Vertex(), left.Right()))
		if !perp.CheckEquations() {
			m.insertTheorem(equalAnglesOfSinEqSin(statement.NewEqualAngles(left, right)))
		}
	}
}

func (m *Matcher) onCyclic(pred statement.CyclicQuadrangle) {
	m.insertTheorem(cyclicOfEqualAngles(pred))
	m.insertTheorem(cyclicOfEqualAngles(statement.NewCyclicQuadrangle(
		pred.A(), pred.C(), pred.B(), pred.D())))
	m.insertTheorem(cyclicOfEqualAngles(statement.NewCyclicQuadrangle(
		pred.B(), pred.C(), pred.A(), pred.D())))
	m.insertTheorem(cyclicProperties(pred))
	if statement.NewParallel(geom.NewSlopeAngle(pred.A(), pred.B()),
		geom.NewSlopeAngle(pred.C(), pred.D())).CheckEquations() {
		m.onIsoscelesTrapezoid(pred.C(), pred.A(), pred.B(), pred.D())
	}
	if statement.NewParallel(geom.NewSlopeAngle(pred.A(), pred.C()),
		geom.NewSlopeAngle(pred.B(), pred.D())).CheckEquations() {
		m.onIsoscelesTrapezoid(pred.B(), pred.A(), pred.C(), pred.D())
	}
	if statement.NewParallel(geom.NewSlopeAngle(pred.A(), pred.D()),
		geom.NewSlopeAngle(pred.B(), pred.C())).CheckEquations() {
		m.onIsoscelesTrapezoid(pred.A(), pred.B(), pred.C(), pred.D())
	}
}

func (m *Matcher) onIsoscelesTrapezoid(a, b, c, d geom.Point) {
	m.insertTheorem(equalAnglesOfCongCyclic(a, b, c, d))
	m.insertTheorem(equalAnglesOfCongCyclic(a, c, b, d))
	m.insertTheorem(equalAnglesOfIsoTrapezoid(a, b, c, d))
	m.insertTheorem(equalAnglesOfIsoTrapezoid(a, c, b, d))
}

func (m *Matcher) onPointOnBisector(point geom.Point, angle geom.Angle) {
	m.insertTheorem(angleBisectorMeetsBisector(angle, point))
	if !m.config.ARSin || !m.config.EqnStatements {
		m.insertTheorem(triangleBisectorOfEqualAngles(point, angle))
		m.insertTheorem(triangleBisectorOfEqratio(point, angle))
	}
	m.insertTheorem(incenter(point, angle))
}

// --- Circles ---------------------------------------------------------------

func (m *Matcher) matchCircles() {
	for _, center := range m.problem.AllPoints() {
		var pts []keyed[geom.Point]
		for _, other := range m.problem.AllPoints() {
			if !center.IsClose(other) {
				pts = append(pts, keyed[geom.Point]{
					key:  geom.NewDist(center, other).Length(),
					item: other,
				})
			}
		}
		sortKeyed(pts)
		forEachBucket(pts,
			func(k keyed[geom.Point]) float64 { return k.key },
			func(bucket []keyed[geom.Point]) {
				m.onCircle(center, bucket)
			})
	}
}

func (m *Matcher) onCircle(center geom.Point, points []keyed[geom.Point]) {
	for a := 0; a < len(points); a++ {
		for b := a + 1; b < len(points); b++ {
			m.onIsoscelesTriangle(center, points[a].item, points[b].item)
			for c := b + 1; c < len(points); c++ {
				m.onCircumcenter(statement.NewCircumcenter(center,
					geom.NewTriangle(points[a].item, points[b].item, points[c].item)))
				for d := c + 1; d < len(points); d++ {
					m.onQuadrangleCircumcenter(center, statement.NewCyclicQuadrangle(
						points[a].item, points[b].item, points[c].item, points[d].item))
				}
			}
		}
	}
}

func (m *Matcher) onIsoscelesTriangle(vertex, left, right geom.Point) {
	if geom.CollinearNumerically(vertex, left, right) {
		return
	}
	m.insertTheorem(equalAnglesOfCong(vertex, left, right))
	m.insertTheorem(congOfEqualAngles(vertex, left, right))
}

func (m *Matcher) onCircumcenter(pred statement.Circumcenter) {
	if m.config.EqnStatements {
		m.insertTheorem(arcOfCircumcenter(pred))
		for _, tri := range pred.Triangle().CyclicRotations() {
			m.insertTheorem(circumcenterOfArc(statement.NewCircumcenter(pred.Center(), tri)))
		}
	}
	m.insertTheorem(circumcenterOfCong(pred))
	m.insertTheorem(congOfCircumcenter(pred))
}

func (m *Matcher) onQuadrangleCircumcenter(center geom.Point, cyc statement.CyclicQuadrangle) {
	// With equation statements admitted, the center recognition is
	// provable by other means.
	if !m.config.EqnStatements {
		m.insertTheorem(congOfCircumcenterOfCyclic(statement.NewCircumcenter(center,
			geom.NewTriangle(cyc.A(), cyc.B(), cyc.C())), cyc.D()))
		m.insertTheorem(congOfCircumcenterOfCyclic(statement.NewCircumcenter(center,
			geom.NewTriangle(cyc.B(), cyc.C(), cyc.D())), cyc.A()))
		m.insertTheorem(congOfCircumcenterOfCyclic(statement.NewCircumcenter(center,
			geom.NewTriangle(cyc.C(), cyc.D(), cyc.A())), cyc.B()))
		m.insertTheorem(congOfCircumcenterOfCyclic(statement.NewCircumcenter(center,
			geom.NewTriangle(cyc.D(), cyc.A(), cyc.B())), cyc.C()))
	}
	m.insertTheorem(centerOfCyclicOfCongOfCong(cyc, center))
	m.insertTheorem(centerOfCyclicOfCongOfCong(statement.NewCyclicQuadrangle(
		cyc.A(), cyc.C(), cyc.B(), cyc.D()), center))
	m.insertTheorem(centerOfCyclicOfCongOfCong(statement.NewCyclicQuadrangle(
		cyc.A(), cyc.D(), cyc.B(), cyc.C()), center))
}

// --- Parallelograms, perpendiculars, orthocenters, law of sines ------------

func (m *Matcher) matchParallelograms() {
	if !m.config.ARSquared || !m.config.EqnStatements {
		return
	}
	for _, d := range m.problem.AllPoints() {
		for _, c := range d.UpTo() {
			for _, a := range c.UpTo() {
				for _, b := range m.problem.AllPoints() {
					if a == b || b == c || b == d {
						continue
					}
					m.insertTheorem(parallelogramLaw(statement.NewParallelogram(a, b, c, d)))
				}
			}
		}
	}
}

func (m *Matcher) matchPerpendiculars() {
	for _, b := range m.problem.AllPoints() {
		for _, a := range b.UpTo() {
			for _, d := range b.UpTo() {
				for _, c := range d.UpTo() {
					if a == c || a == d {
						continue
					}
					pred := statement.NewPerpendicular(
						geom.NewSlopeAngle(a, b), geom.NewSlopeAngle(c, d))
					if pred.CheckEquations() {
						m.insertTheorem(perpOfSumSquares(pred))
						m.insertTheorem(sumSquaresOfPerp(pred))
					}
				}
			}
		}
	}
}

func (m *Matcher) matchOrthocenters() {
	for _, d := range m.problem.AllPoints() {
		for _, c := range d.UpTo() {
			for _, b := range c.UpTo() {
				for _, a := range b.UpTo() {
					pred := statement.NewIsOrthocenter(geom.NewTriangle(a, b, c), d)
					if statement.CheckNumerically(pred) {
						m.insertTheorem(orthocenterTheorem(pred))
						m.insertTheorem(orthocenterTheorem(
							statement.NewIsOrthocenter(geom.NewTriangle(b, c, a), d)))
						m.insertTheorem(orthocenterTheorem(
							statement.NewIsOrthocenter(geom.NewTriangle(c, a, b), d)))
					}
				}
			}
		}
	}
}

func (m *Matcher) matchLawOfSines(angles map[geom.SinOrDist]struct{}) {
	if !m.config.ARSin || !m.config.EqnStatements {
		return
	}
	for _, c := range m.problem.AllPoints() {
		for _, b := range c.UpTo() {
			for _, a := range b.UpTo() {
				if geom.CollinearNumerically(a, b, c) {
					continue
				}
				tri := geom.NewTriangle(a, b, c)
				_, sinA := angles[geom.NewSinOfAngle(tri.AngleA())]
				_, sinB := angles[geom.NewSinOfAngle(tri.AngleB())]
				_, sinC := angles[geom.NewSinOfAngle(tri.AngleC())]
				if sinA && sinB {
					m.insertTheorem(lawOfSines(tri))
				}
				if sinB && sinC {
					m.insertTheorem(lawOfSines(geom.NewTriangle(tri.B(), tri.C(), tri.A())))
				}
				if sinA && !sinB && sinC {
					m.insertTheorem(lawOfSines(geom.NewTriangle(tri.C(), tri.A(), tri.B())))
				}
			}
		}
	}
}
