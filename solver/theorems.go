package solver

import (
	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
	"github.com/npillmayer/geoproof/statement"
)

// The theorem factories. Each builds one numerically parameterized
// theorem instance; the matcher decides which instances to create.

func dist(a, b geom.Point) geom.Dist { return geom.NewDist(a, b) }

func slope(a, b geom.Point) geom.SlopeAngle { return geom.NewSlopeAngle(a, b) }

func sqd(a, b geom.Point) geom.SquaredDist { return geom.NewSquaredDist(a, b) }

func equalAnglesOfCong(vertex, left, right geom.Point) *Theorem {
	return newTheorem("Angles in an isosceles triangle", "r13").
		addHypothesis(statement.NewDistEqDist(dist(vertex, left), dist(vertex, right))).
		addConclusion(statement.NewEqualAngles(
			geom.NewAngle(vertex, left, right), geom.NewAngle(left, right, vertex)))
}

func congOfEqualAngles(vertex, left, right geom.Point) *Theorem {
	return newTheorem("Sides of an isosceles triangle", "r14").
		addHypothesis(statement.NewEqualAngles(
			geom.NewAngle(vertex, left, right), geom.NewAngle(left, right, vertex))).
		addHypothesis(statement.NewNonCollinear(vertex, left, right)).
		addConclusion(statement.NewDistEqDist(dist(vertex, left), dist(vertex, right)))
}

func similarTrianglesProperties(p statement.SimilarTriangles) *Theorem {
	rule := "r52"
	if !p.SameClockwise() {
		rule = "r53"
	}
	return newTheorem("Properties of similar triangles", rule).
		addHypothesis(p).
		addSimilarTrianglesHypotheses(p).
		addConclusion(p.EqualAnglesABC()).
		addConclusion(p.EqualAnglesBCA()).
		addConclusion(p.EqRatioABBC()).
		addConclusion(p.EqRatioABAC())
}

func similarTrianglesOfSAS(p statement.SimilarTriangles) *Theorem {
	rule := "r62"
	if !p.SameClockwise() {
		rule = "r63"
	}
	return newTheorem("Similarity of triangles by 2 sides and an angle between them", rule).
		addHypothesis(p.EqRatioABBC()).
		addHypothesis(p.EqualAnglesABC()).
		addSimilarTrianglesHypotheses(p).
		addConclusion(p)
}

func similarTrianglesOfAA(p statement.SimilarTriangles) *Theorem {
	rule := "r34"
	if !p.SameClockwise() {
		rule = "r35"
	}
	return newTheorem("Similarity of triangles by 2 angles", rule).
		addHypothesis(p.EqualAnglesABC()).
		addHypothesis(p.EqualAnglesACB()).
		addSimilarTrianglesHypotheses(p).
		addConclusion(p)
}

func similarTrianglesOfSSS(p statement.SimilarTriangles) *Theorem {
	rule := "r60"
	if !p.SameClockwise() {
		rule = "r61"
	}
	return newTheorem("Similarity of triangles by proportionality of sides", rule).
		addHypothesis(p.EqRatioABBC()).
		addHypothesis(p.EqRatioABAC()).
		addSimilarTrianglesHypotheses(p).
		addConclusion(p)
}

func congruentTrianglesOfSimilarTriangles(p statement.CongruentTriangles) *Theorem {
	rule := "r68"
	if !p.SameClockwise() {
		rule = "r69"
	}
	return newTheorem("Similarity without scaling", rule).
		addHypothesis(p.SimilarTriangles).
		addHypothesis(p.CongAB()).
		addConclusion(p)
}

func congruentTrianglesProperties(p statement.CongruentTriangles) *Theorem {
	rule := "r77"
	if !p.SameClockwise() {
		rule = "r78"
	}
	return congruentTrianglesOfSimilarTriangles(p).
		converse("Congruent triangles are similar with coeff 1", rule)
}

func cyclicOfEqualAngles(p statement.CyclicQuadrangle) *Theorem {
	return newTheorem("Recognize a cyclic quadrilateral", "r04").
		addHypothesis(p.EqualAnglesCADCBD()).
		addHypothesis(statement.NewNonCollinear(p.A(), p.C(), p.D())).
		addConclusion(p)
}

func cyclicProperties(p statement.CyclicQuadrangle) *Theorem {
	return newTheorem("Properties of a cyclic quadrilateral", "r03").
		addHypothesis(p).
		addConclusion(p.EqualAnglesCADCBD()).
		addConclusion(p.EqualAnglesBADBCD()).
		addConclusion(p.EqualAnglesABDACD())
}

func betweenEqnDist(p statement.Collinear) ar.DistEquation {
	lhs := ar.Single(dist(p.A(), p.B())).
		Add(ar.Single(dist(p.B(), p.C()))).
		Sub(ar.Single(dist(p.A(), p.C())))
	return ar.NewEquation(lhs, number.Rat{})
}

func collOfAddLength(p statement.Collinear) *Theorem {
	return newTheorem("If `AB+BC=AC`, then `B` is between `A` and `C`", "ignore").
		addHypothesis(statement.NewDistEqn(betweenEqnDist(p))).
		addConclusion(p)
}

func addLengthOfBetween(p statement.Collinear) *Theorem {
	return newTheorem("If `B` is between `A` and `C`, then `AB+BC=AC`", "ignore").
		addHypothesis(p).
		addHypothesis(statement.ObtuseAngleOfColl(p)).
		addConclusion(statement.NewDistEqn(betweenEqnDist(p)))
}

func collOfPara(c statement.Collinear) *Theorem {
	return newTheorem("If `AB||BC`, then `A`, `B`, `C` are collinear", "r28").
		addHypothesis(statement.NewParallel(slope(c.A(), c.B()), slope(c.B(), c.C()))).
		addConclusion(statement.NewCollinear(c.A(), c.B(), c.C()))
}

func paraOfColl(c statement.Collinear) *Theorem {
	return newTheorem("If `A`, `B`, `C` are collinear, then `AB||BC` and `AB||AC`", "r82").
		addHypothesis(statement.NewCollinear(c.A(), c.B(), c.C())).
		addHypothesis(statement.NewNotEqual(c.A(), c.B())).
		addHypothesis(statement.NewNotEqual(c.A(), c.C())).
		addHypothesis(statement.NewNotEqual(c.B(), c.C())).
		addConclusion(statement.NewParallel(slope(c.A(), c.B()), slope(c.B(), c.C()))).
		addConclusion(statement.NewParallel(slope(c.A(), c.B()), slope(c.A(), c.C())))
}

func perpSumSquaresEqn(p statement.Perpendicular) ar.SquaredDistEquation {
	lhs := ar.Single(sqd(p.Left().Left(), p.Right().Left())).
		Sub(ar.Single(sqd(p.Left().Left(), p.Right().Right()))).
		Sub(ar.Single(sqd(p.Left().Right(), p.Right().Left()))).
		Add(ar.Single(sqd(p.Left().Right(), p.Right().Right())))
	return ar.NewEquation(lhs, number.Rat{})
}

func perpDistinctness(t *Theorem, p statement.Perpendicular) *Theorem {
	return t.
		addHypothesis(statement.NewNotEqual(p.Left().Left(), p.Right().Left())).
		addHypothesis(statement.NewNotEqual(p.Left().Left(), p.Right().Right())).
		addHypothesis(statement.NewNotEqual(p.Left().Right(), p.Right().Left())).
		addHypothesis(statement.NewNotEqual(p.Left().Right(), p.Right().Right()))
}

func sumSquaresOfPerp(p statement.Perpendicular) *Theorem {
	t := newTheorem("AB ⟂ CD implies AC²+BD²=AD²+BC²", "ignore").
		addHypothesis(p)
	return perpDistinctness(t, p).
		addConclusion(statement.NewSquaredDistEqn(perpSumSquaresEqn(p)))
}

func perpOfSumSquares(p statement.Perpendicular) *Theorem {
	t := newTheorem("If AC²+BD²=AD²+BC², then AB ⟂ CD", "ignore").
		addHypothesis(statement.NewSquaredDistEqn(perpSumSquaresEqn(p)))
	return perpDistinctness(t, p).addConclusion(p)
}

func pythagorasEqn(a geom.Angle) ar.SquaredDistEquation {
	lhs := ar.Single(sqd(a.Vertex(), a.Left())).
		Add(ar.Single(sqd(a.Vertex(), a.Right()))).
		Sub(ar.Single(sqd(a.Left(), a.Right())))
	return ar.NewEquation(lhs, number.Rat{})
}

func pythagorasOfPerp(a geom.Angle) *Theorem {
	return newTheorem("Pythagoras theorem of perpendicularity", "ignore").
		addHypothesis(statement.NewNotEqual(a.Vertex(), a.Left())).
		addHypothesis(statement.NewNotEqual(a.Vertex(), a.Right())).
		addHypothesis(statement.NewPerpendicular(
			slope(a.Vertex(), a.Left()), slope(a.Vertex(), a.Right()))).
		addConclusion(statement.NewSquaredDistEqn(pythagorasEqn(a)))
}

func pythagorasOfSumSquares(a geom.Angle) *Theorem {
	return newTheorem("Pythagoras theorem of sum of squares", "ignore").
		addHypothesis(statement.NewNotEqual(a.Vertex(), a.Left())).
		addHypothesis(statement.NewNotEqual(a.Vertex(), a.Right())).
		addHypothesis(statement.NewSquaredDistEqn(pythagorasEqn(a))).
		addConclusion(statement.NewPerpendicular(
			slope(a.Vertex(), a.Left()), slope(a.Vertex(), a.Right())))
}

func rotateEqualRatioOfSameSide(left, right statement.Collinear) *Theorem {
	return newTheorem("Resolution of ratios for collinear points", "r71").
		addHypothesis(left).
		addHypothesis(right).
		addHypothesis(statement.SameSignDotOfColls(left, right)).
		addHypothesis(left.EqRatioABAC(right)).
		addConclusion(left.EqRatioABBC(right))
}

func circumcenterOfCong(p statement.Circumcenter) *Theorem {
	return newTheorem("Definition of circumcenter", "r73").
		addHypothesis(p.CongAB()).
		addHypothesis(p.CongBC()).
		addConclusion(p)
}

func congOfCircumcenter(p statement.Circumcenter) *Theorem {
	return circumcenterOfCong(p).converse("Definition of circumcenter", "r72")
}

func arcOfCircumcenter(p statement.Circumcenter) *Theorem {
	t := newTheorem("Arc angle and central angle", "ignore").addHypothesis(p)
	for _, tri := range p.Triangle().CyclicRotations() {
		eqn := statement.SubEqConstAngle(
			geom.NewAngle(tri.A(), tri.B(), tri.C()),
			geom.NewAngle(p.Center(), tri.A(), tri.C()),
			number.NewAddCircle(number.NewRat(1, 2)))
		t.addConclusion(statement.NewAngleEqn(eqn))
	}
	return t
}

func circumcenterOfArc(p statement.Circumcenter) *Theorem {
	eqn := statement.SubEqConstAngle(
		geom.NewAngle(p.A(), p.B(), p.C()),
		geom.NewAngle(p.Center(), p.A(), p.C()),
		number.NewAddCircle(number.NewRat(1, 2)))
	return newTheorem("Circumcenter of arc's angle", "ignore").
		addHypothesis(p.CongAC()).
		addHypothesis(statement.NewAngleEqn(eqn)).
		addConclusion(p)
}

func thalesParaOfEqratio(p statement.Thales) *Theorem {
	return newTheorem("Thales Theorem 3", "r41").
		addHypothesis(p.CollLeft()).
		addHypothesis(p.CollRight()).
		addHypothesis(p.ParaBC()).
		addHypothesis(p.CollLeft().EqRatioABAC(p.CollRight())).
		addHypothesis(statement.SameSignDotOfColls(p.CollLeft(), p.CollRight())).
		addConclusion(p.ParaAB())
}

func thalesEqratioOfPara(p statement.Thales) *Theorem {
	return newTheorem("Thales Theorem 4", "r42").
		addHypothesis(p.CollLeft()).
		addHypothesis(p.CollRight()).
		addHypothesis(p.ParaAB()).
		addHypothesis(p.ParaBC()).
		addHypothesis(statement.NewNonCollinear(
			p.CollLeft().A(), p.CollRight().A(), p.CollLeft().B())).
		addConclusion(p.CollLeft().EqRatioABBC(p.CollRight())).
		addConclusion(p.CollLeft().EqRatioABAC(p.CollRight()))
}

func sumSquaresOfMidpoint(p statement.Midpoint, pt geom.Point) *Theorem {
	lhs := ar.SingleTerm(sqd(pt, p.Middle()), number.RatInt(4)).
		Add(ar.Single(sqd(p.Left(), p.Right()))).
		Sub(ar.SingleTerm(sqd(pt, p.Left()), number.RatInt(2))).
		Sub(ar.SingleTerm(sqd(pt, p.Right()), number.RatInt(2)))
	eq := ar.NewEquation(lhs, number.Rat{})
	return newTheorem("Sum of squares for a median", "ignore").
		addHypothesis(p.ToCong()).
		addHypothesis(p.ToColl()).
		addConclusion(statement.NewSquaredDistEqn(eq))
}

func triangleBisectorOfEqualAngles(point geom.Point, angle geom.Angle) *Theorem {
	return newTheorem("Property of a bisector in a triangle", "r12").
		addHypothesis(statement.NewEqualAngles(
			geom.NewAngle(angle.Left(), angle.Vertex(), point),
			geom.NewAngle(point, angle.Vertex(), angle.Right()))).
		addHypothesis(statement.NewNonCollinear(angle.Left(), angle.Vertex(), angle.Right())).
		addHypothesis(statement.NewCollinear(angle.Left(), point, angle.Right())).
		addConclusion(statement.NewEqualRatios(
			dist(point, angle.Left()), dist(point, angle.Right()),
			dist(angle.Vertex(), angle.Left()), dist(angle.Vertex(), angle.Right())))
}

func triangleBisectorOfEqratio(point geom.Point, angle geom.Angle) *Theorem {
	return newTheorem("Property of a bisector in a triangle", "r11").
		addHypothesis(statement.NewNonCollinear(angle.Left(), angle.Vertex(), angle.Right())).
		addHypothesis(statement.NewCollinear(angle.Left(), point, angle.Right())).
		addHypothesis(statement.NewEqualRatios(
			dist(point, angle.Left()), dist(point, angle.Right()),
			dist(angle.Vertex(), angle.Left()), dist(angle.Vertex(), angle.Right()))).
		addConclusion(statement.NewEqualAngles(
			geom.NewAngle(angle.Left(), angle.Vertex(), point),
			geom.NewAngle(point, angle.Vertex(), angle.Right())))
}

func equalAnglesOfCongCyclic(a, b, c, d geom.Point) *Theorem {
	return newTheorem("Congruent chords have equal arc measure", "r80").
		addHypothesis(statement.NewCyclicQuadrangle(a, b, c, d)).
		addHypothesis(statement.NewDistEqDist(dist(a, b), dist(c, d))).
		addHypothesis(statement.NewNonParallel(slope(a, c), slope(b, d))).
		addConclusion(statement.NewEqualAngles(
			geom.NewAngle(a, c, b), geom.NewAngle(c, b, d)))
}

func equalAnglesOfIsoTrapezoid(a, b, c, d geom.Point) *Theorem {
	return newTheorem("Equal angles in an iso trapezoid", "r91").
		addHypothesis(statement.NewDistEqDist(dist(a, b), dist(c, d))).
		addHypothesis(statement.NewParallel(slope(a, d), slope(b, c))).
		addHypothesis(statement.NewNonParallel(slope(a, b), slope(c, d))).
		addConclusion(statement.NewEqualAngles(
			geom.NewAngle(a, c, b), geom.NewAngle(c, b, d)))
}

func parallelogramLaw(p statement.Parallelogram) *Theorem {
	return newTheorem("Parallelogram law", "ignore").
		addHypothesis(p.ParaABCD()).
		addHypothesis(p.ParaADBC()).
		addConclusion(p.LawEquation())
}

func orthocenterTheorem(p statement.IsOrthocenter) *Theorem {
	return newTheorem("Orthocenter theorem", "r43").
		addHypothesis(p.PerpA()).
		addHypothesis(p.PerpB()).
		addConclusion(p.PerpC())
}

func midpointRatioDist(p statement.Midpoint) *Theorem {
	half := number.NewRat(1, 2)
	return newTheorem("Midpoint splits in two", "r51").
		addHypothesis(p).
		addConclusion(statement.NewRatioDistEq(
			dist(p.Left(), p.Middle()), dist(p.Left(), p.Right()), half)).
		addConclusion(statement.NewRatioDistEq(
			dist(p.Right(), p.Middle()), dist(p.Left(), p.Right()), half))
}

func midpointOfCollCong(p statement.Midpoint) *Theorem {
	return newTheorem("Definition of midpoint", "r54").
		addHypothesis(p.ToColl()).
		addHypothesis(p.ToCong()).
		addConclusion(p)
}

func congOfMidpoint(p statement.Midpoint) *Theorem {
	return newTheorem("Properties of midpoint (cong)", "r55").
		addHypothesis(p).
		addConclusion(p.ToCong())
}

func collOfMidpoint(p statement.Midpoint) *Theorem {
	return newTheorem("Properties of midpoint (coll)", "r56").
		addHypothesis(p).
		addConclusion(p.ToColl())
}

func hypotenuseIsDiameter(p statement.Midpoint, pt geom.Point) *Theorem {
	return newTheorem("Hypotenuse is diameter", "r19").
		addHypothesis(statement.NewPerpendicular(
			slope(p.Left(), pt), slope(p.Right(), pt))).
		addHypothesis(p).
		addConclusion(statement.NewDistEqDist(
			dist(p.Left(), p.Middle()), dist(pt, p.Middle())))
}

func incenter(point geom.Point, angle geom.Angle) *Theorem {
	return newTheorem("Incenter theorem", "r46").
		addHypothesis(statement.NewEqualAngles(
			geom.NewAngle(angle.Vertex(), angle.Left(), point),
			geom.NewAngle(point, angle.Left(), angle.Right()))).
		addHypothesis(statement.NewEqualAngles(
			geom.NewAngle(angle.Left(), angle.Right(), point),
			geom.NewAngle(point, angle.Right(), angle.Vertex()))).
		addHypothesis(statement.NewNonCollinear(angle.Left(), angle.Vertex(), angle.Right())).
		addConclusion(statement.NewEqualAngles(
			geom.NewAngle(angle.Left(), angle.Vertex(), point),
			geom.NewAngle(point, angle.Vertex(), angle.Right())))
}

func congOfCircumcenterOfCyclic(p statement.Circumcenter, pt geom.Point) *Theorem {
	return newTheorem("Recognize center of cyclic", "r49").
		addHypothesis(p).
		addHypothesis(statement.NewCyclicQuadrangle(pt, p.A(), p.B(), p.C())).
		addConclusion(statement.NewDistEqDist(
			dist(p.Center(), p.A()), dist(p.Center(), pt)))
}

func centerOfCyclicOfCongOfCong(p statement.CyclicQuadrangle, pt geom.Point) *Theorem {
	return newTheorem("Recognize center of cyclic from cong", "r50").
		addHypothesis(p).
		addHypothesis(statement.NewDistEqDist(dist(pt, p.A()), dist(pt, p.B()))).
		addHypothesis(statement.NewDistEqDist(dist(pt, p.C()), dist(pt, p.D()))).
		addHypothesis(statement.NewNonParallel(slope(p.A(), p.B()), slope(p.C(), p.D()))).
		addConclusion(statement.NewDistEqDist(dist(pt, p.A()), dist(pt, p.C())))
}

func angleBisectorMeetsBisector(ang geom.Angle, pt geom.Point) *Theorem {
	return newTheorem("Angle bisector meets side bisector on the circumcircle", "r74").
		addHypothesis(statement.NewEqualAngles(
			geom.NewAngle(ang.Left(), ang.Vertex(), pt),
			geom.NewAngle(pt, ang.Vertex(), ang.Right()))).
		addHypothesis(statement.NewDistEqDist(dist(ang.Left(), pt), dist(ang.Right(), pt))).
		addHypothesis(statement.NewNonCollinear(ang.Left(), ang.Vertex(), ang.Right())).
		addHypothesis(statement.NewNonPerpendicular(
			slope(ang.Vertex(), pt), slope(ang.Left(), ang.Right()))).
		addConclusion(statement.NewCyclicQuadrangle(pt, ang.Left(), ang.Vertex(), ang.Right()))
}

func equalAnglesOfSinEqSin(p statement.EqualAngles) *Theorem {
	eq := ar.SubEqConst(
		geom.NewSinOfAngle(p.RightAngle()),
		geom.NewSinOfAngle(p.LeftAngle()),
		number.RootRat{})
	return newTheorem("equal angles of sin eq sin", "ignore").
		addHypothesis(statement.NewSinOrDistEqn(eq)).
		addConclusion(p)
}

func sinEqSinOfEqualAngles(p statement.EqualAngles) *Theorem {
	return equalAnglesOfSinEqSin(p).converse("sin eq sin of equal angles", "ignore")
}

func lawOfSines(t geom.Triangle) *Theorem {
	eq := ar.SubEqSub(
		geom.NewSinOrDist(t.DistBC().Squared()), geom.NewSinOfAngle(t.AngleA()),
		geom.NewSinOrDist(t.DistAC().Squared()), geom.NewSinOfAngle(t.AngleB()),
		number.RootRat{})
	return newTheorem("law of sines", "ignore").
		addHypothesis(statement.NewNonCollinear(t.A(), t.B(), t.C())).
		addConclusion(statement.NewSinOrDistEqn(eq))
}

func sinEqOfAngleEq(ang geom.Angle, ind int) *Theorem {
	entry := number.KnownSinSquares()[ind]
	eqn := ar.NewEquation(ar.Single(geom.NewSinOfAngle(ang)),
		number.NewRootRat(entry.Sin2))
	return newTheorem("Sine of a known angle", "ignore").
		addHypothesis(statement.NewAngleEq(ang, number.NewAddCircle(entry.Angle))).
		addConclusion(statement.NewSinOrDistEqn(eqn))
}

func angleEqOfSinEq(ang geom.Angle, ind int) *Theorem {
	return sinEqOfAngleEq(ang, ind).converse("Find angle by its sine", "ignore")
}
