package geom

import (
	"math"
	"testing"

	"github.com/npillmayer/geoproof/number"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func rightTriangle(t *testing.T) (*Problem, Point, Point, Point) {
	t.Helper()
	prob := NewProblem()
	a, err := prob.AddPoint("a", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := prob.AddPoint("b", 3, 0)
	c, _ := prob.AddPoint("c", 0, 4)
	return prob, a, b, c
}

func TestProblemPoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.geom")
	defer teardown()
	prob, a, _, _ := rightTriangle(t)
	if prob.NumPoints() != 3 {
		t.Errorf("expected 3 points, have %d", prob.NumPoints())
	}
	if _, err := prob.AddPoint("a", 1, 1); err == nil {
		t.Error("expected duplicate point name to be rejected, isn't")
	}
	found, err := prob.FindPoint("a")
	if err != nil || found != a {
		t.Errorf("expected to find point a, got %v (err=%v)", found, err)
	}
	if _, err := prob.FindPoint("nope"); err == nil {
		t.Error("expected unknown point lookup to fail, doesn't")
	}
}

func TestDistCanonicalOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.geom")
	defer teardown()
	_, a, b, _ := rightTriangle(t)
	d1 := NewDist(b, a)
	d2 := NewDist(a, b)
	if d1 != d2 {
		t.Error("expected endpoint order not to matter, does")
	}
	if d1.Left() != a || d1.Right() != b {
		t.Error("expected canonical endpoint order, isn't")
	}
	if d1.Length() != 3 {
		t.Errorf("expected |ab| = 3, is %g", d1.Length())
	}
}

func TestSquaredDistValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.geom")
	defer teardown()
	_, _, b, c := rightTriangle(t)
	sd := NewSquaredDist(b, c)
	if sd.Value() != 25 {
		t.Errorf("expected |bc|² = 25, is %g", sd.Value())
	}
	if sd.Dist().Length() != 5 {
		t.Errorf("expected |bc| = 5, is %g", sd.Dist().Length())
	}
}

func TestSlopeAngleValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.geom")
	defer teardown()
	_, a, b, c := rightTriangle(t)
	if got := NewSlopeAngle(a, b).Value(); got != 0 {
		t.Errorf("expected horizontal slope 0, is %g", got)
	}
	if got := NewSlopeAngle(a, c).Value(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected vertical slope 1/2 (π/2), is %g", got)
	}
}

func TestAngleValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.geom")
	defer teardown()
	_, a, b, c := rightTriangle(t)
	ang := NewAngle(b, a, c)
	if got := ang.Value(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("expected right angle value 1/2, is %g", got)
	}
	if ang.Neg().Vertex() != a {
		t.Error("expected negation to keep the vertex, doesn't")
	}
	if got := number.Mod1(ang.Value() + ang.Neg().Value()); !number.ApproxEq(got, 0) {
		t.Errorf("expected α + (-α) = 0 mod 1, is %g", got)
	}
}

func TestSinOrDistOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.geom")
	defer teardown()
	_, a, b, c := rightTriangle(t)
	sin := NewSinOfAngle(NewAngle(b, a, c))
	dist := NewSinOrDist(NewSquaredDist(a, b))
	if sin.Compare(dist) >= 0 {
		t.Error("expected sines to sort before squared distances, don't")
	}
	// sin² of the right angle at a is 1
	if got := sin.Value(); math.Abs(got-1) > 1e-12 {
		t.Errorf("expected sin²(π/2) = 1, is %g", got)
	}
	// the canonicalized angle makes sin²α = sin²(-α)
	neg := NewSinOfAngle(NewAngle(c, a, b))
	if sin != neg {
		t.Error("expected sin variable of α and -α to coincide, don't")
	}
}

func TestTriangleArea(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.geom")
	defer teardown()
	_, a, b, c := rightTriangle(t)
	tri := NewTriangle(a, b, c)
	if got := tri.Area(); got != 6 {
		t.Errorf("expected area 6, is %g", got)
	}
	if got := NewTriangle(a, c, b).Area(); got != -6 {
		t.Errorf("expected reversed orientation area -6, is %g", got)
	}
	if !tri.CheckNondegen() {
		t.Error("expected triangle to be nondegenerate, isn't")
	}
	sorted := NewTriangle(c, b, a).Sorted()
	if sorted.A() != a || sorted.B() != b || sorted.C() != c {
		t.Error("expected sorted vertices in index order, aren't")
	}
}

func TestCollinearNumerically(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.geom")
	defer teardown()
	prob := NewProblem()
	a, _ := prob.AddPoint("a", 0, 0)
	b, _ := prob.AddPoint("b", 1, 1)
	c, _ := prob.AddPoint("c", 2, 2)
	d, _ := prob.AddPoint("d", 2, 3)
	if !CollinearNumerically(a, b, c) {
		t.Error("expected a, b, c collinear, aren't")
	}
	if CollinearNumerically(a, b, d) {
		t.Error("expected a, b, d not collinear, are")
	}
}
