package ar

import (
	"errors"
	"testing"

	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// fixture: four collinear points so every Dist atom is available.
func fixture(t *testing.T) (geom.Dist, geom.Dist, geom.Dist, geom.Dist) {
	t.Helper()
	prob := geom.NewProblem()
	a, err := prob.AddPoint("a", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := prob.AddPoint("b", 1, 0)
	c, _ := prob.AddPoint("c", 3, 0)
	d, _ := prob.AddPoint("d", 6, 0)
	return geom.NewDist(a, b), geom.NewDist(a, c), geom.NewDist(a, d), geom.NewDist(b, c)
}

func TestLinCombCancellation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	ab, ac, _, _ := fixture(t)
	a := Single(ab).Add(SingleTerm(ac, number.NewRat(2, 3)))
	b := SingleTerm(ac, number.NewRat(1, 3))

	if !a.Add(b).Sub(b).Eq(a) {
		t.Error("expected a + b - b == a, isn't")
	}
	if !a.Scale(number.Rat{}).Empty() {
		t.Error("expected a·0 to be empty, isn't")
	}
	if !a.Sub(a).Empty() {
		t.Error("expected a - a to be empty, isn't")
	}
}

func TestLinCombOrderAndMerge(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	ab, ac, ad, _ := fixture(t)
	lc := Single(ad).Add(Single(ab)).Add(Single(ac))
	terms := lc.Terms()
	if len(terms) != 3 {
		t.Fatalf("expected 3 terms, have %d", len(terms))
	}
	for i := 1; i < len(terms); i++ {
		if terms[i-1].Var.Compare(terms[i].Var) >= 0 {
			t.Error("expected terms sorted by variable, aren't")
		}
	}
	if lc.Leading().Var != ab {
		t.Errorf("expected leading variable |a-b|, is %s", lc.Leading().Var)
	}
}

func TestLinCombCommonDenominator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	ab, ac, _, _ := fixture(t)
	lc := SingleTerm(ab, number.NewRat(1, 4)).Add(SingleTerm(ac, number.NewRat(5, 6)))
	if lc.CommonDenominator() != 12 {
		t.Errorf("expected common denominator 12, is %d", lc.CommonDenominator())
	}
}

func TestEquationNormalize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	ab, ac, _, _ := fixture(t)
	eq := NewEquation(
		SingleTerm(ab, number.NewRat(-2, 1)).Add(Single(ac)),
		number.NewRat(-4, 1))
	scale, norm := eq.Normalize()
	if !scale.Eq(number.NewRat(-1, 2)) {
		t.Errorf("expected scale -1/2, is %s", scale)
	}
	if !norm.LHS().Leading().Coeff.Eq(number.RatInt(1)) {
		t.Errorf("expected leading coefficient 1, is %s", norm.LHS().Leading().Coeff)
	}
	if !norm.RHS().Eq(number.RatInt(2)) {
		t.Errorf("expected rhs 2, is %s", norm.RHS())
	}
	if !norm.Eq(eq.Scale(scale)) {
		t.Error("expected norm == eq·scale, isn't")
	}
}

func TestAngleEquationNormalizePreservesSign(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	prob := geom.NewProblem()
	a, _ := prob.AddPoint("a", 0, 0)
	b, _ := prob.AddPoint("b", 1, 0)
	c, _ := prob.AddPoint("c", 0, 1)
	sab := geom.NewSlopeAngle(a, b)
	sac := geom.NewSlopeAngle(a, c)
	eq := NewEquation(
		SingleTerm(sab, number.NewRat(-2, 1)).Add(Single(sac)),
		number.NewAddCircle(number.NewRat(1, 2)))
	scale, norm := eq.Normalize()
	if !scale.Eq(number.RatInt(-1)) {
		t.Errorf("expected angle normalization scale -1, is %s", scale)
	}
	if norm.LHS().Leading().Coeff.Sign() <= 0 {
		t.Error("expected positive leading coefficient after normalization, isn't")
	}
}

// checkInvariant verifies original = Σ combo·originals + remainder.
func checkInvariant(t *testing.T, red *ReducedDistEquation) {
	t.Helper()
	sum := red.Remainder()
	for _, term := range red.Combo().Terms() {
		sum = sum.Add(red.System().At(term.Index).Scale(term.Coeff))
	}
	if !sum.Eq(red.Original()) {
		t.Errorf("reduction invariant violated: %s != %s", sum, red.Original())
	}
}

func TestSystemInsertAndReduce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	ab, ac, ad, _ := fixture(t)
	sys := NewSystem[geom.Dist, number.Rat]()

	// ab - 1/2 ac = 0
	eq1 := NewEquation(Single(ab).Sub(SingleTerm(ac, number.NewRat(1, 2))), number.Rat{})
	red1 := NewReducedEquation(eq1, sys)
	red1.Reduce()
	if red1.IsSolved() {
		t.Error("expected fresh equation not to be solved, is")
	}
	if err := sys.AddReducedEquation("eq1", red1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sys.Size() != 1 {
		t.Errorf("expected 1 original equation, have %d", sys.Size())
	}

	// ac - 1/2 ad = 0
	eq2 := NewEquation(Single(ac).Sub(SingleTerm(ad, number.NewRat(1, 2))), number.Rat{})
	red2 := NewReducedEquation(eq2, sys)
	red2.Reduce()
	if err := sys.AddReducedEquation("eq2", red2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// ab - 1/4 ad should now be implied.
	eq3 := NewEquation(Single(ab).Sub(SingleTerm(ad, number.NewRat(1, 4))), number.Rat{})
	red3 := NewReducedEquation(eq3, sys)
	red3.Reduce()
	if !red3.IsSolved() {
		t.Errorf("expected ab = 1/4 ad to be implied, remainder %s", red3.Remainder())
	}
	checkInvariant(t, red3)
	if len(red3.Dependencies()) != 2 {
		t.Errorf("expected 2 dependencies, have %d", len(red3.Dependencies()))
	}

	// an unrelated equation reduces but is not solved
	eq4 := NewEquation(Single(ab).Sub(Single(ad)), number.Rat{})
	red4 := NewReducedEquation(eq4, sys)
	red4.Reduce()
	if red4.IsSolved() {
		t.Error("expected ab = ad not to be implied, is")
	}
	checkInvariant(t, red4)
}

func TestEchelonUniqueness(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	ab, ac, ad, bc := fixture(t)
	sys := NewSystem[geom.Dist, number.Rat]()
	for i, eq := range []DistEquation{
		NewEquation(Single(ab).Sub(Single(ac)), number.Rat{}),
		NewEquation(Single(ab).Sub(Single(ad)), number.Rat{}),
		NewEquation(Single(ac).Add(Single(bc)).Sub(Single(ad)), number.Rat{}),
	} {
		red := NewReducedEquation(eq, sys)
		red.Reduce()
		if err := sys.AddReducedEquation(i, red); err != nil {
			t.Fatalf("unexpected error on insert %d: %v", i, err)
		}
	}
	pivots := make(map[string]bool)
	for _, v := range []geom.Dist{ab, ac, ad, bc} {
		row, ok := sys.PivotRow(v)
		if !ok {
			continue
		}
		lead := row.Eqn().LHS().Leading()
		if lead.Var != v {
			t.Errorf("expected row of pivot %s to lead with it, leads with %s", v, lead.Var)
		}
		if !lead.Coeff.Eq(number.RatInt(1)) {
			t.Errorf("expected leading coefficient 1 for pivot %s, is %s", v, lead.Coeff)
		}
		if pivots[v.String()] {
			t.Errorf("pivot %s appears twice", v)
		}
		pivots[v.String()] = true
	}
	if len(pivots) != 3 {
		t.Errorf("expected 3 pivots, have %d", len(pivots))
	}
}

func TestNewlySolved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	ab, ac, _, _ := fixture(t)
	sys := NewSystem[geom.Dist, number.Rat]()

	red1 := NewReducedEquation(
		NewEquation(Single(ab).Sub(Single(ac)), number.RatInt(-2)), sys)
	red1.Reduce()
	if err := sys.AddReducedEquation(nil, red1); err != nil {
		t.Fatal(err)
	}
	if len(sys.NewlySolved()) != 0 {
		t.Error("expected no solved variables yet, have some")
	}

	red2 := NewReducedEquation(
		NewEquation(Single(ac), number.RatInt(3)), sys)
	red2.Reduce()
	if err := sys.AddReducedEquation(nil, red2); err != nil {
		t.Fatal(err)
	}
	// Back-substitution solves ab = 1 through the first row.
	solved := sys.NewlySolved()
	if len(solved) != 2 {
		t.Fatalf("expected both variables solved, have %d", len(solved))
	}
	rowAB, ok := sys.PivotRow(ab)
	if !ok {
		t.Fatal("expected pivot row for ab, none")
	}
	if !rowAB.Eqn().RHS().Eq(number.RatInt(1)) {
		t.Errorf("expected ab = 1, is %s", rowAB.Eqn().RHS())
	}
	sys.ClearNewlySolved()
	if len(sys.NewlySolved()) != 0 {
		t.Error("expected drained solved set to be empty, isn't")
	}
}

func TestContradiction(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	ab, _, _, _ := fixture(t)
	sys := NewSystem[geom.Dist, number.Rat]()

	red1 := NewReducedEquation(NewEquation(Single(ab), number.RatInt(1)), sys)
	red1.Reduce()
	if err := sys.AddReducedEquation(nil, red1); err != nil {
		t.Fatal(err)
	}
	red2 := NewReducedEquation(NewEquation(Single(ab), number.RatInt(2)), sys)
	red2.Reduce()
	err := sys.AddReducedEquation(nil, red2)
	if !errors.Is(err, ErrContradiction) {
		t.Errorf("expected contradiction error, is %v", err)
	}
}

func TestDuplicateIsSkipped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	ab, ac, _, _ := fixture(t)
	sys := NewSystem[geom.Dist, number.Rat]()

	eq := NewEquation(Single(ab).Sub(Single(ac)), number.Rat{})
	red1 := NewReducedEquation(eq, sys)
	red1.Reduce()
	if err := sys.AddReducedEquation(nil, red1); err != nil {
		t.Fatal(err)
	}
	red2 := NewReducedEquation(eq, sys)
	red2.Reduce()
	if !red2.IsSolved() {
		t.Error("expected duplicate to reduce to solved, doesn't")
	}
	if err := sys.AddReducedEquation(nil, red2); err != nil {
		t.Errorf("expected duplicate insert to be silent, is %v", err)
	}
	if sys.Size() != 1 {
		t.Errorf("expected system size 1 after duplicate, is %d", sys.Size())
	}
}

func TestSuspectedRatios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	ab, ac, ad, _ := fixture(t)
	sys := NewSystem[geom.Dist, number.Rat]()

	// ab - 1/3 ad = 0 and ac - 1/2 ad = 0: both pivots wait on ad.
	for _, eq := range []DistEquation{
		NewEquation(Single(ab).Sub(SingleTerm(ad, number.NewRat(1, 3))), number.Rat{}),
		NewEquation(Single(ac).Sub(SingleTerm(ad, number.NewRat(1, 2))), number.Rat{}),
	} {
		red := NewReducedEquation(eq, sys)
		red.Reduce()
		if err := sys.AddReducedEquation(nil, red); err != nil {
			t.Fatal(err)
		}
	}
	cands := sys.GenerateSuspectedRatios()
	// singleton candidates for both rows, plus the pair (ab, ac)
	if len(cands) != 3 {
		t.Fatalf("expected 3 candidates, have %d", len(cands))
	}
	foundPair := false
	for _, cand := range cands {
		if cand.Left == ab.Squared() && cand.Right == ac.Squared() {
			foundPair = true
			if !cand.Ratio.Eq(number.NewRat(4, 9)) {
				t.Errorf("expected |ab|²:|ac|² = 4/9, is %s", cand.Ratio)
			}
		}
	}
	if !foundPair {
		t.Error("expected the (ab, ac) pair candidate, missing")
	}
}

func TestAngleBranchSolvedTest(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.ar")
	defer teardown()
	prob := geom.NewProblem()
	a, _ := prob.AddPoint("a", 0, 0)
	b, _ := prob.AddPoint("b", 1, 0)
	c, _ := prob.AddPoint("c", 0, 1)
	d, _ := prob.AddPoint("d", 1, 1)
	sab := geom.NewSlopeAngle(a, b)
	scd := geom.NewSlopeAngle(c, d)
	sys := NewSystem[geom.SlopeAngle, number.AddCircle]()

	// ab - cd = 0 (parallel)
	red1 := NewReducedEquation(
		SubEqConst(sab, scd, number.AddCircle{}), sys)
	red1.Reduce()
	if err := sys.AddReducedEquation(nil, red1); err != nil {
		t.Fatal(err)
	}
	// the same fact reduces to zero
	red2 := NewReducedEquation(
		SubEqConst(sab, scd, number.AddCircle{}), sys)
	red2.Reduce()
	if !red2.IsSolved() {
		t.Error("expected parallel fact to be implied, isn't")
	}
	// ab - cd = 1/2 (perpendicular) contradicts mod 1 and is not solved
	red3 := NewReducedEquation(
		SubEqConst(sab, scd, number.NewAddCircle(number.NewRat(1, 2))), sys)
	red3.Reduce()
	if red3.IsSolved() {
		t.Error("expected perpendicular fact not to be implied, is")
	}
}
