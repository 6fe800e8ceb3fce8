package solver_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/parse"
	"github.com/npillmayer/geoproof/solver"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func solve(t *testing.T, input string, config *solver.Config) (*solver.Solver, bool) {
	t.Helper()
	prob, err := parse.Problem(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	s, err := solver.NewSolver(prob, config)
	if err != nil {
		t.Fatalf("unexpected solver error: %v", err)
	}
	solved, err := s.Run(solver.MaxLevels)
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	return s, solved
}

func goalRule(t *testing.T, s *solver.Solver) string {
	t.Helper()
	goal := s.Goals()[0]
	if goal.State() != solver.ByTheorem {
		t.Fatalf("expected goal proved by theorem, is %s", goal.State())
	}
	return s.Applications()[goal.Theorem()].TheoremOf().Rule()
}

func TestIsoscelesBaseAngles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.solver")
	defer teardown()
	input := `name isosceles triangle
point a 0 0
point b 4 0
point c 2 1
assume cong a c b c
prove eqangle c a b a b c
`
	s, solved := solve(t, input, solver.DefaultConfig())
	if !solved {
		t.Fatal("expected the problem to be solved, isn't")
	}
	if rule := goalRule(t, s); rule != "r13" {
		t.Errorf("expected isosceles rule r13, is %s", rule)
	}
}

func TestMidpointHalfLengthByAR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.solver")
	defer teardown()
	input := `point a 0 0
point m 1 0
point b 2 0
assume midp m a b
prove rconst a m a b 1/2
`
	s, solved := solve(t, input, solver.DefaultConfig())
	if !solved {
		t.Fatal("expected the problem to be solved, isn't")
	}
	if got := s.Goals()[0].State(); got != solver.ByARDist {
		t.Errorf("expected the goal proved by length chasing, is %s", got)
	}
}

func TestMidpointHalfLengthByRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.solver")
	defer teardown()
	input := `point a 0 0
point m 1 0
point b 2 0
assume midp m a b
prove rconst a m a b 1/2
`
	config := solver.DefaultConfig()
	config.ARDist = false
	s, solved := solve(t, input, config)
	if !solved {
		t.Fatal("expected the problem to be solved, isn't")
	}
	if rule := goalRule(t, s); rule != "r51" {
		t.Errorf("expected midpoint rule r51, is %s", rule)
	}
}

func TestCyclicAngleChase(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.solver")
	defer teardown()
	input := `point a 1 0
point b 0 1
point c -1 0
point d 0 -1
assume cyclic a b c d
prove eqangle a b d a c d
`
	s, solved := solve(t, input, solver.DefaultConfig())
	if !solved {
		t.Fatal("expected the problem to be solved, isn't")
	}
	goal := s.Goals()[0]
	switch goal.State() {
	case solver.ByARAngle:
		if len(goal.ImmediateDependencies()) < 2 {
			t.Errorf("expected an angle-chase combination of at least 2 facts, have %d",
				len(goal.ImmediateDependencies()))
		}
	case solver.ByTheorem:
		if rule := s.Applications()[goal.Theorem()].TheoremOf().Rule(); rule != "r03" {
			t.Errorf("expected cyclic-properties rule r03, is %s", rule)
		}
	default:
		t.Errorf("expected goal by angle chasing or by rule, is %s", goal.State())
	}
}

func TestContradictionIsFatal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.solver")
	defer teardown()
	input := `point a 0 0
point b 1 0
assume lconst a b 1
assume lconst a b 2
`
	prob, err := parse.Problem(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	_, err = solver.NewSolver(prob, solver.DefaultConfig())
	if !errors.Is(err, ar.ErrContradiction) {
		t.Errorf("expected a contradiction during hypothesis insertion, is %v", err)
	}
}

func TestThales(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.solver")
	defer teardown()
	input := `name thales
point a 0 0
point b 1 0
point c 3 0
point d 0 1
point e 1 1
point f 3 1
assume coll a b c
assume coll d e f
assume para b e c f
assume eqratio a b a c d e d f
prove para a d b e
`
	s, solved := solve(t, input, solver.DefaultConfig())
	if !solved {
		t.Fatal("expected the problem to be solved, isn't")
	}
	if rule := goalRule(t, s); rule != "r41" {
		t.Errorf("expected Thales rule r41, is %s", rule)
	}
	names := map[string]int{}
	for _, dep := range s.Goals()[0].ImmediateDependencies() {
		names[dep.Statement().Name()]++
	}
	if names["coll"] != 2 {
		t.Errorf("expected both coll hypotheses among antecedents, have %d", names["coll"])
	}
	if names["eqratio"] != 1 {
		t.Errorf("expected the eqratio fact among antecedents, have %d", names["eqratio"])
	}
}

func TestSaturationWithoutProof(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.solver")
	defer teardown()
	input := `point a 0 0
point b 1 0
point c 0 2
point d 1 2
assume diff a b
prove cong a c b d
`
	s, solved := solve(t, input, solver.DefaultConfig())
	if solved {
		t.Fatal("expected the problem to saturate unsolved, is solved")
	}
	var text bytes.Buffer
	if err := s.PrintProof(&text); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text.String(), "not proved") {
		t.Error("expected the unproved goal to be annotated, isn't")
	}
	var out bytes.Buffer
	if err := s.PrintJSON(&out); err != nil {
		t.Fatal(err)
	}
	var doc map[string]any
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("unexpected JSON error: %v", err)
	}
	if doc["status"] != "saturated" {
		t.Errorf("expected status saturated, is %v", doc["status"])
	}
}

func TestJSONSolvedStatus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.solver")
	defer teardown()
	input := `point a 0 0
point m 1 0
point b 2 0
assume midp m a b
prove rconst a m a b 1/2
`
	s, _ := solve(t, input, solver.DefaultConfig())
	var out bytes.Buffer
	if err := s.PrintJSON(&out); err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Status            string           `json:"status"`
		DeductionsForGoal []map[string]any `json:"deductions_for_goal"`
		AllDeductions     []map[string]any `json:"all_deductions"`
	}
	if err := json.Unmarshal(out.Bytes(), &doc); err != nil {
		t.Fatalf("unexpected JSON error: %v", err)
	}
	if doc.Status != "solved" {
		t.Errorf("expected status solved, is %s", doc.Status)
	}
	if len(doc.DeductionsForGoal) == 0 {
		t.Fatal("expected deductions for the goal, none")
	}
	foundAR := false
	for _, d := range doc.DeductionsForGoal {
		if d["deduction_type"] == "ar" {
			foundAR = true
			if d["ar_reason"] != "length chasing" {
				t.Errorf("expected length chasing, is %v", d["ar_reason"])
			}
			assumptions, ok := d["assumptions"].([]any)
			if !ok || len(assumptions) == 0 {
				t.Fatal("expected AR assumptions with coefficients, none")
			}
			first, ok := assumptions[0].(map[string]any)
			if !ok || first["coeff"] == nil {
				t.Error("expected an exposed coefficient on AR assumptions, none")
			}
		}
	}
	if !foundAR {
		t.Error("expected an AR deduction for the goal, none")
	}
}

func TestMatcherFindsTheorems(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.solver")
	defer teardown()
	input := `point a 0 0
point b 4 0
point c 2 1
assume cong a c b c
prove eqangle c a b a b c
`
	prob, err := parse.Problem(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	theorems := solver.MatchTheorems(prob.Geometry, solver.DefaultConfig())
	if len(theorems) == 0 {
		t.Fatal("expected matched theorems, none")
	}
	foundIsosceles := false
	for _, thm := range theorems {
		if !thm.CheckNumerically() {
			t.Errorf("matched theorem fails its numerical check: %s", thm)
		}
		if thm.Rule() == "r13" {
			foundIsosceles = true
		}
	}
	if !foundIsosceles {
		t.Error("expected the isosceles theorem r13 to be matched, isn't")
	}
}
