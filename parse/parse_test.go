package parse

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParseProblem(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.parse")
	defer teardown()
	input := `name isosceles triangle
point a 0 0
point b 2 0
point c 1 1.7320508075688772
assume cong a b a c
prove eqangle a b c b c a
`
	prob, err := Problem(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if prob.Geometry.Name() != "isosceles triangle" {
		t.Errorf("expected problem name to be set, is %q", prob.Geometry.Name())
	}
	if prob.Geometry.NumPoints() != 3 {
		t.Errorf("expected 3 points, have %d", prob.Geometry.NumPoints())
	}
	if len(prob.Hypotheses) != 1 {
		t.Fatalf("expected 1 hypothesis, have %d", len(prob.Hypotheses))
	}
	if prob.Hypotheses[0].Name() != "cong" {
		t.Errorf("expected hypothesis cong, is %s", prob.Hypotheses[0].Name())
	}
	if len(prob.Goals) != 1 {
		t.Fatalf("expected 1 goal, have %d", len(prob.Goals))
	}
	if prob.Goals[0].Name() != "equal_angles" {
		t.Errorf("expected goal equal_angles, is %s", prob.Goals[0].Name())
	}
}

func TestParseMultiPointPredicates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.parse")
	defer teardown()
	input := `point a 0 0
point b 1 0
point c 2 0
point d 3 0
point e 4 0
assume coll a b c d e
`
	prob, err := Problem(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	// five collinear points expand into three sliding triples
	if len(prob.Hypotheses) != 3 {
		t.Errorf("expected 3 coll statements, have %d", len(prob.Hypotheses))
	}
}

func TestParseRationalArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.parse")
	defer teardown()
	input := `point a 0 0
point b 1 0
point m 0.5 0
assume rconst a m a b 1/2
assume lconst a b 1
assume aconst a b a m 0
`
	prob, err := Problem(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if len(prob.Hypotheses) != 3 {
		t.Errorf("expected 3 hypotheses, have %d", len(prob.Hypotheses))
	}
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "geoproof.parse")
	defer teardown()
	cases := []string{
		"frobnicate a b",
		"point a 0 zero",
		"assume unknownpred a b",
		"point a 0 0\nassume cong a b a c",
		"point a 0 0\npoint b 1 0\nassume cong a b",
		"point a 0 0\npoint a 1 0",
	}
	for _, input := range cases {
		if _, err := Problem(strings.NewReader(input)); err == nil {
			t.Errorf("expected parse error for %q, got none", input)
		}
	}
}
