package solver

import (
	"fmt"
	"strings"

	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/statement"
)

// Theorem is an immutable named implication between statement lists.
// The rule identifier follows the Newclid rule numbering where one
// exists; theorems proved through the AR tables carry "ignore".
type Theorem struct {
	name        string
	rule        string
	hypotheses  []statement.Statement
	conclusions []statement.Statement
}

func newTheorem(name, rule string) *Theorem {
	return &Theorem{name: name, rule: rule}
}

// Name returns the human-readable theorem name.
func (t *Theorem) Name() string { return t.name }

// Rule returns the rule identifier.
func (t *Theorem) Rule() string { return t.rule }

// Hypotheses returns the hypothesis list.
func (t *Theorem) Hypotheses() []statement.Statement { return t.hypotheses }

// Conclusions returns the conclusion list.
func (t *Theorem) Conclusions() []statement.Statement { return t.conclusions }

func (t *Theorem) addHypothesis(ss ...statement.Statement) *Theorem {
	t.hypotheses = append(t.hypotheses, ss...)
	return t
}

func (t *Theorem) addConclusion(ss ...statement.Statement) *Theorem {
	t.conclusions = append(t.conclusions, ss...)
	return t
}

func (t *Theorem) addSimilarTrianglesHypotheses(p statement.SimilarTriangles) *Theorem {
	return t.addHypothesis(p.ToSameClock())
}

// converse swaps hypotheses and conclusions. The converse of a correct
// theorem is often incorrect, so only factories use it, for pairs known
// to be valid.
func (t *Theorem) converse(name, rule string) *Theorem {
	res := newTheorem(name, rule)
	res.hypotheses = append(res.hypotheses, t.conclusions...)
	res.conclusions = append(res.conclusions, t.hypotheses...)
	return res
}

// Normalize returns the theorem with every statement normalized.
func (t *Theorem) Normalize() *Theorem {
	res := newTheorem(t.name, t.rule)
	for _, h := range t.hypotheses {
		res.hypotheses = append(res.hypotheses, h.Normalize())
	}
	for _, c := range t.conclusions {
		res.conclusions = append(res.conclusions, c.Normalize())
	}
	return res
}

// CheckNumerically verifies all hypotheses and conclusions against the
// coordinates.
func (t *Theorem) CheckNumerically() bool {
	for _, h := range t.hypotheses {
		if !statement.CheckNumerically(h) {
			return false
		}
	}
	for _, c := range t.conclusions {
		if !statement.CheckNumerically(c) {
			return false
		}
	}
	return true
}

// MaxPoint returns the maximal point used anywhere in the theorem.
func (t *Theorem) MaxPoint() geom.Point {
	var best geom.Point
	first := true
	for _, list := range [2][]statement.Statement{t.hypotheses, t.conclusions} {
		for _, s := range list {
			for _, p := range s.Points() {
				if first || best.Less(p) {
					best = p
					first = false
				}
			}
		}
	}
	return best
}

func (t *Theorem) String() string {
	var sb strings.Builder
	for i, h := range t.hypotheses {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(h.String())
	}
	rule := t.rule
	if rule == "ignore" {
		rule = t.name
	}
	fmt.Fprintf(&sb, " ⊢[%s] ", rule)
	for i, c := range t.conclusions {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
