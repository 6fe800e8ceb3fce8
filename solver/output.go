package solver

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/number"
	"github.com/npillmayer/geoproof/statement"
)

// PrintProof writes the established statements as text, one per line
// with provenance. With goals present, only the facts the goals depend
// on are listed, and unproved goals are annotated.
func (s *Solver) PrintProof(w io.Writer) error {
	for _, g := range s.goals {
		if g.IsProved() {
			g.SetNeededForGoal()
		}
	}
	for _, pf := range s.established {
		if len(s.goals) == 0 || pf.NeededForGoal() {
			if _, err := fmt.Fprintln(w, pf); err != nil {
				return err
			}
		}
	}
	for _, g := range s.goals {
		if !g.IsProved() {
			if _, err := fmt.Fprintf(w, "%s: not proved\n", g.Statement()); err != nil {
				return err
			}
		}
	}
	return nil
}

func statementJSON(st statement.Statement) map[string]any {
	obj := st.JSON()
	return map[string]any{"name": obj.Name, "points": obj.Points}
}

func pointDepsJSON(pf *StatementProof) []string {
	var names []string
	for _, p := range pf.PointDependencies() {
		names = append(names, p.Name())
	}
	if names == nil {
		names = []string{}
	}
	return names
}

// lhsTermsJSON maps each variable of an equation's LHS to its
// coefficient, for external verification of AR deductions.
func lhsTermsJSON[V ar.Var[V], R ar.RHS[R]](eq ar.Equation[V, R]) map[string]string {
	terms := make(map[string]string)
	for _, t := range eq.LHS().Terms() {
		terms[t.Var.String()] = t.Coeff.String()
	}
	return terms
}

// arDeductionJSON renders a proof found by one AR engine, exposing the
// linear combination: each assumption carries the coefficient with
// which its equation enters the derivation of the conclusion.
func arDeductionJSON[V ar.Var[V], R ar.RHS[R]](reason string, pf *StatementProof,
	red *reduction[V, R], depEqn func(*StatementProof) (number.Rat, ar.Equation[V, R], bool)) map[string]any {
	//
	assumptions := []any{}
	for _, t := range red.red.Combo().Terms() {
		dep := red.red.System().SourceAt(t.Index).(*StatementProof)
		obj := statementJSON(dep.Statement())
		depCoeff, eq, ok := depEqn(dep)
		if ok {
			obj["coeff"] = t.Coeff.Mul(depCoeff).Div(red.coeff).String()
			obj["lhs_terms"] = lhsTermsJSON(eq)
		}
		assumptions = append(assumptions, obj)
	}
	conclusion := statementJSON(pf.Statement())
	conclusion["lhs_terms"] = lhsTermsJSON(red.red.Original())
	return map[string]any{
		"deduction_type": "ar",
		"ar_reason":      reason,
		"point_deps":     pointDepsJSON(pf),
		"assumptions":    assumptions,
		"assertions":     []any{conclusion},
	}
}

func (s *Solver) deductionJSON(pf *StatementProof) map[string]any {
	switch pf.State() {
	case ByARDist:
		return arDeductionJSON("length chasing", pf, &pf.distEqn,
			func(dep *StatementProof) (number.Rat, ar.DistEquation, bool) {
				eq, ok := dep.Statement().DistEquation()
				return dep.distEqn.coeff, eq, ok
			})
	case ByARSquaredDist:
		return arDeductionJSON("squared lengths chasing", pf, &pf.squaredEqn,
			func(dep *StatementProof) (number.Rat, ar.SquaredDistEquation, bool) {
				eq, ok := dep.Statement().SquaredDistEquation()
				return dep.squaredEqn.coeff, eq, ok
			})
	case ByARRatio:
		return arDeductionJSON("ratio chasing", pf, &pf.ratioEqn,
			func(dep *StatementProof) (number.Rat, ar.SinOrDistEquation, bool) {
				eq, ok := dep.Statement().SinOrDistEquation()
				return dep.ratioEqn.coeff, eq, ok
			})
	case ByARAngle:
		return arDeductionJSON("angle chasing", pf, &pf.angleEqn,
			func(dep *StatementProof) (number.Rat, ar.SlopeAngleEquation, bool) {
				eq, ok := dep.Statement().SlopeAngleEquation()
				return dep.angleEqn.coeff, eq, ok
			})
	}

	var name, deductionType string
	switch pf.State() {
	case NotProved:
		name, deductionType = "not proved", "none"
	case ByRefl:
		name, deductionType = "by reflexivity", "refl"
	case ByAssumption:
		name, deductionType = "By construction", "rule"
	case Numerical:
		name, deductionType = "Numerical check", "num"
	case ByTheorem:
		name, deductionType = s.applications[pf.Theorem()].TheoremOf().Rule(), "rule"
	}
	assumptions := []any{}
	for _, dep := range pf.ImmediateDependencies() {
		assumptions = append(assumptions, statementJSON(dep.Statement()))
	}
	return map[string]any{
		"deduction_type": deductionType,
		"newclid_rule":   name,
		"point_deps":     pointDepsJSON(pf),
		"assumptions":    assumptions,
		"assertions":     []any{statementJSON(pf.Statement())},
	}
}

// PrintJSON writes the run's result as a single JSON object.
func (s *Solver) PrintJSON(w io.Writer) error {
	goals := []any{}
	for _, g := range s.goals {
		if g.IsProved() {
			g.SetNeededForGoal()
		}
		goals = append(goals, statementJSON(g.Statement()))
	}
	allDeductions := []any{}
	deductionsForGoal := []any{}
	for _, pf := range s.established {
		val := s.deductionJSON(pf)
		allDeductions = append(allDeductions, val)
		if pf.NeededForGoal() {
			deductionsForGoal = append(deductionsForGoal, val)
		}
	}
	status := "saturated"
	if s.solved {
		status = "solved"
	}
	enc := json.NewEncoder(w)
	return enc.Encode(map[string]any{
		"status":              status,
		"goals":               goals,
		"deductions_for_goal": deductionsForGoal,
		"all_deductions":      allDeductions,
	})
}

// PrintTheorems writes matched theorems, one per line or as JSON.
func PrintTheorems(w io.Writer, theorems []*Theorem, useJSON bool) error {
	if !useJSON {
		for _, thm := range theorems {
			if _, err := fmt.Fprintln(w, thm); err != nil {
				return err
			}
		}
		return nil
	}
	list := []any{}
	for _, thm := range theorems {
		hyps := []any{}
		for _, h := range thm.Hypotheses() {
			hyps = append(hyps, statementJSON(h))
		}
		concls := []any{}
		for _, c := range thm.Conclusions() {
			concls = append(concls, statementJSON(c))
		}
		list = append(list, map[string]any{
			"name":         thm.Name(),
			"newclid_rule": thm.Rule(),
			"hypotheses":   hyps,
			"conclusions":  concls,
		})
	}
	return json.NewEncoder(w).Encode(list)
}
