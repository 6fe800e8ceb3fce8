package solver

import (
	"fmt"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
	"github.com/npillmayer/geoproof/statement"
)

// ProofState describes how far a statement's proof has progressed, and
// if proved, by which means.
type ProofState uint8

const (
	// NotProved means no proof yet.
	NotProved ProofState = iota
	// ByRefl marks a statement true by reflexivity.
	ByRefl
	// ByAssumption marks a problem hypothesis.
	ByAssumption
	// Numerical marks a verified numerical-only statement.
	Numerical
	// ByARDist marks a proof by length chasing.
	ByARDist
	// ByARSquaredDist marks a proof by squared-length chasing.
	ByARSquaredDist
	// ByARRatio marks a proof by ratio chasing.
	ByARRatio
	// ByARAngle marks a proof by angle chasing.
	ByARAngle
	// ByTheorem marks a proof by a deduction rule.
	ByTheorem
)

func (st ProofState) String() string {
	switch st {
	case NotProved:
		return "not proved"
	case ByRefl:
		return "by reflexivity"
	case ByAssumption:
		return "by assumption"
	case Numerical:
		return "verified numerically"
	case ByARDist:
		return "by length chasing"
	case ByARSquaredDist:
		return "by squared length chasing"
	case ByARRatio:
		return "by ratio chasing"
	case ByARAngle:
		return "by angle chasing"
	case ByTheorem:
		return "by theorem"
	}
	return "unknown"
}

// reduction pairs a reduction trace with the rational that scales the
// statement's raw equation to the normalized equation in the table.
type reduction[V ar.Var[V], R ar.RHS[R]] struct {
	coeff number.Rat
	red   *ar.ReducedEquation[V, R]
}

// StatementProof is the proof record of one interned statement. It is
// created unproved, carries a reduction scratchpad per AR domain in
// which the statement has an equation form, and transitions monotonely
// into exactly one proved state.
type StatementProof struct {
	solver        *Solver
	stmt          statement.Statement
	state         ProofState
	theorem       int // index into the solver's applications, if ByTheorem
	impliedBy     []int
	distEqn       reduction[geom.Dist, number.Rat]
	squaredEqn    reduction[geom.SquaredDist, number.Rat]
	ratioEqn      reduction[geom.SinOrDist, number.RootRat]
	angleEqn      reduction[geom.SlopeAngle, number.AddCircle]
	pointDeps     map[geom.Point]struct{}
	neededForGoal bool
}

// Statement returns the statement being proved.
func (pf *StatementProof) Statement() statement.Statement { return pf.stmt }

// State returns the proof state.
func (pf *StatementProof) State() ProofState { return pf.state }

// IsProved reports whether the statement has been established.
func (pf *StatementProof) IsProved() bool { return pf.state != NotProved }

// Theorem returns the index of the proving theorem, if ByTheorem.
func (pf *StatementProof) Theorem() int { return pf.theorem }

// TheoremsThatImply lists theorem applications that conclude this
// statement.
func (pf *StatementProof) TheoremsThatImply() []int { return pf.impliedBy }

// NeededForGoal reports whether the backward sweep from the goals
// reached this proof.
func (pf *StatementProof) NeededForGoal() bool { return pf.neededForGoal }

// PointDependencies returns the closed set of points this proof
// depends on.
func (pf *StatementProof) PointDependencies() []geom.Point {
	pts := make([]geom.Point, 0, len(pf.pointDeps))
	for p := range pf.pointDeps {
		pts = append(pts, p)
	}
	sortPoints(pts)
	return pts
}

func sortPoints(pts []geom.Point) {
	for i := 1; i < len(pts); i++ {
		for j := i; j > 0 && pts[j].Less(pts[j-1]); j-- {
			pts[j], pts[j-1] = pts[j-1], pts[j]
		}
	}
}

func (pf *StatementProof) registerAsConclusion(k int) {
	pf.impliedBy = append(pf.impliedBy, k)
}

// ProveByAssumption marks a problem hypothesis as established.
func (pf *StatementProof) ProveByAssumption() error {
	return pf.setProved(ByAssumption)
}

// initialProgress tries the trivial proofs: reflexivity and numerical
// verification. A numerical-only statement failing its check is a
// modeling error and fatal.
func (pf *StatementProof) initialProgress() error {
	if pf.stmt.IsRefl() {
		return pf.setProved(ByRefl)
	}
	if pf.stmt.NumericalOnly() {
		if statement.CheckNumerically(pf.stmt) {
			return pf.setProved(Numerical)
		}
		for _, p := range pf.stmt.Points() {
			tracer().Errorf("%s = (%g, %g)", p.Name(), p.X(), p.Y())
		}
		return fmt.Errorf("numerical-only statement %s fails its check", pf.stmt)
	}
	return nil
}

// MakeProgress re-runs the reductions of every applicable AR domain
// and establishes the statement on the first domain that solves it.
func (pf *StatementProof) MakeProgress() error {
	if pf.state != NotProved {
		return nil
	}
	if pf.distEqn.red != nil {
		pf.distEqn.red.Reduce()
		if pf.distEqn.red.IsSolved() {
			return pf.setProved(ByARDist)
		}
	}
	if pf.squaredEqn.red != nil {
		pf.squaredEqn.red.Reduce()
		if pf.squaredEqn.red.IsSolved() {
			return pf.setProved(ByARSquaredDist)
		}
	}
	if pf.ratioEqn.red != nil {
		pf.ratioEqn.red.Reduce()
		if pf.ratioEqn.red.IsSolved() {
			return pf.setProved(ByARRatio)
		}
	}
	if pf.angleEqn.red != nil {
		pf.angleEqn.red.Reduce()
		if pf.angleEqn.red.IsSolved() {
			return pf.setProved(ByARAngle)
		}
	}
	return nil
}

// setTheorem marks the statement as concluded by theorem application
// ind.
func (pf *StatementProof) setTheorem(ind int) error {
	pf.theorem = ind
	return pf.setProved(ByTheorem)
}

func (pf *StatementProof) setProved(state ProofState) error {
	if state == NotProved {
		return nil
	}
	if pf.state != NotProved {
		return fmt.Errorf("trying to re-prove statement %s", pf.stmt)
	}
	pf.state = state
	pf.solver.pushEstablished(pf)

	if !statement.CheckNumerically(pf.stmt) {
		tracer().Errorf("established a numerically incorrect statement %s", pf.stmt)
	}

	if r, ok := pf.stmt.AsRatioSquaredDist(); ok {
		pf.solver.rememberRatio(r.LeftSquaredDist(), r.RightSquaredDist())
	}

	if pf.distEqn.red != nil {
		pf.distEqn.red.Reduce()
	}
	if pf.squaredEqn.red != nil {
		pf.squaredEqn.red.Reduce()
	}
	if pf.ratioEqn.red != nil {
		pf.ratioEqn.red.Reduce()
	}
	if pf.angleEqn.red != nil {
		pf.angleEqn.red.Reduce()
	}

	if err := pf.solver.addEstablishedEquations(pf); err != nil {
		return err
	}

	pf.pointDeps = make(map[geom.Point]struct{})
	for _, dep := range pf.ImmediateDependencies() {
		for p := range dep.pointDeps {
			pf.pointDeps[p] = struct{}{}
		}
	}
	for _, p := range pf.stmt.Points() {
		pf.pointDeps[p] = struct{}{}
	}
	return nil
}

// ImmediateDependencies lists the direct antecedents of the proof:
// nothing for axioms, the theorem's hypotheses for a rule application,
// the statements behind the reduction's rows for an AR proof. The list
// is not deduplicated.
func (pf *StatementProof) ImmediateDependencies() []*StatementProof {
	switch pf.state {
	case ByTheorem:
		return pf.solver.applications[pf.theorem].Hypotheses()
	case ByARDist:
		return factsToProofs(pf.distEqn.red.Dependencies())
	case ByARSquaredDist:
		return factsToProofs(pf.squaredEqn.red.Dependencies())
	case ByARRatio:
		return factsToProofs(pf.ratioEqn.red.Dependencies())
	case ByARAngle:
		return factsToProofs(pf.angleEqn.red.Dependencies())
	}
	return nil
}

func factsToProofs(facts []ar.Fact) []*StatementProof {
	res := make([]*StatementProof, len(facts))
	for i, f := range facts {
		res[i] = f.(*StatementProof)
	}
	return res
}

// SetNeededForGoal marks the proof and, recursively, its antecedents
// as needed for a goal.
func (pf *StatementProof) SetNeededForGoal() {
	if pf.neededForGoal {
		return
	}
	pf.neededForGoal = true
	for _, dep := range pf.ImmediateDependencies() {
		dep.SetNeededForGoal()
	}
}

// NeedsAux reports whether the proof depends on a point with a larger
// index than every point of the statement itself. The heuristic errs
// heavily on the side of false negatives.
func (pf *StatementProof) NeedsAux() bool {
	var maxPt geom.Point
	for i, p := range pf.stmt.Points() {
		if i == 0 || maxPt.Less(p) {
			maxPt = p
		}
	}
	for p := range pf.pointDeps {
		if maxPt.Less(p) {
			return true
		}
	}
	return false
}

func (pf *StatementProof) String() string {
	switch pf.state {
	case ByTheorem:
		return pf.solver.applications[pf.theorem].TheoremOf().String()
	case ByRefl, ByAssumption, Numerical:
		return fmt.Sprintf("%s %s", pf.state, pf.stmt)
	case ByARDist, ByARSquaredDist, ByARRatio, ByARAngle:
		s := "From "
		for i, dep := range pf.ImmediateDependencies() {
			if i > 0 {
				s += ", "
			}
			s += dep.stmt.String()
		}
		return fmt.Sprintf("%s %s %s", s, pf.state, pf.stmt)
	}
	return fmt.Sprintf("%s: not proved", pf.stmt)
}
