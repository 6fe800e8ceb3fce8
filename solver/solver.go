package solver

import (
	"fmt"
	"strings"

	"github.com/npillmayer/geoproof/ar"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
	"github.com/npillmayer/geoproof/statement"
)

// MaxLevels caps the saturation loop.
const MaxLevels = 500

// Problem bundles the parsed geometry with its hypotheses and goals.
type Problem struct {
	Geometry   *geom.Problem
	Hypotheses []statement.Statement
	Goals      []statement.Statement
}

type sqdPair struct {
	left  geom.SquaredDist
	right geom.SquaredDist
}

// Solver is the proof-state manager: it owns the proof table, the
// theorem applications, and the four AR engines.
type Solver struct {
	problem *Problem
	config  *Config
	level   int

	applications []*TheoremApplication
	proofs       map[string]*StatementProof
	goals        []*StatementProof
	ratioFound   map[sqdPair]struct{}
	established  []*StatementProof
	solved       bool

	sysDist    *ar.DistSystem
	sysSquared *ar.SquaredDistSystem
	sysRatio   *ar.SinOrDistSystem
	sysAngle   *ar.SlopeAngleSystem

	eqnsDist    map[string]*ar.ReducedDistEquation
	eqnsSquared map[string]*ar.ReducedSquaredDistEquation
	eqnsRatio   map[string]*ar.ReducedSinOrDistEquation
	eqnsAngle   map[string]*ar.ReducedSlopeAngleEquation
}

// NewSolver initializes the proof state: hypotheses are interned and
// established by assumption, the matcher's theorems are enqueued, and
// the goals are interned.
func NewSolver(problem *Problem, config *Config) (*Solver, error) {
	s := &Solver{
		problem:     problem,
		config:      config,
		proofs:      make(map[string]*StatementProof),
		ratioFound:  make(map[sqdPair]struct{}),
		sysDist:     ar.NewSystem[geom.Dist, number.Rat](),
		sysSquared:  ar.NewSystem[geom.SquaredDist, number.Rat](),
		sysRatio:    ar.NewSystem[geom.SinOrDist, number.RootRat](),
		sysAngle:    ar.NewSystem[geom.SlopeAngle, number.AddCircle](),
		eqnsDist:    make(map[string]*ar.ReducedDistEquation),
		eqnsSquared: make(map[string]*ar.ReducedSquaredDistEquation),
		eqnsRatio:   make(map[string]*ar.ReducedSinOrDistEquation),
		eqnsAngle:   make(map[string]*ar.ReducedSlopeAngleEquation),
	}

	tracer().Infof("adding `by assumption` statements")
	for _, hyp := range problem.Hypotheses {
		pf, err := s.InsertStatement(hyp)
		if err != nil {
			return nil, err
		}
		if !pf.IsProved() {
			if err := pf.ProveByAssumption(); err != nil {
				return nil, err
			}
		}
	}

	tracer().Infof("matching theorems")
	for _, thm := range MatchTheorems(problem.Geometry, config) {
		if err := s.insertTheorem(thm); err != nil {
			return nil, err
		}
	}

	if len(problem.Goals) > 0 {
		tracer().Infof("adding problem's goals")
		for _, g := range problem.Goals {
			pf, err := s.InsertStatement(g)
			if err != nil {
				return nil, err
			}
			s.goals = append(s.goals, pf)
		}
	}
	return s, nil
}

// NumTheorems returns the number of enqueued theorem applications.
func (s *Solver) NumTheorems() int { return len(s.applications) }

// Applications returns the theorem applications.
func (s *Solver) Applications() []*TheoremApplication { return s.applications }

// Established returns the chronological list of established proofs.
func (s *Solver) Established() []*StatementProof { return s.established }

// Goals returns the goal proofs.
func (s *Solver) Goals() []*StatementProof { return s.goals }

// Solved reports whether all goals were proved.
func (s *Solver) Solved() bool { return s.solved }

// Level returns the current saturation level.
func (s *Solver) Level() int { return s.level }

func (s *Solver) pushEstablished(pf *StatementProof) {
	s.established = append(s.established, pf)
}

func (s *Solver) rememberRatio(l, r geom.SquaredDist) {
	if r.Compare(l) < 0 {
		l, r = r, l
	}
	s.ratioFound[sqdPair{l, r}] = struct{}{}
}

func (s *Solver) knownRatio(l, r geom.SquaredDist) bool {
	_, ok := s.ratioFound[sqdPair{l, r}]
	return ok
}

func eqKey[V ar.Var[V], R ar.RHS[R]](eq ar.Equation[V, R]) string {
	var sb strings.Builder
	for _, t := range eq.LHS().Terms() {
		fmt.Fprintf(&sb, "%s*%s;", t.Coeff, t.Var)
	}
	fmt.Fprintf(&sb, "=%s", eq.RHS())
	return sb.String()
}

// insertEquation interns a normalized equation into the per-domain
// dedup table, creating a fresh reduction trace on first sight.
// Returns the normalization coefficient alongside the shared trace.
func insertEquation[V ar.Var[V], R ar.RHS[R]](table map[string]*ar.ReducedEquation[V, R],
	sys *ar.System[V, R], eq ar.Equation[V, R]) (number.Rat, *ar.ReducedEquation[V, R]) {
	//
	coeff, norm := eq.Normalize()
	k := eqKey(norm)
	if red, ok := table[k]; ok {
		return coeff, red
	}
	red := ar.NewReducedEquation(norm, sys)
	table[k] = red
	return coeff, red
}

// InsertStatement interns a statement: it is normalized, deduplicated
// by fingerprint, given reduction scratchpads in every AR domain where
// it has an equation form, and probed for trivial proofs.
func (s *Solver) InsertStatement(st statement.Statement) (*StatementProof, error) {
	val := st.Normalize()
	k := val.Key()
	if pf, ok := s.proofs[k]; ok {
		return pf, nil
	}
	pf := &StatementProof{
		solver:  s,
		stmt:    val,
		theorem: -1,
	}
	pf.distEqn.coeff = number.RatInt(1)
	pf.squaredEqn.coeff = number.RatInt(1)
	pf.ratioEqn.coeff = number.RatInt(1)
	pf.angleEqn.coeff = number.RatInt(1)
	if s.config.ARDist {
		if eq, ok := val.DistEquation(); ok {
			pf.distEqn.coeff, pf.distEqn.red = insertEquation(s.eqnsDist, s.sysDist, eq)
		}
	}
	if s.config.ARSquared {
		if eq, ok := val.SquaredDistEquation(); ok {
			pf.squaredEqn.coeff, pf.squaredEqn.red = insertEquation(s.eqnsSquared, s.sysSquared, eq)
		}
	}
	if eq, ok := val.SinOrDistEquation(); ok {
		pf.ratioEqn.coeff, pf.ratioEqn.red = insertEquation(s.eqnsRatio, s.sysRatio, eq)
	}
	if eq, ok := val.SlopeAngleEquation(); ok {
		pf.angleEqn.coeff, pf.angleEqn.red = insertEquation(s.eqnsAngle, s.sysAngle, eq)
	}
	s.proofs[k] = pf
	if err := pf.initialProgress(); err != nil {
		return nil, err
	}
	return pf, nil
}

func (s *Solver) insertTheorem(thm *Theorem) error {
	k := len(s.applications)
	app, err := newTheoremApplication(s, thm, k)
	if err != nil {
		return err
	}
	s.applications = append(s.applications, app)
	return nil
}

// addEstablishedEquations feeds the proved statement's reductions into
// the four AR engines.
func (s *Solver) addEstablishedEquations(pf *StatementProof) error {
	if err := s.sysDist.AddReducedEquation(pf, pf.distEqn.red); err != nil {
		return err
	}
	if err := s.sysSquared.AddReducedEquation(pf, pf.squaredEqn.red); err != nil {
		return err
	}
	if err := s.sysRatio.AddReducedEquation(pf, pf.ratioEqn.red); err != nil {
		return err
	}
	return s.sysAngle.AddReducedEquation(pf, pf.angleEqn.red)
}

func (s *Solver) advanceTheorem(ind int) error {
	app := s.applications[ind]
	if app.State() != Pending {
		return nil
	}
	if err := app.advanceProof(); err != nil {
		return err
	}
	if app.State() != Proved {
		return nil
	}
	for _, pf := range app.Conclusions() {
		if pf.IsProved() {
			continue
		}
		if err := pf.MakeProgress(); err != nil {
			return err
		}
		if !pf.IsProved() {
			if err := pf.setTheorem(ind); err != nil {
				return err
			}
		}
	}
	return nil
}

// processSquaredDistEq drains the newly solved variables of the
// length, squared-length, and ratio engines into derived
// squared-distance constants. A distance solved to zero means the
// configuration is degenerate and is fatal.
func (s *Solver) processSquaredDistEq() error {
	establish := func(st statement.Statement) error {
		pf, err := s.InsertStatement(st)
		if err != nil {
			return err
		}
		if err := pf.MakeProgress(); err != nil {
			return err
		}
		if !pf.IsProved() {
			return fmt.Errorf("failed to prove a generated squared-dist constant %s", st)
		}
		return nil
	}

	for _, v := range s.sysDist.NewlySolved() {
		row, _ := s.sysDist.PivotRow(v)
		r := row.Eqn().RHS()
		if r.IsZero() {
			return fmt.Errorf("found zero distance: %s = 0", v)
		}
		if err := establish(statement.NewSquaredDistEq(v.Squared(), r.Mul(r))); err != nil {
			return err
		}
	}
	s.sysDist.ClearNewlySolved()

	for _, v := range s.sysSquared.NewlySolved() {
		row, _ := s.sysSquared.PivotRow(v)
		r := row.Eqn().RHS()
		if r.IsZero() {
			return fmt.Errorf("found zero squared distance: %s = 0", v)
		}
		if err := establish(statement.NewSquaredDistEq(v, r)); err != nil {
			return err
		}
	}
	s.sysSquared.ClearNewlySolved()

	for _, v := range s.sysRatio.NewlySolved() {
		// A solved sin²α = r is left to the known-sine theorems.
		if v.IsSin() {
			continue
		}
		row, _ := s.sysRatio.PivotRow(v)
		r, exact := row.Eqn().RHS().AsRat()
		if !exact || r.IsZero() {
			continue
		}
		if err := establish(statement.NewSquaredDistEq(v.SquaredDist(), r)); err != nil {
			return err
		}
	}
	s.sysRatio.ClearNewlySolved()
	return nil
}

// processRatioSquaredDist turns the engines' suspected proportionality
// candidates into proved ratio facts where the reduction confirms them.
func (s *Solver) processRatioSquaredDist() error {
	for _, cand := range s.sysDist.GenerateSuspectedRatios() {
		if s.knownRatio(cand.Left, cand.Right) {
			continue
		}
		r := statement.NewRatioSquaredDist(cand.Left, cand.Right, cand.Ratio)
		if !statement.CheckNumerically(r) {
			continue
		}
		eq, ok := r.DistEquation()
		if !ok {
			continue
		}
		red := ar.NewReducedEquation(eq, s.sysDist)
		red.Reduce()
		if red.IsSolved() {
			if err := s.establishGenerated(r.NormalizeGenerated()); err != nil {
				return err
			}
		}
	}

	for _, cand := range s.sysSquared.GenerateSuspectedRatios() {
		if s.knownRatio(cand.Left, cand.Right) {
			continue
		}
		r := statement.NewRatioSquaredDist(cand.Left, cand.Right, cand.Ratio)
		if !statement.CheckNumerically(r) {
			continue
		}
		eq, ok := r.SquaredDistEquation()
		if !ok {
			continue
		}
		red := ar.NewReducedEquation(eq, s.sysSquared)
		red.Reduce()
		if red.IsSolved() {
			if err := s.establishGenerated(r.NormalizeGenerated()); err != nil {
				return err
			}
		}
	}

	for _, cand := range s.sysRatio.GenerateSuspectedRatios() {
		if s.knownRatio(cand.Left, cand.Right) {
			continue
		}
		r := statement.NewRatioSquaredDist(cand.Left, cand.Right, cand.Ratio)
		eq, ok := r.SinOrDistEquation()
		if !ok {
			continue
		}
		red := ar.NewReducedEquation(eq, s.sysRatio)
		red.Reduce()
		// The candidate carried ratio 1; a remainder 1 = c means the
		// true proportion is 1/c.
		if !red.Remainder().LHS().Empty() {
			continue
		}
		c, exact := red.Remainder().RHS().AsRat()
		if !exact || c.IsZero() {
			continue
		}
		derived := statement.NewRatioSquaredDist(cand.Left, cand.Right, c.Inv())
		if err := s.establishGenerated(derived.NormalizeGenerated()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Solver) establishGenerated(st statement.Statement) error {
	pf, err := s.InsertStatement(st)
	if err != nil {
		return err
	}
	return pf.MakeProgress()
}

// RunLevel goes once over all pending theorems visible under the
// max-point ceiling, drains the AR engines, and re-tries the goals.
// It reports whether any new statement was established.
func (s *Solver) RunLevel(maxPt geom.Point) (bool, error) {
	before := len(s.established)
	tracer().Infof("running level %d, starting with %d statements", s.level, before)

	n := len(s.applications)
	for i := 0; i < n; i++ {
		if !maxPt.Less(s.applications[i].MaxPoint()) {
			if err := s.advanceTheorem(i); err != nil {
				return false, err
			}
		}
	}

	if err := s.processSquaredDistEq(); err != nil {
		return false, err
	}
	if err := s.processRatioSquaredDist(); err != nil {
		return false, err
	}

	if len(s.goals) > 0 {
		allProved := true
		for _, g := range s.goals {
			if g.IsProved() {
				continue
			}
			if err := g.MakeProgress(); err != nil {
				return false, err
			}
			if !g.IsProved() {
				allProved = false
			}
		}
		s.solved = allProved
	}

	tracer().Infof("proved %d new facts, %d total",
		len(s.established)-before, len(s.established))
	s.level++
	return before < len(s.established), nil
}

// Run saturates level by level. With goals, it stops as soon as all
// goals are proved or a level makes no progress. Without goals, it
// iterates the max-point ceiling over all points and saturates under
// each.
func (s *Solver) Run(maxLevels int) (bool, error) {
	if len(s.problem.Goals) == 0 {
		for _, maxPt := range s.problem.Geometry.AllPoints() {
			for i := 0; i < maxLevels; i++ {
				progress, err := s.RunLevel(maxPt)
				if err != nil {
					return false, err
				}
				if !progress {
					break
				}
			}
		}
		s.solved = true
		return true, nil
	}

	maxPt := s.problem.Geometry.At(s.problem.Geometry.NumPoints() - 1)
	for i := 0; i < maxLevels; i++ {
		progress, err := s.RunLevel(maxPt)
		if err != nil {
			return false, err
		}
		if !progress {
			tracer().Infof("no new statements, stop trying")
			break
		}
		if s.solved {
			tracer().Infof("solved the problem")
			break
		}
	}
	return s.solved, nil
}
