package solver

import "github.com/npillmayer/geoproof/geom"

// ApplicationState is the life cycle of one matched theorem instance.
type ApplicationState uint8

const (
	// Pending means the theorem has neither fired nor been discarded.
	Pending ApplicationState = iota
	// Proved means all hypotheses were established.
	Proved
	// Discarded means every conclusion was established before all the
	// hypotheses were; the theorem is not needed.
	Discarded
)

func (st ApplicationState) String() string {
	switch st {
	case Pending:
		return "pending"
	case Proved:
		return "proved"
	case Discarded:
		return "discarded"
	}
	return "unknown"
}

// TheoremApplication tracks the proof state of one theorem instance,
// holding pointers to the interned proofs of its hypotheses and
// conclusions.
type TheoremApplication struct {
	theorem     *Theorem
	state       ApplicationState
	hypotheses  []*StatementProof
	conclusions []*StatementProof
	maxPoint    geom.Point
}

func newTheoremApplication(s *Solver, thm *Theorem, k int) (*TheoremApplication, error) {
	app := &TheoremApplication{
		theorem:  thm,
		maxPoint: thm.MaxPoint(),
	}
	for _, h := range thm.Hypotheses() {
		pf, err := s.InsertStatement(h)
		if err != nil {
			return nil, err
		}
		app.hypotheses = append(app.hypotheses, pf)
	}
	for _, c := range thm.Conclusions() {
		pf, err := s.InsertStatement(c)
		if err != nil {
			return nil, err
		}
		app.conclusions = append(app.conclusions, pf)
	}
	for _, pf := range app.conclusions {
		pf.registerAsConclusion(k)
	}
	return app, nil
}

// TheoremOf returns the underlying theorem.
func (app *TheoremApplication) TheoremOf() *Theorem { return app.theorem }

// State returns the application state.
func (app *TheoremApplication) State() ApplicationState { return app.state }

// Hypotheses returns the hypothesis proofs.
func (app *TheoremApplication) Hypotheses() []*StatementProof { return app.hypotheses }

// Conclusions returns the conclusion proofs.
func (app *TheoremApplication) Conclusions() []*StatementProof { return app.conclusions }

// MaxPoint returns the maximal point used in the theorem.
func (app *TheoremApplication) MaxPoint() geom.Point { return app.maxPoint }

// advanceProof moves a pending application forward: if every
// conclusion is already provable, discard; else if every hypothesis is
// proved, fire.
func (app *TheoremApplication) advanceProof() error {
	if app.state != Pending {
		return nil
	}

	conclusionsProved := true
	for _, pf := range app.conclusions {
		if err := pf.MakeProgress(); err != nil {
			return err
		}
		conclusionsProved = conclusionsProved && pf.IsProved()
	}
	if conclusionsProved {
		app.state = Discarded
		return nil
	}

	for _, pf := range app.hypotheses {
		if err := pf.MakeProgress(); err != nil {
			return err
		}
		if !pf.IsProved() {
			return nil
		}
	}
	app.state = Proved
	return nil
}
