package ar

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// Fact is an opaque tag identifying the statement that contributed an
// equation row. The engine only stores and returns it; the proof layer
// knows what it really is.
type Fact any

// ErrContradiction signals that the system derived 0 = nonzero: the
// problem is inconsistent, or the caller has a bug. It is always fatal.
var ErrContradiction = errors.New("proved contradiction in AR")

// Row is one echelon row: the concrete reduced equation together with
// the combination of original rows it was built from. The invariant
//
//	eqn = Σ combo_i · originals[i]
//
// holds exactly in the domain at all times.
type Row[V Var[V], R RHS[R]] struct {
	combo IndexCombo
	eqn   Equation[V, R]
}

// Combo returns the receipt over original-row indexes.
func (row *Row[V, R]) Combo() IndexCombo { return row.combo }

// Eqn returns the concrete equation of the row.
func (row *Row[V, R]) Eqn() Equation[V, R] { return row.eqn }

func (row *Row[V, R]) subScaled(c number.Rat, other *Row[V, R]) {
	row.combo = row.combo.AddScaled(c.Neg(), other.combo)
	row.eqn = row.eqn.Sub(other.eqn.Scale(c))
}

func (row *Row[V, R]) scale(c number.Rat) {
	row.combo = row.combo.Scale(c)
	row.eqn = row.eqn.Scale(c)
}

type original[V Var[V], R RHS[R]] struct {
	eqn Equation[V, R]
	src Fact
}

// System is an incremental row-echelon store for one scalar domain.
// Rows are append-only; the echelon keeps one row per pivot variable,
// each reduced against the pivot of its second-leading term whenever
// such a pivot exists.
type System[V Var[V], R RHS[R]] struct {
	originals   []original[V, R]
	echelon     map[V]*Row[V, R]
	pivotByNext *treemap.Map // V → *treeset.Set of pivot V
	newlySolved *treeset.Set // of V
	cmp         func(a, b interface{}) int
}

// NewSystem creates an empty linear system.
func NewSystem[V Var[V], R RHS[R]]() *System[V, R] {
	cmp := func(a, b interface{}) int { return a.(V).Compare(b.(V)) }
	return &System[V, R]{
		echelon:     make(map[V]*Row[V, R]),
		pivotByNext: treemap.NewWith(cmp),
		newlySolved: treeset.NewWith(cmp),
		cmp:         cmp,
	}
}

// Size returns the number of original equations accepted so far.
func (sys *System[V, R]) Size() int { return len(sys.originals) }

// At returns the original equation at index i.
func (sys *System[V, R]) At(i int) Equation[V, R] { return sys.originals[i].eqn }

// SourceAt returns the provenance tag of the original equation at i.
func (sys *System[V, R]) SourceAt(i int) Fact { return sys.originals[i].src }

// PivotRow returns the echelon row for a pivot variable.
func (sys *System[V, R]) PivotRow(v V) (*Row[V, R], bool) {
	row, ok := sys.echelon[v]
	return row, ok
}

// reduceNext repeatedly eliminates the second-leading term of a row
// while that term's variable is itself a pivot. When it is not, the row
// is registered in the pivot-by-next index; when no second term
// remains, the pivot variable is solved.
func (sys *System[V, R]) reduceNext(row *Row[V, R]) {
	for {
		terms := row.eqn.LHS().Terms()
		head := terms[0].Var
		if len(terms) == 1 {
			sys.newlySolved.Add(head)
			return
		}
		next := terms[1]
		pivotRow, ok := sys.echelon[next.Var]
		if !ok {
			bucket, found := sys.pivotByNext.Get(next.Var)
			if !found {
				bucket = treeset.NewWith(sys.cmp)
				sys.pivotByNext.Put(next.Var, bucket)
			}
			bucket.(*treeset.Set).Add(head)
			return
		}
		row.subScaled(next.Coeff, pivotRow)
	}
}

// AddReducedEquation inserts a pre-reduced equation into the system.
// A solved reduction is a duplicate and is skipped silently. A
// remainder that collapsed to 0 = nonzero is a contradiction and is
// fatal. Otherwise the remainder's leading variable becomes a new
// pivot, and rows waiting on that variable are partially
// back-substituted.
func (sys *System[V, R]) AddReducedEquation(src Fact, red *ReducedEquation[V, R]) error {
	if red == nil {
		return nil
	}
	if red.IsSolved() {
		return nil
	}
	if red.Remainder().LHS().Empty() {
		return ErrContradiction
	}

	n := len(sys.originals)
	sys.originals = append(sys.originals, original[V, R]{eqn: red.Original(), src: src})

	row := &Row[V, R]{
		combo: SingleIndex(n).Sub(red.Combo()),
		eqn:   red.Remainder(),
	}
	lead := row.eqn.LHS().Leading()
	if _, taken := sys.echelon[lead.Var]; taken {
		return fmt.Errorf("trying to insert a non-reduced equation (pivot %s exists)", lead.Var)
	}
	row.scale(lead.Coeff.Inv())
	sys.reduceNext(row)
	sys.echelon[lead.Var] = row

	// Partial back-substitution: rows that were blocked on the new
	// pivot can now eliminate it.
	if bucket, found := sys.pivotByNext.Get(lead.Var); found {
		for _, p := range bucket.(*treeset.Set).Values() {
			pivotRow, ok := sys.echelon[p.(V)]
			if !ok {
				return fmt.Errorf("pivot-by-next cache references unknown pivot %s", p.(V))
			}
			sys.reduceNext(pivotRow)
		}
		sys.pivotByNext.Remove(lead.Var)
	}
	return nil
}

// NewlySolved returns the pivots whose rows collapsed to a single term
// since the last drain, in variable order.
func (sys *System[V, R]) NewlySolved() []V {
	vals := sys.newlySolved.Values()
	res := make([]V, len(vals))
	for i, v := range vals {
		res[i] = v.(V)
	}
	return res
}

// ClearNewlySolved empties the newly-solved set.
func (sys *System[V, R]) ClearNewlySolved() {
	sys.newlySolved.Clear()
}

// RatioCandidate is a suspected proportionality |left|² : |right|² = r
// read off the echelon's pivot-by-next buckets. Candidates are guesses:
// the caller must verify them numerically and by reduction before
// believing them.
type RatioCandidate struct {
	Left  geom.SquaredDist
	Right geom.SquaredDist
	Ratio number.Rat
}

// GenerateSuspectedRatios inspects pairs of pivots whose rows share the
// same second variable, plus two-term rows with zero RHS, and proposes
// ratio-of-squared-distance facts. The slope-angle domain yields none.
func (sys *System[V, R]) GenerateSuspectedRatios() []RatioCandidate {
	var zero V
	if _, isSlope := any(zero).(geom.SlopeAngle); isSlope {
		return nil
	}
	var res []RatioCandidate
	it := sys.pivotByNext.Iterator()
	for it.Next() {
		nextVar := it.Key().(V)
		pivots := it.Value().(*treeset.Set).Values()
		for i := 0; i < len(pivots); i++ {
			iVar := pivots[i].(V)
			if sv, ok := any(iVar).(geom.SinOrDist); ok && sv.IsSin() {
				// A row headed by sin²α relates angles, not distances.
				continue
			}
			rowI := sys.echelon[iVar]
			termsI := rowI.eqn.LHS().Terms()
			coeffI := termsI[1].Coeff

			if len(termsI) == 2 {
				if cand, ok := sys.singletonCandidate(iVar, nextVar, rowI, coeffI); ok {
					res = append(res, cand)
				}
			}
			for j := i + 1; j < len(pivots); j++ {
				jVar := pivots[j].(V)
				rowJ := sys.echelon[jVar]
				coeffJ := rowJ.eqn.LHS().Terms()[1].Coeff
				if cand, ok := pairCandidate(iVar, jVar, coeffI, coeffJ); ok {
					res = append(res, cand)
				}
			}
		}
	}
	return res
}

// singletonCandidate handles a two-term row i = a·w + c, which relates
// the pivot directly to its next variable.
func (sys *System[V, R]) singletonCandidate(iVar, nextVar V, rowI *Row[V, R],
	coeff number.Rat) (RatioCandidate, bool) {
	//
	switch iv := any(iVar).(type) {
	case geom.Dist:
		if !rowI.eqn.RHS().IsZero() {
			return RatioCandidate{}, false
		}
		return RatioCandidate{
			Left:  iv.Squared(),
			Right: any(nextVar).(geom.Dist).Squared(),
			Ratio: coeff.Mul(coeff),
		}, true
	case geom.SquaredDist:
		if !rowI.eqn.RHS().IsZero() {
			return RatioCandidate{}, false
		}
		return RatioCandidate{
			Left:  iv,
			Right: any(nextVar).(geom.SquaredDist),
			Ratio: coeff.Neg(),
		}, true
	case geom.SinOrDist:
		if !coeff.Eq(number.RatInt(-1)) {
			return RatioCandidate{}, false
		}
		next := any(nextVar).(geom.SinOrDist)
		if next.IsSin() {
			return RatioCandidate{}, false
		}
		return RatioCandidate{
			Left:  iv.SquaredDist(),
			Right: next.SquaredDist(),
			Ratio: number.RatInt(1),
		}, true
	}
	return RatioCandidate{}, false
}

// pairCandidate handles two pivots i, j sharing the same second
// variable: their rows imply a proportion between i and j.
func pairCandidate[V Var[V]](iVar, jVar V, coeffI, coeffJ number.Rat) (RatioCandidate, bool) {
	switch iv := any(iVar).(type) {
	case geom.Dist:
		return RatioCandidate{
			Left:  iv.Squared(),
			Right: any(jVar).(geom.Dist).Squared(),
			Ratio: coeffI.Mul(coeffI).Div(coeffJ.Mul(coeffJ)),
		}, true
	case geom.SquaredDist:
		c := coeffI.Div(coeffJ)
		if c.Sign() < 0 {
			return RatioCandidate{}, false
		}
		return RatioCandidate{
			Left:  iv,
			Right: any(jVar).(geom.SquaredDist),
			Ratio: c,
		}, true
	case geom.SinOrDist:
		// The pivot set is sorted, so jVar is a squared dist whenever
		// iVar is.
		if !coeffI.Eq(coeffJ) {
			return RatioCandidate{}, false
		}
		return RatioCandidate{
			Left:  iv.SquaredDist(),
			Right: any(jVar).(geom.SinOrDist).SquaredDist(),
			Ratio: number.RatInt(1),
		}, true
	}
	return RatioCandidate{}, false
}
