package geom

import (
	"fmt"
	"math"

	"github.com/npillmayer/geoproof/number"
)

// SinOrDist is a variable of the multiplicative ratio AR table: either
// an angle α standing for sin²α, or a squared distance. All sines sort
// before all squared distances, so the sine part of the table does not
// poison the distance part until it can prove something that does not
// involve angles.
type SinOrDist struct {
	isSin bool
	ang   Angle
	sqd   SquaredDist
}

// NewSinOfAngle creates the sin² variable for an angle. The angle is
// canonicalized to min(α, -α).
func NewSinOfAngle(a Angle) SinOrDist {
	if a.Neg().Compare(a) < 0 {
		a = a.Neg()
	}
	return SinOrDist{isSin: true, ang: a}
}

// NewSinOrDist creates the squared-distance variable.
func NewSinOrDist(sd SquaredDist) SinOrDist {
	return SinOrDist{sqd: sd}
}

// IsSin reports whether the variable is a sine.
func (v SinOrDist) IsSin() bool { return v.isSin }

// IsSquaredDist reports whether the variable is a squared distance.
func (v SinOrDist) IsSquaredDist() bool { return !v.isSin }

// Angle returns the underlying angle. Only valid for sines.
func (v SinOrDist) Angle() Angle { return v.ang }

// SquaredDist returns the underlying squared distance. Only valid for
// non-sines.
func (v SinOrDist) SquaredDist() SquaredDist { return v.sqd }

// Value evaluates to sin²α, or to the squared distance. Always a
// positive real for nondegenerate configurations.
func (v SinOrDist) Value() float64 {
	if v.isSin {
		s := math.Sin(v.ang.Value() * math.Pi)
		return s * s
	}
	return v.sqd.Value()
}

// Points returns the points of the underlying atom.
func (v SinOrDist) Points() []Point {
	if v.isSin {
		return v.ang.Points()
	}
	return v.sqd.Points()
}

// CheckNondegen checks the underlying atom.
func (v SinOrDist) CheckNondegen() bool {
	if v.isSin {
		return v.ang.CheckNondegen()
	}
	return v.sqd.CheckNondegen()
}

// Compare sorts all sines before all squared distances, then by the
// underlying atom.
func (v SinOrDist) Compare(other SinOrDist) int {
	if v.isSin != other.isSin {
		if v.isSin {
			return -1
		}
		return 1
	}
	if v.isSin {
		return v.ang.Compare(other.ang)
	}
	return v.sqd.Compare(other.sqd)
}

// EvalTerm evaluates a term of the multiplicative table in log space:
// c·log(value). The equation RHS folds back via exp before comparing.
func (v SinOrDist) EvalTerm(c number.Rat) float64 {
	return c.Float() * math.Log(v.Value())
}

func (v SinOrDist) String() string {
	if v.isSin {
		return fmt.Sprintf("sin²%s", v.ang)
	}
	return v.sqd.String()
}
