package ar

import (
	"github.com/npillmayer/geoproof/geom"
	"github.com/npillmayer/geoproof/number"
)

// Instantiations of the engine for the four scalar domains.
type (
	// DistEquation relates signed lengths; RHS is an exact rational.
	DistEquation = Equation[geom.Dist, number.Rat]
	// SquaredDistEquation relates signed squared lengths.
	SquaredDistEquation = Equation[geom.SquaredDist, number.Rat]
	// SinOrDistEquation relates ratios multiplicatively; RHS is a
	// formal rational power of a rational.
	SinOrDistEquation = Equation[geom.SinOrDist, number.RootRat]
	// SlopeAngleEquation relates line directions mod π.
	SlopeAngleEquation = Equation[geom.SlopeAngle, number.AddCircle]

	// DistSystem is the additive length engine.
	DistSystem = System[geom.Dist, number.Rat]
	// SquaredDistSystem is the additive squared-length engine.
	SquaredDistSystem = System[geom.SquaredDist, number.Rat]
	// SinOrDistSystem is the multiplicative ratio engine.
	SinOrDistSystem = System[geom.SinOrDist, number.RootRat]
	// SlopeAngleSystem is the angle-chase engine.
	SlopeAngleSystem = System[geom.SlopeAngle, number.AddCircle]

	// ReducedDistEquation is a reduction trace in the length engine.
	ReducedDistEquation = ReducedEquation[geom.Dist, number.Rat]
	// ReducedSquaredDistEquation is a reduction trace in the
	// squared-length engine.
	ReducedSquaredDistEquation = ReducedEquation[geom.SquaredDist, number.Rat]
	// ReducedSinOrDistEquation is a reduction trace in the ratio engine.
	ReducedSinOrDistEquation = ReducedEquation[geom.SinOrDist, number.RootRat]
	// ReducedSlopeAngleEquation is a reduction trace in the angle engine.
	ReducedSlopeAngleEquation = ReducedEquation[geom.SlopeAngle, number.AddCircle]
)

// AngleEquation is a linear relation between three-point angles. It is
// not a domain of its own: before reduction it is rewritten into the
// slope-angle domain term by term.
type AngleEquation = Equation[geom.Angle, number.AddCircle]

// AngleToSlopeAngle rewrites an equation about angles into one about
// slope angles: each c·∠(L,V,R) contributes c·∠(VR) - c·∠(VL).
func AngleToSlopeAngle(eq AngleEquation) SlopeAngleEquation {
	var lhs LinComb[geom.SlopeAngle]
	for _, t := range eq.LHS().Terms() {
		lhs = lhs.Add(SingleTerm(t.Var.RightSide(), t.Coeff))
		lhs = lhs.Add(SingleTerm(t.Var.LeftSide(), t.Coeff.Neg()))
	}
	return NewEquation(lhs, eq.RHS())
}
