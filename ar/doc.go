/*
Package ar implements the algebraic-reasoning engines of the solver.

An engine is an incremental linear system over one of four scalar
domains (lengths, squared lengths, multiplicative ratios, slope angles
mod π). Geometric facts enter as linear equations; the system maintains
a row-echelon form with partial back-substitution and answers whether a
candidate equation is implied by the rows inserted so far.

The engine is generic over the variable type V and the right-hand-side
carrier R. It knows nothing about statements or proofs: each inserted
row carries an opaque Fact tag, which the proof layer uses to recover
the statement behind a row when reporting dependencies.
*/
package ar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'geoproof.ar'.
func tracer() tracing.Trace {
	return tracing.Select("geoproof.ar")
}
