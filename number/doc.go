/*
Package number implements the scalar carriers of the solver.

Four numeric structures appear in the AR engines:

  - exact rationals (Rat) on checked 64-bit integers;
  - positive reals under log (Posreal), where addition is multiplication
    of the underlying numbers;
  - the circle R/Z (AddCircle), i.e. numbers mod 1 with 1 ≡ π;
  - formal rational powers of rationals (RootRat), stored as prime
    factorizations with rational exponents.

The package also owns the numerical tolerances (Eps, RelTol) and the
approximate-equality helpers used throughout the solver.
*/
package number

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'geoproof.number'.
func tracer() tracing.Trace {
	return tracing.Select("geoproof.number")
}
