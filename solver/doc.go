/*
Package solver implements the DD+AR proof engine.

The solver interns statements into a proof table, enqueues numerically
matched theorem instances, and saturates level by level: every pending
theorem is advanced (a theorem whose conclusions are all provable is
discarded, one whose hypotheses are all proved fires), the four AR
engines are drained for newly solved variables and suspected ratio
facts, and the goals are re-tried. It stops when all goals are proved
or no level makes progress.
*/
package solver

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'geoproof.solver'.
func tracer() tracing.Trace {
	return tracing.Select("geoproof.solver")
}
