/*
Package geom holds the numerical geometry of a problem: the point table
with coordinates, and the atoms the AR engines use as variables
(distances, squared distances, slope angles, three-point angles, and the
sin-or-squared-distance union of the ratio table).

All atoms canonicalize their endpoints on construction and compare by
point indexes, which gives every AR domain its total variable order.
*/
package geom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'geoproof.geom'.
func tracer() tracing.Trace {
	return tracing.Select("geoproof.geom")
}
