// Package cli implements the geoproof command line interface.
package cli

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'geoproof.cli'
func tracer() tracing.Trace {
	return tracing.Select("geoproof.cli")
}
