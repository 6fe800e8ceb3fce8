// Package geoproof is a deductive solver for classical Euclidean plane
// geometry, in the DD+AR tradition: a theorem rule engine interleaved
// with four linear-algebra engines over lengths, squared lengths,
// ratios, and slope angles.
package geoproof

import (
	"context"
	"io"
	"os"

	"github.com/knadh/koanf"
)

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output to, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by
// an interrupt signal.
var SignalContext context.Context

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}
