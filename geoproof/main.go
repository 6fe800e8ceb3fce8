// Command geoproof runs the DD+AR solver on plane-geometry problems.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/npillmayer/geoproof"
	"github.com/npillmayer/geoproof/geoproof/cli"
)

func main() {
	var stop context.CancelFunc
	geoproof.SignalContext, stop = signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cli.Execute()
}
