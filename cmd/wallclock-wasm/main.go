//go:build js && wasm

// Command wallclock-wasm renders the readout directly into the hosting page.
// Build with GOOS=js GOARCH=wasm and load it with wasm_exec.js from the Go
// distribution; the page must contain an element with id "current-date-time".
package main

import (
	"context"
	"os"

	"github.com/zgpcy/wallclock/internal/clock"
	"github.com/zgpcy/wallclock/internal/display"
	"github.com/zgpcy/wallclock/internal/logger"
	"github.com/zgpcy/wallclock/internal/wallclock"
)

func main() {
	log := logger.NewWithOptions("info", "text", os.Stdout)
	updater := wallclock.NewUpdater(clock.NewRealClock(), display.NewDOMTarget(wallclock.TargetID), log)

	display.OnWindowLoad(func() {
		updater.Start(context.Background())
	})

	// Keep the Go runtime alive for the lifetime of the page
	select {}
}
