package wallclock

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zgpcy/wallclock/internal/clock"
	"github.com/zgpcy/wallclock/internal/display"
	"github.com/zgpcy/wallclock/internal/logger"
)

const (
	// TargetID is the id of the element that receives the readout
	TargetID = "current-date-time"

	// TickInterval is the period between renders
	TickInterval = 1000 * time.Millisecond
)

// Stats is a snapshot of the updater's render history
type Stats struct {
	Renders    uint64
	Errors     uint64
	LastText   string
	LastRender time.Time
	LastError  error
	Running    bool
}

// Updater writes the current time into a display target once per tick
type Updater struct {
	clock  clock.Clock
	target display.Target
	logger *logger.Logger

	mu         sync.RWMutex
	renders    uint64
	errors     uint64
	lastText   string
	lastRender time.Time
	lastError  error

	started atomic.Bool // Prevent multiple tick loops
	wg      sync.WaitGroup
}

// NewUpdater creates an Updater
func NewUpdater(c clock.Clock, target display.Target, log *logger.Logger) *Updater {
	return &Updater{
		clock:  c,
		target: target,
		logger: log,
	}
}

// SampleAndFormat reads the clock and returns the HH:MM:SS readout
func (u *Updater) SampleAndFormat() string {
	return Format(u.clock.Now())
}

// Render samples the clock and writes the readout to the target
func (u *Updater) Render() error {
	now := u.clock.Now()
	text := Format(now)
	err := u.target.SetText(text)

	u.mu.Lock()
	defer u.mu.Unlock()

	u.lastError = err
	if err != nil {
		u.errors++
		return fmt.Errorf("failed to render %s: %w", text, err)
	}
	u.renders++
	u.lastText = text
	u.lastRender = now
	return nil
}

// Start renders once and then keeps rendering every TickInterval until ctx is done.
// Calling Start while a tick loop is already running does nothing.
func (u *Updater) Start(ctx context.Context) {
	if !u.started.CompareAndSwap(false, true) {
		u.logger.Warn("Clock updater already started, skipping")
		return
	}

	// Initial render so the display is never blank while waiting for the first tick
	if err := u.Render(); err != nil {
		u.logger.Error("Initial render failed", "error", err)
	}

	ticker := u.clock.NewTicker(TickInterval)
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		defer ticker.Stop()
		defer u.started.Store(false) // Reset on exit
		for {
			select {
			case <-ctx.Done():
				u.logger.Info("Stopping clock updater")
				return
			case <-ticker.Chan():
				if err := u.Render(); err != nil {
					u.logger.Error("Render failed", "error", err)
				}
			}
		}
	}()
}

// Wait blocks until the tick loop started by Start has exited
func (u *Updater) Wait() {
	u.wg.Wait()
}

// Stats returns a snapshot of the render history
func (u *Updater) Stats() Stats {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return Stats{
		Renders:    u.renders,
		Errors:     u.errors,
		LastText:   u.lastText,
		LastRender: u.lastRender,
		LastError:  u.lastError,
		Running:    u.started.Load(),
	}
}
