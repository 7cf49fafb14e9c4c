// Package wallclock renders a live HH:MM:SS readout of the local time.
//
// The Updater samples a clock.Clock, formats the sample with zero-padded
// two-digit fields and writes the result into a display.Target. Start
// renders once immediately and then once per TickInterval until its
// context is cancelled:
//
//	doc := display.NewDocument(wallclock.TargetID)
//	updater := wallclock.NewUpdater(clock.NewRealClock(), doc.Target(wallclock.TargetID), log)
//	doc.OnLoad(func() { updater.Start(ctx) })
//	doc.Load()
//
// Ticks are not drift-corrected. A late tick renders whatever the clock
// reports at that moment.
package wallclock
