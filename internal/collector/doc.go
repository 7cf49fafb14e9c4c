// Package collector implements a Prometheus collector for the wall clock updater.
//
// The collector reads a snapshot of the updater's render history on every
// scrape and exposes it as metrics:
//   - wallclock_up: 1 when the last render succeeded, 0 otherwise
//   - wallclock_renders_total: Successful renders since startup
//   - wallclock_render_errors_total: Failed renders since startup
//   - wallclock_last_render_timestamp_seconds: Unix timestamp of the last successful render
//   - wallclock_build_info: Build version information
//
// Example usage:
//
//	updater := wallclock.NewUpdater(clk, target, log)
//	prometheus.MustRegister(collector.NewClockCollector(updater))
package collector
