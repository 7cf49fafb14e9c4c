// Package server provides the HTTP host page for the wall clock.
//
// Available endpoints:
//   - /           : Host page with the live readout element and status
//   - /events     : Server-Sent Events stream, one event per render
//   - /api/time   : Current readout as JSON
//   - /metrics    : Prometheus metrics endpoint
//   - /health     : Liveness probe (always returns 200)
//   - /ready      : Readiness probe (200 once the last render succeeded)
//
// The server is configured with sensible timeout defaults:
//   - Read timeout: 15 seconds
//   - Write timeout: 15 seconds (lifted for /events streams)
//   - Idle timeout: 60 seconds
//
// The updater writes every readout into a display.Broadcaster; each
// /events client subscribes to it and receives the latest value first.
package server
