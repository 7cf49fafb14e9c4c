// Package display provides the text-output side of the wall clock.
//
// A Target receives the formatted readout on every render. The package
// ships several targets:
//   - Document: an in-memory page with elements addressed by id and a
//     one-shot load event, used as the host for tests and embedding
//   - WriterTarget: rewrites a single line on a terminal or any io.Writer
//   - Broadcaster: keeps the latest readout and fans it out to subscribers,
//     which the HTTP server streams to browsers as Server-Sent Events
//   - DOMTarget: writes into a real browser element (js/wasm builds only)
//
// Element lookups happen on every write, so a target whose element has
// been removed fails with ErrElementNotFound instead of writing to a
// stale node.
package display
