// Package flext is a cross-runtime abstraction core for building
// message-driven plugin objects hosted by real-time multimedia
// environments (Max/MSP- and Pure-Data-style hosts).
//
// # Philosophy: One Dispatch Model, Two Runtimes
//
// Host runtimes differ in their native message models (one of them has no
// native integer atom at all), but plugin logic should not. flext gives
// every plugin object a single unified entry point and normalizes the
// runtime divergences behind three small abstractions:
//
//   - A universal tagged value (atom.Atom) and message (atom.Anything)
//     shared by all objects regardless of runtime.
//   - A declarative inlet/outlet registry with signature-based method
//     dispatch, so a plugin declares what it accepts and flext routes,
//     coerces and invokes.
//   - A thread-safe deferral queue, so logic running off the host's
//     real-time callback goroutine can still emit output without ever
//     touching the host's emission primitives directly.
//
// # Architecture
//
//	┌─────────────────────────────────────┐
//	│        Host runtime (external)      │  real-time callbacks,
//	│   class registration, emission      │  outlet primitives
//	└──────────────┬──────────────────────┘
//	               ↓ inlet callbacks (primary + proxies)
//	┌─────────────────────────────────────┐
//	│        object.Base                  │  xlet registry, dispatch
//	│   (method table scan + coercion)    │  entry, outlet emission
//	└──────┬──────────────────┬───────────┘
//	       ↓ host goroutine   ↓ worker goroutines
//	┌────────────┐     ┌─────────────────┐
//	│ direct     │     │ deferral queue  │  strict FIFO, drained on
//	│ emission   │ ←── │ (pkg/fifo)      │  the host's own schedule
//	└────────────┘     └─────────────────┘
//
// Control flow: the host invokes an object with an inlet index and a
// tagged message; the dispatcher scans the class's method table in
// registration order, coerces arguments against each candidate signature,
// and invokes the first structurally compatible handler. Handlers emit
// through the object's outlets; emission off the host goroutine is
// transparently rerouted into the deferral queue and delivered on the
// next drain cycle.
//
// # Framework Packages
//
// Core:
//   - atom: tagged values, atom lists, selector-tagged messages
//   - symbol: process-wide interned symbol table
//   - method: per-class method tables and signature dispatch
//   - object: plugin object base (xlets, proxies, queue, workers, binding)
//   - host: host boundary interfaces and an in-process test host
//
// Infrastructure:
//   - config: declarative class descriptions (YAML)
//   - errors: structured error handling
//   - metric: Prometheus metrics
//   - natsclient: optional broker connection for remote log streaming
//   - pkg/fifo: generic mutex-protected FIFO with detach-all drain
//   - pkg/lock: reentrant counting mutex and condition variable
//   - pkg/goid: goroutine identity for host-thread recording
//   - pkg/retry: exponential backoff for transient failures
//
// # Design Principles
//
// Registration order is a contract:
//   - Method dispatch is a linear scan; the first structurally and
//     type-compatible entry wins. Callers control the order, and the
//     order is observable behavior, not an optimization target.
//
// The host goroutine owns emission:
//   - Only the goroutine that constructed an object may call the direct
//     emission path. Every other goroutine goes through the queue.
//
// Failure is a return value:
//   - No panics in the dispatch path. Unmatched messages fall through to
//     the object's unhandled hook and are dropped, with a rate-limited
//     diagnostic, if it declines.
package flext
