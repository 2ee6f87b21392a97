// Package host declares the boundary between the dispatch core and the
// runtime that embeds it. The core consumes exactly this surface: endpoint
// allocation during registry finalization, six emission primitives
// addressed by outlet handle, and a way to schedule a callback onto the
// host's own real-time goroutine (the drain trigger). Everything else the
// host does (patching, audio, UI) is invisible here.
package host

import (
	"github.com/mipi54/flext/atom"
	"github.com/mipi54/flext/symbol"
)

// Kind classifies a host-visible endpoint.
type Kind string

// Endpoint kinds. Bang endpoints are symbol-kind on both runtimes.
const (
	KindNone   Kind = "none"
	KindFloat  Kind = "float"
	KindInt    Kind = "int"
	KindSymbol Kind = "symbol"
	KindList   Kind = "list"
	KindSignal Kind = "signal"
	KindAny    Kind = "any"
)

// KindBang tags bang emissions in recorded output. As an endpoint kind,
// bang maps to KindSymbol on both runtimes.
const KindBang Kind = "bang"

// Handle is an opaque host-allocated endpoint reference. A nil Handle
// from an allocation call means the allocation failed.
type Handle any

// Host is the runtime surface the core is built against. All emission
// methods must only ever be called from the host's real-time goroutine;
// the core guarantees this by rerouting off-goroutine emission through
// its deferral queue.
type Host interface {
	// MakeInlet allocates the host-side endpoint for inlet ix. Inlets
	// beyond the first are backed by proxy relays in the core.
	MakeInlet(ix int, kind Kind, desc string) Handle

	// MakeOutlet allocates the host-side endpoint for outlet ix.
	MakeOutlet(ix int, kind Kind, desc string) Handle

	EmitBang(h Handle)
	EmitFloat(h Handle, f float64)
	EmitInt(h Handle, n int64)
	EmitSymbol(h Handle, s *symbol.Symbol)
	EmitList(h Handle, l atom.List)
	EmitAnything(h Handle, sel *symbol.Symbol, l atom.List)

	// ScheduleTick asks the host to invoke fn on its real-time goroutine
	// at the next convenient point in its callback cadence. Used by the
	// deferral queue to request a drain cycle.
	ScheduleTick(fn func())
}
