package host

import (
	"sync"

	"github.com/mipi54/flext/atom"
	"github.com/mipi54/flext/pkg/goid"
	"github.com/mipi54/flext/symbol"
)

// Emission is one recorded output call, including the identity of the
// goroutine that made it, so tests can assert that direct delivery only
// ever happens on the host goroutine.
type Emission struct {
	Outlet    Handle
	Kind      Kind
	Float     float64
	Int       int64
	Sym       *symbol.Symbol
	List      atom.List
	Goroutine int64
}

type endpoint struct {
	Index int
	Kind  Kind
	Desc  string
}

// Recorder is an in-process Host for tests. It allocates plain endpoint
// handles, records every emission with its calling goroutine, and holds
// scheduled ticks until the test pumps them with RunTicks on whatever
// goroutine is playing the host.
type Recorder struct {
	mu        sync.Mutex
	inlets    []*endpoint
	outlets   []*endpoint
	emissions []Emission
	ticks     []func()

	// FailAlloc makes every subsequent allocation return nil, simulating
	// host-side allocation failure during registry finalization.
	FailAlloc bool
}

// NewRecorder creates an empty recording host.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// MakeInlet implements Host.
func (r *Recorder) MakeInlet(ix int, kind Kind, desc string) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAlloc {
		return nil
	}
	ep := &endpoint{Index: ix, Kind: kind, Desc: desc}
	r.inlets = append(r.inlets, ep)
	return ep
}

// MakeOutlet implements Host.
func (r *Recorder) MakeOutlet(ix int, kind Kind, desc string) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAlloc {
		return nil
	}
	ep := &endpoint{Index: ix, Kind: kind, Desc: desc}
	r.outlets = append(r.outlets, ep)
	return ep
}

func (r *Recorder) record(e Emission) {
	e.Goroutine = goid.Get()
	r.mu.Lock()
	r.emissions = append(r.emissions, e)
	r.mu.Unlock()
}

// EmitBang implements Host.
func (r *Recorder) EmitBang(h Handle) {
	r.record(Emission{Outlet: h, Kind: KindBang})
}

// EmitFloat implements Host.
func (r *Recorder) EmitFloat(h Handle, f float64) {
	r.record(Emission{Outlet: h, Kind: KindFloat, Float: f})
}

// EmitInt implements Host.
func (r *Recorder) EmitInt(h Handle, n int64) {
	r.record(Emission{Outlet: h, Kind: KindInt, Int: n})
}

// EmitSymbol implements Host.
func (r *Recorder) EmitSymbol(h Handle, s *symbol.Symbol) {
	r.record(Emission{Outlet: h, Kind: KindSymbol, Sym: s})
}

// EmitList implements Host.
func (r *Recorder) EmitList(h Handle, l atom.List) {
	r.record(Emission{Outlet: h, Kind: KindList, List: l.Clone()})
}

// EmitAnything implements Host.
func (r *Recorder) EmitAnything(h Handle, sel *symbol.Symbol, l atom.List) {
	r.record(Emission{Outlet: h, Kind: KindAny, Sym: sel, List: l.Clone()})
}

// ScheduleTick implements Host: the tick is held until RunTicks.
func (r *Recorder) ScheduleTick(fn func()) {
	r.mu.Lock()
	r.ticks = append(r.ticks, fn)
	r.mu.Unlock()
}

// RunTicks executes all pending scheduled ticks on the calling goroutine
// and returns how many ran. The caller plays the host's real-time
// goroutine.
func (r *Recorder) RunTicks() int {
	r.mu.Lock()
	ticks := r.ticks
	r.ticks = nil
	r.mu.Unlock()

	for _, fn := range ticks {
		fn()
	}
	return len(ticks)
}

// PendingTicks returns the number of scheduled, not yet pumped ticks.
func (r *Recorder) PendingTicks() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ticks)
}

// Emissions returns a copy of all recorded emissions in delivery order.
func (r *Recorder) Emissions() []Emission {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Emission, len(r.emissions))
	copy(out, r.emissions)
	return out
}

// OutletCount returns the number of allocated outlets.
func (r *Recorder) OutletCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.outlets)
}

// InletCount returns the number of allocated inlet endpoints.
func (r *Recorder) InletCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inlets)
}

// Reset clears recorded emissions, keeping allocations.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.emissions = nil
}
