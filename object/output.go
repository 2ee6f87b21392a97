package object

import (
	"github.com/mipi54/flext/atom"
	"github.com/mipi54/flext/host"
	"github.com/mipi54/flext/pkg/goid"
	"github.com/mipi54/flext/symbol"
)

// Outlet is a materialized output endpoint. Outlets are created by
// SetupInOut and are immutable afterwards.
type Outlet struct {
	idx    int
	kind   host.Kind
	handle host.Handle
	owner  *Base
}

// Index returns the outlet's declaration index.
func (o *Outlet) Index() int { return o.idx }

// Kind returns the outlet's declared kind.
func (o *Outlet) Kind() host.Kind { return o.kind }

// qmsg is one deferred emission. List payloads are deep-copied at
// enqueue time so the producer may reuse its buffer immediately.
type qmsg struct {
	out  *Outlet
	kind host.Kind
	flt  float64
	num  int64
	sym  *symbol.Symbol
	lst  atom.List
}

// emit routes one emission: on the host goroutine it goes straight to
// the host, anywhere else it is deferred to the queue and a drain is
// scheduled the moment the queue becomes non-empty.
func (b *Base) emit(m qmsg) {
	if goid.Get() == b.hostGID {
		b.deliver(m)
		return
	}
	b.enqueue(m)
}

func (b *Base) enqueue(m qmsg) {
	if b.queue.Enqueue(m) == 1 {
		b.hst.ScheduleTick(b.drainTick)
	}
	if b.metrics != nil {
		b.metrics.RecordEnqueue()
	}
}

// drainTick runs on the host goroutine. It detaches everything queued so
// far in one pass and delivers it in FIFO order; emissions enqueued
// during delivery land in a fresh chain and get their own tick.
func (b *Base) drainTick() {
	n := b.queue.Drain(b.deliver)
	if b.metrics != nil && n > 0 {
		b.metrics.RecordDrain(n)
	}
}

func (b *Base) deliver(m qmsg) {
	switch m.kind {
	case host.KindBang:
		b.hst.EmitBang(m.out.handle)
	case host.KindFloat:
		b.hst.EmitFloat(m.out.handle, m.flt)
	case host.KindInt:
		b.hst.EmitInt(m.out.handle, m.num)
	case host.KindSymbol:
		b.hst.EmitSymbol(m.out.handle, m.sym)
	case host.KindList:
		b.hst.EmitList(m.out.handle, m.lst)
	case host.KindAny:
		b.hst.EmitAnything(m.out.handle, m.sym, m.lst)
	}
}

func (b *Base) outAt(ix int) *Outlet {
	o := b.GetOut(ix)
	if o == nil {
		b.log.Warn("emission to unknown outlet dropped")
	}
	return o
}

// ToOutBang emits a bang on outlet ix. Like every ToOut variant it takes
// the direct host path on the host goroutine and the deferral queue on
// any other; invalid indices are dropped with a diagnostic.
func (b *Base) ToOutBang(ix int) {
	if o := b.outAt(ix); o != nil {
		b.emit(qmsg{out: o, kind: host.KindBang})
	}
}

// ToOutFloat emits a float on outlet ix.
func (b *Base) ToOutFloat(ix int, f float64) {
	if o := b.outAt(ix); o != nil {
		b.emit(qmsg{out: o, kind: host.KindFloat, flt: f})
	}
}

// ToOutInt emits an int on outlet ix.
func (b *Base) ToOutInt(ix int, n int64) {
	if o := b.outAt(ix); o != nil {
		b.emit(qmsg{out: o, kind: host.KindInt, num: n})
	}
}

// ToOutSymbol emits a symbol on outlet ix.
func (b *Base) ToOutSymbol(ix int, s *symbol.Symbol) {
	if o := b.outAt(ix); o != nil {
		b.emit(qmsg{out: o, kind: host.KindSymbol, sym: s})
	}
}

// ToOutString interns s and emits it as a symbol on outlet ix.
func (b *Base) ToOutString(ix int, s string) {
	b.ToOutSymbol(ix, symbol.MakeSymbol(s))
}

// ToOutList emits a list on outlet ix. The list is deep-copied before
// any deferral, so the caller keeps ownership of lst.
func (b *Base) ToOutList(ix int, lst atom.List) {
	if o := b.outAt(ix); o != nil {
		b.emit(qmsg{out: o, kind: host.KindList, lst: lst.Clone()})
	}
}

// ToOutAnything emits a tagged message on outlet ix.
func (b *Base) ToOutAnything(ix int, sel *symbol.Symbol, args atom.List) {
	if o := b.outAt(ix); o != nil {
		b.emit(qmsg{out: o, kind: host.KindAny, sym: sel, lst: args.Clone()})
	}
}

// QueueBang defers a bang on outlet ix unconditionally, even on the host
// goroutine. The Queue variants exist for handlers that must not emit
// re-entrantly into the host mid-callback.
func (b *Base) QueueBang(ix int) {
	if o := b.outAt(ix); o != nil {
		b.enqueue(qmsg{out: o, kind: host.KindBang})
	}
}

// QueueFloat defers a float on outlet ix unconditionally.
func (b *Base) QueueFloat(ix int, f float64) {
	if o := b.outAt(ix); o != nil {
		b.enqueue(qmsg{out: o, kind: host.KindFloat, flt: f})
	}
}

// QueueInt defers an int on outlet ix unconditionally.
func (b *Base) QueueInt(ix int, n int64) {
	if o := b.outAt(ix); o != nil {
		b.enqueue(qmsg{out: o, kind: host.KindInt, num: n})
	}
}

// QueueSymbol defers a symbol on outlet ix unconditionally.
func (b *Base) QueueSymbol(ix int, s *symbol.Symbol) {
	if o := b.outAt(ix); o != nil {
		b.enqueue(qmsg{out: o, kind: host.KindSymbol, sym: s})
	}
}

// QueueList defers a list on outlet ix unconditionally, deep-copied.
func (b *Base) QueueList(ix int, lst atom.List) {
	if o := b.outAt(ix); o != nil {
		b.enqueue(qmsg{out: o, kind: host.KindList, lst: lst.Clone()})
	}
}

// QueueAnything defers a tagged message on outlet ix unconditionally.
func (b *Base) QueueAnything(ix int, sel *symbol.Symbol, args atom.List) {
	if o := b.outAt(ix); o != nil {
		b.enqueue(qmsg{out: o, kind: host.KindAny, sym: sel, lst: args.Clone()})
	}
}
