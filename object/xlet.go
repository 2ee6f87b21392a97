package object

import (
	"github.com/mipi54/flext/host"
)

// xlet is one declared endpoint. The registry is append-only until
// SetupInOut freezes it; descriptions may be attached to any declared
// slot before that point.
type xlet struct {
	kind host.Kind
	desc string
}

func (b *Base) addIn(kind host.Kind, mult int) {
	if b.setupDone {
		b.log.Warn("inlet declared after finalization, ignored")
		return
	}
	for i := 0; i < mult; i++ {
		b.inlist = append(b.inlist, xlet{kind: kind})
	}
}

func (b *Base) addOut(kind host.Kind, mult int) {
	if b.setupDone {
		b.log.Warn("outlet declared after finalization, ignored")
		return
	}
	for i := 0; i < mult; i++ {
		b.outlist = append(b.outlist, xlet{kind: kind})
	}
}

// AddInAnything declares mult message inlets accepting any message.
func (b *Base) AddInAnything(mult int) { b.addIn(host.KindAny, mult) }

// AddInFloat declares mult float inlets.
func (b *Base) AddInFloat(mult int) { b.addIn(host.KindFloat, mult) }

// AddInInt declares mult int inlets.
func (b *Base) AddInInt(mult int) { b.addIn(host.KindInt, mult) }

// AddInSymbol declares mult symbol inlets.
func (b *Base) AddInSymbol(mult int) { b.addIn(host.KindSymbol, mult) }

// AddInBang declares mult bang inlets. A bang endpoint is a symbol-kind
// endpoint as far as the host is concerned.
func (b *Base) AddInBang(mult int) { b.addIn(host.KindSymbol, mult) }

// AddInList declares mult list inlets.
func (b *Base) AddInList(mult int) { b.addIn(host.KindList, mult) }

// AddInSignal declares mult signal inlets.
func (b *Base) AddInSignal(mult int) { b.addIn(host.KindSignal, mult) }

// AddOutAnything declares mult outlets emitting any message.
func (b *Base) AddOutAnything(mult int) { b.addOut(host.KindAny, mult) }

// AddOutFloat declares mult float outlets.
func (b *Base) AddOutFloat(mult int) { b.addOut(host.KindFloat, mult) }

// AddOutInt declares mult int outlets.
func (b *Base) AddOutInt(mult int) { b.addOut(host.KindInt, mult) }

// AddOutSymbol declares mult symbol outlets.
func (b *Base) AddOutSymbol(mult int) { b.addOut(host.KindSymbol, mult) }

// AddOutBang declares mult bang outlets.
func (b *Base) AddOutBang(mult int) { b.addOut(host.KindSymbol, mult) }

// AddOutList declares mult list outlets.
func (b *Base) AddOutList(mult int) { b.addOut(host.KindList, mult) }

// AddOutSignal declares mult signal outlets.
func (b *Base) AddOutSignal(mult int) { b.addOut(host.KindSignal, mult) }

// DescInlet attaches a quickhelp description to a declared inlet.
// Out-of-range indices are ignored.
func (b *Base) DescInlet(ix int, desc string) {
	if ix >= 0 && ix < len(b.inlist) {
		b.inlist[ix].desc = desc
	}
}

// DescOutlet attaches a quickhelp description to a declared outlet.
func (b *Base) DescOutlet(ix int, desc string) {
	if ix >= 0 && ix < len(b.outlist) {
		b.outlist[ix].desc = desc
	}
}

// CntIn returns the finalized inlet count, 0 before SetupInOut.
func (b *Base) CntIn() int { return b.incnt }

// CntOut returns the finalized outlet count, 0 before SetupInOut.
func (b *Base) CntOut() int { return b.outcnt }

// CntInSig returns the finalized signal inlet count.
func (b *Base) CntInSig() int { return b.insigs }

// CntOutSig returns the finalized signal outlet count.
func (b *Base) CntOutSig() int { return b.outsigs }

// SetupInOut finalizes the endpoint declarations: it materializes the
// declared inlets and outlets with the host and caches the counts. It
// succeeds at most once per instance; a second call, or a host-side
// allocation failure, returns false and leaves the instance unchanged.
func (b *Base) SetupInOut() bool {
	if b.setupDone {
		return false
	}

	outlets := make([]*Outlet, 0, len(b.outlist))
	for ix, x := range b.outlist {
		h := b.hst.MakeOutlet(ix, x.kind, x.desc)
		if h == nil {
			b.log.Error("host outlet allocation failed")
			return false
		}
		outlets = append(outlets, &Outlet{idx: ix, kind: x.kind, handle: h, owner: b})
	}

	proxies := make([]*Proxy, 0, len(b.inlist))
	for ix, x := range b.inlist {
		// The primary inlet is carried by the host object itself;
		// signal inlets are wired by the DSP graph, not by proxies.
		if ix == 0 || x.kind == host.KindSignal {
			continue
		}
		h := b.hst.MakeInlet(ix, x.kind, x.desc)
		if h == nil {
			b.log.Error("host inlet allocation failed")
			return false
		}
		proxies = append(proxies, &Proxy{inlet: ix, handle: h, owner: b})
	}

	b.outlets = outlets
	b.proxies = proxies
	b.incnt = len(b.inlist)
	b.outcnt = len(b.outlist)
	b.insigs = 0
	b.outsigs = 0
	for _, x := range b.inlist {
		if x.kind == host.KindSignal {
			b.insigs++
		}
	}
	for _, x := range b.outlist {
		if x.kind == host.KindSignal {
			b.outsigs++
		}
	}
	b.setupDone = true
	return true
}

// GetOut returns the materialized outlet at ix, or nil if ix is out of
// range or SetupInOut has not run.
func (b *Base) GetOut(ix int) *Outlet {
	if !b.setupDone || ix < 0 || ix >= len(b.outlets) {
		return nil
	}
	return b.outlets[ix]
}

// Proxies returns the relays materialized for the non-primary message
// inlets, in inlet order. Host glue hands these to the embedding host so
// secondary-inlet messages arrive tagged with their inlet index.
func (b *Base) Proxies() []*Proxy {
	out := make([]*Proxy, len(b.proxies))
	copy(out, b.proxies)
	return out
}
