package object

import (
	"github.com/mipi54/flext/atom"
	"github.com/mipi54/flext/host"
	"github.com/mipi54/flext/symbol"
)

// Proxy relays messages arriving on a non-primary inlet into the owner's
// unified dispatch path, tagged with the inlet index they arrived on.
// Hosts that deliver every message to the object's primary entry need
// one proxy per secondary message inlet; SetupInOut materializes them.
type Proxy struct {
	inlet  int
	handle host.Handle
	owner  *Base
}

// Inlet returns the inlet index this proxy stands in for.
func (p *Proxy) Inlet() int { return p.inlet }

// Bang relays a bang.
func (p *Proxy) Bang() bool { return p.owner.DispatchBang(p.inlet) }

// Float relays a float.
func (p *Proxy) Float(f float64) bool { return p.owner.DispatchFloat(p.inlet, f) }

// Int relays an int.
func (p *Proxy) Int(n int64) bool { return p.owner.DispatchInt(p.inlet, n) }

// Symbol relays a bare symbol.
func (p *Proxy) Symbol(s *symbol.Symbol) bool { return p.owner.DispatchSymbol(p.inlet, s) }

// List relays an untagged list.
func (p *Proxy) List(lst atom.List) bool { return p.owner.DispatchList(p.inlet, lst) }

// Anything relays a tagged message.
func (p *Proxy) Anything(msg *atom.Anything) bool { return p.owner.DispatchAnything(p.inlet, msg) }
