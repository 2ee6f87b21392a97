package atom

import "github.com/mipi54/flext/symbol"

// Anything is the canonical tagged message: a selector header naming the
// message kind plus positional arguments. It embeds List, so all list
// operations apply to the arguments.
type Anything struct {
	List
	hdr *symbol.Symbol
}

// NewAnything constructs a message with the given selector and a copy of
// the given arguments.
func NewAnything(hdr *symbol.Symbol, atoms ...Atom) Anything {
	return Anything{List: NewList(atoms...), hdr: hdr}
}

// NewAnythingString constructs a message interning the selector text.
func NewAnythingString(hdr string, atoms ...Atom) Anything {
	return NewAnything(symbol.Intern(hdr), atoms...)
}

// Header returns the selector symbol.
func (a *Anything) Header() *symbol.Symbol { return a.hdr }

// SetHeader replaces the selector symbol.
func (a *Anything) SetHeader(hdr *symbol.Symbol) { a.hdr = hdr }

// SetAnything replaces both the selector and the arguments (copied).
func (a *Anything) SetAnything(hdr *symbol.Symbol, atoms []Atom) *Anything {
	a.hdr = hdr
	a.Set(atoms)
	return a
}

// CloneAnything returns an independent deep copy of the message.
func (a *Anything) CloneAnything() Anything {
	return Anything{List: a.List.Clone(), hdr: a.hdr}
}
