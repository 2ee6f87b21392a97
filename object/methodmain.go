package object

import (
	"github.com/mipi54/flext/atom"
	"github.com/mipi54/flext/symbol"
)

// Dispatch is the unified message entry point for host callbacks. Every
// inbound message, whatever inlet it arrived on and however the host glue
// received it, funnels through here: list distribution first, then the
// class method table, then the plugin's unhandled hook. Returns whether
// anything consumed the message; an unconsumed message is dropped with a
// rate-limited diagnostic.
func (b *Base) Dispatch(inlet int, sel *symbol.Symbol, args []atom.Atom) bool {
	if b.distmsgs && inlet == 0 && sel == symbol.List {
		return b.distribute(args)
	}
	return b.dispatchOne(inlet, sel, args)
}

func (b *Base) dispatchOne(inlet int, sel *symbol.Symbol, args []atom.Atom) bool {
	if b.class.Methods.Dispatch(inlet, sel, args) {
		if b.metrics != nil {
			b.metrics.RecordDispatch(b.class.Name, "handled")
		}
		return true
	}

	if h, ok := b.self.(UnhandledHandler); ok && h.MethodDefault(inlet, sel, args) {
		if b.metrics != nil {
			b.metrics.RecordDispatch(b.class.Name, "fallback")
		}
		return true
	}

	if b.metrics != nil {
		b.metrics.RecordDispatch(b.class.Name, "dropped")
		b.metrics.RecordUnhandled(b.class.Name)
	}
	if b.limiter.Allow() {
		b.log.Warn("message not handled: " + sel.String())
	}
	return false
}

// distribute delivers a list element-wise across the declared inlets in
// declaration order, each element under its implied selector. Elements
// beyond the declared inlet count are dropped.
func (b *Base) distribute(args []atom.Atom) bool {
	n := len(args)
	if b.setupDone && n > b.incnt {
		n = b.incnt
	}
	handled := false
	for i := 0; i < n; i++ {
		a := args[i]
		var sel *symbol.Symbol
		switch a.Kind() {
		case atom.KindFloat:
			sel = symbol.Float
		case atom.KindInt:
			sel = symbol.Int
		case atom.KindSymbol:
			sel = symbol.Sym
		default:
			continue
		}
		if b.dispatchOne(i, sel, args[i:i+1]) {
			handled = true
		}
	}
	return handled
}

// DispatchBang feeds a bang arriving on the given inlet.
func (b *Base) DispatchBang(inlet int) bool {
	return b.Dispatch(inlet, symbol.Bang, nil)
}

// DispatchFloat feeds a float arriving on the given inlet.
func (b *Base) DispatchFloat(inlet int, f float64) bool {
	return b.Dispatch(inlet, symbol.Float, []atom.Atom{atom.MakeFloat(f)})
}

// DispatchInt feeds an int arriving on the given inlet.
func (b *Base) DispatchInt(inlet int, n int64) bool {
	return b.Dispatch(inlet, symbol.Int, []atom.Atom{atom.MakeInt(n)})
}

// DispatchSymbol feeds a bare symbol arriving on the given inlet.
func (b *Base) DispatchSymbol(inlet int, s *symbol.Symbol) bool {
	return b.Dispatch(inlet, symbol.Sym, []atom.Atom{atom.MakeSymbol(s)})
}

// DispatchList feeds an untagged list arriving on the given inlet.
func (b *Base) DispatchList(inlet int, lst atom.List) bool {
	return b.Dispatch(inlet, symbol.List, lst.Atoms())
}

// DispatchAnything feeds a tagged message arriving on the given inlet.
func (b *Base) DispatchAnything(inlet int, msg *atom.Anything) bool {
	return b.Dispatch(inlet, msg.Header(), msg.Atoms())
}
