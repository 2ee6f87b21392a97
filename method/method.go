// Package method provides per-class method tables and signature-based
// message dispatch.
//
// A Table is populated once during class setup and frozen before any
// instance dispatches through it; after freezing it is read-only and
// needs no locking. Dispatch is a linear scan over the registered items
// in registration order: the first entry whose inlet, selector and
// argument signature are all compatible wins. Registration order is an
// observable contract, which is why the table is an ordered slice and not
// a map.
package method

import (
	"fmt"

	"github.com/mipi54/flext/atom"
	"github.com/mipi54/flext/errors"
	"github.com/mipi54/flext/symbol"
)

// Arg is a positional argument-kind marker in a method signature.
type Arg int

// Signature markers. Null terminates a variadic marker list (API parity
// with signature lists written out longhand); Gimme binds the remaining
// raw arguments unconverted, XGimme additionally exposes the selector.
const (
	ArgNull Arg = iota
	ArgFloat
	ArgInt
	ArgSymbol
	ArgPointer
	ArgGimme
	ArgXGimme
)

// String returns the string representation of a signature marker.
func (a Arg) String() string {
	switch a {
	case ArgNull:
		return "null"
	case ArgFloat:
		return "float"
	case ArgInt:
		return "int"
	case ArgSymbol:
		return "symbol"
	case ArgPointer:
		return "pointer"
	case ArgGimme:
		return "gimme"
	case ArgXGimme:
		return "xgimme"
	default:
		return "unknown"
	}
}

// WildcardInlet matches any inlet index in a method item.
const WildcardInlet = -1

// Func is the raw handler form. It receives the message selector and the
// coerced argument slice and reports whether it handled the message.
// Elements of args are addressable through the slice, so single-value
// handlers may mutate their argument in place.
type Func func(sel *symbol.Symbol, args []atom.Atom) bool

// Item is one method table entry: an inlet constraint, a selector, a
// positional signature and a handler.
type Item struct {
	Inlet int            // inlet index, or WildcardInlet
	Tag   *symbol.Symbol // selector; nil matches any otherwise-unmatched tag
	Args  []Arg
	Fun   Func
}

// Table is an ordered method table shared by all instances of a class.
type Table struct {
	items  []Item
	frozen bool
}

// NewTable creates an empty method table.
func NewTable() *Table {
	return &Table{}
}

// Len returns the number of registered items.
func (t *Table) Len() int { return len(t.items) }

// Frozen reports whether the table has been finalized.
func (t *Table) Frozen() bool { return t.frozen }

// Freeze finalizes the table. After freezing, registration fails and
// dispatch requires no synchronization.
func (t *Table) Freeze() { t.frozen = true }

// Add registers a handler for (inlet, tag) with an explicit positional
// signature. The signature may be terminated early with ArgNull; a
// variadic marker (Gimme or XGimme) must be the last effective marker.
// Registration order is dispatch order.
func (t *Table) Add(inlet int, tag string, fn Func, sig ...Arg) error {
	return t.add(inlet, symbol.Intern(tag), fn, sig)
}

// AddFallback registers a handler matching any selector on the given
// inlet that no earlier entry handled.
func (t *Table) AddFallback(inlet int, fn Func) error {
	return t.add(inlet, nil, fn, []Arg{ArgXGimme})
}

func (t *Table) add(inlet int, tag *symbol.Symbol, fn Func, sig []Arg) error {
	if t.frozen {
		return errors.WrapState(errors.ErrFrozen, "Table", "Add", "method registration")
	}
	if fn == nil {
		return errors.WrapInvalid(errors.ErrInvalidSignature, "Table", "Add", "handler validation")
	}

	// ArgNull terminates the marker list.
	for i, a := range sig {
		if a == ArgNull {
			sig = sig[:i]
			break
		}
	}
	for i, a := range sig {
		if a < ArgNull || a > ArgXGimme {
			return errors.WrapInvalid(
				fmt.Errorf("unknown marker at position %d", i),
				"Table", "Add", "signature validation")
		}
		if (a == ArgGimme || a == ArgXGimme) && i != len(sig)-1 {
			return errors.WrapInvalid(
				fmt.Errorf("variadic marker at position %d is not last", i),
				"Table", "Add", "signature validation")
		}
	}

	args := make([]Arg, len(sig))
	copy(args, sig)
	t.items = append(t.items, Item{Inlet: inlet, Tag: tag, Args: args, Fun: fn})
	return nil
}
