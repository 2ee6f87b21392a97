package method

import (
	"github.com/mipi54/flext/atom"
	"github.com/mipi54/flext/symbol"
)

// Dispatch routes a message to the first structurally and type-compatible
// entry, in registration order:
//
//  1. Entries whose inlet matches neither exactly nor as wildcard are
//     skipped.
//  2. Entries whose selector matches neither exactly nor as the fallback
//     marker are skipped.
//  3. The supplied arguments are coerced against the entry's signature
//     one marker at a time; any positional failure rejects this entry and
//     the scan continues with the next one.
//
// The winning handler's return value is Dispatch's return value; false
// means the handler declined and the caller falls through to its
// unhandled hook. Dispatch never mutates the supplied arguments; coerced
// copies are handed to the handler.
func (t *Table) Dispatch(inlet int, sel *symbol.Symbol, args []atom.Atom) bool {
	for i := range t.items {
		it := &t.items[i]
		if it.Inlet != WildcardInlet && it.Inlet != inlet {
			continue
		}
		if it.Tag != nil && it.Tag != sel {
			continue
		}
		coerced, ok := coerce(it.Args, args)
		if !ok {
			continue
		}
		return it.Fun(sel, coerced)
	}
	return false
}

// coerce converts args against a signature. Non-variadic signatures
// require an exact count match; a trailing variadic marker binds whatever
// remains, unconverted.
func coerce(sig []Arg, args []atom.Atom) ([]atom.Atom, bool) {
	variadic := len(sig) > 0 && (sig[len(sig)-1] == ArgGimme || sig[len(sig)-1] == ArgXGimme)
	fixed := len(sig)
	if variadic {
		fixed--
	}

	if variadic {
		if len(args) < fixed {
			return nil, false
		}
	} else if len(args) != fixed {
		return nil, false
	}

	coerced := make([]atom.Atom, 0, len(args))
	for i := 0; i < fixed; i++ {
		a := args[i]
		switch sig[i] {
		case ArgFloat:
			if !a.CanBeFloat() {
				return nil, false
			}
			coerced = append(coerced, atom.MakeFloat(a.AFloat()))
		case ArgInt:
			if !a.CanBeInt() {
				return nil, false
			}
			coerced = append(coerced, atom.MakeInt(a.AInt()))
		case ArgSymbol:
			if !a.IsSymbol() {
				return nil, false
			}
			coerced = append(coerced, a)
		case ArgPointer:
			if !a.IsPointer() {
				return nil, false
			}
			coerced = append(coerced, a)
		default:
			return nil, false
		}
	}
	if variadic {
		coerced = append(coerced, args[fixed:]...)
	}
	return coerced, true
}
