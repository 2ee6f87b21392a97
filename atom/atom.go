// Package atom provides the universal tagged value and message
// representation exchanged between plugin objects.
//
// An Atom carries exactly one of five variants: Nothing, Float, Int,
// Symbol or Pointer. One host runtime has no native integer atom and
// stores integers as floats; that divergence is normalized here behind a
// single Int variant with a fixed read policy: reading a Float as int
// truncates toward zero (C cast semantics, not floor), and reading an Int
// as float is a lossless widen. Callers never see two code paths.
package atom

import "github.com/mipi54/flext/symbol"

// Kind identifies the active variant of an Atom.
type Kind int

// Atom variant kinds. Nothing is an explicit placeholder value, distinct
// from the absence of an atom.
const (
	KindNothing Kind = iota
	KindFloat
	KindInt
	KindSymbol
	KindPointer
)

// String returns the string representation of a Kind.
func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindSymbol:
		return "symbol"
	case KindPointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// Atom is a tagged value with exactly one variant active at a time.
// The zero Atom is Nothing.
type Atom struct {
	kind Kind
	flt  float64
	num  int64
	sym  *symbol.Symbol
	ptr  any
}

// MakeFloat returns a Float atom.
func MakeFloat(f float64) Atom { return Atom{kind: KindFloat, flt: f} }

// MakeInt returns an Int atom.
func MakeInt(n int64) Atom { return Atom{kind: KindInt, num: n} }

// MakeSymbol returns a Symbol atom.
func MakeSymbol(s *symbol.Symbol) Atom { return Atom{kind: KindSymbol, sym: s} }

// MakeString returns a Symbol atom interning the given text.
func MakeString(s string) Atom { return MakeSymbol(symbol.Intern(s)) }

// MakePointer returns a Pointer atom wrapping an opaque external reference.
func MakePointer(p any) Atom { return Atom{kind: KindPointer, ptr: p} }

// Kind returns the active variant.
func (a Atom) Kind() Kind { return a.kind }

// IsNothing reports whether the atom is the explicit Nothing value.
func (a Atom) IsNothing() bool { return a.kind == KindNothing }

// SetNothing resets the atom to the explicit Nothing value.
func (a *Atom) SetNothing() { *a = Atom{} }

// IsFloat reports whether the Float variant is active.
func (a Atom) IsFloat() bool { return a.kind == KindFloat }

// CanBeFloat reports whether the atom can be read as a float
// (true for both Float and Int variants).
func (a Atom) CanBeFloat() bool { return a.kind == KindFloat || a.kind == KindInt }

// Float returns the float value without a variant check.
func (a Atom) Float() float64 { return a.flt }

// AFloat reads the atom as a float: Float values directly, Int values via
// a lossless widen, anything else as 0.
func (a Atom) AFloat() float64 {
	switch a.kind {
	case KindFloat:
		return a.flt
	case KindInt:
		return float64(a.num)
	default:
		return 0
	}
}

// SetFloat makes the atom a Float.
func (a *Atom) SetFloat(f float64) { *a = MakeFloat(f) }

// IsInt reports whether the Int variant is active.
func (a Atom) IsInt() bool { return a.kind == KindInt }

// CanBeInt reports whether the atom can be read as an int
// (true for both Float and Int variants).
func (a Atom) CanBeInt() bool { return a.kind == KindFloat || a.kind == KindInt }

// Int returns the integer value without a variant check.
func (a Atom) Int() int64 { return a.num }

// AInt reads the atom as an int: Int values directly, Float values
// truncated toward zero, anything else as 0. Truncation toward zero is a
// fixed policy (2.9 reads as 2, -2.9 reads as -2).
func (a Atom) AInt() int64 {
	switch a.kind {
	case KindInt:
		return a.num
	case KindFloat:
		return int64(a.flt)
	default:
		return 0
	}
}

// SetInt makes the atom an Int.
func (a *Atom) SetInt(n int64) { *a = MakeInt(n) }

// CanBeBool reports whether the atom can be read as a boolean.
func (a Atom) CanBeBool() bool { return a.CanBeInt() }

// ABool reads the atom as a boolean (nonzero integer reading).
func (a Atom) ABool() bool { return a.AInt() != 0 }

// IsSymbol reports whether the Symbol variant is active.
func (a Atom) IsSymbol() bool { return a.kind == KindSymbol }

// Symbol returns the symbol value without a variant check.
func (a Atom) Symbol() *symbol.Symbol { return a.sym }

// ASymbol returns the symbol value, or nil if the Symbol variant is not
// active.
func (a Atom) ASymbol() *symbol.Symbol {
	if a.kind == KindSymbol {
		return a.sym
	}
	return nil
}

// SetSymbol makes the atom a Symbol.
func (a *Atom) SetSymbol(s *symbol.Symbol) { *a = MakeSymbol(s) }

// IsString reports whether the atom carries text (same as IsSymbol).
func (a Atom) IsString() bool { return a.IsSymbol() }

// AString returns the symbol text, or the empty string for non-symbols.
func (a Atom) AString() string { return a.ASymbol().Name() }

// SetString makes the atom a Symbol interning the given text.
func (a *Atom) SetString(s string) { *a = MakeString(s) }

// IsPointer reports whether the Pointer variant is active.
func (a Atom) IsPointer() bool { return a.kind == KindPointer }

// Pointer returns the opaque reference without a variant check.
func (a Atom) Pointer() any { return a.ptr }

// APointer returns the opaque reference, or nil if the Pointer variant is
// not active.
func (a Atom) APointer() any {
	if a.kind == KindPointer {
		return a.ptr
	}
	return nil
}

// SetPointer makes the atom a Pointer.
func (a *Atom) SetPointer(p any) { *a = MakePointer(p) }
