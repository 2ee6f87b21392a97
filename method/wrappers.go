package method

import (
	"github.com/mipi54/flext/atom"
	"github.com/mipi54/flext/symbol"
)

// Typed registration wrappers. Each one adapts a natively typed handler
// onto the raw Func form and registers it under the conventional selector
// for its shape: a bare float arrives as selector "float", a bare int as
// "int", value tuples as "list". Single-value handlers receive pointers
// so they can mutate the argument in place.

// AddBang registers a handler for the "bang" selector.
func (t *Table) AddBang(inlet int, fn func() bool) error {
	return t.AddMethod(inlet, "bang", fn)
}

// AddMethod registers a pure (argument-less) handler for a tag.
func (t *Table) AddMethod(inlet int, tag string, fn func() bool) error {
	return t.Add(inlet, tag, func(*symbol.Symbol, []atom.Atom) bool {
		return fn()
	})
}

// AddFloat registers a single-float handler under the "float" selector.
func (t *Table) AddFloat(inlet int, fn func(f *float64) bool) error {
	return t.AddMethodFloat(inlet, "float", fn)
}

// AddInt registers a single-int handler under the "int" selector.
func (t *Table) AddInt(inlet int, fn func(n *int64) bool) error {
	return t.AddMethodInt(inlet, "int", fn)
}

// AddSymbol registers a single-symbol handler under the "symbol" selector.
func (t *Table) AddSymbol(inlet int, fn func(s *symbol.Symbol) bool) error {
	return t.AddMethodSymbol(inlet, "symbol", fn)
}

// AddFloat2 registers a two-float handler under the "list" selector.
func (t *Table) AddFloat2(inlet int, fn func(f1, f2 *float64) bool) error {
	return t.Add(inlet, "list", func(_ *symbol.Symbol, args []atom.Atom) bool {
		f1, f2 := args[0].Float(), args[1].Float()
		ok := fn(&f1, &f2)
		args[0].SetFloat(f1)
		args[1].SetFloat(f2)
		return ok
	}, ArgFloat, ArgFloat)
}

// AddFloat3 registers a three-float handler under the "list" selector.
func (t *Table) AddFloat3(inlet int, fn func(f1, f2, f3 *float64) bool) error {
	return t.Add(inlet, "list", func(_ *symbol.Symbol, args []atom.Atom) bool {
		f1, f2, f3 := args[0].Float(), args[1].Float(), args[2].Float()
		ok := fn(&f1, &f2, &f3)
		args[0].SetFloat(f1)
		args[1].SetFloat(f2)
		args[2].SetFloat(f3)
		return ok
	}, ArgFloat, ArgFloat, ArgFloat)
}

// AddInt2 registers a two-int handler under the "list" selector.
func (t *Table) AddInt2(inlet int, fn func(n1, n2 *int64) bool) error {
	return t.Add(inlet, "list", func(_ *symbol.Symbol, args []atom.Atom) bool {
		n1, n2 := args[0].Int(), args[1].Int()
		ok := fn(&n1, &n2)
		args[0].SetInt(n1)
		args[1].SetInt(n2)
		return ok
	}, ArgInt, ArgInt)
}

// AddInt3 registers a three-int handler under the "list" selector.
func (t *Table) AddInt3(inlet int, fn func(n1, n2, n3 *int64) bool) error {
	return t.Add(inlet, "list", func(_ *symbol.Symbol, args []atom.Atom) bool {
		n1, n2, n3 := args[0].Int(), args[1].Int(), args[2].Int()
		ok := fn(&n1, &n2, &n3)
		args[0].SetInt(n1)
		args[1].SetInt(n2)
		args[2].SetInt(n3)
		return ok
	}, ArgInt, ArgInt, ArgInt)
}

// AddList registers a raw-variadic handler under the "list" selector.
func (t *Table) AddList(inlet int, fn func(args []atom.Atom) bool) error {
	return t.AddMethodGimme(inlet, "list", fn)
}

// AddAnything registers a catch-all handler receiving the selector and
// the raw arguments of any otherwise-unmatched message on the inlet.
func (t *Table) AddAnything(inlet int, fn func(sel *symbol.Symbol, args []atom.Atom) bool) error {
	return t.AddFallback(inlet, Func(fn))
}

// AddMethodFloat registers a single-float handler for a tag.
func (t *Table) AddMethodFloat(inlet int, tag string, fn func(f *float64) bool) error {
	return t.Add(inlet, tag, func(_ *symbol.Symbol, args []atom.Atom) bool {
		f := args[0].Float()
		ok := fn(&f)
		args[0].SetFloat(f)
		return ok
	}, ArgFloat)
}

// AddMethodInt registers a single-int handler for a tag.
func (t *Table) AddMethodInt(inlet int, tag string, fn func(n *int64) bool) error {
	return t.Add(inlet, tag, func(_ *symbol.Symbol, args []atom.Atom) bool {
		n := args[0].Int()
		ok := fn(&n)
		args[0].SetInt(n)
		return ok
	}, ArgInt)
}

// AddMethodSymbol registers a single-symbol handler for a tag.
func (t *Table) AddMethodSymbol(inlet int, tag string, fn func(s *symbol.Symbol) bool) error {
	return t.Add(inlet, tag, func(_ *symbol.Symbol, args []atom.Atom) bool {
		return fn(args[0].Symbol())
	}, ArgSymbol)
}

// AddMethodGimme registers a tag handler binding the raw argument list.
func (t *Table) AddMethodGimme(inlet int, tag string, fn func(args []atom.Atom) bool) error {
	return t.Add(inlet, tag, func(_ *symbol.Symbol, args []atom.Atom) bool {
		return fn(args)
	}, ArgGimme)
}

// AddMethodXGimme registers a tag handler binding the selector and the
// raw argument list.
func (t *Table) AddMethodXGimme(inlet int, tag string, fn func(sel *symbol.Symbol, args []atom.Atom) bool) error {
	return t.Add(inlet, tag, Func(fn), ArgXGimme)
}
