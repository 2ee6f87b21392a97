// Package symbol provides the process-wide interned symbol table.
//
// A Symbol is a stable, identity-comparable reference to a string: interning
// equal content always yields the same *Symbol, so selector comparison during
// dispatch is a pointer comparison, never a string comparison. The table only
// grows; symbols live for the lifetime of the process, matching host runtime
// semantics where a symbol, once created, is never reclaimed.
package symbol

import "sync"

// Symbol is an interned string. Two symbols with equal content are the same
// pointer; comparing selectors therefore compares identities.
type Symbol struct {
	name string
}

// Name returns the symbol's text.
func (s *Symbol) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// String implements fmt.Stringer.
func (s *Symbol) String() string { return s.Name() }

type table struct {
	mu   sync.RWMutex
	syms map[string]*Symbol
}

var global = &table{syms: make(map[string]*Symbol)}

// Intern returns the unique Symbol for the given text, creating it on first
// use. Safe for concurrent use from any goroutine.
func Intern(name string) *Symbol {
	global.mu.RLock()
	s, ok := global.syms[name]
	global.mu.RUnlock()
	if ok {
		return s
	}

	global.mu.Lock()
	defer global.mu.Unlock()
	if s, ok = global.syms[name]; ok {
		return s
	}
	s = &Symbol{name: name}
	global.syms[name] = s
	return s
}

// MakeSymbol is an alias for Intern kept for API parity with the selector
// helpers on object types.
func MakeSymbol(name string) *Symbol { return Intern(name) }

// GetString returns the text of a symbol, or the empty string for nil.
func GetString(s *Symbol) string { return s.Name() }

// Predeclared selector symbols for the standard message kinds.
var (
	Bang     = Intern("bang")
	Float    = Intern("float")
	Int      = Intern("int")
	Sym      = Intern("symbol")
	List     = Intern("list")
	Anything = Intern("anything")
	Pointer  = Intern("pointer")
	Signal   = Intern("signal")
)
