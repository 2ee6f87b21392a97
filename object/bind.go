package object

import (
	"sync"

	"github.com/mipi54/flext/symbol"
)

// The binding registry maps interned symbols to at most one live
// instance each. Binding an already-bound symbol fails rather than
// displacing the holder, so two objects cannot silently fight over a
// name.
var bindings = struct {
	mu sync.RWMutex
	m  map[*symbol.Symbol]*Base
}{m: make(map[*symbol.Symbol]*Base)}

// Bind registers the instance as the receiver for s. It fails if s is
// already bound, including when this instance itself holds it.
func (b *Base) Bind(s *symbol.Symbol) bool {
	if s == nil {
		return false
	}
	bindings.mu.Lock()
	defer bindings.mu.Unlock()
	if _, taken := bindings.m[s]; taken {
		return false
	}
	bindings.m[s] = b
	return true
}

// BindString interns name and binds it.
func (b *Base) BindString(name string) bool {
	return b.Bind(symbol.MakeSymbol(name))
}

// Unbind releases s. It fails if s is unbound or bound to another
// instance; a successful unbind only ever removes this instance's own
// binding.
func (b *Base) Unbind(s *symbol.Symbol) bool {
	if s == nil {
		return false
	}
	bindings.mu.Lock()
	defer bindings.mu.Unlock()
	if bindings.m[s] != b {
		return false
	}
	delete(bindings.m, s)
	return true
}

// UnbindString interns name and unbinds it.
func (b *Base) UnbindString(name string) bool {
	return b.Unbind(symbol.MakeSymbol(name))
}

// UnbindAll releases every symbol bound to the instance and returns the
// number released. Called on teardown so a destroyed object cannot be
// reached by name.
func (b *Base) UnbindAll() int {
	bindings.mu.Lock()
	defer bindings.mu.Unlock()
	n := 0
	for s, holder := range bindings.m {
		if holder == b {
			delete(bindings.m, s)
			n++
		}
	}
	return n
}

// Bound returns the instance currently bound to s, or nil.
func Bound(s *symbol.Symbol) *Base {
	bindings.mu.RLock()
	defer bindings.mu.RUnlock()
	return bindings.m[s]
}
