package atom

// List is an ordered, owned, mutable sequence of atoms. Every constructor
// and mutator deep-copies its input, so a List never aliases storage with
// another List or with a caller's slice. Backing storage is allocated only
// while the list is non-empty.
type List struct {
	atoms []Atom
}

// NewList constructs a list by copying the given atoms.
func NewList(atoms ...Atom) List {
	var l List
	l.Set(atoms)
	return l
}

// Count returns the number of atoms in the list.
func (l *List) Count() int { return len(l.atoms) }

// At returns a reference to the atom at index ix. The index must be in
// range; callers check Count first.
func (l *List) At(ix int) *Atom { return &l.atoms[ix] }

// Atoms returns the backing slice. The slice is owned by the list; callers
// that need an independent copy use Clone or GetPart.
func (l *List) Atoms() []Atom { return l.atoms }

// Set replaces the list contents with a copy of the given atoms.
func (l *List) Set(atoms []Atom) *List {
	if len(atoms) == 0 {
		l.atoms = nil
		return l
	}
	l.atoms = make([]Atom, len(atoms))
	copy(l.atoms, atoms)
	return l
}

// Clear empties the list, releasing its storage.
func (l *List) Clear() *List { return l.Set(nil) }

// Clone returns an independent deep copy of the list.
func (l *List) Clone() List {
	return NewList(l.atoms...)
}

// Append adds a single atom to the end of the list.
func (l *List) Append(a Atom) *List {
	next := make([]Atom, len(l.atoms)+1)
	copy(next, l.atoms)
	next[len(l.atoms)] = a
	l.atoms = next
	return l
}

// AppendList adds a copy of another list to the end of this one.
func (l *List) AppendList(other List) *List {
	if other.Count() == 0 {
		return l
	}
	next := make([]Atom, len(l.atoms)+other.Count())
	copy(next, l.atoms)
	copy(next[len(l.atoms):], other.atoms)
	l.atoms = next
	return l
}

// Prepend adds a single atom to the front of the list.
func (l *List) Prepend(a Atom) *List {
	next := make([]Atom, len(l.atoms)+1)
	next[0] = a
	copy(next[1:], l.atoms)
	l.atoms = next
	return l
}

// PrependList adds a copy of another list to the front of this one.
func (l *List) PrependList(other List) *List {
	if other.Count() == 0 {
		return l
	}
	next := make([]Atom, other.Count()+len(l.atoms))
	copy(next, other.atoms)
	copy(next[other.Count():], l.atoms)
	l.atoms = next
	return l
}

// GetPart returns a new list owning a copy of the sub-range
// [offs, offs+length). The range is clamped to the list bounds.
func (l *List) GetPart(offs, length int) List {
	if offs < 0 {
		offs = 0
	}
	if offs > len(l.atoms) {
		offs = len(l.atoms)
	}
	if length < 0 {
		length = 0
	}
	if offs+length > len(l.atoms) {
		length = len(l.atoms) - offs
	}
	return NewList(l.atoms[offs : offs+length]...)
}

// Part reduces the list to the sub-range [offs, offs+length).
func (l *List) Part(offs, length int) *List {
	part := l.GetPart(offs, length)
	l.atoms = part.atoms
	return l
}
