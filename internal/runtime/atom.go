package runtime

// Atom is the sole interior-mutable value variant: a single mutable cell
// holding a Value. Every other Value is observationally immutable after
// construction. reset!/swap! mutate it in place; deref reads it without
// mutating.
type Atom struct {
	val Value
}

func (*Atom) Type() ValueType { return TypeAtom }

// NewAtom wraps v in a fresh Atom.
func NewAtom(v Value) *Atom {
	return &Atom{val: v}
}

// Get returns the atom's current value.
func (a *Atom) Get() Value {
	return a.val
}

// Set replaces the atom's value and returns it.
func (a *Atom) Set(v Value) Value {
	a.val = v
	return v
}
