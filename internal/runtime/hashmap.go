package runtime

import "github.com/maruel/natural"

// HashKey is the internal map key for a HashMap entry. Only String and
// Keyword values may be keys, and the two are disjoint, so a HashKey
// carries an explicit kind tag rather than collapsing both to a bare Go
// string, which would make {"a" 1} and {:a 1} indistinguishable.
type HashKey struct {
	kind byte // 's' for String, 'k' for Keyword
	text string
}

func stringKey(s string) HashKey  { return HashKey{kind: 's', text: s} }
func keywordKey(s string) HashKey { return HashKey{kind: 'k', text: s} }

// ToValue reconstructs the Value this key was derived from.
func (k HashKey) ToValue() Value {
	if k.kind == 'k' {
		return Keyword{Val: k.text}
	}
	return String{Val: k.text}
}

// HashKeyOf converts a Value to a HashKey. ok is false if v is neither a
// String nor a Keyword — callers must surface that as a caller error.
func HashKeyOf(v Value) (HashKey, bool) {
	switch vv := v.(type) {
	case String:
		return stringKey(vv.Val), true
	case Keyword:
		return keywordKey(vv.Val), true
	default:
		return HashKey{}, false
	}
}

// HashMap is an unordered String/Keyword → Value mapping. Equality ignores
// insertion order; printing and key enumeration use a natural sort of the
// rendered keys so that output is deterministic without claiming any
// particular order is semantically meaningful.
type HashMap struct {
	entries map[HashKey]Value
	Meta    Value
}

func (*HashMap) Type() ValueType { return TypeHashMap }

// NewHashMap builds an empty HashMap.
func NewHashMap() *HashMap {
	return &HashMap{entries: make(map[HashKey]Value)}
}

// Get returns the value stored at key and whether it was present.
func (h *HashMap) Get(key HashKey) (Value, bool) {
	v, ok := h.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (h *HashMap) Has(key HashKey) bool {
	_, ok := h.entries[key]
	return ok
}

// Len returns the number of entries.
func (h *HashMap) Len() int {
	return len(h.entries)
}

// Assoc returns a new HashMap with key bound to val, leaving h unmodified.
// HashMap is observationally immutable — every mutator returns a copy.
func (h *HashMap) Assoc(key HashKey, val Value) *HashMap {
	cp := h.clone()
	cp.entries[key] = val
	return cp
}

// Dissoc returns a new HashMap with key removed, leaving h unmodified.
func (h *HashMap) Dissoc(key HashKey) *HashMap {
	cp := h.clone()
	delete(cp.entries, key)
	return cp
}

func (h *HashMap) clone() *HashMap {
	cp := &HashMap{entries: make(map[HashKey]Value, len(h.entries)), Meta: h.Meta}
	for k, v := range h.entries {
		cp.entries[k] = v
	}
	return cp
}

// SortedKeys returns the map's keys as Values (String/Keyword), ordered by
// natural comparison of their rendered text so iteration is reproducible.
func (h *HashMap) SortedKeys() []Value {
	rendered := make([]string, 0, len(h.entries))
	byRendered := make(map[string]HashKey, len(h.entries))
	for k := range h.entries {
		r := renderKey(k)
		rendered = append(rendered, r)
		byRendered[r] = k
	}
	natural.Sort(rendered)

	out := make([]Value, 0, len(rendered))
	for _, r := range rendered {
		out = append(out, byRendered[r].ToValue())
	}
	return out
}

// renderKey gives keywords and strings distinguishable sort text so a
// keyword key and a string key with the same name still sort deterministically
// relative to each other.
func renderKey(k HashKey) string {
	if k.kind == 'k' {
		return ":" + k.text
	}
	return "\"" + k.text
}
