package runtime

// Equal implements the language's `=`. List and Vector with equal element
// sequences compare equal even though their tags differ; HashMap equality
// ignores iteration order; metadata is never consulted. Functions and atoms
// compare by identity only — two closures are never structurally equal even
// if built from the same source.
func Equal(a, b Value) bool {
	aItems, aIsSeq := Seq(a)
	bItems, bIsSeq := Seq(b)
	if aIsSeq && bIsSeq {
		return equalSeq(aItems, bItems)
	}
	if aIsSeq != bIsSeq {
		return false
	}

	switch av := a.(type) {
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && av.Val == bv.Val
	case Integer:
		bv, ok := b.(Integer)
		return ok && av.Val == bv.Val
	case String:
		bv, ok := b.(String)
		return ok && av.Val == bv.Val
	case Keyword:
		bv, ok := b.(Keyword)
		return ok && av.Val == bv.Val
	case Symbol:
		bv, ok := b.(Symbol)
		return ok && av.Val == bv.Val
	case *HashMap:
		bv, ok := b.(*HashMap)
		return ok && equalHashMap(av, bv)
	case *Fn:
		return a == b
	case *Atom:
		return a == b
	default:
		return false
	}
}

func equalSeq(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalHashMap(a, b *HashMap) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.entries {
		bv, ok := b.entries[k]
		if !ok || !Equal(v, bv) {
			return false
		}
	}
	return true
}
