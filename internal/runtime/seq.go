package runtime

// List is an ordered sequence with list identity: printed with parens.
// `rest`, `cons` and `concat` always construct a List regardless of
// whether their input was a List or a Vector.
type List struct {
	Items []Value
	Meta  Value
}

func (*List) Type() ValueType { return TypeList }

// NewList builds a List with no metadata.
func NewList(items ...Value) *List {
	return &List{Items: items}
}

// Vector is an ordered sequence with vector identity: printed with
// brackets. Structurally comparable to List under Equal, but a distinct Go
// type so the evaluator's dispatch (`(vector? x)`, quasiquote's vector rule,
// function-application vs vector-literal-evaluation) can tell them apart.
type Vector struct {
	Items []Value
	Meta  Value
}

func (*Vector) Type() ValueType { return TypeVector }

// NewVector builds a Vector with no metadata.
func NewVector(items ...Value) *Vector {
	return &Vector{Items: items}
}

// Seq returns the element slice of v if v is a List or Vector, and reports
// whether v was one of those two kinds. Most builtins and evaluator paths
// that treat lists and vectors uniformly (count, first, rest, nth, map,
// concat's inputs, ...) go through this instead of repeating the type
// switch; vec and seq keep their own switches.
func Seq(v Value) ([]Value, bool) {
	switch vv := v.(type) {
	case *List:
		return vv.Items, true
	case *Vector:
		return vv.Items, true
	default:
		return nil, false
	}
}

// Meta returns the metadata attached to v, or NilValue if v carries none or
// cannot carry metadata at all.
func Meta(v Value) Value {
	switch vv := v.(type) {
	case *List:
		if vv.Meta != nil {
			return vv.Meta
		}
	case *Vector:
		if vv.Meta != nil {
			return vv.Meta
		}
	case *HashMap:
		if vv.Meta != nil {
			return vv.Meta
		}
	case *Fn:
		if vv.Meta != nil {
			return vv.Meta
		}
	}
	return NilValue
}

// WithMeta returns a shallow copy of v carrying meta as its metadata, and
// false if v is not a kind that can carry metadata. Metadata is never part
// of Equal, so this never changes how v compares to anything else.
func WithMeta(v Value, meta Value) (Value, bool) {
	switch vv := v.(type) {
	case *List:
		cp := *vv
		cp.Meta = meta
		return &cp, true
	case *Vector:
		cp := *vv
		cp.Meta = meta
		return &cp, true
	case *HashMap:
		cp := vv.clone()
		cp.Meta = meta
		return cp, true
	case *Fn:
		cp := *vv
		cp.Meta = meta
		return &cp, true
	default:
		return nil, false
	}
}
