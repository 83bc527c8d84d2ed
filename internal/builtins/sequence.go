package builtins

import (
	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/runtime"
)

func registerSequence(r *Registry) {
	r.Register("list", list, CategorySequence, "build a List from the arguments")
	r.Register("list?", isList, CategorySequence, "true if the argument is a List")
	r.Register("vector", vector, CategorySequence, "build a Vector from the arguments")
	r.Register("vector?", isVector, CategorySequence, "true if the argument is a Vector")
	r.Register("hash-map", hashMap, CategorySequence, "build a HashMap from alternating key/value arguments")
	r.Register("map?", isMap, CategorySequence, "true if the argument is a HashMap")
	r.Register("sequential?", isSequential, CategorySequence, "true if the argument is a List or Vector")
	r.Register("empty?", isEmpty, CategorySequence, "true if a List/Vector has no elements")
	r.Register("count", count, CategorySequence, "number of elements, 0 for nil")
	r.Register("cons", cons, CategorySequence, "prepend an element, always yielding a List")
	r.Register("concat", concat, CategorySequence, "concatenate any number of Lists/Vectors into a List")
	r.Register("vec", vec, CategorySequence, "coerce a List to a Vector (Vectors pass through)")
	r.Register("nth", nth, CategorySequence, "element at index, or throw out of bounds")
	r.Register("first", first, CategorySequence, "first element, or nil for an empty/nil sequence")
	r.Register("rest", rest, CategorySequence, "all but the first element, always a List")
	r.Register("conj", conj, CategorySequence, "add elements, at the head for a List and the tail for a Vector")
	r.Register("seq", seq, CategorySequence, "coerce to a List, or nil for empty/nil input")
}

func list(args []runtime.Value) (runtime.Value, error) {
	return &runtime.List{Items: append([]runtime.Value(nil), args...)}, nil
}

func isList(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(*runtime.List)
	return runtime.BoolOf(ok), nil
}

func vector(args []runtime.Value) (runtime.Value, error) {
	return &runtime.Vector{Items: append([]runtime.Value(nil), args...)}, nil
}

func isVector(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(*runtime.Vector)
	return runtime.BoolOf(ok), nil
}

func hashMap(args []runtime.Value) (runtime.Value, error) {
	if len(args)%2 != 0 {
		return nil, errors.NewArity("hash-map requires an even number of arguments")
	}
	h := runtime.NewHashMap()
	for i := 0; i < len(args); i += 2 {
		key, ok := runtime.HashKeyOf(args[i])
		if !ok {
			return nil, errors.NewTypeError("hash-map keys must be strings or keywords")
		}
		h = h.Assoc(key, args[i+1])
	}
	return h, nil
}

func isMap(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(*runtime.HashMap)
	return runtime.BoolOf(ok), nil
}

func isSequential(args []runtime.Value) (runtime.Value, error) {
	_, ok := runtime.Seq(args[0])
	return runtime.BoolOf(ok), nil
}

func isEmpty(args []runtime.Value) (runtime.Value, error) {
	items, ok := runtime.Seq(args[0])
	if !ok {
		return nil, errors.NewTypeError("empty? requires a List or Vector")
	}
	return runtime.BoolOf(len(items) == 0), nil
}

func count(args []runtime.Value) (runtime.Value, error) {
	if _, isNil := args[0].(runtime.Nil); isNil {
		return runtime.Integer{Val: 0}, nil
	}
	items, ok := runtime.Seq(args[0])
	if !ok {
		return runtime.Integer{Val: 0}, nil
	}
	return runtime.Integer{Val: int64(len(items))}, nil
}

func cons(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewArity("cons requires exactly two arguments")
	}
	items, ok := runtime.Seq(args[1])
	if !ok {
		return nil, errors.NewTypeError("cons requires a List or Vector as its second argument")
	}
	result := make([]runtime.Value, 0, len(items)+1)
	result = append(result, args[0])
	result = append(result, items...)
	return &runtime.List{Items: result}, nil
}

func concat(args []runtime.Value) (runtime.Value, error) {
	var out []runtime.Value
	for _, a := range args {
		items, ok := runtime.Seq(a)
		if !ok {
			return nil, errors.NewTypeError("concat requires every argument to be a List or Vector")
		}
		out = append(out, items...)
	}
	return &runtime.List{Items: out}, nil
}

func vec(args []runtime.Value) (runtime.Value, error) {
	switch v := args[0].(type) {
	case *runtime.List:
		return &runtime.Vector{Items: append([]runtime.Value(nil), v.Items...)}, nil
	case *runtime.Vector:
		return v, nil
	default:
		return nil, errors.NewTypeError("vec requires a List or Vector")
	}
}

func nth(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewArity("nth requires exactly two arguments")
	}
	items, ok := runtime.Seq(args[0])
	if !ok {
		return nil, errors.NewTypeError("nth requires a List or Vector")
	}
	idx, err := asInteger("nth", args[1])
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= int64(len(items)) {
		return nil, errors.NewThrow(runtime.String{Val: "out of bounds"})
	}
	return items[idx], nil
}

func first(args []runtime.Value) (runtime.Value, error) {
	if _, isNil := args[0].(runtime.Nil); isNil {
		return runtime.NilValue, nil
	}
	items, ok := runtime.Seq(args[0])
	if !ok {
		return nil, errors.NewTypeError("first requires a List, Vector, or nil")
	}
	if len(items) == 0 {
		return runtime.NilValue, nil
	}
	return items[0], nil
}

func rest(args []runtime.Value) (runtime.Value, error) {
	if _, isNil := args[0].(runtime.Nil); isNil {
		return &runtime.List{}, nil
	}
	items, ok := runtime.Seq(args[0])
	if !ok {
		return nil, errors.NewTypeError("rest requires a List, Vector, or nil")
	}
	if len(items) == 0 {
		return &runtime.List{}, nil
	}
	return &runtime.List{Items: append([]runtime.Value(nil), items[1:]...)}, nil
}

func conj(args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 {
		return nil, errors.NewArity("conj requires at least one argument")
	}
	switch v := args[0].(type) {
	case *runtime.List:
		out := make([]runtime.Value, 0, len(v.Items)+len(args)-1)
		for i := len(args) - 1; i >= 1; i-- {
			out = append(out, args[i])
		}
		out = append(out, v.Items...)
		return &runtime.List{Items: out}, nil
	case *runtime.Vector:
		out := append([]runtime.Value(nil), v.Items...)
		out = append(out, args[1:]...)
		return &runtime.Vector{Items: out}, nil
	default:
		return nil, errors.NewTypeError("conj requires a List or Vector")
	}
}

func seq(args []runtime.Value) (runtime.Value, error) {
	switch v := args[0].(type) {
	case runtime.Nil:
		return runtime.NilValue, nil
	case *runtime.List:
		if len(v.Items) == 0 {
			return runtime.NilValue, nil
		}
		return v, nil
	case *runtime.Vector:
		if len(v.Items) == 0 {
			return runtime.NilValue, nil
		}
		return &runtime.List{Items: append([]runtime.Value(nil), v.Items...)}, nil
	case runtime.String:
		if v.Val == "" {
			return runtime.NilValue, nil
		}
		items := make([]runtime.Value, 0, len(v.Val))
		for _, r := range v.Val {
			items = append(items, runtime.String{Val: string(r)})
		}
		return &runtime.List{Items: items}, nil
	default:
		return nil, errors.NewTypeError("seq requires a List, Vector, String, or nil")
	}
}
