package builtins

import (
	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/runtime"
)

func registerMapping(r *Registry) {
	r.Register("assoc", assoc, CategoryMapping, "new HashMap with additional key/value pairs merged in")
	r.Register("dissoc", dissoc, CategoryMapping, "new HashMap with the given keys removed")
	r.Register("get", get, CategoryMapping, "value at key, or nil if absent or the argument is nil")
	r.Register("contains?", containsKey, CategoryMapping, "true if the HashMap has an entry for key")
	r.Register("keys", keys, CategoryMapping, "List of a HashMap's keys")
	r.Register("vals", vals, CategoryMapping, "List of a HashMap's values")
}

func asHashMap(name string, v runtime.Value) (*runtime.HashMap, error) {
	h, ok := v.(*runtime.HashMap)
	if !ok {
		return nil, errors.NewTypeError(name + " requires a HashMap")
	}
	return h, nil
}

func assoc(args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 || len(args)%2 != 1 {
		return nil, errors.NewArity("assoc requires a HashMap followed by an even number of arguments")
	}
	h, err := asHashMap("assoc", args[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(args); i += 2 {
		key, ok := runtime.HashKeyOf(args[i])
		if !ok {
			return nil, errors.NewTypeError("assoc keys must be strings or keywords")
		}
		h = h.Assoc(key, args[i+1])
	}
	return h, nil
}

func dissoc(args []runtime.Value) (runtime.Value, error) {
	if len(args) < 1 {
		return nil, errors.NewArity("dissoc requires a HashMap")
	}
	h, err := asHashMap("dissoc", args[0])
	if err != nil {
		return nil, err
	}
	for _, a := range args[1:] {
		key, ok := runtime.HashKeyOf(a)
		if !ok {
			return nil, errors.NewTypeError("dissoc keys must be strings or keywords")
		}
		h = h.Dissoc(key)
	}
	return h, nil
}

func get(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewArity("get requires exactly two arguments")
	}
	if _, isNil := args[0].(runtime.Nil); isNil {
		return runtime.NilValue, nil
	}
	h, err := asHashMap("get", args[0])
	if err != nil {
		return nil, err
	}
	key, ok := runtime.HashKeyOf(args[1])
	if !ok {
		return runtime.NilValue, nil
	}
	v, found := h.Get(key)
	if !found {
		return runtime.NilValue, nil
	}
	return v, nil
}

func containsKey(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewArity("contains? requires exactly two arguments")
	}
	h, err := asHashMap("contains?", args[0])
	if err != nil {
		return nil, err
	}
	key, ok := runtime.HashKeyOf(args[1])
	if !ok {
		return runtime.FalseValue, nil
	}
	return runtime.BoolOf(h.Has(key)), nil
}

func keys(args []runtime.Value) (runtime.Value, error) {
	h, err := asHashMap("keys", args[0])
	if err != nil {
		return nil, err
	}
	return &runtime.List{Items: h.SortedKeys()}, nil
}

func vals(args []runtime.Value) (runtime.Value, error) {
	h, err := asHashMap("vals", args[0])
	if err != nil {
		return nil, err
	}
	keys := h.SortedKeys()
	out := make([]runtime.Value, 0, len(keys))
	for _, k := range keys {
		key, _ := runtime.HashKeyOf(k)
		v, _ := h.Get(key)
		out = append(out, v)
	}
	return &runtime.List{Items: out}, nil
}
