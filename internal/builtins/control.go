package builtins

import (
	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/runtime"
)

func registerControl(r *Registry) {
	r.Register("throw", throw, CategoryControl, "raise a value as a non-local exception")
	r.Register("apply", apply, CategoryControl, "call f with leading arguments plus the elements of a trailing sequence")
	r.Register("map", mapFn, CategoryControl, "apply f to every element of a sequence, returning a List of results")
}

func throw(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errors.NewArity("throw requires exactly one argument")
	}
	return nil, errors.NewThrow(args[0])
}

func asFn(name string, v runtime.Value) (*runtime.Fn, error) {
	fn, ok := v.(*runtime.Fn)
	if !ok {
		return nil, errors.NewTypeError(name + " requires a function argument")
	}
	return fn, nil
}

func apply(args []runtime.Value) (runtime.Value, error) {
	if len(args) < 2 {
		return nil, errors.NewArity("apply requires at least two arguments")
	}
	fn, err := asFn("apply", args[0])
	if err != nil {
		return nil, err
	}
	last, ok := runtime.Seq(args[len(args)-1])
	if !ok {
		return nil, errors.NewTypeError("apply requires a List or Vector as its last argument")
	}
	callArgs := make([]runtime.Value, 0, len(args)-2+len(last))
	callArgs = append(callArgs, args[1:len(args)-1]...)
	callArgs = append(callArgs, last...)
	return eval.Apply(fn, callArgs)
}

func mapFn(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewArity("map requires exactly two arguments")
	}
	fn, err := asFn("map", args[0])
	if err != nil {
		return nil, err
	}
	items, ok := runtime.Seq(args[1])
	if !ok {
		return nil, errors.NewTypeError("map requires a List or Vector as its second argument")
	}
	out := make([]runtime.Value, len(items))
	for i, item := range items {
		v, err := eval.Apply(fn, []runtime.Value{item})
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return &runtime.List{Items: out}, nil
}
