package builtins

import (
	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/runtime"
)

func registerAtom(r *Registry) {
	r.Register("atom", newAtom, CategoryAtom, "wrap a value in a fresh mutable Atom")
	r.Register("atom?", isAtom, CategoryAtom, "true if the argument is an Atom")
	r.Register("deref", deref, CategoryAtom, "the value currently held by an Atom")
	r.Register("reset!", reset, CategoryAtom, "replace an Atom's value and return it")
	r.Register("swap!", swap, CategoryAtom, "replace an Atom's value with (f current & args) and return it")
}

func newAtom(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errors.NewArity("atom requires exactly one argument")
	}
	return runtime.NewAtom(args[0]), nil
}

func asAtom(name string, v runtime.Value) (*runtime.Atom, error) {
	a, ok := v.(*runtime.Atom)
	if !ok {
		return nil, errors.NewTypeError(name + " requires an Atom")
	}
	return a, nil
}

func isAtom(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(*runtime.Atom)
	return runtime.BoolOf(ok), nil
}

func deref(args []runtime.Value) (runtime.Value, error) {
	a, err := asAtom("deref", args[0])
	if err != nil {
		return nil, err
	}
	return a.Get(), nil
}

func reset(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewArity("reset! requires exactly two arguments")
	}
	a, err := asAtom("reset!", args[0])
	if err != nil {
		return nil, err
	}
	return a.Set(args[1]), nil
}

func swap(args []runtime.Value) (runtime.Value, error) {
	if len(args) < 2 {
		return nil, errors.NewArity("swap! requires at least two arguments")
	}
	a, err := asAtom("swap!", args[0])
	if err != nil {
		return nil, err
	}
	fn, ok := args[1].(*runtime.Fn)
	if !ok {
		return nil, errors.NewTypeError("swap! requires a function as its second argument")
	}
	callArgs := make([]runtime.Value, 0, len(args)-1)
	callArgs = append(callArgs, a.Get())
	callArgs = append(callArgs, args[2:]...)
	result, err := eval.Apply(fn, callArgs)
	if err != nil {
		return nil, err
	}
	return a.Set(result), nil
}
