package builtins

import (
	"time"

	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/runtime"
)

func registerArithmetic(r *Registry) {
	r.Register("+", arith("+", func(a, b int64) int64 { return a + b }), CategoryArithmetic, "sum of two integers")
	r.Register("-", arith("-", func(a, b int64) int64 { return a - b }), CategoryArithmetic, "difference of two integers")
	r.Register("*", arith("*", func(a, b int64) int64 { return a * b }), CategoryArithmetic, "product of two integers")
	r.Register("/", div, CategoryArithmetic, "quotient of two integers")
	r.Register("time-ms", timeMs, CategoryArithmetic, "milliseconds since an arbitrary epoch")
}

func asInteger(name string, v runtime.Value) (int64, error) {
	i, ok := v.(runtime.Integer)
	if !ok {
		return 0, errors.NewTypeError(name + " requires integer arguments")
	}
	return i.Val, nil
}

func arith(name string, op func(a, b int64) int64) runtime.PrimitiveFunc {
	return func(args []runtime.Value) (runtime.Value, error) {
		if len(args) != 2 {
			return nil, errors.NewArity(name + " requires exactly two arguments")
		}
		a, err := asInteger(name, args[0])
		if err != nil {
			return nil, err
		}
		b, err := asInteger(name, args[1])
		if err != nil {
			return nil, err
		}
		return runtime.Integer{Val: op(a, b)}, nil
	}
}

func div(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewArity("/ requires exactly two arguments")
	}
	a, err := asInteger("/", args[0])
	if err != nil {
		return nil, err
	}
	b, err := asInteger("/", args[1])
	if err != nil {
		return nil, err
	}
	if b == 0 {
		return nil, errors.NewThrow(runtime.String{Val: "division by zero"})
	}
	return runtime.Integer{Val: a / b}, nil
}

func timeMs(args []runtime.Value) (runtime.Value, error) {
	return runtime.Integer{Val: time.Now().UnixMilli()}, nil
}
