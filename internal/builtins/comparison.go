package builtins

import (
	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/runtime"
)

func registerComparison(r *Registry) {
	r.Register("=", eq, CategoryComparison, "structural equality")
	r.Register("<", cmp("<", func(a, b int64) bool { return a < b }), CategoryComparison, "less than")
	r.Register("<=", cmp("<=", func(a, b int64) bool { return a <= b }), CategoryComparison, "less than or equal")
	r.Register(">", cmp(">", func(a, b int64) bool { return a > b }), CategoryComparison, "greater than")
	r.Register(">=", cmp(">=", func(a, b int64) bool { return a >= b }), CategoryComparison, "greater than or equal")
}

func eq(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewArity("= requires exactly two arguments")
	}
	return runtime.BoolOf(runtime.Equal(args[0], args[1])), nil
}

func cmp(name string, op func(a, b int64) bool) runtime.PrimitiveFunc {
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
		return runtime.BoolOf(op(a, b)), nil
	}
}
