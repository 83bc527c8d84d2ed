package builtins

import (
	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/runtime"
)

func registerIntrospection(r *Registry) {
	r.Register("nil?", isNil, CategoryIntrospection, "true if the argument is nil")
	r.Register("true?", isTrue, CategoryIntrospection, "true if the argument is the boolean true")
	r.Register("false?", isFalse, CategoryIntrospection, "true if the argument is the boolean false")
	r.Register("symbol?", isSymbol, CategoryIntrospection, "true if the argument is a Symbol")
	r.Register("symbol", toSymbol, CategoryIntrospection, "build a Symbol from a string")
	r.Register("keyword", toKeyword, CategoryIntrospection, "build a Keyword from a string, or pass an existing Keyword through")
	r.Register("keyword?", isKeyword, CategoryIntrospection, "true if the argument is a Keyword")
	r.Register("string?", isString, CategoryIntrospection, "true if the argument is a String")
	r.Register("number?", isNumber, CategoryIntrospection, "true if the argument is an Integer")
	r.Register("fn?", isFn, CategoryIntrospection, "true if the argument is callable and not a macro")
	r.Register("macro?", isMacro, CategoryIntrospection, "true if the argument is a closure flagged as a macro")
}

func isNil(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(runtime.Nil)
	return runtime.BoolOf(ok), nil
}

func isTrue(args []runtime.Value) (runtime.Value, error) {
	b, ok := args[0].(runtime.Bool)
	return runtime.BoolOf(ok && b.Val), nil
}

func isFalse(args []runtime.Value) (runtime.Value, error) {
	b, ok := args[0].(runtime.Bool)
	return runtime.BoolOf(ok && !b.Val), nil
}

func isSymbol(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(runtime.Symbol)
	return runtime.BoolOf(ok), nil
}

func toSymbol(args []runtime.Value) (runtime.Value, error) {
	s, ok := args[0].(runtime.String)
	if !ok {
		return nil, errors.NewTypeError("symbol requires a string argument")
	}
	return runtime.Symbol{Val: s.Val}, nil
}

func toKeyword(args []runtime.Value) (runtime.Value, error) {
	switch v := args[0].(type) {
	case runtime.Keyword:
		return v, nil
	case runtime.String:
		return runtime.Keyword{Val: v.Val}, nil
	default:
		return nil, errors.NewTypeError("keyword requires a string or keyword argument")
	}
}

func isKeyword(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(runtime.Keyword)
	return runtime.BoolOf(ok), nil
}

func isString(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(runtime.String)
	return runtime.BoolOf(ok), nil
}

func isNumber(args []runtime.Value) (runtime.Value, error) {
	_, ok := args[0].(runtime.Integer)
	return runtime.BoolOf(ok), nil
}

func isFn(args []runtime.Value) (runtime.Value, error) {
	fn, ok := args[0].(*runtime.Fn)
	return runtime.BoolOf(ok && !fn.IsMacro()), nil
}

func isMacro(args []runtime.Value) (runtime.Value, error) {
	fn, ok := args[0].(*runtime.Fn)
	return runtime.BoolOf(ok && fn.IsMacro()), nil
}
