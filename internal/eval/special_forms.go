package eval

import (
	"fmt"

	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/runtime"
)

// specialFormHandler implements one special form. It either produces a
// final result (nextAst == nil) or asks the caller's loop to continue with
// (nextAst, nextEnv) as the new (ast, env) pair — the tail-call case.
type specialFormHandler func(items []runtime.Value, env *runtime.Environment) (result runtime.Value, nextAst runtime.Value, nextEnv *runtime.Environment, err error)

var specialForms = map[string]specialFormHandler{
	"def!":             evalDef,
	"defmacro!":        evalDefMacro,
	"let*":             evalLet,
	"do":               evalDo,
	"if":               evalIf,
	"fn*":              evalFn,
	"quote":            evalQuote,
	"quasiquoteexpand": evalQuasiquoteExpand,
	"quasiquote":       evalQuasiquote,
	"macroexpand":      evalMacroexpand,
}

func symbolName(v runtime.Value) (string, error) {
	sym, ok := v.(runtime.Symbol)
	if !ok {
		return "", errors.NewTypeError(fmt.Sprintf("expected a symbol, got %s", runtime.PrStr(v, true)))
	}
	return sym.Val, nil
}

func evalDef(items []runtime.Value, env *runtime.Environment) (runtime.Value, runtime.Value, *runtime.Environment, error) {
	if len(items) != 3 {
		return nil, nil, nil, errors.NewArity("def! requires exactly a symbol and an expression")
	}
	name, err := symbolName(items[1])
	if err != nil {
		return nil, nil, nil, err
	}
	value, err := Eval(items[2], env)
	if err != nil {
		return nil, nil, nil, err
	}
	env.Set(name, value)
	return value, nil, nil, nil
}

func evalDefMacro(items []runtime.Value, env *runtime.Environment) (runtime.Value, runtime.Value, *runtime.Environment, error) {
	if len(items) != 3 {
		return nil, nil, nil, errors.NewArity("defmacro! requires exactly a symbol and an expression")
	}
	name, err := symbolName(items[1])
	if err != nil {
		return nil, nil, nil, err
	}
	value, err := Eval(items[2], env)
	if err != nil {
		return nil, nil, nil, err
	}
	fn, ok := value.(*runtime.Fn)
	if !ok {
		return nil, nil, nil, errors.NewTypeError("defmacro! requires its expression to evaluate to a function")
	}
	macro, ok := fn.AsMacro()
	if !ok {
		return nil, nil, nil, errors.NewTypeError("defmacro! cannot flag a primitive as a macro")
	}
	env.Set(name, macro)
	return macro, nil, nil, nil
}

func bindingPairs(v runtime.Value) ([]runtime.Value, error) {
	items, ok := runtime.Seq(v)
	if !ok {
		return nil, errors.NewTypeError("let* bindings must be a list or vector")
	}
	if len(items)%2 != 0 {
		return nil, errors.NewTypeError("let* bindings must have an even number of forms")
	}
	return items, nil
}

func evalLet(items []runtime.Value, env *runtime.Environment) (runtime.Value, runtime.Value, *runtime.Environment, error) {
	if len(items) != 3 {
		return nil, nil, nil, errors.NewArity("let* requires bindings and a body")
	}
	pairs, err := bindingPairs(items[1])
	if err != nil {
		return nil, nil, nil, err
	}
	letEnv := runtime.NewEnclosed(env)
	for i := 0; i < len(pairs); i += 2 {
		name, err := symbolName(pairs[i])
		if err != nil {
			return nil, nil, nil, err
		}
		value, err := Eval(pairs[i+1], letEnv)
		if err != nil {
			return nil, nil, nil, err
		}
		letEnv.Set(name, value)
	}
	return nil, items[2], letEnv, nil
}

func evalDo(items []runtime.Value, env *runtime.Environment) (runtime.Value, runtime.Value, *runtime.Environment, error) {
	if len(items) < 2 {
		return runtime.NilValue, nil, nil, nil
	}
	for _, expr := range items[1 : len(items)-1] {
		if _, err := Eval(expr, env); err != nil {
			return nil, nil, nil, err
		}
	}
	return nil, items[len(items)-1], env, nil
}

func evalIf(items []runtime.Value, env *runtime.Environment) (runtime.Value, runtime.Value, *runtime.Environment, error) {
	if len(items) < 3 || len(items) > 4 {
		return nil, nil, nil, errors.NewArity("if requires a condition, a then-branch, and an optional else-branch")
	}
	cond, err := Eval(items[1], env)
	if err != nil {
		return nil, nil, nil, err
	}
	if runtime.IsFalsy(cond) {
		if len(items) == 4 {
			return nil, items[3], env, nil
		}
		return runtime.NilValue, nil, nil, nil
	}
	return nil, items[2], env, nil
}

func evalFn(items []runtime.Value, env *runtime.Environment) (runtime.Value, runtime.Value, *runtime.Environment, error) {
	if len(items) != 3 {
		return nil, nil, nil, errors.NewArity("fn* requires a parameter list and a body")
	}
	paramForms, ok := runtime.Seq(items[1])
	if !ok {
		return nil, nil, nil, errors.NewTypeError("fn* parameter list must be a list or vector")
	}
	params := make([]string, len(paramForms))
	for i, p := range paramForms {
		name, err := symbolName(p)
		if err != nil {
			return nil, nil, nil, err
		}
		params[i] = name
	}
	if err := runtime.ValidateParams(params); err != nil {
		return nil, nil, nil, errors.NewTypeError(err.Error())
	}
	return runtime.NewClosure(params, items[2], env), nil, nil, nil
}

func evalQuote(items []runtime.Value, _ *runtime.Environment) (runtime.Value, runtime.Value, *runtime.Environment, error) {
	if len(items) != 2 {
		return nil, nil, nil, errors.NewArity("quote requires exactly one argument")
	}
	return items[1], nil, nil, nil
}

func evalQuasiquoteExpand(items []runtime.Value, _ *runtime.Environment) (runtime.Value, runtime.Value, *runtime.Environment, error) {
	if len(items) != 2 {
		return nil, nil, nil, errors.NewArity("quasiquoteexpand requires exactly one argument")
	}
	return quasiquote(items[1]), nil, nil, nil
}

func evalQuasiquote(items []runtime.Value, env *runtime.Environment) (runtime.Value, runtime.Value, *runtime.Environment, error) {
	if len(items) != 2 {
		return nil, nil, nil, errors.NewArity("quasiquote requires exactly one argument")
	}
	return nil, quasiquote(items[1]), env, nil
}

func evalMacroexpand(items []runtime.Value, env *runtime.Environment) (runtime.Value, runtime.Value, *runtime.Environment, error) {
	if len(items) != 2 {
		return nil, nil, nil, errors.NewArity("macroexpand requires exactly one argument")
	}
	expanded, err := macroExpand(items[1], env)
	if err != nil {
		return nil, nil, nil, err
	}
	return expanded, nil, nil, nil
}
