// Package eval implements the tree-walking evaluator: the tail-call loop,
// special-form dispatch, macro expansion, and quasiquote.
package eval

import (
	"fmt"

	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/runtime"
)

// Eval evaluates ast in env, looping rather than recursing on every tail
// position so deeply tail-recursive MAL programs don't grow the host stack.
func Eval(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	for {
		expanded, err := macroExpand(ast, env)
		if err != nil {
			return nil, err
		}
		ast = expanded

		list, isList := ast.(*runtime.List)
		if !isList {
			return evalAst(ast, env)
		}
		if len(list.Items) == 0 {
			return ast, nil
		}

		if sym, ok := list.Items[0].(runtime.Symbol); ok {
			if handler, ok := specialForms[sym.Val]; ok {
				result, nextAst, nextEnv, err := handler(list.Items, env)
				if err != nil {
					return nil, err
				}
				if nextAst == nil {
					return result, nil
				}
				ast, env = nextAst, nextEnv
				continue
			}
		}

		evaluated, err := evalAst(ast, env)
		if err != nil {
			return nil, err
		}
		evaluatedList := evaluated.(*runtime.List)

		fn, ok := evaluatedList.Items[0].(*runtime.Fn)
		if !ok {
			return nil, errors.NewTypeError(fmt.Sprintf("cannot call non-function: %s", runtime.PrStr(evaluatedList.Items[0], true)))
		}
		args := evaluatedList.Items[1:]

		if fn.Prim != nil {
			return fn.Prim(args)
		}

		nextEnv := runtime.NewEnclosed(fn.Cl.Env)
		if err := nextEnv.BindParams(fn.Cl.Params, args); err != nil {
			return nil, errors.NewArity(err.Error())
		}
		ast, env = fn.Cl.Body, nextEnv
	}
}

// evalAst evaluates the non-special-form shapes: symbols resolve, lists and
// vectors evaluate element-wise, hash-maps evaluate their values, and
// everything else is self-evaluating.
func evalAst(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	switch v := ast.(type) {
	case runtime.Symbol:
		val, ok := env.Get(v.Val)
		if !ok {
			return nil, errors.NewUnbound(v.Val)
		}
		return val, nil
	case *runtime.List:
		items, err := evalEach(v.Items, env)
		if err != nil {
			return nil, err
		}
		return &runtime.List{Items: items}, nil
	case *runtime.Vector:
		items, err := evalEach(v.Items, env)
		if err != nil {
			return nil, err
		}
		return &runtime.Vector{Items: items}, nil
	case *runtime.HashMap:
		result := runtime.NewHashMap()
		for _, k := range v.SortedKeys() {
			key, _ := runtime.HashKeyOf(k)
			val, _ := v.Get(key)
			evaluated, err := Eval(val, env)
			if err != nil {
				return nil, err
			}
			result = result.Assoc(key, evaluated)
		}
		return result, nil
	default:
		return ast, nil
	}
}

func evalEach(items []runtime.Value, env *runtime.Environment) ([]runtime.Value, error) {
	out := make([]runtime.Value, len(items))
	for i, item := range items {
		v, err := Eval(item, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Apply invokes fn with already-evaluated args, re-entering Eval for a
// closure body. Primitives like `apply` and `map` use this.
func Apply(fn *runtime.Fn, args []runtime.Value) (runtime.Value, error) {
	if fn.Prim != nil {
		return fn.Prim(args)
	}
	callEnv := runtime.NewEnclosed(fn.Cl.Env)
	if err := callEnv.BindParams(fn.Cl.Params, args); err != nil {
		return nil, errors.NewArity(err.Error())
	}
	return Eval(fn.Cl.Body, callEnv)
}
