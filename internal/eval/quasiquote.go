package eval

import "github.com/cwbudde/go-mal/internal/runtime"

// quasiquote is a pure, compile-time-style rewrite: it builds new Values
// only, never evaluates, and never consults an environment. Its output is
// evaluated afterward by the main loop.
func quasiquote(ast runtime.Value) runtime.Value {
	switch v := ast.(type) {
	case *runtime.List:
		if len(v.Items) == 0 {
			return v
		}
		if sym, ok := v.Items[0].(runtime.Symbol); ok && sym.Val == "unquote" {
			return v.Items[1]
		}
		return &runtime.List{Items: noUnquote(v.Items)}
	case *runtime.Vector:
		var inner runtime.Value
		if len(v.Items) == 0 {
			inner = &runtime.List{}
		} else {
			inner = &runtime.List{Items: noUnquote(v.Items)}
		}
		return &runtime.List{Items: []runtime.Value{runtime.Symbol{Val: "vec"}, inner}}
	case *runtime.HashMap:
		return &runtime.List{Items: []runtime.Value{runtime.Symbol{Val: "quote"}, v}}
	case runtime.Symbol:
		return &runtime.List{Items: []runtime.Value{runtime.Symbol{Val: "quote"}, v}}
	default:
		return ast
	}
}

// noUnquote right-folds a sequence's elements into the cons/concat chain
// quasiquote uses for lists and vector bodies alike.
func noUnquote(items []runtime.Value) []runtime.Value {
	var acc []runtime.Value
	for i := len(items) - 1; i >= 0; i-- {
		elt := items[i]
		if list, ok := elt.(*runtime.List); ok && len(list.Items) > 1 {
			if sym, ok := list.Items[0].(runtime.Symbol); ok && sym.Val == "splice-unquote" {
				acc = []runtime.Value{
					runtime.Symbol{Val: "concat"},
					list.Items[1],
					&runtime.List{Items: acc},
				}
				continue
			}
		}
		acc = []runtime.Value{
			runtime.Symbol{Val: "cons"},
			quasiquote(elt),
			&runtime.List{Items: acc},
		}
	}
	return acc
}
