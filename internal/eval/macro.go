package eval

import "github.com/cwbudde/go-mal/internal/runtime"

// isMacroCall reports whether ast is a non-empty list whose head symbol
// resolves, in env, to a closure flagged as a macro.
func isMacroCall(ast runtime.Value, env *runtime.Environment) bool {
	list, ok := ast.(*runtime.List)
	if !ok || len(list.Items) == 0 {
		return false
	}
	sym, ok := list.Items[0].(runtime.Symbol)
	if !ok {
		return false
	}
	val, ok := env.Get(sym.Val)
	if !ok {
		return false
	}
	fn, ok := val.(*runtime.Fn)
	return ok && fn.IsMacro()
}

// macroExpand repeatedly applies the head macro to the unevaluated tail
// until ast is no longer a macro call. Macro arguments are never evaluated
// before expansion — the expansion itself is evaluated by the main loop.
func macroExpand(ast runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	for isMacroCall(ast, env) {
		list := ast.(*runtime.List)
		sym := list.Items[0].(runtime.Symbol)
		val, _ := env.Get(sym.Val)
		fn := val.(*runtime.Fn)
		expanded, err := Apply(fn, list.Items[1:])
		if err != nil {
			return nil, err
		}
		ast = expanded
	}
	return ast, nil
}
