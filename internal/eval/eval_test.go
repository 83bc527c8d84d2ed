package eval

import (
	"testing"

	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/runtime"
)

func evalStr(t *testing.T, env *runtime.Environment, src string) runtime.Value {
	t.Helper()
	ast, err := reader.ReadStr(src)
	if err != nil {
		t.Fatalf("ReadStr(%q) failed: %v", src, err)
	}
	v, err := Eval(ast, env)
	if err != nil {
		t.Fatalf("Eval(%q) failed: %v", src, err)
	}
	return v
}

func baseEnv() *runtime.Environment {
	env := runtime.New()
	env.Set("+", runtime.NewPrimitive("+", func(args []runtime.Value) (runtime.Value, error) {
		sum := int64(0)
		for _, a := range args {
			sum += a.(runtime.Integer).Val
		}
		return runtime.Integer{Val: sum}, nil
	}))
	env.Set("*", runtime.NewPrimitive("*", func(args []runtime.Value) (runtime.Value, error) {
		prod := int64(1)
		for _, a := range args {
			prod *= a.(runtime.Integer).Val
		}
		return runtime.Integer{Val: prod}, nil
	}))
	env.Set("-", runtime.NewPrimitive("-", func(args []runtime.Value) (runtime.Value, error) {
		if len(args) == 1 {
			return runtime.Integer{Val: -args[0].(runtime.Integer).Val}, nil
		}
		res := args[0].(runtime.Integer).Val
		for _, a := range args[1:] {
			res -= a.(runtime.Integer).Val
		}
		return runtime.Integer{Val: res}, nil
	}))
	env.Set("=", runtime.NewPrimitive("=", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.BoolOf(runtime.Equal(args[0], args[1])), nil
	}))
	env.Set("<=", runtime.NewPrimitive("<=", func(args []runtime.Value) (runtime.Value, error) {
		return runtime.BoolOf(args[0].(runtime.Integer).Val <= args[1].(runtime.Integer).Val), nil
	}))
	return env
}

func TestEvalArithmetic(t *testing.T) {
	env := baseEnv()
	v := evalStr(t, env, "(+ 1 (* 2 3))")
	if v.(runtime.Integer).Val != 7 {
		t.Errorf("got %v, want 7", v)
	}
}

func TestEvalDefAndLookup(t *testing.T) {
	env := baseEnv()
	evalStr(t, env, "(def! x 10)")
	v := evalStr(t, env, "x")
	if v.(runtime.Integer).Val != 10 {
		t.Errorf("got %v, want 10", v)
	}
}

func TestEvalLetShadowingRestoredAfterExit(t *testing.T) {
	env := baseEnv()
	evalStr(t, env, "(def! x 1)")
	evalStr(t, env, "(let* (x 2) x)")
	v := evalStr(t, env, "x")
	if v.(runtime.Integer).Val != 1 {
		t.Errorf("outer x clobbered by let*, got %v", v)
	}
}

func TestEvalClosureCapturesLexically(t *testing.T) {
	env := baseEnv()
	v := evalStr(t, env, "(let* (x 1) (let* (f (fn* () x)) (let* (x 2) (f))))")
	if v.(runtime.Integer).Val != 1 {
		t.Errorf("closure should capture x=1 lexically, got %v", v)
	}
}

func TestEvalIfBranches(t *testing.T) {
	env := baseEnv()
	if v := evalStr(t, env, "(if true 1 2)"); v.(runtime.Integer).Val != 1 {
		t.Errorf("if true branch = %v", v)
	}
	if v := evalStr(t, env, "(if false 1 2)"); v.(runtime.Integer).Val != 2 {
		t.Errorf("if false branch = %v", v)
	}
	if _, ok := evalStr(t, env, "(if false 1)").(runtime.Nil); !ok {
		t.Error("if with falsy condition and no else should return Nil")
	}
}

func TestEvalFactorial(t *testing.T) {
	env := baseEnv()
	evalStr(t, env, "(def! fact (fn* (n) (if (<= n 1) 1 (* n (fact (- n 1))))))")
	v := evalStr(t, env, "(fact 5)")
	if v.(runtime.Integer).Val != 120 {
		t.Errorf("fact(5) = %v, want 120", v)
	}
}

func TestEvalTailCallDoesNotGrowStack(t *testing.T) {
	env := baseEnv()
	evalStr(t, env, "(def! loop (fn* (n) (if (= n 0) :done (loop (- n 1)))))")
	v := evalStr(t, env, "(loop 100000)")
	if kw, ok := v.(runtime.Keyword); !ok || kw.Val != "done" {
		t.Errorf("deep tail recursion did not complete, got %v", v)
	}
}

func TestEvalMacroArgumentsNotEvaluated(t *testing.T) {
	env := baseEnv()
	env.Set("/", runtime.NewPrimitive("/", func(args []runtime.Value) (runtime.Value, error) {
		t.Fatal("macro argument was evaluated")
		return nil, nil
	}))
	evalStr(t, env, "(defmacro! m (fn* (a) 42))")
	v := evalStr(t, env, "(m (/ 1 0))")
	if v.(runtime.Integer).Val != 42 {
		t.Errorf("macro expansion result = %v, want 42", v)
	}
}

func TestEvalQuasiquoteUnquoteSplice(t *testing.T) {
	env := baseEnv()
	env.Set("list", runtime.NewPrimitive("list", func(args []runtime.Value) (runtime.Value, error) {
		return &runtime.List{Items: append([]runtime.Value(nil), args...)}, nil
	}))
	env.Set("concat", runtime.NewPrimitive("concat", func(args []runtime.Value) (runtime.Value, error) {
		var out []runtime.Value
		for _, a := range args {
			items, _ := runtime.Seq(a)
			out = append(out, items...)
		}
		return &runtime.List{Items: out}, nil
	}))
	env.Set("cons", runtime.NewPrimitive("cons", func(args []runtime.Value) (runtime.Value, error) {
		items, _ := runtime.Seq(args[1])
		return &runtime.List{Items: append([]runtime.Value{args[0]}, items...)}, nil
	}))

	v := evalStr(t, env, "`(1 ~(+ 1 1) 3)")
	want := evalStr(t, env, "(list 1 2 3)")
	if !runtime.Equal(v, want) {
		t.Errorf("quasiquote unquote result = %s, want %s", runtime.PrStr(v, true), runtime.PrStr(want, true))
	}

	v2 := evalStr(t, env, "`(1 ~@(list 2 3) 4)")
	want2 := evalStr(t, env, "(list 1 2 3 4)")
	if !runtime.Equal(v2, want2) {
		t.Errorf("quasiquote splice-unquote result = %s, want %s", runtime.PrStr(v2, true), runtime.PrStr(want2, true))
	}
}

func TestEvalUnboundSymbolError(t *testing.T) {
	env := baseEnv()
	_, err := Eval(runtime.Symbol{Val: "nope"}, env)
	if err == nil {
		t.Fatal("expected an error for an unbound symbol")
	}
}
