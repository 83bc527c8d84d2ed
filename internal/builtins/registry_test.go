package builtins

import (
	"testing"

	"github.com/cwbudde/go-mal/internal/runtime"
)

func TestNewRegistersEveryCategory(t *testing.T) {
	r := New()
	for _, name := range []string{"+", "=", "list", "assoc", "pr-str", "read-string", "atom", "nil?", "meta", "throw", "json-encode"} {
		if _, ok := r.Lookup(name); !ok {
			t.Errorf("expected %q to be registered", name)
		}
	}
}

func TestInstallBindsIntoEnvironment(t *testing.T) {
	r := New()
	env := runtime.New()
	r.Install(env)
	v, ok := env.Get("+")
	if !ok {
		t.Fatal("+ should be bound after Install")
	}
	if _, ok := v.(*runtime.Fn); !ok {
		t.Errorf("+ should be bound as a Fn, got %T", v)
	}
}

func TestGetByCategorySortedByName(t *testing.T) {
	r := New()
	fns := r.GetByCategory(CategoryArithmetic)
	if len(fns) == 0 {
		t.Fatal("expected at least one arithmetic function")
	}
	for i := 1; i < len(fns); i++ {
		if fns[i-1].Name > fns[i].Name {
			t.Errorf("GetByCategory should be sorted by name: %s before %s", fns[i-1].Name, fns[i].Name)
		}
	}
}

func TestAllFunctionsSortedByNameAndMatchesCount(t *testing.T) {
	r := New()
	fns := r.AllFunctions()
	if len(fns) != r.Count() {
		t.Errorf("AllFunctions returned %d entries, Count() = %d", len(fns), r.Count())
	}
	for i := 1; i < len(fns); i++ {
		if fns[i-1].Name > fns[i].Name {
			t.Errorf("AllFunctions should be sorted by name: %s before %s", fns[i-1].Name, fns[i].Name)
		}
	}
}
