package builtins

import (
	"testing"

	"github.com/cwbudde/go-mal/internal/runtime"
)

func TestArithmeticOps(t *testing.T) {
	r := New()
	add, _ := r.Lookup("+")
	got, err := add([]runtime.Value{runtime.Integer{Val: 2}, runtime.Integer{Val: 3}})
	if err != nil || got.(runtime.Integer).Val != 5 {
		t.Fatalf("+ (2 3) = %v, %v, want 5", got, err)
	}

	sub, _ := r.Lookup("-")
	got, _ = sub([]runtime.Value{runtime.Integer{Val: 5}, runtime.Integer{Val: 3}})
	if got.(runtime.Integer).Val != 2 {
		t.Errorf("- (5 3) = %v, want 2", got)
	}

	mul, _ := r.Lookup("*")
	got, _ = mul([]runtime.Value{runtime.Integer{Val: 4}, runtime.Integer{Val: 3}})
	if got.(runtime.Integer).Val != 12 {
		t.Errorf("* (4 3) = %v, want 12", got)
	}
}

func TestDivisionByZeroThrows(t *testing.T) {
	r := New()
	div, _ := r.Lookup("/")
	_, err := div([]runtime.Value{runtime.Integer{Val: 1}, runtime.Integer{Val: 0}})
	if err == nil {
		t.Fatal("/ (1 0) should error")
	}
}

func TestArithmeticRejectsNonInteger(t *testing.T) {
	r := New()
	add, _ := r.Lookup("+")
	_, err := add([]runtime.Value{runtime.String{Val: "a"}, runtime.Integer{Val: 1}})
	if err == nil {
		t.Fatal("+ with a non-integer argument should error")
	}
}

func TestTimeMsReturnsPositiveInteger(t *testing.T) {
	r := New()
	fn, _ := r.Lookup("time-ms")
	got, err := fn(nil)
	if err != nil {
		t.Fatalf("time-ms errored: %v", err)
	}
	if got.(runtime.Integer).Val <= 0 {
		t.Errorf("time-ms = %v, want a positive integer", got)
	}
}
