package builtins

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/go-mal/internal/runtime"
)

func TestPrStrReadableJoinsWithSpace(t *testing.T) {
	r := New()
	prStr, _ := r.Lookup("pr-str")
	v, _ := prStr([]runtime.Value{runtime.String{Val: "hi"}, runtime.Integer{Val: 1}})
	if v.(runtime.String).Val != `"hi" 1` {
		t.Errorf(`pr-str("hi" 1) = %q, want "\"hi\" 1"`, v.(runtime.String).Val)
	}
}

func TestStrConcatenatesWithoutQuoting(t *testing.T) {
	r := New()
	str, _ := r.Lookup("str")
	v, _ := str([]runtime.Value{runtime.String{Val: "a"}, runtime.String{Val: "b"}})
	if v.(runtime.String).Val != "ab" {
		t.Errorf(`str("a" "b") = %q, want "ab"`, v.(runtime.String).Val)
	}
}

func TestPrnWritesToRegistryOutput(t *testing.T) {
	var buf bytes.Buffer
	r := NewWithOutput(&buf)
	prn, _ := r.Lookup("prn")
	_, err := prn([]runtime.Value{runtime.String{Val: "x"}})
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != `"x"` {
		t.Errorf("prn output = %q, want %q", buf.String(), `"x"`)
	}
}

func TestPrintlnUsesDisplayForm(t *testing.T) {
	var buf bytes.Buffer
	r := NewWithOutput(&buf)
	println, _ := r.Lookup("println")
	_, _ = println([]runtime.Value{runtime.String{Val: "x"}})
	if strings.TrimSpace(buf.String()) != "x" {
		t.Errorf("println output = %q, want %q", buf.String(), "x")
	}
}
