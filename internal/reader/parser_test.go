package reader

import (
	"testing"

	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/runtime"
)

func mustRead(t *testing.T, s string) runtime.Value {
	t.Helper()
	v, err := ReadStr(s)
	if err != nil {
		t.Fatalf("ReadStr(%q) returned error: %v", s, err)
	}
	return v
}

func TestReadIntegers(t *testing.T) {
	v := mustRead(t, "42")
	i, ok := v.(runtime.Integer)
	if !ok || i.Val != 42 {
		t.Errorf("ReadStr(42) = %#v", v)
	}
	v = mustRead(t, "-17")
	i, ok = v.(runtime.Integer)
	if !ok || i.Val != -17 {
		t.Errorf("ReadStr(-17) = %#v", v)
	}
}

func TestReadSymbolStartingWithDash(t *testing.T) {
	v := mustRead(t, "-foo")
	if _, ok := v.(runtime.Symbol); !ok {
		t.Errorf("ReadStr(-foo) = %#v, want Symbol", v)
	}
}

func TestReadStringEscapes(t *testing.T) {
	v := mustRead(t, `"a\nb\"c\\d"`)
	s, ok := v.(runtime.String)
	if !ok {
		t.Fatalf("not a String: %#v", v)
	}
	want := "a\nb\"c\\d"
	if s.Val != want {
		t.Errorf("unescaped = %q, want %q", s.Val, want)
	}
}

func TestReadKeyword(t *testing.T) {
	v := mustRead(t, ":foo")
	k, ok := v.(runtime.Keyword)
	if !ok || k.Val != "foo" {
		t.Errorf("ReadStr(:foo) = %#v", v)
	}
}

func TestReadBoolNil(t *testing.T) {
	if _, ok := mustRead(t, "true").(runtime.Bool); !ok {
		t.Error("true should read as Bool")
	}
	if _, ok := mustRead(t, "nil").(runtime.Nil); !ok {
		t.Error("nil should read as Nil")
	}
}

func TestReadList(t *testing.T) {
	v := mustRead(t, "(1 2 3)")
	l, ok := v.(*runtime.List)
	if !ok || len(l.Items) != 3 {
		t.Fatalf("ReadStr((1 2 3)) = %#v", v)
	}
}

func TestReadVector(t *testing.T) {
	v := mustRead(t, "[1 2]")
	vec, ok := v.(*runtime.Vector)
	if !ok || len(vec.Items) != 2 {
		t.Fatalf("ReadStr([1 2]) = %#v", v)
	}
}

func TestReadHashMap(t *testing.T) {
	v := mustRead(t, `{"a" 1 :b 2}`)
	h, ok := v.(*runtime.HashMap)
	if !ok || h.Len() != 2 {
		t.Fatalf(`ReadStr({"a" 1 :b 2}) = %#v`, v)
	}
}

func TestReadHashMapRejectsNonStringKeywordKey(t *testing.T) {
	_, err := ReadStr("{1 2}")
	if err == nil {
		t.Error("hash-map with an integer key should be a reader error")
	}
}

func TestReaderMacroQuote(t *testing.T) {
	v := mustRead(t, "'a")
	l := v.(*runtime.List)
	if len(l.Items) != 2 || l.Items[0].(runtime.Symbol).Val != "quote" {
		t.Errorf("'a should read as (quote a), got %s", runtime.PrStr(v, true))
	}
}

func TestReaderMacroQuasiquoteUnquoteSplice(t *testing.T) {
	cases := map[string]string{
		"`a":  "quasiquote",
		"~a":  "unquote",
		"~@a": "splice-unquote",
		"@a":  "deref",
	}
	for src, head := range cases {
		v := mustRead(t, src)
		l, ok := v.(*runtime.List)
		if !ok || l.Items[0].(runtime.Symbol).Val != head {
			t.Errorf("%s should read with head %s, got %s", src, head, runtime.PrStr(v, true))
		}
	}
}

func TestReaderMacroWithMeta(t *testing.T) {
	v := mustRead(t, "^{:a 1} [1 2]")
	l, ok := v.(*runtime.List)
	if !ok || len(l.Items) != 3 {
		t.Fatalf("^meta value should read as (with-meta value meta), got %s", runtime.PrStr(v, true))
	}
	if l.Items[0].(runtime.Symbol).Val != "with-meta" {
		t.Errorf("head should be with-meta, got %v", l.Items[0])
	}
	if _, ok := l.Items[1].(*runtime.Vector); !ok {
		t.Errorf("second element should be the value (the vector), got %#v", l.Items[1])
	}
	if _, ok := l.Items[2].(*runtime.HashMap); !ok {
		t.Errorf("third element should be the metadata (the hash-map), got %#v", l.Items[2])
	}
}

func TestReadCommentsAndWhitespaceIgnored(t *testing.T) {
	v := mustRead(t, "  ; a comment\n  42 ; trailing\n")
	i, ok := v.(runtime.Integer)
	if !ok || i.Val != 42 {
		t.Errorf("comments/whitespace not properly skipped: %#v", v)
	}
}

func TestReadEmptyInputIsContinue(t *testing.T) {
	_, err := ReadStr("   ; only a comment\n")
	re, ok := err.(*errors.ReaderError)
	if !ok || re.Kind != errors.KindContinue {
		t.Errorf("empty/comment-only input should yield Continue, got %#v", err)
	}
}

func TestUnbalancedListIsError(t *testing.T) {
	_, err := ReadStr("(+ 1 2")
	re, ok := err.(*errors.ReaderError)
	if !ok || re.Kind != errors.KindUnbalance || re.What != "list" {
		t.Errorf("unterminated list should yield Unbalance(list), got %#v", err)
	}
}

func TestUnbalancedVectorIsError(t *testing.T) {
	_, err := ReadStr("[1 2")
	re, ok := err.(*errors.ReaderError)
	if !ok || re.Kind != errors.KindUnbalance || re.What != "vector" {
		t.Errorf("unterminated vector should yield Unbalance(vector), got %#v", err)
	}
}

func TestUnbalancedStringIsError(t *testing.T) {
	_, err := ReadStr(`"abc`)
	re, ok := err.(*errors.ReaderError)
	if !ok || re.Kind != errors.KindUnbalance || re.What != "string" {
		t.Errorf("unterminated string should yield Unbalance(string), got %#v", err)
	}
}

func TestReadRoundTripScalars(t *testing.T) {
	for _, src := range []string{"42", "-7", `"hi"`, ":kw", "sym", "nil", "true", "false"} {
		v := mustRead(t, src)
		back := runtime.PrStr(v, true)
		v2 := mustRead(t, back)
		if !runtime.Equal(v, v2) {
			t.Errorf("round trip failed for %q: got %q back", src, back)
		}
	}
}
