package mal

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestPrStrSnapshots golden-files pr_str rendering for a handful of forms
// spanning every printed value kind except Symbol, the way the teacher
// snapshots fixture output rather than hand-writing each expected string.
func TestPrStrSnapshots(t *testing.T) {
	forms := []string{
		`(list 1 2 3)`,
		`[1 2 "three" :four nil true false]`,
		`{:a 1 "b" 2}`,
		`(fn* (a b) (+ a b))`,
		`(quote (1 2 3))`,
		`(atom 42)`,
	}
	for _, form := range forms {
		var out strings.Builder
		interp := New(&out)
		got, err := interp.Eval(form)
		if err != nil {
			t.Fatalf("Eval(%q): %v", form, err)
		}
		snaps.MatchSnapshot(t, form, got)
	}
}

// TestREPLTranscriptSnapshot golden-files a whole interactive session,
// prompts and results interleaved exactly as a terminal would see them.
func TestREPLTranscriptSnapshot(t *testing.T) {
	var out strings.Builder
	interp := New(&out)
	session := "(def! square (fn* (x) (* x x)))\n(square 7)\n(map square (list 1 2 3))\n"
	if err := interp.REPL(strings.NewReader(session)); err != nil {
		t.Fatal(err)
	}
	snaps.MatchSnapshot(t, "repl-transcript", out.String())
}
