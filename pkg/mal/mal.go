// Package mal is the embeddable entry point: a host program can create an
// Interpreter, feed it forms, and drive its own REPL loop without going
// through cmd/mal.
package mal

import (
	"io"

	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/repl"
	"github.com/cwbudde/go-mal/internal/runtime"
)

// Interpreter is a ready-to-use top-level environment: primitives and
// bootstrap forms already installed.
type Interpreter struct {
	r *repl.REPL
}

// New builds an Interpreter whose prn/println output and readline prompts
// go to out; readline itself reads from standard input.
func New(out io.Writer) *Interpreter {
	return &Interpreter{r: repl.New(out)}
}

// Eval reads and evaluates a single form from source against the
// interpreter's top-level environment, returning its readable (pr_str)
// representation.
func (i *Interpreter) Eval(source string) (string, error) {
	ast, err := reader.ReadStr(source)
	if err != nil {
		return "", err
	}
	result, err := eval.Eval(ast, i.r.Env())
	if err != nil {
		return "", err
	}
	return runtime.PrStr(result, true), nil
}

// REPL drives an interactive read-eval-print loop over in, writing prompts
// and results to the writer New was given.
func (i *Interpreter) REPL(in io.Reader) error {
	return i.r.Run(in)
}

// RunFile evaluates (load-file path) with *ARGV* bound to argv, matching
// the CLI's file-script mode.
func (i *Interpreter) RunFile(path string, argv []string) error {
	return i.r.RunFile(path, argv)
}

// Env exposes the top-level environment for host programs that need to
// bind additional symbols before evaluating anything.
func (i *Interpreter) Env() *runtime.Environment {
	return i.r.Env()
}

// SetDebug turns on --dump-ast/--trace style diagnostics, writing a
// kr/pretty dump of each form's parsed AST and/or evaluated result to w.
func (i *Interpreter) SetDebug(w io.Writer, dumpAST, trace bool) {
	i.r.Debug = w
	i.r.DumpAST = dumpAST
	i.r.Trace = trace
}

// LoadPrelude evaluates (load-file path) against the top-level environment
// without touching *ARGV*, for --rc prelude scripts loaded ahead of the
// REPL or a script file. A prelude loaded before RunFile sees the empty
// *ARGV* list New binds; the later RunFile call then binds the script's
// arguments, which the prelude load never clobbers.
func (i *Interpreter) LoadPrelude(path string) error {
	call := &runtime.List{Items: []runtime.Value{
		runtime.Symbol{Val: "load-file"},
		runtime.String{Val: path},
	}}
	_, err := eval.Eval(call, i.r.Env())
	return err
}
