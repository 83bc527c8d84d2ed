// Package repl implements the line-oriented driver described as "out of
// scope" for the core reader/evaluator/environment: the read-eval-print
// loop, file-script mode, and the bootstrap forms injected into the
// top-level environment once the primitive library is installed.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cwbudde/go-mal/internal/builtins"
	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/eval"
	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/runtime"
	"github.com/kr/pretty"
)

// prompt is printed before each line read in interactive mode.
const prompt = "user> "

// bootstrap forms, injected into the top-level environment after the
// primitive library. cond's "odd number of forms to cond" throw string is
// part of this language's user-visible contract and must not be reworded.
var bootstrap = []string{
	`(def! not (fn* (a) (if a false true)))`,
	`(def! load-file (fn* (f) (eval (read-string (str "(do " (slurp f) "\nnil)")))))`,
	`(defmacro! cond (fn* (& xs) (if (> (count xs) 0) (list 'if (first xs) (if (> (count xs) 1) (nth xs 1) (throw "odd number of forms to cond")) (cons 'cond (rest (rest xs)))))))`,
}

// REPL holds the top-level environment and the stream rep() reads/prints
// through.
type REPL struct {
	env *runtime.Environment
	out io.Writer

	// DumpAST and Trace, when set, write a kr/pretty dump of each form's
	// parsed AST and/or evaluated result to Debug. Both default off; cmd/mal
	// wires them to its --dump-ast/--trace flags.
	DumpAST bool
	Trace   bool
	Debug   io.Writer
}

// New builds a REPL with a fresh top-level environment: the primitive
// library installed, `eval` bound to re-enter the evaluator against this
// same environment, and the bootstrap forms evaluated. out is where prn,
// println and the REPL's own prompts/results are written.
func New(out io.Writer) *REPL {
	env := runtime.New()
	registry := builtins.NewWithOutput(out)
	registry.Install(env)

	env.Set("eval", runtime.NewPrimitive("eval", func(args []runtime.Value) (runtime.Value, error) {
		return eval.Eval(args[0], env)
	}))
	env.Set("*ARGV*", &runtime.List{})

	r := &REPL{env: env, out: out, Debug: os.Stderr}
	for _, form := range bootstrap {
		if _, err := r.rep(form); err != nil {
			panic(fmt.Sprintf("repl: bootstrap form failed: %v", err))
		}
	}
	return r
}

// Env exposes the top-level environment, e.g. so a caller can pre-bind
// additional symbols (config-loaded prelude files, embedding hosts) before
// Run/RunFile are called.
func (r *REPL) Env() *runtime.Environment {
	return r.env
}

// rep reads, evaluates, and renders a single form: read errors/Continue and
// eval errors are both surfaced as ("", err); a successful read+eval
// returns the printed (readable) result.
func (r *REPL) rep(input string) (string, error) {
	decoded, err := reader.DecodeSource([]byte(input))
	if err != nil {
		return "", err
	}
	ast, err := reader.ReadStr(decoded)
	if err != nil {
		return "", err
	}
	if r.DumpAST && r.Debug != nil {
		fmt.Fprintf(r.Debug, "ast: %# v\n", pretty.Formatter(ast))
	}
	result, err := eval.Eval(ast, r.env)
	if err != nil {
		return "", err
	}
	if r.Trace && r.Debug != nil {
		fmt.Fprintf(r.Debug, "=> %# v\n", pretty.Formatter(result))
	}
	return runtime.PrStr(result, true), nil
}

// Run drives the interactive loop: prompt, read one line, evaluate,
// print the result, repeat. End-of-input prints a trailing newline and
// returns nil. Continue (empty/whitespace-only input) prints nothing and
// re-prompts; every other error prints its message and the loop continues.
func (r *REPL) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(r.out)
			return scanner.Err()
		}
		line := scanner.Text()
		result, err := r.rep(line)
		if err != nil {
			if isContinue(err) {
				continue
			}
			fmt.Fprintln(r.out, formatError(err))
			continue
		}
		fmt.Fprintln(r.out, result)
	}
}

// RunFile binds *ARGV* to argv (as Strings) and evaluates (load-file path)
// against the top-level environment, matching the CLI's file-script mode.
func (r *REPL) RunFile(path string, argv []string) error {
	items := make([]runtime.Value, len(argv))
	for i, a := range argv {
		items[i] = runtime.String{Val: a}
	}
	r.env.Set("*ARGV*", &runtime.List{Items: items})

	call := &runtime.List{Items: []runtime.Value{
		runtime.Symbol{Val: "load-file"},
		runtime.String{Val: path},
	}}
	if r.DumpAST && r.Debug != nil {
		fmt.Fprintf(r.Debug, "ast: %# v\n", pretty.Formatter(call))
	}
	result, err := eval.Eval(call, r.env)
	if err != nil {
		return fmt.Errorf("%s", formatError(err))
	}
	if r.Trace && r.Debug != nil {
		fmt.Fprintf(r.Debug, "=> %# v\n", pretty.Formatter(result))
	}
	return nil
}

func isContinue(err error) bool {
	rerr, ok := err.(*errors.ReaderError)
	return ok && rerr.Kind == errors.KindContinue
}

func formatError(err error) string {
	if rerr, ok := err.(*errors.ReaderError); ok {
		return rerr.Error()
	}
	if eerr, ok := err.(*errors.EvalError); ok {
		return eerr.Error()
	}
	return err.Error()
}
