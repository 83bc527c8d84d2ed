package builtins

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-mal/internal/runtime"
)

func registerPrinting(r *Registry) {
	r.Register("pr-str", prStr, CategoryPrinting, "readable representation of every argument, space-separated")
	r.Register("str", str, CategoryPrinting, "display representation of every argument, concatenated")
	r.Register("prn", prn(r), CategoryPrinting, "print the readable representation of every argument and a newline")
	r.Register("println", printlnFn(r), CategoryPrinting, "print the display representation of every argument and a newline")
}

func joined(args []runtime.Value, readable bool, sep string) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = runtime.PrStr(a, readable)
	}
	return strings.Join(parts, sep)
}

func prStr(args []runtime.Value) (runtime.Value, error) {
	return runtime.String{Val: joined(args, true, " ")}, nil
}

func str(args []runtime.Value) (runtime.Value, error) {
	return runtime.String{Val: joined(args, false, "")}, nil
}

func prn(r *Registry) runtime.PrimitiveFunc {
	return func(args []runtime.Value) (runtime.Value, error) {
		fmt.Fprintln(r.output, joined(args, true, " "))
		return runtime.NilValue, nil
	}
}

func printlnFn(r *Registry) runtime.PrimitiveFunc {
	return func(args []runtime.Value) (runtime.Value, error) {
		fmt.Fprintln(r.output, joined(args, false, " "))
		return runtime.NilValue, nil
	}
}
