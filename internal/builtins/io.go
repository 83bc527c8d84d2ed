package builtins

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/reader"
	"github.com/cwbudde/go-mal/internal/runtime"
)

func registerIO(r *Registry) {
	r.Register("read-string", readString, CategoryIO, "parse a string into a Value, without evaluating it")
	r.Register("slurp", slurp, CategoryIO, "read an entire file's contents as a string")
	r.Register("readline", readlineFn(r), CategoryIO, "print a prompt and read one line from standard input")
}

func readString(args []runtime.Value) (runtime.Value, error) {
	s, ok := args[0].(runtime.String)
	if !ok {
		return nil, errors.NewTypeError("read-string requires a string argument")
	}
	v, err := reader.ReadStr(s.Val)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func slurp(args []runtime.Value) (runtime.Value, error) {
	s, ok := args[0].(runtime.String)
	if !ok {
		return nil, errors.NewTypeError("slurp requires a string argument")
	}
	contents, err := reader.LoadFile(s.Val)
	if err != nil {
		return nil, errors.NewThrow(runtime.String{Val: err.Error()})
	}
	return runtime.String{Val: contents}, nil
}

// stdin is shared across readlineFn calls so buffered-ahead bytes from one
// call aren't dropped when the next call reads.
var stdin = bufio.NewReader(os.Stdin)

func readlineFn(r *Registry) runtime.PrimitiveFunc {
	return func(args []runtime.Value) (runtime.Value, error) {
		if len(args) > 0 {
			if prompt, ok := args[0].(runtime.String); ok {
				fmt.Fprint(r.output, prompt.Val)
			}
		}
		line, err := stdin.ReadString('\n')
		if err != nil && line == "" {
			return runtime.NilValue, nil
		}
		return runtime.String{Val: strings.TrimRight(line, "\r\n")}, nil
	}
}
