// Package errors defines the handful of error shapes the reader and
// evaluator raise. There is no catch form in this language version, so
// every error eventually reaches the REPL driver, which formats and prints
// it and resumes the read loop.
package errors

import (
	"fmt"
	"strings"

	"github.com/cwbudde/go-mal/internal/runtime"
	"github.com/cwbudde/go-mal/pkg/token"
)

// ReaderKind distinguishes the reader's three failure shapes from each
// other so callers (chiefly the REPL) can special-case Continue.
type ReaderKind int

const (
	// KindUnbalance means the reader hit end-of-input while still inside a
	// list, vector, hash-map, or string.
	KindUnbalance ReaderKind = iota
	// KindContinue means the reader produced no token at all — empty or
	// whitespace/comment-only input. Never printed; the REPL just re-prompts.
	KindContinue
	// KindOther covers everything else: malformed reader-macro forms,
	// hash-map keys that are not String/Keyword, and similar.
	KindOther
)

// ReaderError is raised by the tokenizer/parser. Unbalance is tagged with
// the syntactic construct left open ("list", "vector", "hash-map",
// "string"); Continue carries no message and must never be printed.
type ReaderError struct {
	Kind    ReaderKind
	What    string // e.g. "list", "vector", "hash-map", "string" for Unbalance
	Message string
	Source  string
	File    string
	Pos     token.Position
}

func (e *ReaderError) Error() string {
	return e.Format(false)
}

// Format renders the error as a one-line message, or with a source-line
// and caret when position information is available.
func (e *ReaderError) Format(color bool) string {
	msg := e.message()
	if e.Pos.IsZero() || e.Source == "" {
		return msg
	}

	var sb strings.Builder
	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s:%s: ", e.File, e.Pos))
	}
	sourceLine := sourceLine(e.Source, e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}
	sb.WriteString(msg)
	return sb.String()
}

func (e *ReaderError) message() string {
	switch e.Kind {
	case KindUnbalance:
		return fmt.Sprintf("expected '%s', got EOF", closerFor(e.What))
	case KindContinue:
		return ""
	default:
		return e.Message
	}
}

func closerFor(what string) string {
	switch what {
	case "list":
		return ")"
	case "vector":
		return "]"
	case "hash-map":
		return "}"
	case "string":
		return "\""
	default:
		return ""
	}
}

// NewUnbalance builds an Unbalance(what) reader error at pos.
func NewUnbalance(what string, pos token.Position, source, file string) *ReaderError {
	return &ReaderError{Kind: KindUnbalance, What: what, Pos: pos, Source: source, File: file}
}

// NewContinue builds the sentinel "no token at all" reader error.
func NewContinue() *ReaderError {
	return &ReaderError{Kind: KindContinue}
}

// NewOther builds a free-form reader error with a message.
func NewOther(message string, pos token.Position, source, file string) *ReaderError {
	return &ReaderError{Kind: KindOther, Message: message, Pos: pos, Source: source, File: file}
}

func sourceLine(source string, lineNum int) string {
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// EvalCategory distinguishes the evaluator's error shapes.
type EvalCategory int

const (
	// CategoryThrow wraps a value thrown by `throw` or a primitive
	// (e.g. `nth` out-of-range). Carries the thrown value verbatim.
	CategoryThrow EvalCategory = iota
	// CategoryUnbound is a symbol lookup miss.
	CategoryUnbound
	// CategoryArity is a too-few/too-many arguments mismatch.
	CategoryArity
	// CategoryType is a primitive or special form applied to a value of the
	// wrong kind.
	CategoryType
	// CategoryInternal covers anything else textual, such as a failure
	// reported by the JSON encoder.
	CategoryInternal
)

// EvalError is raised by the evaluator or a primitive. Thrown carries the
// Value passed to `throw` for CategoryThrow; every other category leaves
// it nil and carries only a message.
type EvalError struct {
	Category EvalCategory
	Message  string
	Thrown   runtime.Value
}

func (e *EvalError) Error() string {
	if e.Category == CategoryThrow {
		return runtime.PrStr(e.Thrown, true)
	}
	return e.Message
}

// NewThrow wraps a thrown Value. `throw`, `nth` out-of-range, and similar
// primitives raise this.
func NewThrow(v runtime.Value) *EvalError {
	return &EvalError{Category: CategoryThrow, Thrown: v}
}

// NewUnbound reports that sym has no binding in the innermost-to-outermost
// search chain.
func NewUnbound(sym string) *EvalError {
	return &EvalError{Category: CategoryUnbound, Message: fmt.Sprintf("'%s' not found.", sym)}
}

// NewArity reports an argument-count mismatch.
func NewArity(message string) *EvalError {
	return &EvalError{Category: CategoryArity, Message: message}
}

// NewTypeError reports a value of the wrong kind reaching a primitive or
// special form.
func NewTypeError(message string) *EvalError {
	return &EvalError{Category: CategoryType, Message: message}
}

// NewInternal reports any other textual evaluator failure.
func NewInternal(message string) *EvalError {
	return &EvalError{Category: CategoryInternal, Message: message}
}
