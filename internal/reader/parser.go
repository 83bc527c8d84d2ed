package reader

import (
	"strconv"
	"strings"

	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/runtime"
	"github.com/cwbudde/go-mal/pkg/token"
)

// Parser consumes Tokens from a Tokenizer and builds a runtime.Value tree.
// It holds one token of lookahead so ReadForm can decide what it's looking
// at before consuming it.
type Parser struct {
	tok      *Tokenizer
	source   string
	file     string
	lookahed Token
	hasNext  bool
}

// NewParser creates a Parser reading from source. file is used only for
// error messages and may be empty.
func NewParser(source, file string) *Parser {
	return &Parser{tok: NewTokenizer(source), source: source, file: file}
}

// ReadStr parses a single form from source. An input with no tokens at all
// (empty or whitespace/comment-only) yields errors.KindContinue.
func ReadStr(source string) (runtime.Value, error) {
	return NewParser(source, "").ReadForm()
}

func (p *Parser) peek() (Token, bool) {
	if !p.hasNext {
		p.lookahed, p.hasNext = p.tok.Next()
	}
	return p.lookahed, p.hasNext
}

func (p *Parser) next() (Token, bool) {
	t, ok := p.peek()
	p.hasNext = false
	return t, ok
}

func (p *Parser) unbalance(what string, pos token.Position) error {
	return errors.NewUnbalance(what, pos, p.source, p.file)
}

// ReadForm reads exactly one form and returns it.
func (p *Parser) ReadForm() (runtime.Value, error) {
	t, ok := p.next()
	if !ok {
		return nil, errors.NewContinue()
	}
	return p.readFormFrom(t)
}

func (p *Parser) readFormFrom(t Token) (runtime.Value, error) {
	switch t.Text {
	case "(":
		return p.readSeq(t.Pos, ")", "list", func(items []runtime.Value) runtime.Value {
			return &runtime.List{Items: items}
		})
	case "[":
		return p.readSeq(t.Pos, "]", "vector", func(items []runtime.Value) runtime.Value {
			return &runtime.Vector{Items: items}
		})
	case "{":
		return p.readHashMap(t.Pos)
	case "@":
		return p.readWrapped(t.Pos, "deref")
	case "'":
		return p.readWrapped(t.Pos, "quote")
	case "`":
		return p.readWrapped(t.Pos, "quasiquote")
	case "~":
		return p.readWrapped(t.Pos, "unquote")
	case "~@":
		return p.readWrapped(t.Pos, "splice-unquote")
	case "^":
		return p.readMetaForm(t.Pos)
	}
	return p.readAtom(t)
}

func (p *Parser) readWrapped(pos token.Position, sym string) (runtime.Value, error) {
	inner, err := p.readFormAt(pos, sym)
	if err != nil {
		return nil, err
	}
	return &runtime.List{Items: []runtime.Value{runtime.Symbol{Val: sym}, inner}}, nil
}

// readFormAt reads the form a reader macro requires, reporting absence as
// an Other error naming what rather than a bare Continue — the opening
// macro token already committed the parser to expecting one more form.
func (p *Parser) readFormAt(pos token.Position, what string) (runtime.Value, error) {
	t, ok := p.next()
	if !ok {
		return nil, errors.NewOther("expected a form after "+what+", got EOF", pos, p.source, p.file)
	}
	return p.readFormFrom(t)
}

func (p *Parser) readMetaForm(pos token.Position) (runtime.Value, error) {
	meta, err := p.readFormAt(pos, "with-meta")
	if err != nil {
		return nil, err
	}
	value, err := p.readFormAt(pos, "with-meta")
	if err != nil {
		return nil, err
	}
	return &runtime.List{Items: []runtime.Value{runtime.Symbol{Val: "with-meta"}, value, meta}}, nil
}

func (p *Parser) readSeq(openPos token.Position, closer, what string, build func([]runtime.Value) runtime.Value) (runtime.Value, error) {
	var items []runtime.Value
	for {
		t, ok := p.peek()
		if !ok {
			return nil, p.unbalance(what, openPos)
		}
		if t.Text == closer {
			p.next()
			return build(items), nil
		}
		p.next()
		item, err := p.readFormFrom(t)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
}

func (p *Parser) readHashMap(openPos token.Position) (runtime.Value, error) {
	h := runtime.NewHashMap()
	for {
		t, ok := p.peek()
		if !ok {
			return nil, p.unbalance("hash-map", openPos)
		}
		if t.Text == "}" {
			p.next()
			return h, nil
		}
		p.next()
		keyVal, err := p.readFormFrom(t)
		if err != nil {
			return nil, err
		}
		key, ok := runtime.HashKeyOf(keyVal)
		if !ok {
			return nil, errors.NewOther("hash-map keys must be strings or keywords", t.Pos, p.source, p.file)
		}
		vt, ok := p.next()
		if !ok {
			return nil, p.unbalance("hash-map", openPos)
		}
		val, err := p.readFormFrom(vt)
		if err != nil {
			return nil, err
		}
		h = h.Assoc(key, val)
	}
}

func (p *Parser) readAtom(t Token) (runtime.Value, error) {
	s := t.Text

	if UnterminatedString(s) {
		return nil, p.unbalance("string", t.Pos)
	}

	if n, ok := parseInteger(s); ok {
		return runtime.Integer{Val: n}, nil
	}

	switch {
	case strings.HasPrefix(s, ":"):
		return runtime.Keyword{Val: s[1:]}, nil
	case strings.HasPrefix(s, "\""):
		unescaped, err := unescape(s[1 : len(s)-1])
		if err != nil {
			return nil, p.unbalance("string", t.Pos)
		}
		return runtime.String{Val: unescaped}, nil
	case s == "true":
		return runtime.TrueValue, nil
	case s == "false":
		return runtime.FalseValue, nil
	case s == "nil":
		return runtime.NilValue, nil
	default:
		return runtime.Symbol{Val: s}, nil
	}
}

// parseInteger reports whether s is a MAL integer literal: an optional
// leading '-' followed by at least one decimal digit, parseable as a
// 64-bit signed integer.
func parseInteger(s string) (int64, bool) {
	body := s
	if strings.HasPrefix(body, "-") {
		body = body[1:]
	}
	if body == "" || body[0] < '0' || body[0] > '9' {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// unescape resolves \\, \n, \" inside the (already quote-stripped) body of
// a string literal.
func unescape(body string) (string, error) {
	var sb strings.Builder
	runes := []rune(body)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '\\' {
			sb.WriteRune(c)
			continue
		}
		i++
		if i >= len(runes) {
			return "", strconvErr("unterminated escape")
		}
		switch runes[i] {
		case '\\':
			sb.WriteByte('\\')
		case 'n':
			sb.WriteByte('\n')
		case '"':
			sb.WriteByte('"')
		default:
			return "", strconvErr("invalid escape")
		}
	}
	return sb.String(), nil
}

type strconvErr string

func (e strconvErr) Error() string { return string(e) }
