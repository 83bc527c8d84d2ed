// Package runtime defines the tagged value model shared by the reader,
// the evaluator and the environment. Values, environments and closures are
// kept in one package — a closure holds the *Environment it closed over and
// an Environment's store holds Values, so splitting them would create an
// import cycle.
package runtime

// ValueType tags the variant of a Value. Kept as a small int rather than a
// string so type switches and equality checks stay cheap.
type ValueType int

const (
	TypeNil ValueType = iota
	TypeBool
	TypeInteger
	TypeString
	TypeKeyword
	TypeSymbol
	TypeList
	TypeVector
	TypeHashMap
	TypeFunction
	TypeAtom
)

func (t ValueType) String() string {
	switch t {
	case TypeNil:
		return "nil"
	case TypeBool:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeString:
		return "string"
	case TypeKeyword:
		return "keyword"
	case TypeSymbol:
		return "symbol"
	case TypeList:
		return "list"
	case TypeVector:
		return "vector"
	case TypeHashMap:
		return "hash-map"
	case TypeFunction:
		return "function"
	case TypeAtom:
		return "atom"
	default:
		return "unknown"
	}
}

// Value is the single tagged sum every runtime value, reader output, and
// evaluator input/output satisfies. It deliberately carries no String()
// method of its own — String and readable printing differ (see print.go's
// PrStr), so a bare fmt.Stringer would invite the wrong one to be used.
type Value interface {
	Type() ValueType
}

// Nil is the singleton null value. There is exactly one meaningful instance,
// exposed as the package-level NilValue.
type Nil struct{}

func (Nil) Type() ValueType { return TypeNil }

// NilValue is the single shared Nil instance. Equality and identity compare
// equal for every Nil encountered, so sharing one instance costs nothing and
// avoids an allocation every time `if`/`do` produce "no value".
var NilValue Value = Nil{}

// Bool wraps a boolean. true and false are interned as TrueValue/FalseValue.
type Bool struct {
	Val bool
}

func (Bool) Type() ValueType { return TypeBool }

var (
	TrueValue  Value = Bool{Val: true}
	FalseValue Value = Bool{Val: false}
)

// BoolOf returns the interned Bool value for b.
func BoolOf(b bool) Value {
	if b {
		return TrueValue
	}
	return FalseValue
}

// Integer is a 64-bit signed integer. There is no bignum or rational tower.
type Integer struct {
	Val int64
}

func (Integer) Type() ValueType { return TypeInteger }

// String is UTF-8 text. Distinct from Keyword and Symbol even though all
// three wrap a Go string — see Keyword/Symbol below.
type String struct {
	Val string
}

func (String) Type() ValueType { return TypeString }

// Keyword is UTF-8 text with an identity disjoint from String and Symbol.
// The stored Val never includes the leading ':' — that is surface syntax
// added back by the printer.
type Keyword struct {
	Val string
}

func (Keyword) Type() ValueType { return TypeKeyword }

// Symbol is an identifier used as an environment key and, in head position
// of a non-empty list, as a special-form or function-application selector.
type Symbol struct {
	Val string
}

func (Symbol) Type() ValueType { return TypeSymbol }

// IsFalsy reports whether v is a value that `if` treats as false: Nil or
// Bool(false). Every other value, including 0, "", and empty collections,
// is truthy.
func IsFalsy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return true
	case Bool:
		return !vv.Val
	default:
		return false
	}
}
