package runtime

// PrimitiveFunc is the signature every primitive (host-implemented)
// function satisfies: a Value slice in, a Value or error out. The
// evaluator evaluates every argument before calling it.
type PrimitiveFunc func(args []Value) (Value, error)

// Closure is a user-defined function: an unevaluated AST body, a parameter
// name list (possibly ending in a "&" variadic tail), and the environment
// captured at the moment `fn*` evaluated. IsMacro is set only by
// `defmacro!`, and only ever moves false→true.
type Closure struct {
	Params  []string
	Body    Value
	Env     *Environment
	IsMacro bool
}

// Fn is the Function value variant: either a primitive or a closure, never
// both. Exactly one of Prim/Closure is non-nil.
type Fn struct {
	Name string // diagnostic only; never consulted for dispatch
	Prim PrimitiveFunc
	Cl   *Closure
	Meta Value
}

func (*Fn) Type() ValueType { return TypeFunction }

// NewPrimitive wraps a host function as a callable Fn value.
func NewPrimitive(name string, fn PrimitiveFunc) *Fn {
	return &Fn{Name: name, Prim: fn}
}

// NewClosure wraps a user-defined function as a callable Fn value.
func NewClosure(params []string, body Value, env *Environment) *Fn {
	return &Fn{Cl: &Closure{Params: params, Body: body, Env: env}}
}

// IsMacro reports whether f is a closure flagged as a macro. Primitives are
// never macros.
func (f *Fn) IsMacro() bool {
	return f.Cl != nil && f.Cl.IsMacro
}

// AsMacro returns a copy of f with its closure flagged is_macro = true.
// Called only from `defmacro!`, which requires f to already be a closure.
func (f *Fn) AsMacro() (*Fn, bool) {
	if f.Cl == nil {
		return nil, false
	}
	clCopy := *f.Cl
	clCopy.IsMacro = true
	cp := *f
	cp.Cl = &clCopy
	return &cp, true
}
