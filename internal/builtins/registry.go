// Package builtins implements the primitive function library the
// evaluator's top-level environment is seeded with: arithmetic,
// comparison, sequence and mapping operations, printing, I/O, atoms,
// introspection, metadata, control, and JSON encoding/decoding.
package builtins

import (
	"io"
	"os"
	"sort"
	"sync"

	"github.com/cwbudde/go-mal/internal/runtime"
)

// Category groups related primitives for introspection and documentation;
// it plays no role in evaluation.
type Category string

const (
	CategoryArithmetic    Category = "arithmetic"
	CategoryComparison    Category = "comparison"
	CategorySequence      Category = "sequence"
	CategoryMapping       Category = "mapping"
	CategoryPrinting      Category = "printing"
	CategoryIO            Category = "io"
	CategoryAtom          Category = "atom"
	CategoryIntrospection Category = "introspection"
	CategoryMetadata      Category = "metadata"
	CategoryControl       Category = "control"
	CategoryJSON          Category = "json"
)

// FunctionInfo describes one registered primitive.
type FunctionInfo struct {
	Name        string
	Function    runtime.PrimitiveFunc
	Category    Category
	Description string
}

// Registry collects every primitive before it is installed into an
// environment. Unlike the case-insensitive identifier lookup a Pascal
// dialect needs, MAL symbols are case-sensitive, so names are stored
// verbatim.
type Registry struct {
	mu         sync.RWMutex
	functions  map[string]*FunctionInfo
	categories map[Category][]string
	output     io.Writer // where prn/println write; defaults to os.Stdout
}

// NewRegistry creates an empty Registry that writes to os.Stdout.
func NewRegistry() *Registry {
	return &Registry{
		functions:  make(map[string]*FunctionInfo),
		categories: make(map[Category][]string),
		output:     os.Stdout,
	}
}

// Register adds fn under name in category.
func (r *Registry) Register(name string, fn runtime.PrimitiveFunc, category Category, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.functions[name]; !exists {
		r.categories[category] = append(r.categories[category], name)
	}
	r.functions[name] = &FunctionInfo{Name: name, Function: fn, Category: category, Description: description}
}

// Lookup finds a primitive by exact name.
func (r *Registry) Lookup(name string) (runtime.PrimitiveFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.functions[name]
	if !ok {
		return nil, false
	}
	return info.Function, true
}

// GetByCategory returns every function in category, sorted by name.
func (r *Registry) GetByCategory(category Category) []*FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := r.categories[category]
	result := make([]*FunctionInfo, 0, len(names))
	for _, name := range names {
		result = append(result, r.functions[name])
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// AllFunctions returns every registered function, sorted by name.
func (r *Registry) AllFunctions() []*FunctionInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*FunctionInfo, 0, len(r.functions))
	for _, info := range r.functions {
		result = append(result, info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Count returns the number of registered functions.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.functions)
}

// Install binds every registered primitive into env as a Fn value.
func (r *Registry) Install(env *runtime.Environment) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name, info := range r.functions {
		env.Set(name, runtime.NewPrimitive(name, info.Function))
	}
}

// New builds a Registry writing to os.Stdout with every primitive in this
// package registered.
func New() *Registry {
	return NewWithOutput(os.Stdout)
}

// NewWithOutput builds a Registry whose prn/println write to w, with every
// primitive in this package registered. Tests use this to capture output.
func NewWithOutput(w io.Writer) *Registry {
	r := NewRegistry()
	r.output = w
	registerArithmetic(r)
	registerComparison(r)
	registerSequence(r)
	registerMapping(r)
	registerPrinting(r)
	registerIO(r)
	registerAtom(r)
	registerIntrospection(r)
	registerMetadata(r)
	registerControl(r)
	registerJSON(r)
	return r
}
