package builtins

import (
	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/runtime"
)

func registerMetadata(r *Registry) {
	r.Register("meta", metaFn, CategoryMetadata, "the metadata attached to a value, or nil")
	r.Register("with-meta", withMeta, CategoryMetadata, "a copy of a value carrying new metadata")
}

func metaFn(args []runtime.Value) (runtime.Value, error) {
	return runtime.Meta(args[0]), nil
}

func withMeta(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 2 {
		return nil, errors.NewArity("with-meta requires exactly two arguments")
	}
	v, ok := runtime.WithMeta(args[0], args[1])
	if !ok {
		return nil, errors.NewTypeError("with-meta requires a List, Vector, HashMap, or function")
	}
	return v, nil
}
