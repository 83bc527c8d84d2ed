package builtins

import (
	"strings"

	"github.com/cwbudde/go-mal/internal/errors"
	"github.com/cwbudde/go-mal/internal/runtime"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

func registerJSON(r *Registry) {
	r.Register("json-encode", jsonEncode, CategoryJSON, "render a value as a pretty-printed JSON string")
	r.Register("json-decode", jsonDecode, CategoryJSON, "parse a JSON string into HashMap/List/scalar values")
}

func jsonEncode(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errors.NewArity("json-encode requires exactly one argument")
	}
	raw, err := toJSON(args[0])
	if err != nil {
		return nil, err
	}
	return runtime.String{Val: string(pretty.Pretty([]byte(raw)))}, nil
}

// toJSON renders v as a raw JSON text fragment suitable for embedding with
// sjson.SetRaw.
func toJSON(v runtime.Value) (string, error) {
	switch vv := v.(type) {
	case runtime.Nil:
		return "null", nil
	case runtime.Bool:
		if vv.Val {
			return "true", nil
		}
		return "false", nil
	case runtime.Integer:
		return scalarRaw(vv.Val)
	case runtime.String:
		return scalarRaw(vv.Val)
	case runtime.Keyword:
		return scalarRaw(vv.Val)
	case *runtime.List:
		return encodeArray(vv.Items)
	case *runtime.Vector:
		return encodeArray(vv.Items)
	case *runtime.HashMap:
		return encodeObject(vv)
	default:
		return "", errors.NewTypeError("json-encode cannot render a " + v.Type().String())
	}
}

// scalarRaw wraps value in a throwaway object so sjson's own value encoding
// can be reused, then pulls the resulting fragment back out with gjson.
func scalarRaw(value interface{}) (string, error) {
	doc, err := sjson.Set("{}", "v", value)
	if err != nil {
		return "", errors.NewInternal("json-encode: " + err.Error())
	}
	return gjson.Get(doc, "v").Raw, nil
}

func encodeArray(items []runtime.Value) (string, error) {
	raw := "[]"
	for _, item := range items {
		elem, err := toJSON(item)
		if err != nil {
			return "", err
		}
		next, err := sjson.SetRaw(raw, "-1", elem)
		if err != nil {
			return "", errors.NewInternal("json-encode: " + err.Error())
		}
		raw = next
	}
	return raw, nil
}

// escapePathKey neutralizes sjson's path metacharacters (".", "*", "?")
// so arbitrary HashMap keys round-trip as plain object fields.
func escapePathKey(key string) string {
	r := strings.NewReplacer(".", "\\.", "*", "\\*", "?", "\\?")
	return r.Replace(key)
}

func encodeObject(h *runtime.HashMap) (string, error) {
	raw := "{}"
	for _, k := range h.SortedKeys() {
		key, _ := runtime.HashKeyOf(k)
		val, _ := h.Get(key)
		elem, err := toJSON(val)
		if err != nil {
			return "", err
		}
		var keyText string
		switch kk := k.(type) {
		case runtime.String:
			keyText = kk.Val
		case runtime.Keyword:
			keyText = kk.Val
		}
		next, err := sjson.SetRaw(raw, escapePathKey(keyText), elem)
		if err != nil {
			return "", errors.NewInternal("json-encode: " + err.Error())
		}
		raw = next
	}
	return raw, nil
}

func jsonDecode(args []runtime.Value) (runtime.Value, error) {
	if len(args) != 1 {
		return nil, errors.NewArity("json-decode requires exactly one argument")
	}
	s, ok := args[0].(runtime.String)
	if !ok {
		return nil, errors.NewTypeError("json-decode requires a string argument")
	}
	if !gjson.Valid(s.Val) {
		return nil, errors.NewThrow(runtime.String{Val: "invalid JSON"})
	}
	return fromJSON(gjson.Parse(s.Val)), nil
}

func fromJSON(r gjson.Result) runtime.Value {
	switch r.Type {
	case gjson.Null:
		return runtime.NilValue
	case gjson.True:
		return runtime.TrueValue
	case gjson.False:
		return runtime.FalseValue
	case gjson.Number:
		return runtime.Integer{Val: int64(r.Num)}
	case gjson.String:
		return runtime.String{Val: r.Str}
	case gjson.JSON:
		if r.IsArray() {
			var items []runtime.Value
			r.ForEach(func(_, value gjson.Result) bool {
				items = append(items, fromJSON(value))
				return true
			})
			return &runtime.List{Items: items}
		}
		h := runtime.NewHashMap()
		r.ForEach(func(key, value gjson.Result) bool {
			hk, _ := runtime.HashKeyOf(runtime.String{Val: key.String()})
			h = h.Assoc(hk, fromJSON(value))
			return true
		})
		return h
	default:
		return runtime.NilValue
	}
}
