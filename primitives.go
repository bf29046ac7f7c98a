package mibig

import (
	"encoding/json"
	"fmt"
	"math"
)

// AsInt converts a decoded JSON number to int. It accepts json.Number
// (go-json/encoding/json with UseNumber) and the Go integer kinds produced by
// the YAML reader and by hand-built trees. Floats are rejected even when
// integral: 5.0 is not an integer coordinate.
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		if n > math.MaxInt || n < math.MinInt {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil || i > math.MaxInt || i < math.MinInt {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}

// AsString converts a decoded JSON string.
func AsString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// Object wraps a decoded JSON object for typed field access. Accessor failures
// are collected as Issues (required / invalid_type) instead of being returned
// one by one, so a decoder reports every structural problem in one pass.
type Object struct {
	m      map[string]any
	entity string
	iss    Issues
}

// AsObject wraps v, which must be a map[string]any. entity names the type being
// decoded and prefixes issue fields ("Location" -> "Location.from").
func AsObject(v any, entity string) (*Object, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, Issues{{Field: entity, Path: "/", Code: CodeInvalidType, Message: fmt.Sprintf("%s must be an object", entity)}}
	}
	return &Object{m: m, entity: entity}, nil
}

func (o *Object) field(key string) string { return o.entity + "." + key }

// Fail records an issue for key.
func (o *Object) Fail(key, code, msg string) {
	o.iss = append(o.iss, Root().Field(key).Issue(o.field(key), code, msg))
}

// Adopt records issues produced while decoding the child value at key.
func (o *Object) Adopt(key string, err error) {
	if err == nil {
		return
	}
	iss, ok := AsIssues(err)
	if !ok {
		o.Fail(key, CodeParseError, err.Error())
		return
	}
	o.iss = append(o.iss, iss.Under(Root().Field(key))...)
}

// Has reports whether key is present (possibly null).
func (o *Object) Has(key string) bool {
	_, ok := o.m[key]
	return ok
}

// Raw returns the value at key.
func (o *Object) Raw(key string) (any, bool) {
	v, ok := o.m[key]
	return v, ok
}

// Int returns the required integer at key.
func (o *Object) Int(key string) int {
	v, ok := o.m[key]
	if !ok {
		o.Fail(key, CodeRequired, fmt.Sprintf("%s is required", o.field(key)))
		return 0
	}
	i, ok := AsInt(v)
	if !ok {
		o.Fail(key, CodeInvalidType, fmt.Sprintf("%s needs to be an integer", o.field(key)))
	}
	return i
}

// String returns the required string at key.
func (o *Object) String(key string) string {
	v, ok := o.m[key]
	if !ok {
		o.Fail(key, CodeRequired, fmt.Sprintf("%s is required", o.field(key)))
		return ""
	}
	s, ok := AsString(v)
	if !ok {
		o.Fail(key, CodeInvalidType, fmt.Sprintf("%s needs to be a string", o.field(key)))
	}
	return s
}

// OptString returns the string at key; absent and null both yield ("", false).
func (o *Object) OptString(key string) (string, bool) {
	v, ok := o.m[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := AsString(v)
	if !ok {
		o.Fail(key, CodeInvalidType, fmt.Sprintf("%s needs to be a string", o.field(key)))
		return "", false
	}
	return s, true
}

// NullableString returns the string at key. The key must be present; null is
// reported as ("", false).
func (o *Object) NullableString(key string) (string, bool) {
	if !o.Has(key) {
		o.Fail(key, CodeRequired, fmt.Sprintf("%s is required", o.field(key)))
		return "", false
	}
	return o.OptString(key)
}

// List returns the array at key. A missing or null key yields nil, and is an
// issue only when required is set.
func (o *Object) List(key string, required bool) []any {
	v, ok := o.m[key]
	if !ok || v == nil {
		if required {
			o.Fail(key, CodeRequired, fmt.Sprintf("%s is required", o.field(key)))
		}
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		o.Fail(key, CodeInvalidType, fmt.Sprintf("%s needs to be a list", o.field(key)))
		return nil
	}
	return arr
}

// Err returns the collected issues, or nil.
func (o *Object) Err() error {
	if len(o.iss) == 0 {
		return nil
	}
	return o.iss
}

// DecodeList decodes every element of raw with dec and anchors element issues
// at /i. Elements that fail to decode are dropped from the result.
func DecodeList[T any](raw []any, dec func(any) (T, error)) ([]T, error) {
	out := make([]T, 0, len(raw))
	var iss Issues
	for i, r := range raw {
		v, err := dec(r)
		if err != nil {
			if ci, ok := AsIssues(err); ok {
				iss = append(iss, ci.Under(Root().Index(i))...)
			} else {
				iss = append(iss, Root().Index(i).Issue("", CodeParseError, err.Error()))
			}
			continue
		}
		out = append(out, v)
	}
	if len(iss) > 0 {
		return out, iss
	}
	return out, nil
}

// EncodeList maps every element through enc. It always returns a non-nil
// slice so empty lists serialize as [] rather than null.
func EncodeList[T any](vs []T, enc func(T) any) []any {
	out := make([]any, 0, len(vs))
	for _, v := range vs {
		out = append(out, enc(v))
	}
	return out
}
