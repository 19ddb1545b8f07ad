// Package jsoncompat parses Megam API payloads and promotes every object
// carrying a json_claz tag into the registered domain type.
//
// Objects are rebuilt innermost first, so a constructor always receives
// already-promoted children (a Node embedding a Node gets a *Node, not a
// map). Untagged objects stay map[string]any and arrays stay []any. An
// unknown tag is an error rather than a silent fallback to a map.
package jsoncompat

import (
	"encoding/json"
	"fmt"
	"sort"
	"unicode/utf8"
)

const (
	// ClassKey is the reserved member holding the fully qualified type name.
	ClassKey = "json_claz"

	// MaxNesting is the deepest accepted object/array nesting. Self
	// referencing structures such as a Node within a Node need more than
	// the usual parser defaults.
	MaxNesting = 1000
)

// Parse decodes data into plain values (map[string]any, []any, string,
// float64, bool, nil) without promoting tagged objects. data must be UTF-8.
//
// Every number becomes a float64, so integers beyond 2^53 lose precision.
// Megam ids are strings; callers needing exact large integers should parse
// Raw themselves.
func Parse(data []byte) (any, error) {
	if !utf8.Valid(data) {
		return nil, &ParseError{Err: ErrInvalidUTF8}
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, &ParseError{Err: err}
	}
	switch v.(type) {
	case map[string]any, []any:
	default:
		return nil, &ParseError{Err: fmt.Errorf("%w (actual: %s)", ErrInvalidRoot, kindOf(v))}
	}
	if err := checkDepth(v, 1); err != nil {
		return nil, err
	}
	return v, nil
}

// Decode parses data and promotes tagged objects using r. On error no
// partially built value is returned.
func (r *Registry) Decode(data []byte) (any, error) {
	v, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return r.Promote(v)
}

// Promote rebuilds a plain value tree, returning a new tree with tagged
// objects replaced by domain objects. v is not modified.
func (r *Registry) Promote(v any) (any, error) {
	return r.promote(v, 1)
}

func (r *Registry) promote(v any, depth int) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		if depth > MaxNesting {
			return nil, &ParseError{Err: ErrTooDeep}
		}
		out := make(map[string]any, len(t))
		for _, k := range sortedKeys(t) {
			pv, err := r.promote(t[k], depth+1)
			if err != nil {
				return nil, err
			}
			out[k] = pv
		}
		raw, tagged := out[ClassKey]
		if !tagged {
			return out, nil
		}
		class, ok := raw.(string)
		if !ok {
			return nil, &UnsupportedTypeError{Class: fmt.Sprint(raw)}
		}
		build, err := r.Lookup(class)
		if err != nil {
			return nil, err
		}
		delete(out, ClassKey)
		obj, err := build(out)
		if err != nil {
			return nil, &ParseError{Class: class, Err: err}
		}
		return obj, nil

	case []any:
		if depth > MaxNesting {
			return nil, &ParseError{Err: ErrTooDeep}
		}
		out := make([]any, len(t))
		for i, e := range t {
			pv, err := r.promote(e, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = pv
		}
		return out, nil
	}
	return v, nil
}

// Encode renders v as compact JSON. Domain types emit their json_claz.
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

// EncodePretty renders v as indented JSON.
func EncodePretty(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// MarshalTagged marshals v, which must encode as a JSON object, and inserts
// the json_claz member first. Domain types use it from MarshalJSON with an
// alias type to avoid recursion.
func MarshalTagged(class string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("jsoncompat: %s does not encode as an object", class)
	}
	tag, err := json.Marshal(class)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(body)+len(tag)+len(ClassKey)+4)
	out = append(out, `{"`+ClassKey+`":`...)
	out = append(out, tag...)
	if len(body) > 2 {
		out = append(out, ',')
	}
	return append(out, body[1:]...), nil
}

func checkDepth(v any, depth int) error {
	switch t := v.(type) {
	case map[string]any:
		if depth > MaxNesting {
			return &ParseError{Err: ErrTooDeep}
		}
		for _, e := range t {
			if err := checkDepth(e, depth+1); err != nil {
				return err
			}
		}
	case []any:
		if depth > MaxNesting {
			return &ParseError{Err: ErrTooDeep}
		}
		for _, e := range t {
			if err := checkDepth(e, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	}
	return fmt.Sprintf("%T", v)
}
