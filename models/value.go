// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NeoVault Authors

package models

import (
	"encoding/json"
	"fmt"
)

// ValueKind enumerates the JSON-representable shapes a metadata value can take.
type ValueKind int

const (
	// KindNull is the zero kind; it marshals to JSON null.
	KindNull ValueKind = iota
	// KindString is a plain string value.
	KindString
	// KindBool is a boolean value.
	KindBool
	// KindNumber is a JSON number, held as float64.
	KindNumber
	// KindList is an ordered list of values.
	KindList
	// KindMap is a string-keyed mapping of values.
	KindMap
)

// Value is a tagged union over the scalar, list, and mapping shapes allowed
// in entry metadata. It exists so metadata survives an encrypt/decrypt round
// trip field-for-field instead of collapsing into an untyped blob.
//
// The zero Value has kind [KindNull] and marshals to JSON null.
type Value struct {
	kind ValueKind

	str  string
	b    bool
	num  float64
	list []Value
	m    map[string]Value
}

// String constructs a string-kinded Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Bool constructs a bool-kinded Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number constructs a number-kinded Value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// List constructs a list-kinded Value from its elements.
func List(elems ...Value) Value { return Value{kind: KindList, list: elems} }

// Map constructs a map-kinded Value.
func Map(m map[string]Value) Value { return Value{kind: KindMap, m: m} }

// Null constructs a null-kinded Value.
func Null() Value { return Value{} }

// Kind reports which shape the value holds.
func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string payload. ok is false for non-string kinds.
func (v Value) AsString() (s string, ok bool) { return v.str, v.kind == KindString }

// AsBool returns the bool payload. ok is false for non-bool kinds.
func (v Value) AsBool() (b bool, ok bool) { return v.b, v.kind == KindBool }

// AsNumber returns the numeric payload. ok is false for non-number kinds.
func (v Value) AsNumber() (n float64, ok bool) { return v.num, v.kind == KindNumber }

// AsList returns the list payload. ok is false for non-list kinds.
func (v Value) AsList() (elems []Value, ok bool) { return v.list, v.kind == KindList }

// AsMap returns the mapping payload. ok is false for non-map kinds.
func (v Value) AsMap() (m map[string]Value, ok bool) { return v.m, v.kind == KindMap }

// MarshalJSON implements [json.Marshaler].
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	case KindNumber:
		return json.Marshal(v.num)
	case KindList:
		if v.list == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.list)
	case KindMap:
		if v.m == nil {
			return []byte("{}"), nil
		}
		return json.Marshal(v.m)
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedValue, v.kind)
	}
}

// UnmarshalJSON implements [json.Unmarshaler]. The incoming JSON shape
// selects the kind; nested lists and objects are converted recursively.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	converted, err := FromGo(raw)
	if err != nil {
		return err
	}

	*v = converted
	return nil
}

// FromGo converts a decoded-JSON Go value (string, bool, float64, []any,
// map[string]any, or nil) into a [Value]. It returns [ErrUnsupportedValue]
// for any other type.
func FromGo(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case int:
		return Number(float64(t)), nil
	case []any:
		elems := make([]Value, 0, len(t))
		for _, e := range t {
			ev, err := FromGo(e)
			if err != nil {
				return Value{}, err
			}
			elems = append(elems, ev)
		}
		return List(elems...), nil
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, e := range t {
			ev, err := FromGo(e)
			if err != nil {
				return Value{}, err
			}
			m[k] = ev
		}
		return Map(m), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, raw)
	}
}
