package slashfill

import (
	"errors"
	"math"
	"sort"
	"strconv"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON = errors.New("payload is not valid JSON")
)

///////////////////////////////////////////////////////////////////////////////
// Kind
///////////////////////////////////////////////////////////////////////////////

// Kind is the tag of a structured Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

///////////////////////////////////////////////////////////////////////////////
// Value
///////////////////////////////////////////////////////////////////////////////

// Value is an immutable JSON-like tagged union: null, bool, number, string,
// array or object.
//
// Numbers carry an integer-or-float flavor. AsInt succeeds only for
// integer-flavored numbers; AsFloat succeeds for any number, widening
// integers to float64. The flavor is decided when the value is constructed
// (IntValue vs FloatValue) or parsed (integer JSON token vs anything else).
//
// The zero Value is Null.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	isInt bool
	s     string
	arr   []Value
	obj   map[string]Value
}

// NullValue returns the null Value.
func NullValue() Value {
	return Value{kind: KindNull}
}

// BoolValue returns a Bool Value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// IntValue returns an integer-flavored Number Value.
func IntValue(i int64) Value {
	return Value{kind: KindNumber, i: i, isInt: true}
}

// FloatValue returns a float-flavored Number Value.
func FloatValue(f float64) Value {
	return Value{kind: KindNumber, f: f}
}

// StringValue returns a String Value.
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// ArrayValue returns an Array Value holding a copy of items.
func ArrayValue(items ...Value) Value {
	arr := make([]Value, len(items))
	copy(arr, items)
	return Value{kind: KindArray, arr: arr}
}

// ObjectValue returns an Object Value holding a copy of fields.
func ObjectValue(fields map[string]Value) Value {
	obj := make(map[string]Value, len(fields))
	for k, v := range fields {
		obj[k] = v
	}
	return Value{kind: KindObject, obj: obj}
}

// Kind returns the Value's tag.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the Value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean contents. ok is false for any other kind.
func (v Value) AsBool() (b bool, ok bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsInt returns the number as an int64. ok is false for non-Number kinds and
// for float-flavored numbers.
func (v Value) AsInt() (i int64, ok bool) {
	if v.kind != KindNumber || !v.isInt {
		return 0, false
	}
	return v.i, true
}

// AsFloat returns the number as a float64. Integer-flavored numbers widen.
// ok is false for non-Number kinds.
func (v Value) AsFloat() (f float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	if v.isInt {
		return float64(v.i), true
	}
	return v.f, true
}

// AsString returns the string contents. ok is false for any other kind.
func (v Value) AsString() (s string, ok bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.s, true
}

// AsArray returns the array elements. The returned slice must not be
// modified. ok is false for any other kind.
func (v Value) AsArray() (items []Value, ok bool) {
	if v.kind != KindArray {
		return nil, false
	}
	return v.arr, true
}

// AsObject returns the object fields. The returned map must not be modified.
// ok is false for any other kind.
func (v Value) AsObject() (fields map[string]Value, ok bool) {
	if v.kind != KindObject {
		return nil, false
	}
	return v.obj, true
}

///////////////////////////////////////////////////////////////////////////////
// JSON ingestion
///////////////////////////////////////////////////////////////////////////////

// ParseJSON decodes a JSON document into a Value.
func ParseJSON(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Value{}, ErrInvalidJSON
	}
	return FromResult(gjson.ParseBytes(data)), nil
}

// ParseJSONString decodes a JSON document held in a string into a Value.
func ParseJSONString(data string) (Value, error) {
	if !gjson.Valid(data) {
		return Value{}, ErrInvalidJSON
	}
	return FromResult(gjson.Parse(data)), nil
}

// FromResult converts a gjson result into a Value. A Number whose raw token
// parses as a base-10 int64 becomes integer-flavored; every other number
// becomes float-flavored.
func FromResult(r gjson.Result) Value {
	switch r.Type {
	case gjson.Null:
		return NullValue()
	case gjson.False:
		return BoolValue(false)
	case gjson.True:
		return BoolValue(true)
	case gjson.String:
		return StringValue(r.Str)
	case gjson.Number:
		if i, err := strconv.ParseInt(r.Raw, 10, 64); err == nil {
			return IntValue(i)
		}
		return FloatValue(r.Num)
	default:
		if r.IsArray() {
			parts := r.Array()
			items := make([]Value, len(parts))
			for i, part := range parts {
				items[i] = FromResult(part)
			}
			return Value{kind: KindArray, arr: items}
		}
		if r.IsObject() {
			fields := make(map[string]Value)
			r.ForEach(func(key, value gjson.Result) bool {
				fields[key.String()] = FromResult(value)
				return true
			})
			return Value{kind: KindObject, obj: fields}
		}
		return NullValue()
	}
}

///////////////////////////////////////////////////////////////////////////////
// JSON encoding
///////////////////////////////////////////////////////////////////////////////

// MarshalJSON encodes the Value as JSON. Object keys are emitted in sorted
// order so output is deterministic.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil), nil
}

func (v Value) appendJSON(b []byte) []byte {
	switch v.kind {
	case KindNull:
		return append(b, "null"...)
	case KindBool:
		return strconv.AppendBool(b, v.b)
	case KindNumber:
		if v.isInt {
			return strconv.AppendInt(b, v.i, 10)
		}
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return append(b, '0')
		}
		return strconv.AppendFloat(b, v.f, 'g', -1, 64)
	case KindString:
		return appendJSONQuote(b, v.s)
	case KindArray:
		b = append(b, '[')
		for i, item := range v.arr {
			if i > 0 {
				b = append(b, ',')
			}
			b = item.appendJSON(b)
		}
		return append(b, ']')
	case KindObject:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		b = append(b, '{')
		for i, k := range keys {
			if i > 0 {
				b = append(b, ',')
			}
			b = strconv.AppendQuote(b, k)
			b = append(b, ':')
			b = v.obj[k].appendJSON(b)
		}
		return append(b, '}')
	default:
		return append(b, "null"...)
	}
}

const hexDigits = "0123456789abcdef"

// appendJSONQuote appends s as a JSON string. strconv quoting is Go syntax,
// not JSON: it emits escapes like \x01 that JSON parsers reject. Control
// characters become \u00XX escapes and invalid UTF-8 becomes U+FFFD, matching
// encoding/json.
func appendJSONQuote(b []byte, s string) []byte {
	b = append(b, '"')
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			switch {
			case c >= 0x20 && c != '"' && c != '\\':
				b = append(b, c)
			case c == '"' || c == '\\':
				b = append(b, '\\', c)
			case c == '\n':
				b = append(b, '\\', 'n')
			case c == '\r':
				b = append(b, '\\', 'r')
			case c == '\t':
				b = append(b, '\\', 't')
			default:
				b = append(b, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b = append(b, `�`...)
			i++
			continue
		}
		b = append(b, s[i:i+size]...)
		i += size
	}
	return append(b, '"')
}
