package slashfill

import (
	"encoding"
	"fmt"
	"reflect"
)

///////////////////////////////////////////////////////////////////////////////
// Text capability helpers
///////////////////////////////////////////////////////////////////////////////

// textCapable reports whether t can format itself as text: a string kind, a
// fmt.Stringer, or an encoding.TextMarshaler (value or pointer receiver).
func textCapable(t reflect.Type) bool {
	if t.Kind() == reflect.String {
		return true
	}
	if t.Implements(StringerType) || t.Implements(TextMarshalerType) {
		return true
	}
	pt := reflect.PointerTo(t)
	return pt.Implements(StringerType) || pt.Implements(TextMarshalerType)
}

// formatText renders a value through its text-formatting capability.
//
// Currently supports:
//   - fmt.Stringer (value or pointer receiver)
//   - encoding.TextMarshaler (value or pointer receiver)
//   - plain string kinds
func formatText(rv reflect.Value) (string, error) {
	if sv, ok := rv.Interface().(fmt.Stringer); ok {
		return sv.String(), nil
	}
	if tm, ok := rv.Interface().(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return "", fmt.Errorf("error marshaling value to text: %w", err)
		}
		return string(text), nil
	}

	// Retry through an addressable copy to reach pointer-receiver methods.
	pv := reflect.New(rv.Type())
	pv.Elem().Set(rv)
	if sv, ok := pv.Interface().(fmt.Stringer); ok {
		return sv.String(), nil
	}
	if tm, ok := pv.Interface().(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return "", fmt.Errorf("error marshaling value to text: %w", err)
		}
		return string(text), nil
	}

	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}

	return "", fmt.Errorf("type %s has no text representation", rv.Type())
}
