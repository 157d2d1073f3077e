package slashfill

import (
	"fmt"
	"reflect"
)

// compositeStrategy delegates both operations verbatim to a type's own
// Autocompletable implementation. No validation is added by this layer.
type compositeStrategy struct {
	typ  reflect.Type
	zero Autocompletable
}

func newCompositeStrategy(t reflect.Type) *compositeStrategy {
	var zero Autocompletable
	if t.Implements(AutocompletableType) {
		zero = reflect.Zero(t).Interface().(Autocompletable)
	} else {
		// pointer-receiver implementation
		zero = reflect.New(t).Interface().(Autocompletable)
	}
	return &compositeStrategy{typ: t, zero: zero}
}

func (s *compositeStrategy) Name() string {
	return CompositeStrategyName
}

func (s *compositeStrategy) ExtractPartial(v Value) (any, error) {
	return s.zero.ExtractPartial(v)
}

func (s *compositeStrategy) IntoValue(candidate any) (Value, error) {
	rv := reflect.ValueOf(candidate)
	if !rv.IsValid() || rv.Type() != s.typ {
		return Value{}, fmt.Errorf("%w: expected %s, got %T", ErrCandidateType, s.typ, candidate)
	}

	if c, ok := candidate.(Autocompletable); ok {
		return c.IntoValue(), nil
	}

	// Reach a pointer-receiver implementation through an addressable copy.
	pv := reflect.New(s.typ)
	pv.Elem().Set(rv)
	if c, ok := pv.Interface().(Autocompletable); ok {
		return c.IntoValue(), nil
	}

	return Value{}, fmt.Errorf("%w: %s does not implement Autocompletable", ErrCandidateType, s.typ)
}
