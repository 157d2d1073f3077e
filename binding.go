package slashfill

import (
	"fmt"
	"reflect"

	"golang.org/x/exp/constraints"
)

// Binding is the typed front over a Strategy: T is the parameter's target
// type, P the partial type its strategy extracts.
//
// The per-strategy constructors move strategy applicability to compile time
// through their generic constraints. They still resolve through the shared
// resolver, so a type that implements Autocompletable keeps its composite
// strategy even when built with, say, IntBinding — the specificity order
// cannot be bypassed.
type Binding[T any, P any] struct {
	strat Strategy
}

// Strategy returns the underlying resolved strategy.
func (b Binding[T, P]) Strategy() Strategy {
	return b.strat
}

// ExtractPartial extracts the typed partial input from a structured value.
func (b Binding[T, P]) ExtractPartial(v Value) (P, error) {
	var zero P
	raw, err := b.strat.ExtractPartial(v)
	if err != nil {
		return zero, err
	}
	partial, ok := raw.(P)
	if !ok {
		return zero, fmt.Errorf("%w: expected %T, got %T", ErrPartialType, zero, raw)
	}
	return partial, nil
}

// IntoValue serializes a chosen candidate as an autocomplete choice value.
func (b Binding[T, P]) IntoValue(candidate T) (Value, error) {
	return b.strat.IntoValue(candidate)
}

// IntBinding binds any integer type. Extraction is overflow-checked against
// T's own range.
func IntBinding[T constraints.Integer]() Binding[T, T] {
	return Binding[T, T]{strat: MustResolve(reflect.TypeOf((*T)(nil)).Elem())}
}

// FloatBinding binds float32 and float64 types.
func FloatBinding[T constraints.Float]() Binding[T, T] {
	return Binding[T, T]{strat: MustResolve(reflect.TypeOf((*T)(nil)).Elem())}
}

// StringBinding binds plain string parameters.
func StringBinding() Binding[string, string] {
	return Binding[string, string]{strat: MustResolve(reflect.TypeOf((*string)(nil)).Elem())}
}

// StringerBinding binds any type that formats itself via fmt.Stringer. The
// partial is the raw input string; parsing it into T stays with the caller.
func StringerBinding[T fmt.Stringer]() Binding[T, string] {
	return Binding[T, string]{strat: MustResolve(reflect.TypeOf((*T)(nil)).Elem())}
}

// CompositeBinding binds a type that declares its own Autocompletable
// implementation, with partial type P.
func CompositeBinding[T Autocompletable, P any]() Binding[T, P] {
	return Binding[T, P]{strat: MustResolve(reflect.TypeOf((*T)(nil)).Elem())}
}

// BindingFor resolves T through the priority-ordered resolver without any
// compile-time constraint. It fails with ErrNoStrategy when nothing applies.
func BindingFor[T any, P any]() (Binding[T, P], error) {
	strat, err := Resolve(reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		return Binding[T, P]{}, err
	}
	return Binding[T, P]{strat: strat}, nil
}
