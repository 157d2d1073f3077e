package slashfill

import (
	"fmt"
	"reflect"
)

// stringConvertibleStrategy is the generic fallback. It applies to the widest
// class of types: anything that can format itself as text.
//
// The partial input is the raw string, returned unparsed. Parsing it into the
// target type (and surfacing that type's own parse error) is the caller's
// responsibility, because a partially typed query rarely parses yet.
type stringConvertibleStrategy struct {
	typ reflect.Type
}

func newStringConvertibleStrategy(t reflect.Type) *stringConvertibleStrategy {
	return &stringConvertibleStrategy{typ: t}
}

func (s *stringConvertibleStrategy) Name() string {
	return StringStrategyName
}

func (s *stringConvertibleStrategy) ExtractPartial(v Value) (any, error) {
	raw, ok := v.AsString()
	if !ok {
		return nil, StructureMismatchError{Expected: ExpectedString}
	}
	return raw, nil
}

func (s *stringConvertibleStrategy) IntoValue(candidate any) (Value, error) {
	rv := reflect.ValueOf(candidate)
	if !rv.IsValid() || rv.Type() != s.typ {
		return Value{}, fmt.Errorf("%w: expected %s, got %T", ErrCandidateType, s.typ, candidate)
	}

	text, err := formatText(rv)
	if err != nil {
		return Value{}, err
	}
	return StringValue(text), nil
}
