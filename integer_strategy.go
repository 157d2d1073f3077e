package slashfill

import (
	"fmt"
	"math"
	"reflect"
)

// integerStrategy handles all integer kinds, signed and unsigned.
//
// Extraction requires an integer-flavored Number in int64 range; narrowing
// into the target type is overflow-checked. Serialization is exact within the
// signed 64-bit range the Number model carries.
type integerStrategy struct {
	typ reflect.Type
}

func newIntegerStrategy(t reflect.Type) *integerStrategy {
	return &integerStrategy{typ: t}
}

func (s *integerStrategy) Name() string {
	return IntegerStrategyName
}

func (s *integerStrategy) ExtractPartial(v Value) (any, error) {
	n, ok := v.AsInt()
	if !ok {
		return nil, StructureMismatchError{Expected: ExpectedInteger}
	}

	out := reflect.New(s.typ).Elem()
	switch s.typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if out.OverflowInt(n) {
			return nil, ErrIntegerOutOfBounds
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n < 0 || out.OverflowUint(uint64(n)) {
			return nil, ErrIntegerOutOfBounds
		}
		out.SetUint(uint64(n))
	default:
		return nil, fmt.Errorf("unsupported integer type: %s", s.typ)
	}

	return out.Interface(), nil
}

func (s *integerStrategy) IntoValue(candidate any) (Value, error) {
	rv := reflect.ValueOf(candidate)
	if !rv.IsValid() || rv.Type() != s.typ {
		return Value{}, fmt.Errorf("%w: expected %s, got %T", ErrCandidateType, s.typ, candidate)
	}

	switch s.typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntValue(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{}, ErrIntegerOutOfBounds
		}
		return IntValue(int64(u)), nil
	default:
		return Value{}, fmt.Errorf("unsupported integer type: %s", s.typ)
	}
}
