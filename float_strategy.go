package slashfill

import (
	"fmt"
	"math"
	"reflect"
)

// floatStrategy handles float32 and float64 kinds. Extraction decodes the
// Number as a float64 and narrows for 32-bit targets.
//
// Serializing a non-finite value (NaN or an infinity) yields the integer
// Number 0. This mirrors the behavior autocomplete clients already rely on;
// turning it into an error is a compatibility-breaking policy change, not a
// bug fix, so the fallback is kept as is.
type floatStrategy struct {
	typ reflect.Type
}

func newFloatStrategy(t reflect.Type) *floatStrategy {
	return &floatStrategy{typ: t}
}

func (s *floatStrategy) Name() string {
	if s.typ.Kind() == reflect.Float32 {
		return Float32StrategyName
	}
	return Float64StrategyName
}

func (s *floatStrategy) ExtractPartial(v Value) (any, error) {
	f, ok := v.AsFloat()
	if !ok {
		return nil, StructureMismatchError{Expected: ExpectedFloat}
	}

	out := reflect.New(s.typ).Elem()
	out.SetFloat(f)
	return out.Interface(), nil
}

func (s *floatStrategy) IntoValue(candidate any) (Value, error) {
	rv := reflect.ValueOf(candidate)
	if !rv.IsValid() || rv.Type() != s.typ {
		return Value{}, fmt.Errorf("%w: expected %s, got %T", ErrCandidateType, s.typ, candidate)
	}

	f := rv.Float()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return IntValue(0), nil
	}
	return FloatValue(f), nil
}
