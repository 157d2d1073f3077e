package slashfill

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerStrategyExtract(t *testing.T) {
	t.Run("WithinRange", func(t *testing.T) {
		strat := newIntegerStrategy(reflect.TypeOf((*uint8)(nil)).Elem())

		partial, err := strat.ExtractPartial(IntValue(200))
		require.NoError(t, err)
		assert.Equal(t, uint8(200), partial)
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		strat := newIntegerStrategy(reflect.TypeOf((*uint8)(nil)).Elem())

		_, err := strat.ExtractPartial(IntValue(1000))
		assert.ErrorIs(t, err, ErrIntegerOutOfBounds)
	})

	t.Run("NegativeIntoUnsigned", func(t *testing.T) {
		strat := newIntegerStrategy(reflect.TypeOf((*uint16)(nil)).Elem())

		_, err := strat.ExtractPartial(IntValue(-1))
		assert.ErrorIs(t, err, ErrIntegerOutOfBounds)
	})

	t.Run("SignedOverflow", func(t *testing.T) {
		strat := newIntegerStrategy(reflect.TypeOf((*int8)(nil)).Elem())

		_, err := strat.ExtractPartial(IntValue(128))
		assert.ErrorIs(t, err, ErrIntegerOutOfBounds)

		partial, err := strat.ExtractPartial(IntValue(-128))
		require.NoError(t, err)
		assert.Equal(t, int8(-128), partial)
	})

	t.Run("StringMismatch", func(t *testing.T) {
		strat := newIntegerStrategy(reflect.TypeOf((*int)(nil)).Elem())

		_, err := strat.ExtractPartial(StringValue("x"))
		var mismatch StructureMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, ExpectedInteger, mismatch.Expected)
	})

	t.Run("FloatFlavorMismatch", func(t *testing.T) {
		strat := newIntegerStrategy(reflect.TypeOf((*int)(nil)).Elem())

		_, err := strat.ExtractPartial(FloatValue(3.14))
		var mismatch StructureMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, ExpectedInteger, mismatch.Expected)
	})
}

func TestIntegerStrategySerialize(t *testing.T) {
	t.Run("Exact", func(t *testing.T) {
		strat := newIntegerStrategy(reflect.TypeOf((*int32)(nil)).Elem())

		v, err := strat.IntoValue(int32(-40))
		require.NoError(t, err)
		assert.Equal(t, IntValue(-40), v)
	})

	t.Run("WrongCandidateType", func(t *testing.T) {
		strat := newIntegerStrategy(reflect.TypeOf((*int32)(nil)).Elem())

		_, err := strat.IntoValue(int64(1))
		assert.ErrorIs(t, err, ErrCandidateType)
	})

	t.Run("UnsignedBeyondInt64", func(t *testing.T) {
		strat := newIntegerStrategy(reflect.TypeOf((*uint64)(nil)).Elem())

		_, err := strat.IntoValue(uint64(math.MaxInt64) + 1)
		assert.ErrorIs(t, err, ErrIntegerOutOfBounds)
	})
}

func TestIntegerStrategyRoundTrip(t *testing.T) {
	t.Run("uint8", func(t *testing.T) {
		strat := newIntegerStrategy(reflect.TypeOf((*uint8)(nil)).Elem())

		for _, n := range []uint8{0, 1, 127, 255} {
			v, err := strat.IntoValue(n)
			require.NoError(t, err)
			partial, err := strat.ExtractPartial(v)
			require.NoError(t, err)
			assert.Equal(t, n, partial)
		}
	})

	t.Run("int64", func(t *testing.T) {
		strat := newIntegerStrategy(reflect.TypeOf((*int64)(nil)).Elem())

		for _, n := range []int64{math.MinInt64, -1, 0, 42, math.MaxInt64} {
			v, err := strat.IntoValue(n)
			require.NoError(t, err)
			partial, err := strat.ExtractPartial(v)
			require.NoError(t, err)
			assert.Equal(t, n, partial)
		}
	})
}
