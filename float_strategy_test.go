package slashfill

import (
	"math"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat64Strategy(t *testing.T) {
	strat := newFloatStrategy(reflect.TypeOf((*float64)(nil)).Elem())

	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, Float64StrategyName, strat.Name())
	})

	t.Run("Extract", func(t *testing.T) {
		partial, err := strat.ExtractPartial(FloatValue(3.14))
		require.NoError(t, err)
		assert.Equal(t, 3.14, partial)
	})

	t.Run("ExtractWidensInteger", func(t *testing.T) {
		partial, err := strat.ExtractPartial(IntValue(3))
		require.NoError(t, err)
		assert.Equal(t, 3.0, partial)
	})

	t.Run("ExtractMismatch", func(t *testing.T) {
		_, err := strat.ExtractPartial(StringValue("x"))
		var mismatch StructureMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, ExpectedFloat, mismatch.Expected)
	})

	t.Run("Serialize", func(t *testing.T) {
		v, err := strat.IntoValue(3.14)
		require.NoError(t, err)
		assert.Equal(t, FloatValue(3.14), v)
	})

	t.Run("SerializeNonFinite", func(t *testing.T) {
		for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
			v, err := strat.IntoValue(f)
			require.NoError(t, err)
			assert.Equal(t, IntValue(0), v)
		}
	})

	t.Run("WrongCandidateType", func(t *testing.T) {
		_, err := strat.IntoValue(float32(1))
		assert.ErrorIs(t, err, ErrCandidateType)
	})
}

func TestFloat32Strategy(t *testing.T) {
	strat := newFloatStrategy(reflect.TypeOf((*float32)(nil)).Elem())

	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, Float32StrategyName, strat.Name())
	})

	t.Run("ExtractNarrows", func(t *testing.T) {
		partial, err := strat.ExtractPartial(FloatValue(2.5))
		require.NoError(t, err)
		assert.Equal(t, float32(2.5), partial)
	})

	t.Run("Serialize", func(t *testing.T) {
		v, err := strat.IntoValue(float32(2.5))
		require.NoError(t, err)
		assert.Equal(t, FloatValue(2.5), v)
	})

	t.Run("SerializeNonFinite", func(t *testing.T) {
		nan := float32(math.NaN())
		v, err := strat.IntoValue(nan)
		require.NoError(t, err)
		assert.Equal(t, IntValue(0), v)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		for _, f := range []float32{0, -1.5, 2.5, math.MaxFloat32} {
			v, err := strat.IntoValue(f)
			require.NoError(t, err)
			partial, err := strat.ExtractPartial(v)
			require.NoError(t, err)
			assert.Equal(t, f, partial)
		}
	})
}
