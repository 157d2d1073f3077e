package slashfill

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// taggedQuery implements both Autocompletable and fmt.Stringer. Its composite
// behavior is observably different from the fallback: the partial is a
// taggedQuery, not a raw string, and serialization prefixes the value.
type taggedQuery struct {
	raw string
}

func (taggedQuery) ExtractPartial(v Value) (any, error) {
	s, ok := v.AsString()
	if !ok {
		return nil, StructureMismatchError{Expected: ExpectedString}
	}
	return taggedQuery{raw: s}, nil
}

func (q taggedQuery) IntoValue() Value {
	return StringValue("q:" + q.raw)
}

func (q taggedQuery) String() string {
	return q.raw
}

// ptrComposite implements Autocompletable with pointer receivers.
type ptrComposite struct {
	id int64
}

func (*ptrComposite) ExtractPartial(v Value) (any, error) {
	n, ok := v.AsInt()
	if !ok {
		return nil, StructureMismatchError{Expected: ExpectedInteger}
	}
	return n, nil
}

func (p *ptrComposite) IntoValue() Value {
	return IntValue(p.id)
}

func TestCompositeStrategyDelegation(t *testing.T) {
	strat := newCompositeStrategy(reflect.TypeOf((*taggedQuery)(nil)).Elem())

	t.Run("Name", func(t *testing.T) {
		assert.Equal(t, CompositeStrategyName, strat.Name())
	})

	t.Run("ExtractDelegates", func(t *testing.T) {
		partial, err := strat.ExtractPartial(StringValue("abc"))
		require.NoError(t, err)
		assert.Equal(t, taggedQuery{raw: "abc"}, partial)
	})

	t.Run("ExtractErrorPassesThrough", func(t *testing.T) {
		_, err := strat.ExtractPartial(IntValue(1))
		var mismatch StructureMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, ExpectedString, mismatch.Expected)
	})

	t.Run("SerializeDelegates", func(t *testing.T) {
		v, err := strat.IntoValue(taggedQuery{raw: "abc"})
		require.NoError(t, err)
		assert.Equal(t, StringValue("q:abc"), v)
	})

	t.Run("WrongCandidateType", func(t *testing.T) {
		_, err := strat.IntoValue("abc")
		assert.ErrorIs(t, err, ErrCandidateType)
	})
}

func TestCompositeStrategyPointerReceiver(t *testing.T) {
	strat := newCompositeStrategy(reflect.TypeOf((*ptrComposite)(nil)).Elem())

	t.Run("Extract", func(t *testing.T) {
		partial, err := strat.ExtractPartial(IntValue(9))
		require.NoError(t, err)
		assert.Equal(t, int64(9), partial)
	})

	t.Run("SerializeValueCandidate", func(t *testing.T) {
		v, err := strat.IntoValue(ptrComposite{id: 9})
		require.NoError(t, err)
		assert.Equal(t, IntValue(9), v)
	})
}
