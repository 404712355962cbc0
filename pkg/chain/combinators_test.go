package chain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validators/pkg/chain"
)

func failWith(kind string) chain.Func[int] {
	return func(int) (int, error) { return 0, chain.NewError(kind, kind+" failed") }
}

func TestOr(t *testing.T) {
	t.Run("first passing alternative wins", func(t *testing.T) {
		x := newRecorder(add(1))
		y := newRecorder(add(2))

		got, err := chain.Or(x.link(), y.link()).Validate(1)

		require.NoError(t, err)
		assert.Equal(t, 2, got)
		assert.Len(t, x.calls, 1)
		assert.Empty(t, y.calls)
	})

	t.Run("falls through to next alternative on validation error", func(t *testing.T) {
		x := newRecorder(failWith("first"))
		y := newRecorder(add(2))

		got, err := chain.Or(x.link(), y.link()).Validate(1)

		require.NoError(t, err)
		assert.Equal(t, 3, got)
		assert.Equal(t, []int{1}, x.calls)
		assert.Equal(t, []int{1}, y.calls)
	})

	t.Run("returns the last error when all fail", func(t *testing.T) {
		x := newRecorder(failWith("first"))
		y := newRecorder(failWith("second"))
		z := newRecorder(failWith("third"))

		_, err := chain.Or(x.link(), y.link(), z.link()).Validate(1)

		require.Error(t, err)
		assert.True(t, chain.IsKind(err, "third"))
		assert.Len(t, z.calls, 1)
	})

	t.Run("return early propagates", func(t *testing.T) {
		y := newRecorder(add(2))

		_, err := chain.Or(chain.Chainable(returnEarly), y.link()).Validate(1)

		assert.ErrorIs(t, err, chain.ErrReturnEarly)
		assert.Empty(t, y.calls)
	})

	t.Run("return early inside a chain keeps the original value", func(t *testing.T) {
		either := chain.Or(chain.Chainable(failWith("first")), chain.Chainable(returnEarly))

		got, err := chain.Make(either, chain.Chainable(add(100)))(5)

		require.NoError(t, err)
		assert.Equal(t, 5, got)
	})

	t.Run("foreign error propagates without trying the rest", func(t *testing.T) {
		boom := errors.New("boom")
		y := newRecorder(add(2))

		_, err := chain.Or(chain.Chainable(func(int) (int, error) { return 0, boom }), y.link()).Validate(1)

		assert.ErrorIs(t, err, boom)
		assert.Empty(t, y.calls)
	})

	t.Run("composes inside a chain", func(t *testing.T) {
		either := chain.Or(chain.Chainable(failWith("first")), chain.Chainable(mul(3)))

		got, err := chain.Make(chain.Chainable(add(1)), either, chain.Chainable(add(1)))(1)

		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("panics with fewer than two alternatives", func(t *testing.T) {
		assert.PanicsWithValue(t, chain.ErrTooFewAlternatives, func() {
			chain.Or(chain.Chainable(add(1)))
		})
		assert.PanicsWithValue(t, chain.ErrTooFewAlternatives, func() {
			chain.Or[int]()
		})
	})
}

func TestNot(t *testing.T) {
	t.Run("fails when inner passes", func(t *testing.T) {
		_, err := chain.Not(chain.Chainable(add(1))).Validate(1)

		require.Error(t, err)
		assert.True(t, chain.IsKind(err, chain.KindInvalid))
		assert.Equal(t, "invalid", err.Error())
	})

	t.Run("passes with original value when inner fails", func(t *testing.T) {
		got, err := chain.Not(chain.Chainable(failWith("gte"))).Validate(4)

		require.NoError(t, err)
		assert.Equal(t, 4, got)
	})

	t.Run("discards inner transformation", func(t *testing.T) {
		inner := chain.Chainable(func(v int) (int, error) {
			if v > 10 {
				return v * 100, nil
			}
			return 0, chain.NewError("gte", "value too small")
		})

		got, err := chain.Make(chain.Not(inner), chain.Chainable(add(1)))(3)

		require.NoError(t, err)
		assert.Equal(t, 4, got)
	})

	t.Run("foreign error propagates", func(t *testing.T) {
		boom := errors.New("boom")

		_, err := chain.Not(chain.Chainable(func(int) (int, error) { return 0, boom })).Validate(1)

		assert.ErrorIs(t, err, boom)
	})

	t.Run("double negation restores the verdict", func(t *testing.T) {
		notNot := chain.Not(chain.Not(chain.Chainable(failWith("gte"))))

		_, err := notNot.Validate(1)

		assert.True(t, chain.IsKind(err, chain.KindInvalid))
	})
}
