package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validators/pkg/chain"
	"github.com/dmitrymomot/validators/pkg/validators"
)

var presentValues = []any{"foo", 1, true, false, 0, "", 2.3}

func TestOptional(t *testing.T) {
	t.Run("stops the chain on nil", func(t *testing.T) {
		_, err := validators.Optional().Validate(nil)
		assert.ErrorIs(t, err, chain.ErrReturnEarly)
	})

	t.Run("stops the chain on typed nil pointer", func(t *testing.T) {
		var p *int
		_, err := validators.Optional().Validate(p)
		assert.ErrorIs(t, err, chain.ErrReturnEarly)
	})

	t.Run("passes other values through", func(t *testing.T) {
		for _, v := range presentValues {
			got, err := validators.Optional().Validate(v)
			require.NoError(t, err, "value %#v", v)
			assert.Equal(t, v, got)
		}
	})

	t.Run("stops the chain on default value", func(t *testing.T) {
		fn := validators.Optional("foo")

		_, err := fn.Validate(nil)
		assert.ErrorIs(t, err, chain.ErrReturnEarly)

		_, err = fn.Validate("foo")
		assert.ErrorIs(t, err, chain.ErrReturnEarly)

		got, err := fn.Validate("bar")
		require.NoError(t, err)
		assert.Equal(t, "bar", got)
	})

	t.Run("compares defaults deeply", func(t *testing.T) {
		_, err := validators.Optional([]string{}).Validate([]string{})
		assert.ErrorIs(t, err, chain.ErrReturnEarly)
	})

	t.Run("keeps original value in a chain", func(t *testing.T) {
		validate := chain.Make(validators.Optional(), validators.IsType[int]())

		got, err := validate(nil)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = validate(5)
		require.NoError(t, err)
		assert.Equal(t, 5, got)

		_, err = validate("x")
		assert.True(t, chain.IsKind(err, validators.KindIsType))
	})
}

func TestRequired(t *testing.T) {
	t.Run("rejects nil", func(t *testing.T) {
		_, err := validators.Required().Validate(nil)
		require.Error(t, err)
		assert.True(t, chain.IsKind(err, validators.KindRequired))
		assert.Equal(t, "required value missing", err.Error())
	})

	t.Run("rejects typed nil pointer", func(t *testing.T) {
		var p *string
		_, err := validators.Required().Validate(p)
		assert.True(t, chain.IsKind(err, validators.KindRequired))
	})

	t.Run("accepts present values", func(t *testing.T) {
		for _, v := range presentValues {
			got, err := validators.Required().Validate(v)
			require.NoError(t, err, "value %#v", v)
			assert.Equal(t, v, got)
		}
	})
}

func TestNonempty(t *testing.T) {
	t.Run("rejects empty sequences", func(t *testing.T) {
		for _, v := range []any{"", []int{}, map[string]any{}, [0]int{}} {
			_, err := validators.Nonempty().Validate(v)
			assert.True(t, chain.IsKind(err, validators.KindNonempty), "value %#v", v)
		}
	})

	t.Run("accepts non-empty sequences", func(t *testing.T) {
		for _, v := range []any{"foo", []int{1, 2}, map[string]any{"bar": "baz"}} {
			got, err := validators.Nonempty().Validate(v)
			require.NoError(t, err)
			assert.Equal(t, v, got)
		}
	})

	t.Run("ignores values without length", func(t *testing.T) {
		for _, v := range []any{nil, 0, false} {
			_, err := validators.Nonempty().Validate(v)
			assert.NoError(t, err, "value %#v", v)
		}
	})
}
