package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated/pkg/binder"
	"github.com/dmitrymomot/validated/pkg/validator"
)

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("input map is not modified", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry(t)
		in := map[string]any{"name": "Zhao", "age": 20}
		res, p, err := binder.Map[*person](in, binder.WithRegistry(reg))
		require.NoError(t, err)
		assert.Equal(t, 20, p.Age)
		assert.Equal(t, []string{"phone"}, res.FailedFields)
		assert.Len(t, in, 2)
	})

	t.Run("nil map", func(t *testing.T) {
		t.Parallel()
		reg := newRegistry(t)
		res, p, err := binder.Map[*person](nil, binder.WithRegistry(reg))
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, []string{"name", "age", "phone"}, res.FailedFields)
	})

	t.Run("constructor receives every declared field", func(t *testing.T) {
		t.Parallel()
		reg := validator.NewRegistry()
		var got validator.Fields
		require.NoError(t, validator.Register(reg, personSchema(t), func(f validator.Fields) (*person, error) {
			got = f
			return newPerson(f)
		}))

		_, _, err := binder.Map[*person](map[string]any{"extra": 1}, binder.WithRegistry(reg))
		require.NoError(t, err)
		assert.Equal(t, validator.Fields{"name": nil, "age": nil, "phone": nil, "extra": 1}, got)
	})

	t.Run("constructor error is fatal", func(t *testing.T) {
		t.Parallel()
		reg := validator.NewRegistry()
		require.NoError(t, validator.Register(reg, personSchema(t), func(validator.Fields) (*person, error) {
			return nil, errBrokenConstructor
		}))

		res, p, err := binder.Map[*person](map[string]any{"name": "Zhao"}, binder.WithRegistry(reg))
		require.ErrorIs(t, err, binder.ErrConstruct)
		require.ErrorIs(t, err, errBrokenConstructor)
		assert.Nil(t, p)
		assert.False(t, res.OK)
	})

	t.Run("constructor returning nil", func(t *testing.T) {
		t.Parallel()
		reg := validator.NewRegistry()
		require.NoError(t, reg.Add(validator.TypeID[person](), personSchema(t), func(validator.Fields) (validator.Record, error) {
			return nil, nil
		}))

		_, _, err := binder.Map[*person](nil, binder.WithRegistry(reg))
		require.ErrorIs(t, err, binder.ErrConstruct)
	})

	t.Run("constructor returning another type", func(t *testing.T) {
		t.Parallel()
		reg := validator.NewRegistry()
		require.NoError(t, reg.Add(validator.TypeID[person](), personSchema(t), func(f validator.Fields) (validator.Record, error) {
			return f, nil
		}))

		_, p, err := binder.Map[*person](nil, binder.WithRegistry(reg))
		require.ErrorIs(t, err, binder.ErrConstruct)
		assert.Nil(t, p)
	})

	t.Run("default registry", func(t *testing.T) {
		t.Parallel()
		_, _, err := binder.MapFor("binder_test.unregistered", nil)
		require.ErrorIs(t, err, validator.ErrSchemaNotFound)
	})
}
