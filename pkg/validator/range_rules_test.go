package validator_test

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated/pkg/validator"
)

type years int

func TestValidateRange(t *testing.T) {
	t.Parallel()

	lower, upper := validator.Incl(10), validator.Excl(60)
	const msg = "age must be in [10, 60)"

	t.Run("inclusive lower bound passes", func(t *testing.T) {
		assert.NoError(t, validator.ValidateRange(10, lower, upper, msg))
	})

	t.Run("value just below exclusive upper bound passes", func(t *testing.T) {
		assert.NoError(t, validator.ValidateRange(59, lower, upper, msg))
	})

	t.Run("exclusive upper bound fails", func(t *testing.T) {
		err := validator.ValidateRange(60, lower, upper, msg)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrConstraintViolation)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.Equal(t, msg, err.Error())
	})

	t.Run("below lower bound fails", func(t *testing.T) {
		assert.Error(t, validator.ValidateRange(9, lower, upper, msg))
	})

	t.Run("numeric string is coerced", func(t *testing.T) {
		assert.NoError(t, validator.ValidateRange("15", lower, upper, msg))
		assert.NoError(t, validator.ValidateRange(" 15 ", lower, upper, msg))
		assert.Error(t, validator.ValidateRange("115", lower, upper, msg))
	})

	t.Run("non-numeric string is a coercion failure", func(t *testing.T) {
		err := validator.ValidateRange("fifteen", lower, upper, msg)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrCoercion)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
		assert.False(t, errors.Is(err, validator.ErrConstraintViolation))

		var fe *validator.FieldError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, msg, fe.Message)
		assert.Equal(t, validator.KindRange, fe.Kind)
	})

	t.Run("nil is a coercion failure", func(t *testing.T) {
		assert.ErrorIs(t, validator.ValidateRange(nil, lower, upper, msg), validator.ErrCoercion)
	})

	t.Run("bool is a coercion failure", func(t *testing.T) {
		assert.ErrorIs(t, validator.ValidateRange(true, lower, upper, msg), validator.ErrCoercion)
	})

	t.Run("floats are truncated", func(t *testing.T) {
		assert.NoError(t, validator.ValidateRange(59.9, lower, upper, msg))
		assert.Error(t, validator.ValidateRange(60.0, lower, upper, msg))
		assert.ErrorIs(t, validator.ValidateRange(math.NaN(), lower, upper, msg), validator.ErrCoercion)
	})

	t.Run("json numbers", func(t *testing.T) {
		assert.NoError(t, validator.ValidateRange(json.Number("15"), lower, upper, msg))
		assert.NoError(t, validator.ValidateRange(json.Number("15.7"), lower, upper, msg))
		assert.Error(t, validator.ValidateRange(json.Number("60"), lower, upper, msg))
	})

	t.Run("named and pointer integers", func(t *testing.T) {
		v := 20
		assert.NoError(t, validator.ValidateRange(years(20), lower, upper, msg))
		assert.NoError(t, validator.ValidateRange(&v, lower, upper, msg))
		assert.NoError(t, validator.ValidateRange(uint8(20), lower, upper, msg))
	})

	t.Run("uint64 overflow is a coercion failure", func(t *testing.T) {
		assert.ErrorIs(t, validator.ValidateRange(uint64(math.MaxUint64), lower, upper, msg), validator.ErrCoercion)
	})
}

func TestCheckRange_Inclusivity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		lower, upper validator.Bound
		value        int
		want         bool
	}{
		{"[10,60] at lower", validator.Incl(10), validator.Incl(60), 10, true},
		{"[10,60] at upper", validator.Incl(10), validator.Incl(60), 60, true},
		{"[10,60) at upper", validator.Incl(10), validator.Excl(60), 60, false},
		{"(10,60] at lower", validator.Excl(10), validator.Incl(60), 10, false},
		{"(10,60] at upper", validator.Excl(10), validator.Incl(60), 60, true},
		{"(10,60) at lower", validator.Excl(10), validator.Excl(60), 10, false},
		{"(10,60) at upper", validator.Excl(10), validator.Excl(60), 60, false},
		{"(10,60) inside", validator.Excl(10), validator.Excl(60), 11, true},
		{"[10,10] single point", validator.Incl(10), validator.Incl(10), 10, true},
		{"[10,10) empty", validator.Incl(10), validator.Excl(10), 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.CheckRange(tt.value, tt.lower, tt.upper))
		})
	}

	t.Run("coercion failure does not pass", func(t *testing.T) {
		assert.False(t, validator.CheckRange("abc", validator.Incl(0), validator.Incl(100)))
	})
}

func TestInterval(t *testing.T) {
	assert.Equal(t, "[10, 60)", validator.Interval(validator.Incl(10), validator.Excl(60)))
	assert.Equal(t, "(2, 5]", validator.Interval(validator.Excl(2), validator.Incl(5)))
}
