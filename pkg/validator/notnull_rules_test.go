package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/validated/pkg/validator"
)

func TestValidateNotNull(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	var nilSlice []string

	assert.NoError(t, validator.ValidateNotNull("", "required"))
	assert.NoError(t, validator.ValidateNotNull(0, "required"))

	for _, v := range []any{nil, nilPtr, nilSlice} {
		err := validator.ValidateNotNull(v, "required")
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrConstraintViolation)
		assert.Equal(t, "required", err.Error())
		assert.False(t, validator.CheckNotNull(v))
	}
}
