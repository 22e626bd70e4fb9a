package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customer", "Beethoven")

		assert.Equal(t, "customer", err.ParamName)
		assert.Equal(t, "Beethoven", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: Beethoven", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("restaurant", "vegan", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: restaurant, ID is: vegan (cause: connection reset)",
			err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("name")

		assert.Equal(t, "value is invalid: name", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("distance", errors.New("NaN"))

		assert.Equal(t, "value is invalid: distance (cause: NaN)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("distance", 25.0, 0.0, 20.0)

		assert.Equal(t, "distance", err.ParamName)
		assert.Equal(t, 25.0, err.Value)
		assert.Equal(t, "value is invalid: 25 is distance, min value is 0, max value is 20", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("distance", -1, 0, 20, errors.New("negative"))

		assert.Equal(t,
			"value is invalid: -1 is distance, min value is 0, max value is 20 (cause: negative)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customer")
	assert.Equal(t, "value is required: customer", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	withCause := errs.NewValueIsRequiredErrorWithCause("customer", errors.New("nil pointer"))
	assert.Equal(t, "value is required: customer (cause: nil pointer)", withCause.Error())
}

func TestErrorsCanBeMatched(t *testing.T) {
	wrapped := errors.Join(errors.New("outer"), errs.NewValueIsRequiredError("restaurant"))

	require.ErrorIs(t, wrapped, errs.ErrValueIsRequired)
	assert.NotErrorIs(t, wrapped, errs.ErrObjectNotFound)
}
