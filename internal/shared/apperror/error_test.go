package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		httpErr := apperror.ToHTTP(fmt.Errorf("wrapped: %w", apperror.ErrForbidden))
		assert.Equal(t, http.StatusForbidden, httpErr.Status)
		assert.Equal(t, apperror.CodeForbidden, httpErr.Code)
		assert.Nil(t, httpErr.Details)
	})

	t.Run("store error exposes cause only when asked", func(t *testing.T) {
		err := apperror.Store(errors.New("connection refused"), "Failed to fetch jobs")

		hidden := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, hidden.Status)
		assert.Equal(t, "Failed to fetch jobs", hidden.Message)
		assert.Nil(t, hidden.Details)

		shown := apperror.ToHTTP(err, true)
		assert.Equal(t, "connection refused", shown.Details)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		httpErr := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, apperror.CodeInternalError, httpErr.Code)
		assert.Equal(t, "Internal server error", httpErr.Message)
	})
}

func TestAppError_Is(t *testing.T) {
	copyOfNotFound := apperror.New(apperror.CodeNotFound, "Resource not found", http.StatusNotFound)
	assert.True(t, errors.Is(copyOfNotFound, apperror.ErrNotFound))
	assert.False(t, errors.Is(apperror.ErrForbidden, apperror.ErrNotFound))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		CategoryID uint `validate:"required"`
	}

	v := validator.New()
	err := v.Struct(payload{})

	mapped := apperror.MapValidationError(err)

	var appErr *apperror.AppError
	if assert.True(t, errors.As(mapped, &appErr)) {
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(t, "Categoryid is required", appErr.Message)
	}

	generic := apperror.MapValidationError(errors.New("unexpected EOF"))
	assert.True(t, errors.As(generic, &appErr))
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
}

func TestMapValidationError_PassesAppErrorThrough(t *testing.T) {
	custom := apperror.New(apperror.CodeValidationError, "Salary must be a number", http.StatusBadRequest)

	err := apperror.MapValidationError(custom)

	assert.Same(t, custom, err)
}
