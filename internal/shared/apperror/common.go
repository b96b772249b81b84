package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// RequiredField builds the 400 returned when a mandatory field is absent.
func RequiredField(field string) *AppError {
	return New(CodeValidationError, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

// InvalidField builds the 400 returned when a field fails a format rule.
func InvalidField(field string) *AppError {
	return New(CodeValidationError, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}

// Store wraps a persistence failure as a 500 while keeping the cause for diagnostics.
func Store(err error, message string) *AppError {
	return Wrap(err, CodeInternalError, message, http.StatusInternalServerError)
}
