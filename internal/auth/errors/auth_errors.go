package autherrors

import (
	"net/http"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"
)

var (
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeInvalidToken,
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeTokenExpired,
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Access denied",
		http.StatusForbidden,
	)
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid password",
		http.StatusUnauthorized,
	)
	ErrWrongPassword = apperror.New(
		apperror.CodeUnauthorized,
		"Wrong password entered",
		http.StatusUnauthorized,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username already exists",
		http.StatusConflict,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeValidationError,
		"Role_id is invalid",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid user ID",
		http.StatusBadRequest,
	)
	ErrRoleNotAssigned = apperror.New(
		apperror.CodeForbidden,
		"User has no role assigned",
		http.StatusForbidden,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
