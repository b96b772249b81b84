package auth

import (
	"errors"
	"strings"

	autherrors "github.com/NguyenBaKy2003/backend-recruitment/internal/auth/errors"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error, fallback string) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return autherrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			if strings.Contains(pgErr.ConstraintName, "user_name") || pgErr.TableName == "users" {
				return autherrors.ErrUsernameTaken
			}
		case "23503":
			if strings.Contains(pgErr.ConstraintName, "role") {
				return autherrors.ErrInvalidRole
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "user_name") {
		return autherrors.ErrUsernameTaken
	}

	return apperror.Store(err, fallback)
}
