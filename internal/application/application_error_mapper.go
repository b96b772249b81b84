package application

import (
	"errors"
	"strings"

	applicationerrors "github.com/NguyenBaKy2003/backend-recruitment/internal/application/errors"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError maps store errors of the apply_job table. notFound is
// returned for gorm.ErrRecordNotFound since the lookup decides what is missing.
func mapRepositoryError(err error, notFound error, fallback string) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return applicationerrors.ErrAlreadyApplied
		case "23503":
			if strings.Contains(pgErr.ConstraintName, "applicant") {
				return applicationerrors.ErrApplicantNotFound
			}
			return applicationerrors.ErrJobNotFound
		}
	}

	return apperror.Store(err, fallback)
}
