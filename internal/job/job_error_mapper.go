package job

import (
	"errors"
	"net/http"
	"strings"

	joberrors "github.com/NguyenBaKy2003/backend-recruitment/internal/job/errors"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var errJobConflict = apperror.New(
	apperror.CodeConflict,
	"Job conflicts with an existing record",
	http.StatusConflict,
)

// mapRepositoryError turns store errors into catalog errors. Anything it does
// not recognise becomes a 500 carrying fallback as the message.
func mapRepositoryError(err error, fallback string) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return joberrors.ErrJobNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23503":
			if mapped := foreignKeyError(pgErr.ConstraintName); mapped != nil {
				return mapped
			}
		case "23505":
			return errJobConflict
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "violates foreign key constraint") {
		if mapped := foreignKeyError(errMsg); mapped != nil {
			return mapped
		}
	}

	return apperror.Store(err, fallback)
}

// foreignKeyError matches gorm's generated constraint names, e.g.
// fk_jobs_category or fk_job_skill_skill.
func foreignKeyError(constraint string) error {
	c := strings.ToLower(constraint)
	switch {
	case strings.Contains(c, "category"):
		return joberrors.ErrCategoryNotFound
	case strings.Contains(c, "employer"):
		return joberrors.ErrEmployerNotFound
	case strings.HasSuffix(c, "_job"), strings.Contains(c, "_job\""):
		return joberrors.ErrJobNotFound
	case strings.Contains(c, "skill"):
		return joberrors.ErrInvalidSkillIDs
	}
	return nil
}
