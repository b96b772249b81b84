package job

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	joberrors "github.com/NguyenBaKy2003/backend-recruitment/internal/job/errors"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapRepositoryError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"record not found", fmt.Errorf("load: %w", gorm.ErrRecordNotFound), joberrors.ErrJobNotFound},
		{"category fk", &pgconn.PgError{Code: "23503", ConstraintName: "fk_jobs_category"}, joberrors.ErrCategoryNotFound},
		{"employer fk", &pgconn.PgError{Code: "23503", ConstraintName: "fk_jobs_employer"}, joberrors.ErrEmployerNotFound},
		{"skill fk", &pgconn.PgError{Code: "23503", ConstraintName: "fk_job_skill_skill"}, joberrors.ErrInvalidSkillIDs},
		{"job fk", &pgconn.PgError{Code: "23503", ConstraintName: "fk_job_skill_job"}, joberrors.ErrJobNotFound},
		{
			"fk from message",
			errors.New(`ERROR: insert or update on table "jobs" violates foreign key constraint "fk_jobs_employer"`),
			joberrors.ErrEmployerNotFound,
		},
		{"catalog error passes through", joberrors.ErrNotJobOwner, joberrors.ErrNotJobOwner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapRepositoryError(tt.err, "fallback"), tt.want)
		})
	}

	t.Run("unique violation is a conflict", func(t *testing.T) {
		err := mapRepositoryError(&pgconn.PgError{Code: "23505"}, "fallback")
		assert.Equal(t, http.StatusConflict, apperror.ToHTTP(err).Status)
	})

	t.Run("unknown error becomes store error", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := mapRepositoryError(cause, "Failed to fetch jobs")

		httpErr := apperror.ToHTTP(err, true)
		assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
		assert.Equal(t, "Failed to fetch jobs", httpErr.Message)
		assert.Equal(t, "connection refused", httpErr.Details)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, mapRepositoryError(nil, "fallback"))
	})
}
