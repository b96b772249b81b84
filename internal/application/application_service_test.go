package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/application"
	applicationerrors "github.com/NguyenBaKy2003/backend-recruitment/internal/application/errors"
	associationMock "github.com/NguyenBaKy2003/backend-recruitment/internal/association/mock"
	jobMock "github.com/NguyenBaKy2003/backend-recruitment/internal/job/mock"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	service application.Service
	jobs    *jobMock.MockRepository
	assoc   *associationMock.MockRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), connection.GORMConfig())
	assert.NoError(t, err)

	jobs := jobMock.NewMockRepository(ctrl)
	assoc := associationMock.NewMockRepository(ctrl)
	jobs.EXPECT().WithTx(gomock.Any()).Return(jobs).AnyTimes()
	assoc.EXPECT().WithTx(gomock.Any()).Return(assoc).AnyTimes()

	return &serviceDeps{
		sqlMock: sqlMock,
		service: application.NewService(db, jobs, assoc),
		jobs:    jobs,
		assoc:   assoc,
	}
}

func TestService_Apply(t *testing.T) {
	ctx := context.Background()
	req := application.ApplyRequest{ApplicantID: 3, JobID: 42}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.jobs.EXPECT().GetForUpdate(gomock.Any(), uint(42)).Return(&schema.Job{ID: 42}, nil)
		deps.assoc.EXPECT().LinkApplicantJob(gomock.Any(), uint(3), uint(42)).Return(nil)
		deps.assoc.EXPECT().FindApplication(gomock.Any(), uint(3), uint(42)).Return(&schema.ApplyJob{
			ApplicantID: 3,
			JobID:       42,
			Job:         &schema.Job{Title: "Backend Engineer"},
			Applicant:   &schema.Applicant{User: &schema.User{UserName: "jdoe"}},
		}, nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Apply(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "Backend Engineer", resp.JobTitle)
		assert.Equal(t, "jdoe", resp.ApplicantName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("missing job", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.jobs.EXPECT().GetForUpdate(gomock.Any(), uint(42)).Return(nil, gorm.ErrRecordNotFound)
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Apply(ctx, req)

		assert.ErrorIs(t, err, applicationerrors.ErrJobNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate application is a conflict", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.jobs.EXPECT().GetForUpdate(gomock.Any(), uint(42)).Return(&schema.Job{ID: 42}, nil)
		deps.assoc.EXPECT().LinkApplicantJob(gomock.Any(), uint(3), uint(42)).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "apply_job_pkey"})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Apply(ctx, req)

		assert.ErrorIs(t, err, applicationerrors.ErrAlreadyApplied)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown applicant", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.jobs.EXPECT().GetForUpdate(gomock.Any(), uint(42)).Return(&schema.Job{ID: 42}, nil)
		deps.assoc.EXPECT().LinkApplicantJob(gomock.Any(), uint(3), uint(42)).
			Return(&pgconn.PgError{Code: "23503", ConstraintName: "fk_apply_job_applicant"})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Apply(ctx, req)

		assert.ErrorIs(t, err, applicationerrors.ErrApplicantNotFound)
	})
}

func TestService_Withdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("missing application", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.assoc.EXPECT().UnlinkApplicantJob(gomock.Any(), uint(3), uint(42)).Return(gorm.ErrRecordNotFound)

		err := deps.service.Withdraw(ctx, 3, 42)

		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.assoc.EXPECT().UnlinkApplicantJob(gomock.Any(), uint(3), uint(42)).Return(nil)

		assert.NoError(t, deps.service.Withdraw(ctx, 3, 42))
	})
}

func TestService_Reads(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.assoc.EXPECT().ListApplications(gomock.Any()).
			Return([]schema.ApplyJob{{ApplicantID: 3, JobID: 42}, {ApplicantID: 4, JobID: 42}}, nil)

		resp, err := deps.service.List(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
	})

	t.Run("list store failure", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.assoc.EXPECT().ListApplications(gomock.Any()).Return(nil, errors.New("boom"))

		_, err := deps.service.List(ctx)

		assert.Equal(t, "Failed to fetch applications", apperror.ToHTTP(err).Message)
	})

	t.Run("get missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.assoc.EXPECT().FindApplication(gomock.Any(), uint(3), uint(42)).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Get(ctx, 3, 42)

		assert.ErrorIs(t, err, applicationerrors.ErrApplicationNotFound)
	})
}
