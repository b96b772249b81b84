package application

import (
	"context"

	applicationerrors "github.com/NguyenBaKy2003/backend-recruitment/internal/application/errors"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/association"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/job"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, req ApplyRequest) (ApplicationResponse, error)
	List(ctx context.Context) ([]ApplicationResponse, error)
	Get(ctx context.Context, applicantID, jobID uint) (ApplicationResponse, error)
	Withdraw(ctx context.Context, applicantID, jobID uint) error
}

type service struct {
	db     *gorm.DB
	jobs   job.Repository
	assoc  association.Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, jobs job.Repository, assoc association.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{db: db, jobs: jobs, assoc: assoc, logger: l}
}

// Apply links the applicant to the job. The job row is locked so it cannot
// be deleted between the existence check and the insert.
func (s *service) Apply(ctx context.Context, req ApplyRequest) (ApplicationResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return ApplicationResponse{}, mapRepositoryError(tx.Error, applicationerrors.ErrJobNotFound, "Failed to apply for job")
	}
	defer tx.Rollback()

	if _, err := s.jobs.WithTx(tx).GetForUpdate(ctx, req.JobID); err != nil {
		return ApplicationResponse{}, mapRepositoryError(err, applicationerrors.ErrJobNotFound, "Failed to apply for job")
	}

	atx := s.assoc.WithTx(tx)
	if err := atx.LinkApplicantJob(ctx, req.ApplicantID, req.JobID); err != nil {
		s.logger.Warn("apply job persist failed",
			zap.String("request_id", rid),
			zap.Uint("applicant_id", req.ApplicantID),
			zap.Uint("job_id", req.JobID),
			zap.Error(err),
		)
		return ApplicationResponse{}, mapRepositoryError(err, applicationerrors.ErrJobNotFound, "Failed to apply for job")
	}

	app, err := atx.FindApplication(ctx, req.ApplicantID, req.JobID)
	if err != nil {
		return ApplicationResponse{}, mapRepositoryError(err, applicationerrors.ErrApplicationNotFound, "Failed to apply for job")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("apply job commit failed", zap.String("request_id", rid), zap.Error(err))
		return ApplicationResponse{}, mapRepositoryError(err, applicationerrors.ErrJobNotFound, "Failed to apply for job")
	}

	s.logger.Info("apply job success",
		zap.String("request_id", rid),
		zap.Uint("applicant_id", req.ApplicantID),
		zap.Uint("job_id", req.JobID),
	)
	return toResponse(*app), nil
}

func (s *service) List(ctx context.Context) ([]ApplicationResponse, error) {
	apps, err := s.assoc.ListApplications(ctx)
	if err != nil {
		s.logger.Error("list applications failed", zap.Error(err))
		return nil, mapRepositoryError(err, applicationerrors.ErrApplicationNotFound, "Failed to fetch applications")
	}
	return toResponses(apps), nil
}

func (s *service) Get(ctx context.Context, applicantID, jobID uint) (ApplicationResponse, error) {
	app, err := s.assoc.FindApplication(ctx, applicantID, jobID)
	if err != nil {
		return ApplicationResponse{}, mapRepositoryError(err, applicationerrors.ErrApplicationNotFound, "Failed to fetch application")
	}
	return toResponse(*app), nil
}

func (s *service) Withdraw(ctx context.Context, applicantID, jobID uint) error {
	if err := s.assoc.UnlinkApplicantJob(ctx, applicantID, jobID); err != nil {
		return mapRepositoryError(err, applicationerrors.ErrApplicationNotFound, "Failed to delete application")
	}
	s.logger.Info("application withdrawn",
		zap.Uint("applicant_id", applicantID),
		zap.Uint("job_id", jobID),
	)
	return nil
}
