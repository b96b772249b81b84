package job

import (
	"context"
	"strconv"
	"time"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/association"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/events"
	joberrors "github.com/NguyenBaKy2003/backend-recruitment/internal/job/errors"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/messaging/kafka"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/contextutil"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	aggregateType = "job"

	allJobsKey         = "jobs:all"
	employerJobsPrefix = "jobs:employer:"
)

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobRequest) (CreateJobResponse, error)
	Update(ctx context.Context, id uint, req UpdateJobRequest) (JobResponse, error)
	Delete(ctx context.Context, id, employerID uint) error
	GetByEmployer(ctx context.Context, employerID uint) ([]JobResponse, error)
	GetAll(ctx context.Context) ([]JobResponse, error)
	GetByID(ctx context.Context, id uint) (JobDetailResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	assoc  association.Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time

	// listings collapses concurrent identical list queries into one.
	listings *singleflight.Group
}

// NewService wires the job workflow. outbox may be nil, in which case no
// lifecycle events are recorded.
func NewService(
	db *gorm.DB,
	repo Repository,
	assoc association.Repository,
	outbox kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		assoc:    assoc,
		outbox:   outbox,
		logger:   l,
		now:      time.Now,
		listings: &singleflight.Group{},
	}
}

func (s *service) Create(ctx context.Context, req CreateJobRequest) (CreateJobResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	actorID := contextutil.GetUserID(ctx)
	s.logger.Debug("create job requested",
		zap.String("request_id", rid),
		zap.Uint("employer_id", req.EmployerID),
		zap.Uint("category_id", req.CategoryID),
		zap.Int("skill_count", len(req.SkillIDs)),
	)

	job, err := req.toEntity(actor(actorID))
	if err != nil {
		return CreateJobResponse{}, err
	}
	skillIDs := association.Distinct(req.SkillIDs)

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("create job begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return CreateJobResponse{}, mapRepositoryError(tx.Error, "Failed to create job")
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	atx := s.assoc.WithTx(tx)

	if err := s.ensureSkillsExist(ctx, atx, skillIDs); err != nil {
		return CreateJobResponse{}, err
	}

	if err := qtx.Create(ctx, job); err != nil {
		s.logger.Error("create job persist failed", zap.String("request_id", rid), zap.Error(err))
		return CreateJobResponse{}, mapRepositoryError(err, "Failed to create job")
	}

	if len(skillIDs) > 0 {
		if err := atx.ReplaceJobSkills(ctx, job.ID, skillIDs); err != nil {
			s.logger.Error("create job link skills failed",
				zap.Uint("job_id", job.ID),
				zap.Error(err),
			)
			return CreateJobResponse{}, mapRepositoryError(err, "Failed to link job skills")
		}
	}

	if err := s.recordEvent(ctx, tx, events.JobCreated, job.ID, job, skillIDs); err != nil {
		return CreateJobResponse{}, err
	}

	created, err := qtx.FindByID(ctx, job.ID)
	if err != nil {
		return CreateJobResponse{}, mapRepositoryError(err, "Failed to load job")
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("create job commit failed", zap.String("request_id", rid), zap.Error(err))
		return CreateJobResponse{}, mapRepositoryError(err, "Failed to create job")
	}

	s.logger.Info("create job success",
		zap.String("request_id", rid),
		zap.Uint("job_id", job.ID),
	)
	return CreateJobResponse{
		Job:    ToJobResponse(*created),
		Skills: skillIDs,
	}, nil
}

// Update applies the present fields and, when a skill list is given, swaps
// the whole skill set. Both happen in one transaction.
func (s *service) Update(ctx context.Context, id uint, req UpdateJobRequest) (JobResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update job requested",
		zap.String("request_id", rid),
		zap.Uint("job_id", id),
		zap.Bool("replace_skills", req.SkillIDs != nil),
	)

	fields, err := req.changes()
	if err != nil {
		return JobResponse{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("update job begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return JobResponse{}, mapRepositoryError(tx.Error, "Failed to update job")
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	atx := s.assoc.WithTx(tx)

	if _, err := qtx.GetForUpdate(ctx, id); err != nil {
		s.logger.Warn("update job load failed", zap.Uint("job_id", id), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err, "Failed to load job")
	}

	// A skill-only change still touches update_at/update_by.
	if len(fields) > 0 || req.SkillIDs != nil {
		fields["update_by"] = actor(contextutil.GetUserID(ctx))
		if err := qtx.Update(ctx, id, fields); err != nil {
			s.logger.Error("update job persist failed", zap.Uint("job_id", id), zap.Error(err))
			return JobResponse{}, mapRepositoryError(err, "Failed to update job")
		}
	}

	var skillIDs []uint
	if req.SkillIDs != nil {
		skillIDs = association.Distinct(*req.SkillIDs)
		if err := s.ensureSkillsExist(ctx, atx, skillIDs); err != nil {
			return JobResponse{}, err
		}
		if err := atx.ReplaceJobSkills(ctx, id, skillIDs); err != nil {
			s.logger.Error("update job replace skills failed", zap.Uint("job_id", id), zap.Error(err))
			return JobResponse{}, mapRepositoryError(err, "Failed to replace job skills")
		}
	}

	updated, err := qtx.FindByID(ctx, id)
	if err != nil {
		return JobResponse{}, mapRepositoryError(err, "Failed to load job")
	}

	if err := s.recordEvent(ctx, tx, events.JobUpdated, id, updated, skillIDs); err != nil {
		return JobResponse{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("update job commit failed", zap.String("request_id", rid), zap.Error(err))
		return JobResponse{}, mapRepositoryError(err, "Failed to update job")
	}

	s.logger.Info("update job success",
		zap.String("request_id", rid),
		zap.Uint("job_id", id),
	)
	return ToJobResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id, employerID uint) error {
	rid := contextutil.GetRequestID(ctx)
	if employerID == 0 {
		return joberrors.ErrEmployerIDRequired
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		s.logger.Error("delete job begin tx failed", zap.String("request_id", rid), zap.Error(tx.Error))
		return mapRepositoryError(tx.Error, "Failed to delete job")
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	job, err := qtx.GetForUpdate(ctx, id)
	if err != nil {
		return mapRepositoryError(err, "Failed to load job")
	}
	if job.EmployerID == nil || *job.EmployerID != employerID {
		s.logger.Warn("delete job rejected for non-owner",
			zap.String("request_id", rid),
			zap.Uint("job_id", id),
			zap.Uint("employer_id", employerID),
		)
		return joberrors.ErrNotJobOwner
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete job persist failed", zap.Uint("job_id", id), zap.Error(err))
		return mapRepositoryError(err, "Failed to delete job")
	}

	if err := s.recordEvent(ctx, tx, events.JobDeleted, id, job, nil); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("delete job commit failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err, "Failed to delete job")
	}

	s.logger.Info("delete job success",
		zap.String("request_id", rid),
		zap.Uint("job_id", id),
	)
	return nil
}

func (s *service) GetByEmployer(ctx context.Context, employerID uint) ([]JobResponse, error) {
	if employerID == 0 {
		return nil, joberrors.ErrEmployerIDQueryRequired
	}

	key := employerJobsPrefix + strconv.FormatUint(uint64(employerID), 10)
	return s.list(ctx, key, func(ctx context.Context) ([]schema.Job, error) {
		jobs, err := s.repo.FindByEmployer(ctx, employerID)
		if err != nil {
			s.logger.Error("list employer jobs failed", zap.Uint("employer_id", employerID), zap.Error(err))
			return nil, mapRepositoryError(err, "Failed to fetch jobs")
		}
		if len(jobs) == 0 {
			return nil, joberrors.NoJobsForEmployer(employerID)
		}
		return jobs, nil
	})
}

func (s *service) GetAll(ctx context.Context) ([]JobResponse, error) {
	return s.list(ctx, allJobsKey, func(ctx context.Context) ([]schema.Job, error) {
		jobs, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("list jobs failed", zap.Error(err))
			return nil, mapRepositoryError(err, "Failed to fetch jobs")
		}
		if len(jobs) == 0 {
			return nil, joberrors.ErrNoJobsFound
		}
		return jobs, nil
	})
}

// list runs fetch once for all callers waiting on the same key. Nothing is
// cached: a call arriving after fetch returns queries the store again.
// The shared fetch is detached from the caller that started it; each caller
// stops waiting when its own ctx is done.
func (s *service) list(
	ctx context.Context,
	key string,
	fetch func(ctx context.Context) ([]schema.Job, error),
) ([]JobResponse, error) {
	shared := context.WithoutCancel(ctx)
	ch := s.listings.DoChan(key, func() (interface{}, error) {
		jobs, err := fetch(shared)
		if err != nil {
			return nil, err
		}
		return ToJobResponses(jobs), nil
	})

	select {
	case <-ctx.Done():
		return nil, mapRepositoryError(ctx.Err(), "Failed to fetch jobs")
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]JobResponse), nil
	}
}

func (s *service) GetByID(ctx context.Context, id uint) (JobDetailResponse, error) {
	job, err := s.repo.FindByIDWithApplicants(ctx, id)
	if err != nil {
		return JobDetailResponse{}, mapRepositoryError(err, "Failed to fetch job")
	}
	return ToJobDetailResponse(*job), nil
}

// ensureSkillsExist rejects the request when any id does not name a live skill.
func (s *service) ensureSkillsExist(ctx context.Context, assoc association.Repository, skillIDs []uint) error {
	if len(skillIDs) == 0 {
		return nil
	}

	count, err := assoc.CountExistingSkills(ctx, skillIDs)
	if err != nil {
		return mapRepositoryError(err, "Failed to validate skills")
	}
	if count != int64(len(skillIDs)) {
		s.logger.Warn("job references unknown skills",
			zap.Uints("skill_ids", skillIDs),
			zap.Int64("found", count),
		)
		return joberrors.ErrInvalidSkillIDs
	}
	return nil
}

func (s *service) recordEvent(ctx context.Context, tx *gorm.DB, eventType string, jobID uint, job *schema.Job, skillIDs []uint) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.JobEvent{
		EventType:  eventType,
		RequestID:  rid,
		JobID:      jobID,
		EmployerID: job.EmployerID,
		CategoryID: job.CategoryID,
		Title:      job.Title,
		SkillIDs:   skillIDs,
		ActorID:    contextutil.GetUserID(ctx),
		OccurredAt: s.now().UTC(),
	}

	row, err := kafka.NewOutboxEvent(rid, aggregateType, jobID, eventType, events.JobLifecycleTopic, event)
	if err != nil {
		s.logger.Error("marshal job event failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err, "Failed to record job event")
	}
	if err := s.outbox.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("job outbox persist failed",
			zap.Uint("job_id", jobID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return mapRepositoryError(err, "Failed to record job event")
	}
	return nil
}

func actor(userID uint) string {
	if userID == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(userID), 10)
}
