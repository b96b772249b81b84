package job

import (
	"context"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mock/job_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	Create(ctx context.Context, job *schema.Job) error
	GetForUpdate(ctx context.Context, id uint) (*schema.Job, error)
	Update(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error

	FindByID(ctx context.Context, id uint) (*schema.Job, error)
	FindByIDWithApplicants(ctx context.Context, id uint) (*schema.Job, error)
	FindByEmployer(ctx context.Context, employerID uint) ([]schema.Job, error)
	FindAll(ctx context.Context) ([]schema.Job, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, job *schema.Job) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(job).Error
}

// GetForUpdate loads the bare job row and locks it until the surrounding
// transaction ends.
func (r *repository) GetForUpdate(ctx context.Context, id uint) (*schema.Job, error) {
	var job schema.Job
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repository) Update(ctx context.Context, id uint, fields map[string]any) error {
	res := r.db.WithContext(ctx).
		Model(&schema.Job{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes the row; job_skill and apply_job rows go with it via FK cascade.
func (r *repository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&schema.Job{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// listing preloads what the projections read. Soft-deleted categories,
// employers and skills are filtered by gorm and surface as placeholders.
func (r *repository) listing(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Category").
		Preload("Employer").
		Preload("Skills", func(db *gorm.DB) *gorm.DB {
			return db.Order("skill.id ASC")
		})
}

func (r *repository) FindByID(ctx context.Context, id uint) (*schema.Job, error) {
	var job schema.Job
	if err := r.listing(ctx).First(&job, id).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repository) FindByIDWithApplicants(ctx context.Context, id uint) (*schema.Job, error) {
	var job schema.Job
	err := r.listing(ctx).
		Preload("Applicants.User").
		First(&job, id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *repository) FindByEmployer(ctx context.Context, employerID uint) ([]schema.Job, error) {
	var jobs []schema.Job
	err := r.listing(ctx).
		Scopes(tenant.EmployerScope(employerID)).
		Order("id ASC").
		Find(&jobs).Error
	return jobs, err
}

func (r *repository) FindAll(ctx context.Context) ([]schema.Job, error) {
	var jobs []schema.Job
	err := r.listing(ctx).
		Order("create_at DESC").
		Find(&jobs).Error
	return jobs, err
}
