package association

import (
	"context"
	"sort"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -destination=mock/association_repo_mock.go -package=mock . Repository
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	ReplaceJobSkills(ctx context.Context, jobID uint, skillIDs []uint) error
	CountExistingSkills(ctx context.Context, skillIDs []uint) (int64, error)
	FindOrCreateSkill(ctx context.Context, name string, categoryID *uint) (*schema.Skill, error)

	LinkApplicantSkills(ctx context.Context, applicantID uint, skillIDs []uint) error
	LinkUserRole(ctx context.Context, userID, roleID uint) error

	LinkApplicantJob(ctx context.Context, applicantID, jobID uint) error
	UnlinkApplicantJob(ctx context.Context, applicantID, jobID uint) error
	FindApplication(ctx context.Context, applicantID, jobID uint) (*schema.ApplyJob, error)
	ListApplications(ctx context.Context) ([]schema.ApplyJob, error)
}

type repository struct {
	db   *gorm.DB
	inTx bool
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx, inTx: true}
}

// ReplaceJobSkills swaps the full skill set of a job. The job row is locked
// first so concurrent replaces for the same job apply one after the other.
func (r *repository) ReplaceJobSkills(ctx context.Context, jobID uint, skillIDs []uint) error {
	if r.inTx {
		return replaceJobSkills(r.db.WithContext(ctx), jobID, skillIDs)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return replaceJobSkills(tx, jobID, skillIDs)
	})
}

func replaceJobSkills(tx *gorm.DB, jobID uint, skillIDs []uint) error {
	var job schema.Job
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		First(&job, jobID).Error; err != nil {
		return err
	}

	if err := tx.Where("job_id = ?", jobID).Delete(&schema.JobSkill{}).Error; err != nil {
		return err
	}

	ids := Distinct(skillIDs)
	if len(ids) == 0 {
		return nil
	}

	rows := make([]schema.JobSkill, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, schema.JobSkill{JobID: jobID, SkillID: id})
	}
	return tx.Create(&rows).Error
}

func (r *repository) CountExistingSkills(ctx context.Context, skillIDs []uint) (int64, error) {
	ids := Distinct(skillIDs)
	if len(ids) == 0 {
		return 0, nil
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&schema.Skill{}).
		Where("id IN ?", ids).
		Count(&count).Error
	return count, err
}

// FindOrCreateSkill returns the skill named name, creating it when absent.
// The unique index on skill.name makes concurrent creates converge: the
// losing insert is a no-op and the row is re-read.
func (r *repository) FindOrCreateSkill(ctx context.Context, name string, categoryID *uint) (*schema.Skill, error) {
	db := r.db.WithContext(ctx)

	var skill schema.Skill
	err := db.Where("name = ?", name).Limit(1).Find(&skill).Error
	if err != nil {
		return nil, err
	}
	if skill.ID != 0 {
		return &skill, nil
	}

	skill = schema.Skill{Name: name, CategoryID: categoryID}
	err = db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&skill).Error
	if err != nil {
		return nil, err
	}
	if skill.ID != 0 {
		return &skill, nil
	}

	// Lost the race, or the name belongs to a soft-deleted skill.
	var existing schema.Skill
	if err := db.Unscoped().Where("name = ?", name).First(&existing).Error; err != nil {
		return nil, err
	}
	if existing.DeleteAt.Valid {
		if err := db.Unscoped().Model(&existing).
			Updates(map[string]any{"delete_at": nil, "delete_by": ""}).Error; err != nil {
			return nil, err
		}
		existing.DeleteAt = gorm.DeletedAt{}
	}
	return &existing, nil
}

func (r *repository) LinkApplicantSkills(ctx context.Context, applicantID uint, skillIDs []uint) error {
	ids := Distinct(skillIDs)
	if len(ids) == 0 {
		return nil
	}

	rows := make([]schema.ApplicantSkill, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, schema.ApplicantSkill{ApplicantID: applicantID, SkillID: id})
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&rows).Error
}

func (r *repository) LinkUserRole(ctx context.Context, userID, roleID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&schema.UserRole{UserID: userID, RoleID: roleID}).Error
}

func (r *repository) LinkApplicantJob(ctx context.Context, applicantID, jobID uint) error {
	return r.db.WithContext(ctx).
		Create(&schema.ApplyJob{ApplicantID: applicantID, JobID: jobID}).Error
}

func (r *repository) UnlinkApplicantJob(ctx context.Context, applicantID, jobID uint) error {
	res := r.db.WithContext(ctx).
		Where("applicant_id = ? AND job_id = ?", applicantID, jobID).
		Delete(&schema.ApplyJob{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) FindApplication(ctx context.Context, applicantID, jobID uint) (*schema.ApplyJob, error) {
	var app schema.ApplyJob
	err := r.db.WithContext(ctx).
		Preload("Applicant.User").
		Preload("Job").
		Where("applicant_id = ? AND job_id = ?", applicantID, jobID).
		First(&app).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) ListApplications(ctx context.Context) ([]schema.ApplyJob, error) {
	var apps []schema.ApplyJob
	err := r.db.WithContext(ctx).
		Preload("Applicant.User").
		Preload("Job").
		Order("create_at DESC").
		Find(&apps).Error
	return apps, err
}

// Distinct returns ids without duplicates, in ascending order.
func Distinct(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
