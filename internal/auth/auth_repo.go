package auth

import (
	"context"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	CreateUser(ctx context.Context, user *schema.User) error
	CreateEmployer(ctx context.Context, employer *schema.Employer) error
	CreateApplicant(ctx context.Context, applicant *schema.Applicant) error

	GetByUserName(ctx context.Context, userName string) (*schema.User, error)
	GetByID(ctx context.Context, id uint) (*schema.User, error)
	PrimaryRoleID(ctx context.Context, userID uint) (uint, error)
	UpdatePassword(ctx context.Context, id uint, passwordHash string) error
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

func (r *repository) CreateUser(ctx context.Context, user *schema.User) error {
	return r.db.WithContext(ctx).Omit("Roles").Create(user).Error
}

func (r *repository) CreateEmployer(ctx context.Context, employer *schema.Employer) error {
	return r.db.WithContext(ctx).Omit("User", "Service").Create(employer).Error
}

func (r *repository) CreateApplicant(ctx context.Context, applicant *schema.Applicant) error {
	return r.db.WithContext(ctx).Omit("User", "Skills").Create(applicant).Error
}

func (r *repository) GetByUserName(ctx context.Context, userName string) (*schema.User, error) {
	var user schema.User
	err := r.db.WithContext(ctx).Where("user_name = ?", userName).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*schema.User, error) {
	var user schema.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// PrimaryRoleID returns the lowest role id linked to the user, or 0 when
// the user has none.
func (r *repository) PrimaryRoleID(ctx context.Context, userID uint) (uint, error) {
	var roleIDs []uint
	err := r.db.WithContext(ctx).
		Model(&schema.UserRole{}).
		Where("user_id = ?", userID).
		Order("role_id ASC").
		Limit(1).
		Pluck("role_id", &roleIDs).Error
	if err != nil || len(roleIDs) == 0 {
		return 0, err
	}
	return roleIDs[0], nil
}

func (r *repository) UpdatePassword(ctx context.Context, id uint, passwordHash string) error {
	res := r.db.WithContext(ctx).
		Model(&schema.User{}).
		Where("id = ?", id).
		Update("password", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
