package auth

import (
	"context"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/association"
	autherrors "github.com/NguyenBaKy2003/backend-recruitment/internal/auth/errors"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/credential"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	BasicInfo(ctx context.Context, id uint) (UserResponse, error)
	ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error
}

type service struct {
	db     *gorm.DB
	repo   Repository
	assoc  association.Repository
	issuer credential.Issuer
	logger *zap.Logger
}

func NewService(
	db *gorm.DB,
	repo Repository,
	assoc association.Repository,
	issuer credential.Issuer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{db: db, repo: repo, assoc: assoc, issuer: issuer, logger: l}
}

// Register creates the user, its role link and the role's profile row in
// one transaction. Applicant skills given by name are found or created.
func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if req.RoleID != schema.RoleEmployer && req.RoleID != schema.RoleApplicant {
		return RegisterResponse{}, autherrors.ErrInvalidRole
	}

	hash, err := credential.HashPassword(req.Password)
	if err != nil {
		s.logger.Error("register hash password failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, mapRepositoryError(err, "Failed to register user")
	}

	tx := s.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return RegisterResponse{}, mapRepositoryError(tx.Error, "Failed to register user")
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	atx := s.assoc.WithTx(tx)

	user := req.toUser(hash)
	if err := qtx.CreateUser(ctx, user); err != nil {
		s.logger.Warn("register create user failed",
			zap.String("request_id", rid),
			zap.String("user_name", user.UserName),
			zap.Error(err),
		)
		return RegisterResponse{}, mapRepositoryError(err, "Failed to register user")
	}

	if err := atx.LinkUserRole(ctx, user.ID, req.RoleID); err != nil {
		return RegisterResponse{}, mapRepositoryError(err, "Failed to assign role")
	}

	resp := RegisterResponse{User: toUserResponse(user), RoleID: req.RoleID}

	if req.RoleID == schema.RoleEmployer {
		employer := req.toEmployer(user)
		if err := qtx.CreateEmployer(ctx, employer); err != nil {
			return RegisterResponse{}, mapRepositoryError(err, "Failed to create employer")
		}
		resp.Employer = &EmployerResponse{
			ID:          employer.ID,
			UserID:      employer.UserID,
			CompanyName: employer.CompanyName,
		}
	} else {
		applicant := req.toApplicant(user)
		if err := qtx.CreateApplicant(ctx, applicant); err != nil {
			return RegisterResponse{}, mapRepositoryError(err, "Failed to create applicant")
		}

		skillIDs := make([]uint, 0, len(req.Skills))
		for _, name := range req.skillNames() {
			skill, err := atx.FindOrCreateSkill(ctx, name, nil)
			if err != nil {
				s.logger.Error("register find or create skill failed",
					zap.String("skill", name),
					zap.Error(err),
				)
				return RegisterResponse{}, mapRepositoryError(err, "Failed to save skills")
			}
			skillIDs = append(skillIDs, skill.ID)
		}
		if err := atx.LinkApplicantSkills(ctx, applicant.ID, skillIDs); err != nil {
			return RegisterResponse{}, mapRepositoryError(err, "Failed to save skills")
		}

		resp.Applicant = &ApplicantResponse{
			ID:         applicant.ID,
			UserID:     applicant.UserID,
			Experience: applicant.Experience,
			Education:  applicant.Education,
			SkillIDs:   association.Distinct(skillIDs),
		}
	}

	if err := tx.Commit().Error; err != nil {
		s.logger.Error("register commit failed", zap.String("request_id", rid), zap.Error(err))
		return RegisterResponse{}, mapRepositoryError(err, "Failed to register user")
	}

	s.logger.Info("register success",
		zap.String("request_id", rid),
		zap.Uint("user_id", user.ID),
		zap.Uint("role_id", req.RoleID),
	)
	return resp, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	user, err := s.repo.GetByUserName(ctx, req.UserName)
	if err != nil {
		return LoginResponse{}, mapRepositoryError(err, "Failed to login")
	}

	if !credential.ComparePassword(user.Password, req.Password) {
		s.logger.Warn("login wrong password", zap.Uint("user_id", user.ID))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	roleID, err := s.repo.PrimaryRoleID(ctx, user.ID)
	if err != nil {
		return LoginResponse{}, mapRepositoryError(err, "Failed to load role")
	}
	if roleID == 0 {
		return LoginResponse{}, autherrors.ErrRoleNotAssigned
	}

	token, err := s.issuer.IssueToken(credential.Claims{
		ID:       user.ID,
		RoleID:   roleID,
		Username: user.UserName,
	})
	if err != nil {
		s.logger.Error("login issue token failed", zap.Uint("user_id", user.ID), zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		Token:    token,
		Username: user.UserName,
		ID:       user.ID,
		RoleID:   roleID,
	}, nil
}

func (s *service) BasicInfo(ctx context.Context, id uint) (UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err, "Failed to fetch user")
	}
	return toUserResponse(user), nil
}

func (s *service) ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) error {
	if userID == 0 {
		return autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return mapRepositoryError(err, "Failed to fetch user")
	}
	if !credential.ComparePassword(user.Password, req.OldPassword) {
		return autherrors.ErrWrongPassword
	}

	hash, err := credential.HashPassword(req.NewPassword)
	if err != nil {
		return mapRepositoryError(err, "Failed to change password")
	}
	if err := s.repo.UpdatePassword(ctx, userID, hash); err != nil {
		return mapRepositoryError(err, "Failed to change password")
	}

	s.logger.Info("password changed", zap.Uint("user_id", userID))
	return nil
}
