package auth_test

import (
	"context"
	"testing"
	"time"

	associationMock "github.com/NguyenBaKy2003/backend-recruitment/internal/association/mock"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/auth"
	autherrors "github.com/NguyenBaKy2003/backend-recruitment/internal/auth/errors"
	authMock "github.com/NguyenBaKy2003/backend-recruitment/internal/auth/mock"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/credential"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"
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
	service auth.Service
	repo    *authMock.MockRepository
	assoc   *associationMock.MockRepository
	creds   *credential.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	sqlDB, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), connection.GORMConfig())
	assert.NoError(t, err)

	creds, err := credential.NewService("test-secret", time.Hour)
	assert.NoError(t, err)

	repo := authMock.NewMockRepository(ctrl)
	assoc := associationMock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()
	assoc.EXPECT().WithTx(gomock.Any()).Return(assoc).AnyTimes()

	return &serviceDeps{
		sqlMock: sqlMock,
		service: auth.NewService(db, repo, assoc, creds),
		repo:    repo,
		assoc:   assoc,
		creds:   creds,
	}
}

func hashed(t *testing.T, pw string) string {
	t.Helper()
	h, err := credential.HashPassword(pw)
	assert.NoError(t, err)
	return h
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("applicant with free text skills", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := auth.RegisterRequest{
			UserName:  "jdoe",
			Password:  "secret1",
			Email:     "j@doe.io",
			RoleID:    schema.RoleApplicant,
			Education: "BSc",
			Skills:    []string{"Go", " go ", "SQL", "Go", ""},
		}

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *schema.User) error {
				assert.Equal(t, "active", u.Status)
				assert.NotEqual(t, "secret1", u.Password)
				assert.True(t, credential.ComparePassword(u.Password, "secret1"))
				u.ID = 10
				return nil
			})
		deps.assoc.EXPECT().LinkUserRole(gomock.Any(), uint(10), schema.RoleApplicant).Return(nil)
		deps.repo.EXPECT().CreateApplicant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *schema.Applicant) error {
				assert.Equal(t, uint(10), a.UserID)
				a.ID = 4
				return nil
			})
		deps.assoc.EXPECT().FindOrCreateSkill(gomock.Any(), "Go", gomock.Nil()).Return(&schema.Skill{ID: 1, Name: "Go"}, nil)
		deps.assoc.EXPECT().FindOrCreateSkill(gomock.Any(), "go", gomock.Nil()).Return(&schema.Skill{ID: 3, Name: "go"}, nil)
		deps.assoc.EXPECT().FindOrCreateSkill(gomock.Any(), "SQL", gomock.Nil()).Return(&schema.Skill{ID: 2, Name: "SQL"}, nil)
		deps.assoc.EXPECT().LinkApplicantSkills(gomock.Any(), uint(4), []uint{1, 3, 2}).Return(nil)
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(10), resp.User.ID)
		assert.Nil(t, resp.Employer)
		assert.Equal(t, []uint{1, 2, 3}, resp.Applicant.SkillIDs)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employer gets an employer profile", func(t *testing.T) {
		deps := setupServiceTest(t)
		req := auth.RegisterRequest{
			UserName:    "acme",
			Password:    "secret1",
			Email:       "hr@acme.io",
			RoleID:      schema.RoleEmployer,
			CompanyName: "Acme",
		}

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *schema.User) error {
				u.ID = 11
				return nil
			})
		deps.assoc.EXPECT().LinkUserRole(gomock.Any(), uint(11), schema.RoleEmployer).Return(nil)
		deps.repo.EXPECT().CreateEmployer(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *schema.Employer) error {
				assert.Equal(t, "Acme", e.CompanyName)
				e.ID = 7
				return nil
			})
		deps.sqlMock.ExpectCommit()

		resp, err := deps.service.Register(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, uint(7), resp.Employer.ID)
		assert.Nil(t, resp.Applicant)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate username rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_user_name"})
		deps.sqlMock.ExpectRollback()

		_, err := deps.service.Register(ctx, auth.RegisterRequest{
			UserName: "jdoe", Password: "secret1", Email: "j@doe.io", RoleID: schema.RoleApplicant,
		})

		assert.ErrorIs(t, err, autherrors.ErrUsernameTaken)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown role", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.Register(ctx, auth.RegisterRequest{UserName: "x", Password: "secret1", RoleID: 9})

		assert.ErrorIs(t, err, autherrors.ErrInvalidRole)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	user := &schema.User{ID: 10, UserName: "jdoe"}

	t.Run("issues token with primary role", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := *user
		u.Password = hashed(t, "secret1")

		deps.repo.EXPECT().GetByUserName(gomock.Any(), "jdoe").Return(&u, nil)
		deps.repo.EXPECT().PrimaryRoleID(gomock.Any(), uint(10)).Return(schema.RoleEmployer, nil)

		resp, err := deps.service.Login(ctx, auth.LoginRequest{UserName: "jdoe", Password: "secret1"})

		assert.NoError(t, err)
		assert.Equal(t, schema.RoleEmployer, resp.RoleID)

		claims, err := deps.creds.VerifyToken(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, uint(10), claims.ID)
		assert.Equal(t, schema.RoleEmployer, claims.RoleID)
		assert.Equal(t, "jdoe", claims.Username)
	})

	t.Run("unknown user is not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByUserName(gomock.Any(), "ghost").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, auth.LoginRequest{UserName: "ghost", Password: "x"})

		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := *user
		u.Password = hashed(t, "secret1")
		deps.repo.EXPECT().GetByUserName(gomock.Any(), "jdoe").Return(&u, nil)

		_, err := deps.service.Login(ctx, auth.LoginRequest{UserName: "jdoe", Password: "nope"})

		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("user without role", func(t *testing.T) {
		deps := setupServiceTest(t)
		u := *user
		u.Password = hashed(t, "secret1")
		deps.repo.EXPECT().GetByUserName(gomock.Any(), "jdoe").Return(&u, nil)
		deps.repo.EXPECT().PrimaryRoleID(gomock.Any(), uint(10)).Return(uint(0), nil)

		_, err := deps.service.Login(ctx, auth.LoginRequest{UserName: "jdoe", Password: "secret1"})

		assert.ErrorIs(t, err, autherrors.ErrRoleNotAssigned)
	})
}

func TestService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), uint(10)).
			Return(&schema.User{ID: 10, Password: hashed(t, "old-pass")}, nil)
		deps.repo.EXPECT().UpdatePassword(gomock.Any(), uint(10), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uint, hash string) error {
				assert.True(t, credential.ComparePassword(hash, "new-pass"))
				return nil
			})

		err := deps.service.ChangePassword(ctx, 10, auth.ChangePasswordRequest{OldPassword: "old-pass", NewPassword: "new-pass"})

		assert.NoError(t, err)
	})

	t.Run("wrong old password", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByID(gomock.Any(), uint(10)).
			Return(&schema.User{ID: 10, Password: hashed(t, "old-pass")}, nil)

		err := deps.service.ChangePassword(ctx, 10, auth.ChangePasswordRequest{OldPassword: "bad", NewPassword: "new-pass"})

		assert.ErrorIs(t, err, autherrors.ErrWrongPassword)
	})
}

func TestService_BasicInfo(t *testing.T) {
	deps := setupServiceTest(t)
	deps.repo.EXPECT().GetByID(gomock.Any(), uint(10)).
		Return(&schema.User{ID: 10, UserName: "jdoe", Password: "hash"}, nil)

	resp, err := deps.service.BasicInfo(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, "jdoe", resp.UserName)
}
