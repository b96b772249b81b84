package app

import (
	"github.com/NguyenBaKy2003/backend-recruitment/internal/application"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/association"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/auth"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/config"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/credential"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/job"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/messaging/kafka"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/middleware"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/rbac"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/rbac/infra"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	exposeDetails := !cfg.IsProduction()

	// --- Repositories ---
	assocRepo := association.NewRepository(db)
	authRepo := auth.NewRepository(db)
	jobRepo := job.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Credentials & RBAC ---
	credentials, err := credential.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return err
	}
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, nil)
	if err != nil {
		return err
	}
	authMiddleware := middleware.AuthMiddleware(credentials)

	// --- Services ---
	authService := auth.NewService(db, authRepo, assocRepo, credentials)
	jobService := job.NewService(db, jobRepo, assocRepo, outboxRepo)
	applicationService := application.NewService(db, jobRepo, assocRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, cfg.IsProduction())
	jobHandler := job.NewHandler(jobService, exposeDetails)
	applicationHandler := application.NewHandler(applicationService, exposeDetails)
	rbacHandler := rbac.NewHandler(rbacService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, authMiddleware)
		job.RegisterRoutes(api, jobHandler, authMiddleware, rbacService, rdb)
		application.RegisterRoutes(api, applicationHandler, authMiddleware, rbacService)
		rbac.RegisterRoutes(api, rbacHandler, authMiddleware)
	}

	return nil
}
