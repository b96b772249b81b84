package app

import (
	"fmt"
	"time"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/config"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/middleware"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/schema"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/connection"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the stores, installs the global middleware and mounts
// every module on router. The returned cleanup closes the connections and
// must be called by the owner of router once the server has stopped.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	log := zap.L().Named("app")

	db, err := connection.ConnectGORMWithRetry(
		connection.PostgresDSN(
			cfg.Database.Host,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.Name,
			cfg.Database.Port,
			cfg.Database.SSLMode,
		),
		cfg.Database.MaxRetries,
	)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	log.Info("database connection established")

	if cfg.Database.AutoMigrate {
		if err := schema.Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
		log.Info("schema migrated")
	} else if err := schema.SetupJoinTables(db); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	log.Info("redis connection established")

	cleanup := func() {
		if err := rdb.Close(); err != nil {
			log.Warn("close redis failed", zap.Error(err))
		}
		if err := sqlDB.Close(); err != nil {
			log.Warn("close database failed", zap.Error(err))
		}
	}

	router.Use(cors.New(corsConfig(cfg.CORS.AllowedOrigins)))
	router.Use(middleware.ContextLogger(zap.L()))

	if err := registerModules(router, cfg, db, rdb); err != nil {
		cleanup()
		return nil, err
	}

	return cleanup, nil
}

func corsConfig(origins []string) cors.Config {
	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Authorization",
			middleware.HeaderAccessToken,
			middleware.HeaderRequestID,
			middleware.HeaderIdempotencyKey,
		},
		ExposeHeaders: []string{
			middleware.HeaderRequestID,
			middleware.HeaderReplayed,
		},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}
