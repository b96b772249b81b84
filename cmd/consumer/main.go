package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/NguyenBaKy2003/backend-recruitment/internal/app"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/config"
	"github.com/NguyenBaKy2003/backend-recruitment/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("load config failed", zap.Error(err))
	}
	if err := cfg.ValidateConsumerConfig(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunConsumer(ctx, cfg); err != nil {
		logger.Fatal("run consumer failed", zap.Error(err))
	}
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("APP_ENV") == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
