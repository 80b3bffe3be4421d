package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dcsil/k.ai/config"
	"github.com/dcsil/k.ai/db"
	"github.com/dcsil/k.ai/internal/auth/handler"
	repo "github.com/dcsil/k.ai/internal/auth/repository/postgres"
	"github.com/dcsil/k.ai/internal/auth/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	if err := db.RunMigrations(cfg.DBURL); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	userRepo := repo.NewRepository(pool)
	tokenService := service.NewTokenService(cfg.JWTAccessSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	sessionService := service.NewSessionService(userRepo, tokenService, cfg, logger)
	authHandler := handler.NewAuthHandler(sessionService, tokenService, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: handler.NewErrorHandler(logger),
	})
	app.Use(recover.New())
	// Best-effort per-IP throttle on the auth surface, independent of the
	// durable account lockout.
	app.Use("/auth", limiter.New(limiter.Config{Max: 60}))

	handler.RegisterRoutes(app, authHandler)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()
	logger.Info("auth service listening", zap.String("port", cfg.Port), zap.String("env", cfg.Env))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.Shutdown(); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) *zap.Logger {
	if cfg.IsProduction() {
		logger, err := zap.NewProduction()
		if err != nil {
			panic(err)
		}
		return logger
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	return logger
}
