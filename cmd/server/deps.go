package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/springweb/springweb/internal/config"
	"github.com/springweb/springweb/internal/handler"
	"github.com/springweb/springweb/internal/middleware"
	"github.com/springweb/springweb/internal/pkg/database"
	"github.com/springweb/springweb/internal/view"
)

// Dependencies holds all application dependencies
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger

	// Views renders the server-side pages
	Views *view.Engine

	// Redis backs the rate limiter; nil when rate limiting is off
	Redis *database.RedisDB

	Services *Services
	Handlers *Handlers

	// Middleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// initDependencies initializes all dependencies
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logger,
	}

	deps.Views = view.New(view.Options{Minify: cfg.View.Minify})
	if err := deps.Views.Load(); err != nil {
		return nil, fmt.Errorf("failed to load views: %w", err)
	}

	if cfg.RateLimit.Enabled {
		deps.Redis = initRedis(ctx, cfg, logger)
		deps.RateLimitMiddleware = middleware.NewRateLimitMiddleware(deps.Redis.Client, middleware.RateLimitConfig{
			Max:    cfg.RateLimit.RequestsPerMinute,
			Window: time.Minute,
			Skip:   middleware.HealthSkipper,
			Logger: logger,
		})
	}

	deps.Services = initServices(cfg)
	deps.Handlers = initHandlers(cfg, logger, deps.Services, readinessChecks(deps)...)

	return deps, nil
}

// initRedis creates the Redis client. An unreachable server is logged, not
// fatal: the rate limiter lets requests through until it comes back.
func initRedis(ctx context.Context, cfg *config.Config, logger *zap.Logger) *database.RedisDB {
	db := database.NewRedis(cfg.Redis, logger)
	if err := db.Connect(ctx, 3*time.Second); err != nil {
		logger.Warn("redis unavailable, rate limiting will fail open", zap.Error(err))
	}
	return db
}

// readinessChecks lists the probes behind /health and /readyz
func readinessChecks(deps *Dependencies) []handler.ReadinessCheck {
	checks := []handler.ReadinessCheck{
		{
			Name: "views",
			Check: func(context.Context) error {
				if !deps.Views.Loaded() {
					return errors.New("templates not loaded")
				}
				return nil
			},
		},
	}

	if deps.Redis != nil {
		checks = append(checks, handler.ReadinessCheck{
			Name: "redis",
			Check: func(ctx context.Context) error {
				return deps.Redis.Ping(ctx)
			},
		})
	}

	return checks
}

// Close releases all resources
func (d *Dependencies) Close() {
	if d.Redis != nil {
		if err := d.Redis.Close(); err != nil {
			d.Logger.Warn("failed to close redis client", zap.Error(err))
		}
	}
}
