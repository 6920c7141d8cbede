package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/segmentio/encoding/json"

	"github.com/springweb/springweb/internal/middleware"
	"github.com/springweb/springweb/internal/view"
)

// newApp creates the Fiber app with global middleware and routes
func newApp(deps *Dependencies, sentryEnabled bool) *fiber.App {
	cfg := deps.Config
	logger := deps.Logger

	app := fiber.New(fiber.Config{
		AppName:               "springweb",
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: cfg.IsProduction(),
		UnescapePath:          true,
		Views:                 deps.Views,
		ViewsLayout:           view.DefaultLayout,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          middleware.ErrorHandler(logger, sentryEnabled),
	})

	// Apply global middleware
	app.Use(middleware.RequestID())

	loggerMiddleware := middleware.NewLoggerMiddleware(middleware.DefaultLoggerConfig(logger))
	app.Use(loggerMiddleware.Handler())

	app.Use(middleware.Recover(logger, sentryEnabled))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowOrigins
	}
	app.Use(middleware.NewCORSMiddleware(corsConfig).Handler())

	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))

	if cfg.Metrics.Enabled {
		metricsMiddleware := middleware.NewMetricsMiddleware(middleware.DefaultMetricsConfig())
		app.Use(metricsMiddleware.Handler())
	}

	if deps.RateLimitMiddleware != nil {
		app.Use(deps.RateLimitMiddleware.Handler())
	}

	registerRoutes(app, deps)

	return app
}
