package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newLoggedApp(t *testing.T) (*fiber.App, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(logger, false)})
	app.Use(RequestID())
	app.Use(NewLoggerMiddleware(DefaultLoggerConfig(logger)).Handler())
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/fail", func(c *fiber.Ctx) error { return errors.New("boom") })
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app, logs
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("logs completed requests", func(t *testing.T) {
		app, logs := newLoggedApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/ok?x=1", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		entries := logs.FilterMessage("request completed").All()
		require.Len(t, entries, 1)
		fields := entries[0].ContextMap()
		assert.Equal(t, "/ok", fields["path"])
		assert.Equal(t, "x=1", fields["query"])
		assert.Equal(t, int64(200), fields["status"])
		assert.Equal(t, resp.Header.Get("X-Request-ID"), fields["request_id"])
	})

	t.Run("logs the status written by the error handler", func(t *testing.T) {
		app, logs := newLoggedApp(t)

		resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		entries := logs.FilterMessage("request completed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
		assert.Equal(t, int64(500), entries[0].ContextMap()["status"])
	})

	t.Run("skips health checks", func(t *testing.T) {
		app, logs := newLoggedApp(t)

		_, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)

		assert.Zero(t, logs.FilterMessage("request completed").Len())
	})
}
