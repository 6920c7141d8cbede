package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMetricsMiddleware(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler(zap.NewNop(), false)})
	app.Use(NewMetricsMiddleware(DefaultMetricsConfig()).Handler())
	app.Get("/api/params/baz/:message", func(c *fiber.Ctx) error { return c.SendString(c.Params("message")) })
	app.Get("/metrics-fail", func(c *fiber.Ctx) error { return errors.New("boom") })

	t.Run("labels requests by route pattern", func(t *testing.T) {
		counter := httpRequestsTotal.WithLabelValues("GET", "/api/params/baz/:message", "200")
		before := testutil.ToFloat64(counter)

		for _, msg := range []string{"a", "b"} {
			_, err := app.Test(httptest.NewRequest("GET", "/api/params/baz/"+msg, nil))
			require.NoError(t, err)
		}

		assert.Equal(t, before+2, testutil.ToFloat64(counter))
	})

	t.Run("records the final status of failed requests", func(t *testing.T) {
		counter := httpRequestsTotal.WithLabelValues("GET", "/metrics-fail", "500")
		before := testutil.ToFloat64(counter)

		resp, err := app.Test(httptest.NewRequest("GET", "/metrics-fail", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

		assert.Equal(t, before+1, testutil.ToFloat64(counter))
	})
}

func TestRecordViewRender(t *testing.T) {
	ok := viewRenders.WithLabelValues("list", "ok")
	failed := viewRenders.WithLabelValues("list", "error")
	okBefore, failedBefore := testutil.ToFloat64(ok), testutil.ToFloat64(failed)

	RecordViewRender("list", nil)
	RecordViewRender("list", errors.New("missing template"))

	assert.Equal(t, okBefore+1, testutil.ToFloat64(ok))
	assert.Equal(t, failedBefore+1, testutil.ToFloat64(failed))
}
