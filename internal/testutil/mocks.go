// Package testutil provides shared test utilities for the springweb handlers.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/springweb/springweb/internal/middleware"
	"github.com/springweb/springweb/internal/view"
)

// NewTestApp creates a Fiber app that renders errors the way the server does.
func NewTestApp(views ...fiber.Views) *fiber.App {
	cfg := fiber.Config{
		ErrorHandler: middleware.ErrorHandler(zap.NewNop(), false),
		UnescapePath: true,
	}
	if len(views) > 0 {
		cfg.Views = views[0]
		cfg.ViewsLayout = view.DefaultLayout
	}
	return fiber.New(cfg)
}

// Do sends req to app and fails the test on transport errors.
func Do(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// JSONRequest builds a request with a JSON body.
func JSONRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// DecodeJSON decodes the response body into a value of type T.
func DecodeJSON[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ReadBody returns the response body as a string.
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}
