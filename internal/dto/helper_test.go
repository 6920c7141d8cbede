package dto

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/springweb/springweb/internal/pkg/errors"
)

// bindApp runs bind inside a handler and reports the error it returned.
func bindApp(t *testing.T, route string, bind func(c *fiber.Ctx) error) (*fiber.App, *error) {
	t.Helper()
	var got error
	app := fiber.New()
	handler := func(c *fiber.Ctx) error {
		got = bind(c)
		return c.SendStatus(fiber.StatusNoContent)
	}
	app.Get(route, handler)
	app.Post(route, handler)
	return app, &got
}

func TestBindQuery(t *testing.T) {
	t.Run("applies the default when the parameter is absent", func(t *testing.T) {
		var q FooQuery
		app, got := bindApp(t, "/foo", func(c *fiber.Ctx) error { return BindQuery(c, &q) })

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/foo", nil))
		require.NoError(t, err)

		require.NoError(t, *got)
		assert.Equal(t, DefaultMessage, q.Message)
	})

	t.Run("applies the default when the parameter is empty", func(t *testing.T) {
		var q FooQuery
		app, got := bindApp(t, "/foo", func(c *fiber.Ctx) error { return BindQuery(c, &q) })

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/foo?message=", nil))
		require.NoError(t, err)

		require.NoError(t, *got)
		assert.Equal(t, DefaultMessage, q.Message)
	})

	t.Run("keeps a supplied value", func(t *testing.T) {
		var q FooQuery
		app, got := bindApp(t, "/foo", func(c *fiber.Ctx) error { return BindQuery(c, &q) })

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/foo?message=hi", nil))
		require.NoError(t, err)

		require.NoError(t, *got)
		assert.Equal(t, "hi", q.Message)
	})

	t.Run("binds required typed parameters", func(t *testing.T) {
		var q BarQuery
		app, got := bindApp(t, "/bar", func(c *fiber.Ctx) error { return BindQuery(c, &q) })

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/bar?text=hola&code=7", nil))
		require.NoError(t, err)

		require.NoError(t, *got)
		require.NotNil(t, q.Text)
		assert.Equal(t, "hola", *q.Text)

		code, err := q.CodeValue()
		require.NoError(t, err)
		assert.Equal(t, 7, code)
	})

	t.Run("binds an empty text but rejects an empty code", func(t *testing.T) {
		var q BarQuery
		app, got := bindApp(t, "/bar", func(c *fiber.Ctx) error { return BindQuery(c, &q) })

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/bar?text=&code=", nil))
		require.NoError(t, err)

		require.Error(t, *got)
		assert.True(t, apperrors.IsValidation(*got))
		appErr := apperrors.GetAppError(*got)
		assert.Contains(t, appErr.Details, "code")
		assert.NotContains(t, appErr.Details, "text")
	})

	t.Run("reports missing required parameters", func(t *testing.T) {
		var q BarQuery
		app, got := bindApp(t, "/bar", func(c *fiber.Ctx) error { return BindQuery(c, &q) })

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/bar", nil))
		require.NoError(t, err)

		require.Error(t, *got)
		assert.True(t, apperrors.IsValidation(*got))
		appErr := apperrors.GetAppError(*got)
		assert.Equal(t, http.StatusBadRequest, appErr.StatusCode)
		assert.Contains(t, appErr.Details, "text")
		assert.Contains(t, appErr.Details, "code")
	})

	t.Run("reports a non-integer code as a bad request", func(t *testing.T) {
		var q BarQuery
		app, got := bindApp(t, "/bar", func(c *fiber.Ctx) error { return BindQuery(c, &q) })

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/bar?text=hola&code=abc", nil))
		require.NoError(t, err)
		require.NoError(t, *got)

		_, err = q.CodeValue()
		require.Error(t, err)
		assert.True(t, apperrors.IsBadRequest(err))
		assert.Equal(t, "must be an integer", apperrors.GetAppError(err).Details["code"])
	})
}

func TestBindParams(t *testing.T) {
	t.Run("binds typed path segments", func(t *testing.T) {
		var p MixParams
		app, got := bindApp(t, "/mix/:product/:code", func(c *fiber.Ctx) error { return BindParams(c, &p) })

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/mix/laptop/42", nil))
		require.NoError(t, err)

		require.NoError(t, *got)
		assert.Equal(t, "laptop", p.Product)
		assert.Equal(t, int64(42), p.Code)
	})

	t.Run("rejects a non-integer segment", func(t *testing.T) {
		var p MixParams
		app, got := bindApp(t, "/mix/:product/:code", func(c *fiber.Ctx) error { return BindParams(c, &p) })

		_, err := app.Test(httptest.NewRequest(http.MethodGet, "/mix/laptop/forty", nil))
		require.NoError(t, err)

		require.Error(t, *got)
		assert.Equal(t, http.StatusBadRequest, apperrors.GetStatusCode(*got))
	})
}

func TestParseAndValidate(t *testing.T) {
	newRequest := func(body string) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		return req
	}

	t.Run("parses a valid body", func(t *testing.T) {
		var r CreateUserRequest
		app, got := bindApp(t, "/create", func(c *fiber.Ctx) error { return ParseAndValidate(c, &r) })

		_, err := app.Test(newRequest(`{"name":"ana","lastname":"lopez","email":"ana@email.com"}`))
		require.NoError(t, err)

		require.NoError(t, *got)
		assert.Equal(t, "ana", r.Name)
		assert.Equal(t, "ana@email.com", r.ToUser().EmailAddress())
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		var r CreateUserRequest
		app, got := bindApp(t, "/create", func(c *fiber.Ctx) error { return ParseAndValidate(c, &r) })

		_, err := app.Test(newRequest(`{"name":`))
		require.NoError(t, err)

		assert.True(t, apperrors.IsBadRequest(*got))
	})

	t.Run("rejects non-json bodies", func(t *testing.T) {
		var r CreateUserRequest
		app, got := bindApp(t, "/create", func(c *fiber.Ctx) error { return ParseAndValidate(c, &r) })

		req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader("name=ana&lastname=lopez"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		_, err := app.Test(req)
		require.NoError(t, err)

		require.Error(t, *got)
		assert.Equal(t, http.StatusUnsupportedMediaType, apperrors.GetStatusCode(*got))
		assert.Empty(t, r.Name)
	})

	t.Run("accepts a charset parameter", func(t *testing.T) {
		var r CreateUserRequest
		app, got := bindApp(t, "/create", func(c *fiber.Ctx) error { return ParseAndValidate(c, &r) })

		req := httptest.NewRequest(http.MethodPost, "/create", strings.NewReader(`{"name":"ana","lastname":"lopez"}`))
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		_, err := app.Test(req)
		require.NoError(t, err)

		require.NoError(t, *got)
		assert.Equal(t, "lopez", r.Lastname)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		var r CreateUserRequest
		app, got := bindApp(t, "/create", func(c *fiber.Ctx) error { return ParseAndValidate(c, &r) })

		_, err := app.Test(newRequest(`{"name":"ana"}`))
		require.NoError(t, err)

		require.True(t, apperrors.IsValidation(*got))
		assert.Equal(t, "is required", apperrors.GetAppError(*got).Details["lastname"])
	})
}

func TestApplyDefaults(t *testing.T) {
	t.Run("requires a struct pointer", func(t *testing.T) {
		assert.Error(t, applyDefaults(FooQuery{}))
	})

	t.Run("rejects defaults on non-string fields", func(t *testing.T) {
		type bad struct {
			N int `default:"3"`
		}
		assert.Error(t, applyDefaults(&bad{}))
	})
}

func TestParamDto_WithCode(t *testing.T) {
	p := NewParamDto("hola").WithCode(5)

	assert.Equal(t, "hola", p.Message)
	require.NotNil(t, p.Code)
	assert.Equal(t, 5, *p.Code)
}
