package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/springweb/springweb/internal/testutil"
)

func TestDocsHandler(t *testing.T) {
	app := testutil.NewTestApp()
	NewDocsHandler().RegisterRoutes(app)

	t.Run("serves the YAML document", func(t *testing.T) {
		resp := testutil.Do(t, app, httptest.NewRequest(http.MethodGet, "/openapi.yaml", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Equal(t, "application/x-yaml", resp.Header.Get("Content-Type"))
		assert.Contains(t, testutil.ReadBody(t, resp), "/api/params/foo")
	})

	t.Run("serves the document as JSON", func(t *testing.T) {
		resp := testutil.Do(t, app, httptest.NewRequest(http.MethodGet, "/openapi.json", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var doc map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&doc))
		assert.Equal(t, "3.0.3", doc["openapi"])
		paths, ok := doc["paths"].(map[string]any)
		require.True(t, ok)
		assert.Contains(t, paths, "/api/var/mix/{product}/{code}")
	})

	t.Run("serves Swagger UI", func(t *testing.T) {
		resp := testutil.Do(t, app, httptest.NewRequest(http.MethodGet, "/docs", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		assert.Contains(t, testutil.ReadBody(t, resp), "swagger-ui")
	})
}
