package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/springweb/springweb/internal/config"
)

const testProperties = `config.code=12345
config.username=Jose
config.message=Hola que tal
config.listOfValues=hola,que,tal
config.valuesMap={product:'Computadora', description:'Alienware', price:1000}
log.level=error
`

// AppTestSuite drives the fully wired application in process
type AppTestSuite struct {
	suite.Suite
	app  *fiber.App
	deps *Dependencies
}

func TestAppSuite(t *testing.T) {
	suite.Run(t, new(AppTestSuite))
}

func (s *AppTestSuite) SetupSuite() {
	path := filepath.Join(s.T().TempDir(), "values.properties")
	s.Require().NoError(os.WriteFile(path, []byte(testProperties), 0o600))

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	deps, err := initDependencies(context.Background(), cfg, zap.NewNop())
	s.Require().NoError(err)

	s.deps = deps
	s.app = newApp(deps, false)
}

func (s *AppTestSuite) TearDownSuite() {
	s.deps.Close()
}

func (s *AppTestSuite) get(target string) *http.Response {
	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, target, nil), -1)
	s.Require().NoError(err)
	return resp
}

func (s *AppTestSuite) body(resp *http.Response) string {
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	return string(b)
}

func (s *AppTestSuite) TestHomeRedirects() {
	for _, path := range []string{"/", "/home"} {
		resp := s.get(path)
		s.Equal(http.StatusFound, resp.StatusCode, path)
		s.Equal("/list", resp.Header.Get("Location"), path)
	}
}

func (s *AppTestSuite) TestViews() {
	resp := s.get("/list")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(strings.HasPrefix(resp.Header.Get("Content-Type"), "text/html"))
	body := s.body(resp)
	s.Contains(body, "Hola mundo cruel")
	s.Contains(body, "Paco")

	resp = s.get("/details")
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Contains(s.body(resp), "Hola Mundo Cruel")
}

func (s *AppTestSuite) TestMixReturnsNumericCode() {
	for _, code := range []int64{1, 42, -7, 1234567890123} {
		resp := s.get(fmt.Sprintf("/api/var/mix/p/%d", code))
		s.Require().Equal(http.StatusOK, resp.StatusCode)

		var body map[string]any
		s.Require().NoError(json.Unmarshal([]byte(s.body(resp)), &body))
		s.Equal("p", body["product"])
		s.Equal(float64(code), body["code"])
	}
}

func (s *AppTestSuite) TestFooDefault() {
	s.JSONEq(`{"message":"mensaje por defecto","code":null}`, s.body(s.get("/api/params/foo")))
	s.JSONEq(`{"message":"hi","code":null}`, s.body(s.get("/api/params/foo?message=hi")))
}

func (s *AppTestSuite) TestBarRequiresBothParameters() {
	for _, target := range []string{
		"/api/params/bar",
		"/api/params/bar?text=a",
		"/api/params/bar?code=1",
		"/api/params/bar?text=hola&code=",
	} {
		resp := s.get(target)
		s.GreaterOrEqual(resp.StatusCode, 400, target)
		s.Less(resp.StatusCode, 500, target)
	}

	s.JSONEq(`{"message":"","code":3}`, s.body(s.get("/api/params/bar?text=&code=3")))
}

func (s *AppTestSuite) TestRawRequestMapPreservesUnhandledError() {
	s.Equal(http.StatusInternalServerError, s.get("/api/params/request?code=x").StatusCode)
	s.JSONEq(`{"message":"hola","code":3}`, s.body(s.get("/api/params/request?code=3&message=hola")))
	s.JSONEq(`{"message":null,"code":3}`, s.body(s.get("/api/params/request?code=3")))
}

func (s *AppTestSuite) TestCreateUpperCases() {
	req := httptest.NewRequest(http.MethodPost, "/api/var/create", strings.NewReader(`{"name":"ana","lastname":"lopez"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	s.Require().NoError(err)

	s.Equal(http.StatusOK, resp.StatusCode)
	s.JSONEq(`{"name":"ANA","lastname":"LOPEZ","email":null}`, s.body(resp))
}

func (s *AppTestSuite) TestUserList() {
	s.JSONEq(`[
		{"name":"Jose","lastname":"Carrillo","email":null},
		{"name":"Manolo","lastname":"Jimenez","email":null},
		{"name":"Maria","lastname":"Cabello","email":null}
	]`, s.body(s.get("/api/list")))
}

func (s *AppTestSuite) TestValues() {
	var body map[string]any
	s.Require().NoError(json.Unmarshal([]byte(s.body(s.get("/api/var/values"))), &body))

	s.Equal("Jose", body["username"])
	s.Equal("HOLA,QUE,TAL", body["valueString"])
	s.Equal("Computadora", body["product"])
}

func (s *AppTestSuite) TestUnknownRouteIsNotFound() {
	resp := s.get("/api/nope")
	s.Equal(http.StatusNotFound, resp.StatusCode)
	s.NotEmpty(resp.Header.Get("X-Request-ID"))
}

func (s *AppTestSuite) TestAmbientEndpoints() {
	s.Equal(http.StatusOK, s.get("/livez").StatusCode)
	s.Equal(http.StatusOK, s.get("/readyz").StatusCode)
	s.Equal(http.StatusOK, s.get("/version").StatusCode)
	s.Equal(http.StatusOK, s.get("/openapi.yaml").StatusCode)

	s.get("/api/list")
	metrics := s.body(s.get("/metrics"))
	s.Contains(metrics, "springweb_http_requests_total")
}
