package handler

import (
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/segmentio/encoding/json"
	"gopkg.in/yaml.v3"

	"github.com/springweb/springweb/docs"
)

// DocsHandler handles API documentation endpoints
type DocsHandler struct {
	spec []byte

	jsonOnce sync.Once
	jsonSpec []byte
	jsonErr  error
}

// NewDocsHandler creates a new docs handler serving the embedded OpenAPI document
func NewDocsHandler() *DocsHandler {
	return &DocsHandler{spec: docs.OpenAPISpec}
}

// RegisterRoutes registers documentation routes
func (h *DocsHandler) RegisterRoutes(app fiber.Router) {
	app.Get("/openapi.yaml", h.ServeOpenAPISpec)
	app.Get("/openapi.json", h.ServeOpenAPIJSON)

	app.Get("/docs", h.ServeSwaggerUI)
	app.Get("/docs/*", h.ServeSwaggerUI)
}

// ServeOpenAPISpec serves the OpenAPI YAML specification
func (h *DocsHandler) ServeOpenAPISpec(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "application/x-yaml")
	return c.Send(h.spec)
}

// ServeOpenAPIJSON serves the OpenAPI document converted to JSON. The
// conversion runs once.
func (h *DocsHandler) ServeOpenAPIJSON(c *fiber.Ctx) error {
	h.jsonOnce.Do(func() {
		var doc map[string]interface{}
		if h.jsonErr = yaml.Unmarshal(h.spec, &doc); h.jsonErr != nil {
			return
		}
		h.jsonSpec, h.jsonErr = json.Marshal(doc)
	})
	if h.jsonErr != nil {
		return h.jsonErr
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(h.jsonSpec)
}

// ServeSwaggerUI serves the Swagger UI HTML page
func (h *DocsHandler) ServeSwaggerUI(c *fiber.Ctx) error {
	html := `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>springweb API Documentation</title>
    <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui.css">
    <style>
        body { margin: 0; background: #fafafa; }
        .swagger-ui .topbar { display: none; }
    </style>
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5.9.0/swagger-ui-bundle.js"></script>
    <script>
        window.onload = function() {
            window.ui = SwaggerUIBundle({
                url: "/openapi.yaml",
                dom_id: '#swagger-ui',
                deepLinking: true,
                displayRequestDuration: true
            });
        };
    </script>
</body>
</html>`
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}
