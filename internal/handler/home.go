package handler

import (
	"github.com/gofiber/fiber/v2"
)

// HomeHandler handles the landing routes
type HomeHandler struct {
	target string
}

// NewHomeHandler creates a new home handler redirecting to the user list
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{target: "/list"}
}

// Home handles GET / and GET /home. The client is sent to the list view with
// a fresh request, so query parameters are dropped.
func (h *HomeHandler) Home(c *fiber.Ctx) error {
	return c.Redirect(h.target, fiber.StatusFound)
}
