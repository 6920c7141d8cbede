package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/springweb/springweb/internal/dto"
	"github.com/springweb/springweb/internal/service"
)

// UserRestHandler handles the JSON user endpoints
type UserRestHandler struct {
	userService *service.UserService
}

// NewUserRestHandler creates a new user REST handler
func NewUserRestHandler(userService *service.UserService) *UserRestHandler {
	return &UserRestHandler{userService: userService}
}

// Details handles GET /api/details
func (h *UserRestHandler) Details(c *fiber.Ctx) error {
	return c.JSON(dto.UserDto{
		Title: service.DetailsTitle,
		User:  h.userService.Featured(),
	})
}

// DetailsMap handles GET /api/details-map. Same body as Details, built as an
// untyped map.
func (h *UserRestHandler) DetailsMap(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": service.DetailsTitle,
		"user":  h.userService.Featured(),
	})
}

// List handles GET /api/list
func (h *UserRestHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.userService.List())
}
