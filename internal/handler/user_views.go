package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/springweb/springweb/internal/middleware"
	"github.com/springweb/springweb/internal/pkg/logger"
	"github.com/springweb/springweb/internal/service"
)

// UserViewHandler renders the server-side user pages
type UserViewHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

// NewUserViewHandler creates a new user view handler
func NewUserViewHandler(userService *service.UserService, logger *zap.Logger) *UserViewHandler {
	return &UserViewHandler{
		userService: userService,
		logger:      logger,
	}
}

// model returns the attributes every user page receives
func (h *UserViewHandler) model(title string) fiber.Map {
	return fiber.Map{
		"title": title,
		"users": h.userService.ViewUsers(),
	}
}

// Details handles GET /details
func (h *UserViewHandler) Details(c *fiber.Ctx) error {
	m := h.model(service.DetailsTitle)
	m["user"] = h.userService.Featured()

	return h.render(c, "details", m)
}

// List handles GET /list
func (h *UserViewHandler) List(c *fiber.Ctx) error {
	return h.render(c, "list", h.model(service.ListTitle))
}

func (h *UserViewHandler) render(c *fiber.Ctx, name string, m fiber.Map) error {
	err := c.Render(name, m)
	middleware.RecordViewRender(name, err)
	if err != nil {
		logger.WithRequestID(h.logger, middleware.GetRequestID(c)).Error("failed to render view",
			zap.String("view", name),
			zap.Error(err),
		)
		return err
	}
	return nil
}
