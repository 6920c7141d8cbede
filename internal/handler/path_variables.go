package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/springweb/springweb/internal/dto"
	"github.com/springweb/springweb/internal/service"
)

// PathVariableHandler handles the /api/var endpoints: path segment binding,
// body binding and the configured values
type PathVariableHandler struct {
	userService   *service.UserService
	valuesService *service.ValuesService
	logger        *zap.Logger
}

// NewPathVariableHandler creates a new path variable handler
func NewPathVariableHandler(
	userService *service.UserService,
	valuesService *service.ValuesService,
	logger *zap.Logger,
) *PathVariableHandler {
	return &PathVariableHandler{
		userService:   userService,
		valuesService: valuesService,
		logger:        logger,
	}
}

// Baz handles GET /api/var/baz/:message
func (h *PathVariableHandler) Baz(c *fiber.Ctx) error {
	var params dto.BazParams
	if err := dto.BindParams(c, &params); err != nil {
		return err
	}

	return c.JSON(dto.NewParamDto(params.Message))
}

// Mix handles GET /api/var/mix/:product/:code
func (h *PathVariableHandler) Mix(c *fiber.Ctx) error {
	var params dto.MixParams
	if err := dto.BindParams(c, &params); err != nil {
		return err
	}

	return c.JSON(dto.MixResponse{
		Product: params.Product,
		Code:    params.Code,
	})
}

// Create handles POST /api/var/create
func (h *PathVariableHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := dto.ParseAndValidate(c, &req); err != nil {
		return err
	}

	user := h.userService.Create(req.ToUser())
	h.logger.Debug("user echoed", zap.String("name", user.Name), zap.String("lastname", user.Lastname))

	return c.JSON(user)
}

// Values handles GET /api/var/values
func (h *PathVariableHandler) Values(c *fiber.Ctx) error {
	return c.JSON(h.valuesService.Snapshot())
}
