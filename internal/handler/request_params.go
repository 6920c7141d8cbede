package handler

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/springweb/springweb/internal/dto"
	apperrors "github.com/springweb/springweb/internal/pkg/errors"
)

// RequestParamHandler handles the /api/params endpoints
type RequestParamHandler struct {
	// strict answers 400 on the raw map route instead of an unhandled error
	strict bool
}

// NewRequestParamHandler creates a new request param handler
func NewRequestParamHandler(strict bool) *RequestParamHandler {
	return &RequestParamHandler{strict: strict}
}

// Foo handles GET /api/params/foo?message=
func (h *RequestParamHandler) Foo(c *fiber.Ctx) error {
	var query dto.FooQuery
	if err := dto.BindQuery(c, &query); err != nil {
		return err
	}

	return c.JSON(dto.NewParamDto(query.Message))
}

// Bar handles GET /api/params/bar?text=&code=
func (h *RequestParamHandler) Bar(c *fiber.Ctx) error {
	var query dto.BarQuery
	if err := dto.BindQuery(c, &query); err != nil {
		return err
	}

	code, err := query.CodeValue()
	if err != nil {
		return err
	}

	return c.JSON(dto.NewParamDto(*query.Text).WithCode(code))
}

// Request handles GET /api/params/request?code=&message=
//
// It reads the raw query map instead of a bound struct. A missing or
// non-numeric code is returned as a plain error, which the error handler
// turns into a 500, unless strict mode is on.
func (h *RequestParamHandler) Request(c *fiber.Ctx) error {
	params := c.Queries()

	code, err := strconv.Atoi(params["code"])
	if err != nil {
		if h.strict {
			return apperrors.BadRequest("Invalid request parameters").
				WithDetail("code", "must be an integer")
		}
		return fmt.Errorf("parse code parameter: %w", err)
	}

	resp := rawParamResponse{Code: code}
	if message, ok := params["message"]; ok {
		resp.Message = &message
	}
	return c.JSON(resp)
}

// rawParamResponse keeps an absent message distinct from an empty one
type rawParamResponse struct {
	Message *string `json:"message"`
	Code    int     `json:"code"`
}
