package dto

import (
	"strconv"

	apperrors "github.com/springweb/springweb/internal/pkg/errors"
)

// DefaultMessage is used by the optional message query parameter
const DefaultMessage = "mensaje por defecto"

// ParamDto is the response of the parameter binding endpoints
type ParamDto struct {
	Message string `json:"message"`
	Code    *int   `json:"code"`
}

// NewParamDto creates a ParamDto without a code
func NewParamDto(message string) ParamDto {
	return ParamDto{Message: message}
}

// WithCode returns a copy carrying code
func (p ParamDto) WithCode(code int) ParamDto {
	p.Code = &code
	return p
}

// FooQuery binds GET /api/params/foo
type FooQuery struct {
	Message string `query:"message" default:"mensaje por defecto"`
}

// BarQuery binds GET /api/params/bar.
//
// Text is a pointer so that text= binds an empty string while an absent
// text is still rejected. Code stays a string until CodeValue, because the
// query decoder turns code= into a zero integer.
type BarQuery struct {
	Text *string `query:"text" validate:"required"`
	Code string  `query:"code" validate:"required"`
}

// CodeValue converts the bound code to an int
func (q BarQuery) CodeValue() (int, error) {
	code, err := strconv.Atoi(q.Code)
	if err != nil {
		return 0, apperrors.BadRequest("Invalid query parameters").
			WithDetail("code", "must be an integer").
			WithError(err)
	}
	return code, nil
}

// BazParams binds GET /api/var/baz/:message
type BazParams struct {
	Message string `params:"message" validate:"required"`
}

// MixParams binds GET /api/var/mix/:product/:code
type MixParams struct {
	Product string `params:"product" validate:"required"`
	Code    int64  `params:"code"`
}

// MixResponse is the response of GET /api/var/mix/:product/:code
type MixResponse struct {
	Product string `json:"product"`
	Code    int64  `json:"code"`
}
