package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/springweb/springweb/internal/pkg/errors"
)

// ErrorBody is the JSON shape of every error response
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failed request
type ErrorDetail struct {
	Code      int               `json:"code"`
	Type      string            `json:"type"`
	Message   string            `json:"message"`
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"requestId,omitempty"`
}

// ErrorHandler creates the application error handler. AppErrors and Fiber
// errors keep their status; anything else is an unhandled error and becomes
// a 500.
func ErrorHandler(logger *zap.Logger, sentryEnabled bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		appErr := apperrors.GetAppError(err)
		if appErr == nil {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				appErr = apperrors.FromStatus(fiberErr.Code, fiberErr.Message)
			} else {
				appErr = apperrors.Internal("Internal Server Error").WithError(err)
			}
		}
		code := appErr.StatusCode

		fields := []zap.Field{
			zap.Int("status", code),
			zap.String("error", err.Error()),
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
			zap.String("request_id", GetRequestID(c)),
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("request error", fields...)
		} else {
			logger.Debug("request rejected", fields...)
		}

		// Report to Sentry for 5xx errors
		if sentryEnabled && code >= fiber.StatusInternalServerError {
			CaptureError(c, err)
		}

		return c.Status(code).JSON(ErrorBody{
			Error: ErrorDetail{
				Code:      code,
				Type:      appErr.Code,
				Message:   appErr.Message,
				Details:   appErr.Details,
				RequestID: GetRequestID(c),
			},
		})
	}
}
