package dto

import (
	"fmt"
	"reflect"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/springweb/springweb/internal/pkg/errors"
	"github.com/springweb/springweb/internal/validator"
)

// ParseAndValidate parses a JSON request body into the given struct and validates it.
// Returns an *apperrors.AppError if parsing or validation fails.
func ParseAndValidate(c *fiber.Ctx, v any) error {
	if !c.Is("json") {
		return apperrors.UnsupportedMediaType(c.Get(fiber.HeaderContentType))
	}
	if err := c.BodyParser(v); err != nil {
		return apperrors.BadRequest("Invalid request body").WithError(err)
	}
	return validate(v)
}

// BindQuery parses query parameters into the given struct, fills empty
// fields from their default tag and validates the result.
func BindQuery(c *fiber.Ctx, v any) error {
	if err := c.QueryParser(v); err != nil {
		return apperrors.BadRequest("Invalid query parameters").WithError(err)
	}
	if err := applyDefaults(v); err != nil {
		return apperrors.Internal("Invalid default value").WithError(err)
	}
	return validate(v)
}

// BindParams parses path parameters into the given struct and validates it.
func BindParams(c *fiber.Ctx, v any) error {
	if err := c.ParamsParser(v); err != nil {
		return apperrors.BadRequest("Invalid path parameters").WithError(err)
	}
	return validate(v)
}

func validate(v any) error {
	if err := validator.Validate(v); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return apperrors.Validation("Request validation failed").
				WithDetails(validationErrors.Fields()).
				WithError(err)
		}
		return apperrors.BadRequest(err.Error())
	}
	return nil
}

// applyDefaults sets empty string fields of the struct behind v to the value
// of their default tag.
func applyDefaults(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("defaults need a pointer to a struct, got %T", v)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		def, ok := field.Tag.Lookup("default")
		if !ok || !field.IsExported() {
			continue
		}
		fv := rv.Field(i)
		if fv.Kind() != reflect.String {
			return fmt.Errorf("default tag on non-string field %s", field.Name)
		}
		if fv.String() == "" {
			fv.SetString(def)
		}
	}
	return nil
}
