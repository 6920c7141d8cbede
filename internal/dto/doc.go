// Package dto contains Data Transfer Objects for HTTP request/response handling.
//
// Every route declares the shape it binds as a struct:
//   - query parameters use the `query` tag and may carry a `default` tag
//   - path parameters use the `params` tag
//   - JSON bodies use the `json` tag
//
// Validation is declared with go-playground/validator `validate` tags.
//
// # Usage
//
//	var q dto.BarQuery
//	if err := dto.BindQuery(c, &q); err != nil {
//	    return err
//	}
//
// Binding errors are *apperrors.AppError values with a 400 status; the
// application error handler renders them.
package dto
