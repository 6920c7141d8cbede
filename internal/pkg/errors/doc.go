// Package errors provides application error types for springweb.
//
// # Error Types
//
//   - BadRequest: a parameter or body could not be bound (400)
//   - Validation: a bound request failed validation (400)
//   - NotFound: no route or resource (404)
//   - Internal: unexpected server error (500)
//
// # Usage
//
//	return apperrors.BadRequest("code must be an integer")
//
//	if apperrors.IsValidation(err) {
//	    // Handle validation failure
//	}
//
// Errors support wrapping with fmt.Errorf and are found again with errors.As.
package errors
