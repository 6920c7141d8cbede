// Package validator provides struct validation for request shapes.
//
// This package wraps go-playground/validator and reports fields by the
// name they are bound from (json, query or params tag), so a missing
// ?code= query parameter is reported as "code".
//
// # Usage
//
//	if err := validator.Validate(myStruct); err != nil {
//	    // err is a validator.ValidationErrors
//	}
//
// The validator instance is package-level and safe for concurrent use.
package validator
