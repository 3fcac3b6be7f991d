package models

import "errors"

// Error kinds shared across repositories, services and handlers. Handlers
// map them to 404, 403 and 422; anything else is a 500.
var (
	ErrNotFound   = errors.New("record not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
)
