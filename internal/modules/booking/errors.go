package booking

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("booking not found")
)
