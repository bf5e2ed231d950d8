package admin

import "errors"

var (
	ErrNotFound   = errors.New("booking not found")
	ErrValidation = errors.New("validation failed")
)
