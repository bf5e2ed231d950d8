package photos

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidPhotoType = errors.New("photo type must be before or after")
	ErrEmptyFile        = errors.New("file is empty")
	ErrFileTooLarge     = errors.New("file exceeds the 10 MB limit")
	ErrInvalidMimeType  = errors.New("only JPEG, PNG and WebP images are accepted")
	ErrSetIncomplete    = errors.New("both before and after photos are required")
	ErrNoCustomerEmail  = errors.New("booking has no customer email")
)
