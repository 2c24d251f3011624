package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidLastname       = errors.New("invalid lastname")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidUserType       = errors.New("invalid user type")

	ErrUserNotFound = errors.New("user not found")
	ErrConflict     = errors.New("user with this email already exists")
)
