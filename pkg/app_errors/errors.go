package apperrors

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrResourceNotFound     = errors.New("resource not found")
	ErrUserNotFound         = errors.New("user not found")

	ErrInvalidInput          = errors.New("invalid input")
	ErrMissingRequiredFields = errors.New("missing required fields")

	ErrDuplicateUser      = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenRevoked       = errors.New("token revoked")
)
