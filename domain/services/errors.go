package services

import "errors"

// Sentinel errors returned by the service layer. Handlers translate these into
// status codes at the request boundary; anything else collapses to a 500.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrAssigneeNotFound   = errors.New("assigned user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
