package service

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrGameNotFound       = errors.New("game not found")
	ErrForbidden          = errors.New("operation not allowed for this role")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidGame        = errors.New("invalid game payload")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrConflict is returned when the write pipeline kept colliding with
	// concurrent updates after its retries were exhausted; callers should
	// surface it as a transient server error.
	ErrConflict = errors.New("too many concurrent updates, please retry")
)
