package auth

import "github.com/pkg/errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrMissingToken     = errors.New("login response did not contain a token")
	ErrInvalidEmail     = errors.New("invalid email format")
	ErrMissingPassword  = errors.New("password is required")
	ErrWeakPassword     = errors.New("password must have at least 8 characters including a letter, a number and a symbol")
)
