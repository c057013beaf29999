package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidAdminCode   = errors.New("invalid admin code")
	ErrNoAdminCode        = errors.New("employee has no admin code")
)
