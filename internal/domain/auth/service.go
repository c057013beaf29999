package auth

import "context"

type Service interface {
	// Login verifies the password against the employee record inside
	// the named organization and returns a signed token.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// AdminLogin checks the caller's elevation code. It returns
	// ErrNoAdminCode for plain employees.
	AdminLogin(ctx context.Context, req AdminLoginRequest) error

	// ChangePassword rehashes and stores the caller's new password.
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error

	// ForgotPassword stores a random temporary password and mails it
	// in plain text. The caller is unauthenticated.
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error
}
