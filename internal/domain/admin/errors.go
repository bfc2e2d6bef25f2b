package admin

import "errors"

var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrAdminNotFound      = errors.New("admin user not found")
	ErrNoChanges          = errors.New("no changes made")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidUsername    = errors.New("username must not be empty")
	ErrWrongPassword      = errors.New("old password is incorrect")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrResetTokenInvalid  = errors.New("reset token invalid or expired")
)
