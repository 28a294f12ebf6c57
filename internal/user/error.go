package user

import "errors"

var (
	// -- Registration & Login --
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// -- Lookup --
	ErrUserNotFound = errors.New("user not found")

	// -- Password change --
	ErrPasswordMismatch = errors.New("new password and confirmation do not match")
	ErrWrongPassword    = errors.New("current password is incorrect")

	// -- Constants (External Systems) --
	PgUniqueViolation = "23505"
)
