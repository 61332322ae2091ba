package domain

import "errors"

var (
	// ErrUserNotFound is returned by the credential store when no identity
	// exists for the given handle.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials covers both unknown handle and wrong password at
	// login. The two are deliberately indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUsernameTaken and ErrEmailTaken signal signup conflicts.
	ErrUsernameTaken = errors.New("username is already taken")
	ErrEmailTaken    = errors.New("email is already in use")

	// ErrTooManyAttempts is returned when the login throttle trips.
	ErrTooManyAttempts = errors.New("too many failed login attempts")

	ErrTodoNotFound = errors.New("todo not found")
)
