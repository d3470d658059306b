package domain

import "errors"

// Validation failures, reported verbatim to the caller.
var (
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters long")
	ErrPasswordNoUpper   = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLower   = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoDigit   = errors.New("password must contain at least one digit")
	ErrInvalidUsername   = errors.New("username must be 3-50 letters, numbers, or underscores")
	ErrInvalidTrack      = errors.New("invalid learning track")
	ErrIncorrectPassword = errors.New("current password is incorrect")
)

// Authentication failures, collapsed to a generic 401 at the boundary so a
// caller cannot tell which factor failed.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("account is inactive")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrWrongTokenType     = errors.New("invalid token type")
	ErrUnauthorized       = errors.New("unauthorized")
)

var (
	ErrForbidden       = errors.New("access forbidden")
	ErrTooManyAttempts = errors.New("too many failed login attempts")
)

// Conflict and lookup failures.
var (
	ErrEmailTaken     = errors.New("email already registered")
	ErrUsernameTaken  = errors.New("username already taken")
	ErrUserNotFound   = errors.New("user not found")
	ErrLessonNotFound = errors.New("lesson not found")
)
