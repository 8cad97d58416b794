package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid login credentials")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
	ErrNoToken            = errors.New("no token provided")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrStoreUnavailable   = errors.New("store unavailable")
)

// Claims is the identity carried inside a signed token.
type Claims struct {
	UserID string
	Email  string
}
