package api

import "errors"

// Domain error taxonomy. Services translate repository failures into these
// sentinels; handlers map them onto HTTP statuses with errors.Is. Raw storage
// errors never cross the HTTP boundary.
var (
	ErrNotFound           = errors.New("requested item not found")
	ErrConflict           = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrHashing            = errors.New("password hashing failed")
	ErrDatabase           = errors.New("database error")
)
