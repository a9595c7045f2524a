package http

import "errors"

// Sentinel errors used by the authentication middleware when resolving the
// session cookie. Callers can match against them with [errors.Is].
var (
	// ErrNoTokenProvided is returned when the request carries no "token"
	// cookie at all.
	ErrNoTokenProvided = errors.New("no token provided")

	// ErrEmptyToken is returned when the "token" cookie is present but its
	// value is an empty string.
	ErrEmptyToken = errors.New("empty token cookie")
)
