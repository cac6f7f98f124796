package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrSessionRevoked     = errors.New("session has been revoked")
	ErrMissingAccessToken = errors.New("backend returned no access token")
	ErrMissingProfile     = errors.New("backend returned no user profile")
)
