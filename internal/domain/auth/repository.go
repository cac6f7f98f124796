package auth

import "context"

// AuthRepository exchanges credentials for a backend bearer token.
type AuthRepository interface {
	Login(ctx context.Context, req LoginRequest) (BackendLogin, error)
}
