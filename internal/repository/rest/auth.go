package rest

import (
	"context"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/auth"
)

type authRepositoryImpl struct {
	client *Client
}

func NewAuthRepository(client *Client) auth.AuthRepository {
	return &authRepositoryImpl{client: client}
}

// Login implements auth.AuthRepository.
func (r *authRepositoryImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.BackendLogin, error) {
	var out auth.BackendLogin
	if err := r.client.do(ctx, http.MethodPost, "/auth/login", nil, req, &out, false); err != nil {
		return auth.BackendLogin{}, err
	}
	if out.AccessToken == "" {
		return auth.BackendLogin{}, auth.ErrMissingAccessToken
	}
	// The session is keyed by the user id; without it nothing after login works.
	if out.User.ID == "" {
		return auth.BackendLogin{}, auth.ErrMissingProfile
	}
	return out, nil
}
