package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/auth"
	"github.com/cmlabs-hris/hris-console/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthServiceImpl struct {
	auth.AuthRepository
	jwt.Service
}

func NewAuthService(authRepository auth.AuthRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		AuthRepository: authRepository,
		Service:        jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	backend, err := a.AuthRepository.Login(ctx, req)
	if err != nil {
		return auth.TokenResponse{}, err
	}

	profile := auth.NewProfile(backend.User)
	token, expiresAt, err := a.GenerateSessionToken(jwt.Session{
		UserID:       profile.ID,
		Name:         profile.Name,
		Surname:      profile.Surname,
		Email:        profile.Email,
		Role:         profile.Role,
		BackendToken: backend.AccessToken,
	})
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate session token: %w", err)
	}

	slog.Info("console login", "user_id", profile.ID, "role", profile.Role)

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(expiresAt - time.Now().Unix()),
		Profile:     profile,
		DisplayName: profile.DisplayName(),
	}, nil
}

// Logout implements auth.AuthService. An unparsable token is already unusable.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	parsed, err := jwtauth.VerifyToken(a.JWTAuth(), token)
	if err != nil {
		return nil
	}
	a.RevokeToken(token, parsed.Expiration().Unix())
	return nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context) (auth.MeResponse, error) {
	s, err := jwt.FromContext(ctx)
	if err != nil {
		return auth.MeResponse{}, auth.ErrInvalidToken
	}
	profile := auth.Profile{
		ID:      s.UserID,
		Name:    s.Name,
		Surname: s.Surname,
		Email:   s.Email,
		Role:    s.Role,
	}
	return auth.MeResponse{
		Profile:     profile,
		DisplayName: profile.DisplayName(),
		IsManager:   profile.IsManager(),
	}, nil
}
