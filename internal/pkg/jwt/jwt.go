package jwt

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/cmlabs-hris/hris-console/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const SessionCookieName = "console_session"

var ErrNoSession = errors.New("no session in context")

// Session is what the console remembers about a signed-in user, including the
// bearer token it forwards to the backend.
type Session struct {
	UserID       string
	Name         string
	Surname      string
	Email        string
	Role         user.Role
	BackendToken string
}

func (s Session) IsManager() bool {
	return s.Role.IsManager()
}

type Service interface {
	GenerateSessionToken(s Session) (token string, expiresAt int64, err error)
	GenerateSSEToken(userID string, role user.Role) (token string, expiresIn int, err error)
	ValidateSSEToken(tokenString string) (userID string, role user.Role, err error)
	JWTAuth() *jwtauth.JWTAuth
	SessionCookie(token string, expiresAt int64) *http.Cookie
	ClearSessionCookie() *http.Cookie
	RevokeToken(token string, expiresAt int64)
	IsTokenRevoked(token string) bool
	PruneRevoked(now time.Time) int
}

type JWTService struct {
	secretKey             string
	sessionExpirationTime string
	secureCookie          bool
	tokenAuth             *jwtauth.JWTAuth
	revokedTokens         map[string]int64
	mu                    sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, sessionExpirationTime string, secureCookie bool) Service {
	return &JWTService{
		secretKey:             secretKey,
		sessionExpirationTime: sessionExpirationTime,
		secureCookie:          secureCookie,
		tokenAuth:             jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:         make(map[string]int64),
	}
}

func (j *JWTService) GenerateSessionToken(s Session) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.sessionExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":       s.UserID,
		"name":          s.Name,
		"surname":       s.Surname,
		"email":         s.Email,
		"role":          string(s.Role),
		"backend_token": s.BackendToken,
		"type":          "access",
		"exp":           expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) SessionCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

func (j *JWTService) ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   j.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}

// RevokeToken blocks token until it would have expired anyway.
func (j *JWTService) RevokeToken(token string, expiresAt int64) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = expiresAt
}

// PruneRevoked forgets revoked tokens that expired before now and returns how many were dropped.
func (j *JWTService) PruneRevoked(now time.Time) int {
	j.mu.Lock()
	defer j.mu.Unlock()

	pruned := 0
	for t, exp := range j.revokedTokens {
		if exp < now.Unix() {
			delete(j.revokedTokens, t)
			pruned++
		}
	}
	return pruned
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

// GenerateSSEToken generates a short-lived token for SSE connections. The role
// decides which group streams the connection joins.
func (j *JWTService) GenerateSSEToken(userID string, role user.Role) (token string, expiresIn int, err error) {
	// SSE tokens are short-lived (5 minutes)
	expiresIn = 300
	expiresAt := time.Now().Add(5 * time.Minute).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "sse",
		"exp":     expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateSSEToken validates an SSE token and returns its user ID and role
func (j *JWTService) ValidateSSEToken(tokenString string) (userID string, role user.Role, err error) {
	token, err := jwtauth.VerifyToken(j.tokenAuth, tokenString)
	if err != nil {
		return "", "", err
	}

	claims, err := token.AsMap(context.Background())
	if err != nil {
		return "", "", err
	}
	if stringClaim(claims, "type") != "sse" {
		return "", "", jwt.ErrInvalidJWT()
	}

	userID = stringClaim(claims, "user_id")
	if userID == "" {
		return "", "", jwt.ErrInvalidJWT()
	}

	role = user.Role(stringClaim(claims, "role"))
	if !role.Valid() {
		role = user.RoleEmployee
	}
	return userID, role, nil
}

// FromContext rebuilds the Session from the claims jwtauth.Verifier stored in ctx.
func FromContext(ctx context.Context) (Session, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Session{}, err
	}
	if token == nil {
		return Session{}, ErrNoSession
	}
	return SessionFromClaims(claims)
}

// SessionFromClaims maps access-token claims to a Session.
func SessionFromClaims(claims map[string]interface{}) (Session, error) {
	if t, _ := claims["type"].(string); t != "access" {
		return Session{}, jwt.ErrInvalidJWT()
	}
	s := Session{
		UserID:       stringClaim(claims, "user_id"),
		Name:         stringClaim(claims, "name"),
		Surname:      stringClaim(claims, "surname"),
		Email:        stringClaim(claims, "email"),
		Role:         user.Role(stringClaim(claims, "role")),
		BackendToken: stringClaim(claims, "backend_token"),
	}
	if s.UserID == "" || s.BackendToken == "" {
		return Session{}, jwt.ErrInvalidJWT()
	}
	if !s.Role.Valid() {
		s.Role = user.RoleEmployee
	}
	return s, nil
}

// BackendToken returns the backend bearer token of the session in ctx.
func BackendToken(ctx context.Context) (string, error) {
	s, err := FromContext(ctx)
	if err != nil {
		return "", err
	}
	return s.BackendToken, nil
}

func stringClaim(claims map[string]interface{}, key string) string {
	v, _ := claims[key].(string)
	return v
}

// TokenFromSessionCookie is a jwtauth token finder for the session cookie.
func TokenFromSessionCookie(r *http.Request) string {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// TokenFromRequest returns the raw session token of r, header first.
func TokenFromRequest(r *http.Request) string {
	if tok := jwtauth.TokenFromHeader(r); tok != "" {
		return tok
	}
	return TokenFromSessionCookie(r)
}
