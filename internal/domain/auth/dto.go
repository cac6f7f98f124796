package auth

import (
	"strings"

	"github.com/cmlabs-hris/hris-console/internal/domain/user"
	"github.com/cmlabs-hris/hris-console/internal/pkg/validator"
)

const DefaultDisplayName = "Usuario"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Email = strings.TrimSpace(r.Email)

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BackendLogin is the backend's answer to POST /auth/login.
type BackendLogin struct {
	AccessToken string    `json:"access_token"`
	User        user.User `json:"usuario"`
}

// Profile is the signed-in user as carried by the session.
type Profile struct {
	ID      string    `json:"id_usuario"`
	Name    string    `json:"nombre"`
	Surname string    `json:"apellido"`
	Email   string    `json:"email"`
	Role    user.Role `json:"id_rol"`
}

// NewProfile copies the identity fields of u, defaulting the role to FUNCIONARIO.
func NewProfile(u user.User) Profile {
	p := Profile{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Role:    u.Role,
	}
	if !p.Role.Valid() {
		p.Role = user.RoleEmployee
	}
	return p
}

// DisplayName is "name surname" or "Usuario" when both are blank.
func (p Profile) DisplayName() string {
	full := strings.TrimSpace(p.Name + " " + p.Surname)
	if full == "" {
		return DefaultDisplayName
	}
	return full
}

func (p Profile) IsManager() bool {
	return p.Role.IsManager()
}

type TokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	ExpiresIn   int     `json:"expires_in"`
	Profile     Profile `json:"profile"`
	DisplayName string  `json:"display_name"`
}

type MeResponse struct {
	Profile     Profile `json:"profile"`
	DisplayName string  `json:"display_name"`
	IsManager   bool    `json:"is_manager"`
}
