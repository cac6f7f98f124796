package user

import (
	"sort"
	"strings"

	"github.com/cmlabs-hris/hris-console/internal/domain/schedule"
	"github.com/cmlabs-hris/hris-console/internal/pkg/validator"
)

const MinPasswordLength = 4

// CreateUserRequest represents request to create a new user with its schedule
type CreateUserRequest struct {
	Name     string                  `json:"nombre"`
	Surname  string                  `json:"apellido"`
	Email    string                  `json:"email"`
	Password string                  `json:"password"`
	Role     Role                    `json:"id_rol"`
	Status   Status                  `json:"estado,omitempty"`
	Schedule schedule.WeeklySchedule `json:"jornada"`
}

// Validate trims the text fields, applies defaults and normalizes the schedule.
func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Surname = strings.TrimSpace(r.Surname)
	r.Email = strings.TrimSpace(r.Email)
	if r.Role == "" {
		r.Role = RoleEmployee
	}
	if r.Status == "" {
		r.Status = StatusActive
	}
	r.Schedule = schedule.Normalize(r.Schedule)

	if r.Name == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "nombre",
			Message: "nombre is required",
		})
	}
	if r.Surname == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "apellido",
			Message: "apellido is required",
		})
	}

	if r.Email == "" {
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

	if len(strings.TrimSpace(r.Password)) < MinPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 4 characters",
		})
	}

	if !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "id_rol",
			Message: "invalid role",
		})
	}
	if !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "estado",
			Message: "invalid status",
		})
	}

	errs = append(errs, validator.Merge(r.Schedule.Validate())...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateUserRequest represents a partial update; nil fields are left unchanged
type UpdateUserRequest struct {
	Name     *string `json:"nombre,omitempty"`
	Surname  *string `json:"apellido,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
	Role     *Role   `json:"id_rol,omitempty"`
	Status   *Status `json:"estado,omitempty"`
}

// Clean trims every field and drops the ones left empty.
func (r *UpdateUserRequest) Clean() {
	r.Name = trimmed(r.Name)
	r.Surname = trimmed(r.Surname)
	r.Email = trimmed(r.Email)
	r.Password = trimmed(r.Password)
	if r.Role != nil && strings.TrimSpace(string(*r.Role)) == "" {
		r.Role = nil
	}
	if r.Status != nil && strings.TrimSpace(string(*r.Status)) == "" {
		r.Status = nil
	}
}

// IsEmpty reports whether nothing is left to send.
func (r *UpdateUserRequest) IsEmpty() bool {
	return r.Name == nil && r.Surname == nil && r.Email == nil &&
		r.Password == nil && r.Role == nil && r.Status == nil
}

func (r *UpdateUserRequest) Validate() error {
	r.Clean()
	if r.IsEmpty() {
		return ErrNothingToUpdate
	}

	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}
	if r.Password != nil && len(*r.Password) < MinPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 4 characters",
		})
	}
	if r.Role != nil && !r.Role.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "id_rol",
			Message: "invalid role",
		})
	}
	if r.Status != nil && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "estado",
			Message: "invalid status",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// UserFilter narrows the user list. Empty fields match everything.
type UserFilter struct {
	Query  string
	Role   Role
	Status Status
}

// Matches applies the query to "name surname" and email, case-insensitively.
func (f UserFilter) Matches(u User) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		fullName := strings.ToLower(u.Name + " " + u.Surname)
		if !strings.Contains(fullName, q) && !strings.Contains(strings.ToLower(u.Email), q) {
			return false
		}
	}
	if f.Role != "" && u.Role != f.Role {
		return false
	}
	if f.Status != "" && u.Status != f.Status {
		return false
	}
	return true
}

// Apply returns the users matching f, in their original order.
func (f UserFilter) Apply(users []User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		if f.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}

// Overview summarizes the user population for managers.
type Overview struct {
	Total            int          `json:"total"`
	Active           int          `json:"active"`
	ByRole           map[Role]int `json:"by_role"`
	WithPendingLeave []string     `json:"with_pending_leave"`
}

// NewOverview counts users per role and lists users with pending leave.
func NewOverview(users []User, pendingRequesters map[string]bool) Overview {
	o := Overview{
		Total:            len(users),
		ByRole:           map[Role]int{RoleAdmin: 0, RoleHR: 0, RoleEmployee: 0},
		WithPendingLeave: make([]string, 0, len(pendingRequesters)),
	}
	for _, u := range users {
		if u.IsActive() {
			o.Active++
		}
		o.ByRole[u.Role]++
	}
	for id, pending := range pendingRequesters {
		if pending {
			o.WithPendingLeave = append(o.WithPendingLeave, id)
		}
	}
	sort.Strings(o.WithPendingLeave)
	return o
}

type UserListResponse struct {
	Users    []User   `json:"users"`
	Total    int      `json:"total"`
	Overview Overview `json:"overview"`
}
