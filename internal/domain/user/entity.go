package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"       // Full access
	RoleHR       Role = "RRHH"        // Human resources, same console access as admin
	RoleEmployee Role = "FUNCIONARIO" // Regular employee
)

// RoleValues lists every role in display order.
var RoleValues = []Role{RoleAdmin, RoleHR, RoleEmployee}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHR, RoleEmployee:
		return true
	}
	return false
}

// IsManager reports whether the role may administer users and resolve leave.
func (r Role) IsManager() bool {
	return r == RoleAdmin || r == RoleHR
}

type Status string

const (
	StatusActive   Status = "ACTIVO"
	StatusInactive Status = "INACTIVO"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type User struct {
	ID        string     `json:"id_usuario"`
	Name      string     `json:"nombre"`
	Surname   string     `json:"apellido"`
	Email     string     `json:"email"`
	Role      Role       `json:"id_rol"`
	Status    Status     `json:"estado"`
	CreatedAt *time.Time `json:"creado_en,omitempty"`
	UpdatedAt *time.Time `json:"actualizado_en,omitempty"`
}

// FullName is "name surname", trimmed.
func (u *User) FullName() string {
	switch {
	case u.Name == "":
		return u.Surname
	case u.Surname == "":
		return u.Name
	}
	return u.Name + " " + u.Surname
}

// IsManager checks if user is admin or HR
func (u *User) IsManager() bool {
	return u.Role.IsManager()
}

// IsActive checks if user can still sign in
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
