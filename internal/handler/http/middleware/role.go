package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hris-console/internal/domain/user"
	"github.com/cmlabs-hris/hris-console/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console/internal/pkg/jwt"
)

// requireRole lets the request through when allow accepts the session's role.
func requireRole(allow func(user.Role) bool, deny func(w http.ResponseWriter, role user.Role)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := jwt.FromContext(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}
			if !allow(session.Role) {
				deny(w, session.Role)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireManager requires ADMIN or RRHH
func RequireManager(next http.Handler) http.Handler {
	return requireRole(user.Role.IsManager, func(w http.ResponseWriter, _ user.Role) {
		response.HandleError(w, user.ErrManagerAccessRequired)
	})(next)
}

// RequirePermission checks the role against RolePermissions.
func RequirePermission(permission user.Permission) func(http.Handler) http.Handler {
	return requireRole(
		func(role user.Role) bool { return user.HasPermission(role, permission) },
		func(w http.ResponseWriter, role user.Role) {
			response.Forbidden(w, fmt.Sprintf("%s: %s requires '%s'", user.ErrInsufficientPermissions, role, permission))
		},
	)
}
