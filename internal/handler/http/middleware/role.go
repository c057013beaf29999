package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/deeraj1899/EMS/internal/domain/employee"
	"github.com/deeraj1899/EMS/internal/handler/http/response"
)

// AdminOnly requires the Admin role.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || role != employee.RoleAdmin {
			response.Forbidden(w, "Admin role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager requires the Manager or Admin role.
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok || (role != employee.RoleManager && role != employee.RoleAdmin) {
			response.Forbidden(w, "Manager role required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func roleFromContext(r *http.Request) (employee.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return employee.ParseRole(roleStr)
}
