package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/deeraj1899/EMS/internal/handler/http/response"
	"github.com/deeraj1899/EMS/internal/pkg/jwt"
)

// AuthRequired verifies a decoded token is present, carries the employee
// identity claims, and has not been revoked by a logout.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Missing token")
				return
			}
			if _, ok := claims["employee_id"].(string); !ok {
				response.Unauthorized(w, "Invalid token")
				return
			}
			if raw := rawToken(r); raw != "" && jwtService.IsTokenRevoked(raw) {
				response.Unauthorized(w, "Token has been revoked")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// rawToken finds the encoded token string the same way the verifier
// does, header first, then the mirrored cookie.
func rawToken(r *http.Request) string {
	if t := jwtauth.TokenFromHeader(r); t != "" {
		return t
	}
	if cookie, err := r.Cookie("token"); err == nil {
		return cookie.Value
	}
	return ""
}

// EmployeeID extracts the caller's employee id from the verified token.
func EmployeeID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["employee_id"].(string)
	return id
}

// OrganizationID extracts the caller's organization id from the verified
// token.
func OrganizationID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	id, _ := claims["organization_id"].(string)
	return id
}
