package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/deeraj1899/EMS/internal/domain/auth"
	"github.com/deeraj1899/EMS/internal/handler/http/middleware"
	"github.com/deeraj1899/EMS/internal/handler/http/response"
	"github.com/deeraj1899/EMS/internal/pkg/jwt"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	AdminLogin(w http.ResponseWriter, r *http.Request)
	ChangePassword(w http.ResponseWriter, r *http.Request)
	ForgotPassword(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.Service
	jwtService  jwt.Service
}

func NewAuthHandler(authService auth.Service, jwtService jwt.Service) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
		jwtService:  jwtService,
	}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// Mirror the token in a cookie for browser clients. Expiry is read
	// back off the token itself at validation, so a rough cookie expiry
	// is fine.
	http.SetCookie(w, h.jwtService.TokenCookie(resp.Token, 0))
	response.SuccessWithMessage(w, "Login successful", resp)
}

// AdminLogin implements AuthHandler.
func (h *AuthHandlerImpl) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req auth.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AdminLogin decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.AdminLogin(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", nil)
}

// ChangePassword implements AuthHandler.
func (h *AuthHandlerImpl) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ChangePassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = middleware.EmployeeID(r)

	if err := h.authService.ChangePassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Password updated successfully", nil)
}

// ForgotPassword implements AuthHandler.
func (h *AuthHandlerImpl) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req auth.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ForgotPassword decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.authService.ForgotPassword(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "A new password has been sent to your email", nil)
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	// Revoke the bearer token so it cannot be replayed before expiry.
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") {
		h.jwtService.RevokeToken(strings.TrimPrefix(header, "Bearer "))
	} else if cookie, err := r.Cookie("token"); err == nil {
		h.jwtService.RevokeToken(cookie.Value)
	}

	http.SetCookie(w, h.jwtService.ClearedCookie())
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
