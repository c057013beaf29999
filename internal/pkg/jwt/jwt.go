package jwt

import (
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"

	"github.com/deeraj1899/EMS/internal/domain/employee"
)

type Service interface {
	GenerateToken(employeeID, organizationID string, role employee.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	TokenCookie(token string, expiresAt int64) *http.Cookie
	ClearedCookie() *http.Cookie
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey      string
	expirationTime string
	tokenAuth      *jwtauth.JWTAuth
	revokedTokens  map[string]int64
	mu             sync.RWMutex
}

func NewJWTService(secretKey string, expirationTime string) Service {
	return &JWTService{
		secretKey:      secretKey,
		expirationTime: expirationTime,
		tokenAuth:      jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:  make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(employeeID, organizationID string, role employee.Role) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.expirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"employee_id":     employeeID,
		"organization_id": organizationID,
		"role":            string(role),
		"exp":             expiresAt,
	})
	return tokenString, expiresAt, err
}

// TokenCookie mirrors the token in an HttpOnly cookie so browser
// clients do not have to manage the Authorization header themselves.
func (j *JWTService) TokenCookie(token string, expiresAt int64) *http.Cookie {
	return &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Expires:  time.Unix(expiresAt, 0),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearedCookie expires the token cookie immediately on logout.
func (j *JWTService) ClearedCookie() *http.Cookie {
	return &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

// RevokeToken blocks a token until its own expiry. Entries whose tokens
// have since expired are evicted on every revocation, so the map stays
// bounded by the number of logouts within one token lifetime.
func (j *JWTService) RevokeToken(token string) {
	expiresAt := time.Now().Add(24 * time.Hour)
	if expDuration, err := time.ParseDuration(j.expirationTime); err == nil {
		expiresAt = time.Now().Add(expDuration)
	}
	if parsed, err := j.tokenAuth.Decode(token); err == nil && !parsed.Expiration().IsZero() {
		expiresAt = parsed.Expiration()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	now := time.Now().Unix()
	for t, exp := range j.revokedTokens {
		if exp < now {
			delete(j.revokedTokens, t)
		}
	}
	j.revokedTokens[token] = expiresAt.Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	exp, revoked := j.revokedTokens[token]
	return revoked && exp >= time.Now().Unix()
}
