// Package auth reads the session the external auth provider issued. The
// portal never creates or refreshes tokens, it only parses the bearer token
// and the role claim.
package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ocn-community/volunteer-portal/internal/apperr"
)

// Role is the session's role claim
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Session is the portal's read-only view of an authenticated caller
type Session struct {
	Token  string
	Role   Role
	UserID string
	Name   string
}

// IsAdmin reports whether the session carries the admin role
func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// claims is the token payload the auth provider issues
type claims struct {
	Role string `json:"role"`
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// ParseToken validates a bearer token and extracts the session. An expired
// token reports TokenExpired, anything else malformed reports AuthRequired.
func ParseToken(secret, token string) (*Session, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperr.Wrap(apperr.TokenExpired, apperr.TokenExpired.DefaultMessage(), err)
		}
		return nil, apperr.Wrap(apperr.AuthRequired, apperr.AuthRequired.DefaultMessage(), err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return nil, apperr.New(apperr.AuthRequired)
	}

	role := Role(c.Role)
	if role != RoleAdmin {
		role = RoleUser
	}

	return &Session{
		Token:  token,
		Role:   role,
		UserID: c.Subject,
		Name:   c.Name,
	}, nil
}
