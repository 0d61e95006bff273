package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ocn-community/volunteer-portal/internal/apperr"
	"github.com/ocn-community/volunteer-portal/internal/logger"
	"github.com/ocn-community/volunteer-portal/internal/response"
)

const sessionKey = "session"

// Middleware parses an Authorization bearer token, when present, and stores
// the session in the request context. Requests without a token pass through
// anonymously, the guards below enforce protection per route.
func Middleware(secret string) gin.HandlerFunc {
	log := logger.Auth()

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		session, err := ParseToken(secret, token)
		if err != nil {
			log.Debug("Rejected bearer token", "error", err)
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// FromContext returns the session attached to the request, if any
func FromContext(c *gin.Context) *Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	session, _ := v.(*Session)
	return session
}

// RequireAuth aborts requests that carry no session
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if FromContext(c) == nil {
			response.FromError(c, apperr.New(apperr.AuthRequired))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts requests whose session is missing or not admin
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := FromContext(c)
		if session == nil {
			response.FromError(c, apperr.New(apperr.AuthRequired))
			c.Abort()
			return
		}
		if !session.IsAdmin() {
			response.FromError(c, apperr.New(apperr.NotAuthorized))
			c.Abort()
			return
		}
		c.Next()
	}
}
