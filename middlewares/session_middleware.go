// middlewares/session_middleware.go
package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"dailydiet/services"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SessionCookie carries the session token issued at registration.
const SessionCookie = "sessionId"

const identityKey = "dailydiet.identity"

// SessionResolver is satisfied by *services.SessionService.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (services.Identity, error)
}

// SessionMiddleware resolves the caller's session token and binds the identity to the
// request. Requests without a resolvable token never reach the handler.
func SessionMiddleware(resolver SessionResolver, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := resolver.Resolve(c.Request.Context(), SessionToken(c))
		if errors.Is(err, services.ErrUnauthenticated) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized."})
			return
		}
		if err != nil {
			log.WithFields(logrus.Fields{"path": c.FullPath(), "error": err}).Error("session lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// SessionToken reads the token from the sessionId cookie, falling back to a bearer header.
func SessionToken(c *gin.Context) string {
	if v, err := c.Cookie(SessionCookie); err == nil && v != "" {
		return v
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// IdentityFrom returns the identity bound by SessionMiddleware.
func IdentityFrom(c *gin.Context) (services.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return services.Identity{}, false
	}
	id, ok := v.(services.Identity)
	return id, ok && id.UserID != ""
}
