package rest

import (
	"log/slog"
	"net/http"
	"time"

	"notification-hub/auth"
	"notification-hub/domain"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// RequireIdentity rejects requests without a valid bearer token and stores
// the caller's identity on the gin context.
func RequireIdentity(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := tokens.Authenticate(c.Request)
		if err != nil || identity == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		c.Set(identityKey, *identity)
		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), *identity))
		c.Next()
	}
}

// RequireRole must run after RequireIdentity.
func RequireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !mustIdentity(c).HasRole(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "requires role " + string(role.Normalize())})
			return
		}
		c.Next()
	}
}

func mustIdentity(c *gin.Context) auth.Identity {
	return c.MustGet(identityKey).(auth.Identity)
}

// requestLogger replaces gin's text logger with one structured line per request.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("HTTP request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
