package session

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextUserID is the gin context key under which the resolved user ID is
// stored for downstream handlers.
const ContextUserID = "userID"

// Resolver maps a session token to the owning user's ID.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider (usecase).
type Resolver interface {
	// Resolve returns the user ID for a valid session token, or an error for
	// unknown, expired or revoked tokens.
	Resolve(ctx context.Context, token string) (uint, error)
}

// AuthRequired returns a Gin middleware that restricts access to requests
// carrying a valid session cookie. On success the resolved user ID is
// injected into the context so store operations can scope by owner; on
// failure the wrapped handler is never invoked.
func AuthRequired(sessions Resolver, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			// Unknown, expired and revoked tokens are indistinguishable here.
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "login required"})
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

// UserID extracts the authenticated user's ID set by AuthRequired.
// The second return is false when the middleware did not run.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
