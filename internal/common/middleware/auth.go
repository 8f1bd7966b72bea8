package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/DruxAMB/based-list/internal/common/logger"
	"github.com/DruxAMB/based-list/internal/identity"
)

const identityKey = "identity"

// SessionAuth verifies the identity provider's Bearer session token and
// injects the resulting identity into the request context. Routes without a
// valid token are left anonymous; RequireAuth gates the authenticated surface.
func SessionAuth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Bearer token required"})
			return
		}

		ident, err := identity.FromSessionToken(tokenString, key)
		if err != nil {
			logger.Warn().Err(err).Msg("Session token rejected")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: invalid session token"})
			return
		}

		c.Set(identityKey, ident)
		c.Next()
	}
}

// RequireAuth aborts requests that carry no verified identity.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(identityKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: sign-in required"})
			return
		}

		c.Next()
	}
}

// Identity returns the verified identity for the request, if any.
func Identity(c *gin.Context) (identity.CurrentIdentity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return identity.CurrentIdentity{}, false
	}
	ident, ok := v.(identity.CurrentIdentity)
	return ident, ok
}
