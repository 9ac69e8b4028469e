// internal/interfaces/http/middleware/auth.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/domain/session"
)

// OptionalAuth resolves the session when a bearer token is present and
// continues anonymously otherwise. The cart never requires identity.
func OptionalAuth(sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		sess, err := sessions.Verify(c.Request.Context(), token)
		if err != nil {
			// Invalid token, continue without authentication
			c.Next()
			return
		}

		c.Set("session", sess)
		c.Set("token", token)

		c.Next()
	}
}

// RequireAuth rejects requests without a valid session
func RequireAuth(sessions *session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		sess, err := sessions.Verify(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired session",
			})
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Set("token", token)

		c.Next()
	}
}

// RequireRole ensures the session holds one of the given roles. Must run
// after RequireAuth.
func RequireRole(roles ...session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSessionFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
			})
			c.Abort()
			return
		}

		for _, role := range roles {
			if sess.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
		c.Abort()
	}
}

// GetSessionFromContext extracts the session from gin context
func GetSessionFromContext(c *gin.Context) (*session.Session, bool) {
	value, exists := c.Get("session")
	if !exists {
		return nil, false
	}
	sess, ok := value.(*session.Session)
	return sess, ok
}

// GetTokenFromContext extracts the bearer token from gin context
func GetTokenFromContext(c *gin.Context) string {
	return c.GetString("token")
}

// extractToken pulls the bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return parts[1]
}
