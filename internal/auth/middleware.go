package auth

import (
	"net/http"
	"strings"

	"teampulse-backend/internal/config"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// Context keys set by the middleware for downstream handlers
const (
	ContextUserKey   = "user"
	ContextUserIDKey = "user_id"
)

// Resolver maps a session token to its user
type Resolver interface {
	Resolve(token string) (*models.User, error)
}

// RequireAuth gates a route group behind a valid session. The token is
// read from the session cookie, with an Authorization bearer fallback for
// non-browser clients. Failures return 401 with a login redirect hint.
func RequireAuth(resolver Resolver, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cfg.SessionCookie)
		if token == "" {
			abortUnauthenticated(c, "authentication required")
			return
		}

		user, err := resolver.Resolve(token)
		if err != nil {
			message := "authentication required"
			if apperrors.IsAuthentication(err) {
				message = err.Error()
			}
			abortUnauthenticated(c, message)
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID.String())
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by RequireAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func extractToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

func abortUnauthenticated(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error":    message,
		"redirect": "/login",
	})
}
