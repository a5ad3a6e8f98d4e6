package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contact-api/utils"
)

const userIDKey = "user_id"

// JWTAuthMiddleware validates the bearer token and stores the caller's user
// id in the context. Tokens issued before the user's revocation cut-off
// (set by logout) are rejected.
func JWTAuthMiddleware(revoker TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.Error(c, "Authorization token required", http.StatusUnauthorized, nil)
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenStr)
		if err != nil {
			utils.Error(c, "Invalid token", http.StatusUnauthorized, nil)
			c.Abort()
			return
		}

		revokedAt, err := revoker.RevokedAt(c.Request.Context(), claims.UserID)
		if err != nil {
			utils.Error(c, "An error has occurred", http.StatusInternalServerError, nil)
			c.Abort()
			return
		}
		if !revokedAt.IsZero() && (claims.IssuedAt == nil || !claims.IssuedAt.Time.After(revokedAt)) {
			utils.Error(c, "Invalid token", http.StatusUnauthorized, nil)
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id set by the middleware.
func CurrentUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get(userIDKey)
	if !exists {
		return 0, false
	}
	id, ok := raw.(uint)
	return id, ok
}
