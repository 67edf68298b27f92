package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// OptionalAuthMiddleware pose user_id si un jeton valide est présent,
// sinon laisse passer anonymement (lecture du fil sans compte).
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if userID, err := parseUserID(tokenStr, jwtSecret); err == nil {
			c.Set("user_id", userID)
		}

		c.Next()
	}
}
