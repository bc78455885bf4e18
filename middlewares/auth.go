package middlewares

import (
	"net/http"
	"strings"

	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/entity"
	"github.com/itu-itis23-gokcea23/fooddeliveryappdatabase/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token and, when requiredRoles is
// non-empty, gates on "held role set intersects required role set".
func AuthMiddleware(secret string, requiredRoles ...entity.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		held := entity.NewRoleSet(claims.Roles...)
		c.Set("userId", claims.UserID)
		c.Set("roles", held)

		if !held.HasAny(requiredRoles...) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
			c.Abort()
			return
		}

		c.Next()
	}
}
