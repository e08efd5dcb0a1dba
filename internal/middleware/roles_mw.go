package middleware

import (
	"net/http"

	"food_order/internal/model"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware admits only tokens carrying the admin role.
// JWTAuthMiddleware must run first; without its claims every request is refused.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role := c.GetString(AuthRoleKey); role != model.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next()
	}
}
