package middleware

import (
	"net/http"

	"tourbook/models"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
)

// RequireRole must run after JWTAuthUserMiddleware.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := GetActor(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Insufficient authorization"})
			return
		}
		if actor.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "Insufficient permissions"})
			return
		}
		c.Next()
	}
}
