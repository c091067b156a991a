package middleware

import (
	"go-assettrack/internal/shared/apperror"
	"go-assettrack/internal/shared/response"
	"go-assettrack/internal/tenant"

	"github.com/gin-gonic/gin"
)

// RequirePermission gates a route on the static permission table. It assumes
// AuthMiddleware already ran; a missing principal is treated as unauthenticated.
func RequirePermission(perm tenant.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := tenant.FromContext(c.Request.Context())
		if err != nil {
			e := apperror.ErrUnauthorized
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		if err := tenant.Authorize(p.Role, perm); err != nil {
			e := apperror.ErrForbidden
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
