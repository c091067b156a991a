package role

import (
	"go-assettrack/internal/middleware"
	"go-assettrack/internal/tenant"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	roles := r.Group("/roles")
	roles.Use(middleware.AuthMiddleware())
	roles.Use(middleware.ContextLogger(logger))
	{
		roles.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermRoleRead),
			handler.GetAll,
		)

		roles.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermRoleRead),
			handler.GetById,
		)

		roles.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermRoleManage),
			handler.Create,
		)

		roles.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermRoleManage),
			handler.Delete,
		)
	}
}
