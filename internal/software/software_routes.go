package software

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
	sw := r.Group("/softwareassets")
	sw.Use(middleware.AuthMiddleware())
	sw.Use(middleware.ContextLogger(logger))
	{
		sw.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermSoftwareRead),
			handler.GetAll,
		)

		sw.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermSoftwareRead),
			handler.GetById,
		)

		sw.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermSoftwareCreate),
			handler.Create,
		)

		sw.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermSoftwareUpdate),
			handler.Update,
		)

		sw.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RequirePermission(tenant.PermSoftwareDelete),
			handler.Delete,
		)
	}
}
