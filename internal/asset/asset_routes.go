package asset

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
	assets := r.Group("/assets")
	assets.Use(middleware.AuthMiddleware())
	assets.Use(middleware.ContextLogger(logger))
	{
		assets.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermAssetRead),
			handler.GetAll,
		)

		assets.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RequirePermission(tenant.PermAssetRead),
			handler.GetOptions,
		)

		assets.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermAssetRead),
			handler.GetById,
		)

		assets.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermAssetCreate),
			handler.Create,
		)

		assets.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermAssetUpdate),
			handler.Update,
		)

		assets.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RequirePermission(tenant.PermAssetDelete),
			handler.Delete,
		)
	}
}
