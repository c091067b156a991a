package assetrequest

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
	requests := r.Group("/assetrequest")
	requests.Use(middleware.AuthMiddleware())
	requests.Use(middleware.ContextLogger(logger))
	{
		requests.POST("/request",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermRequestCreate),
			handler.Create,
		)

		requests.GET("/pending",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermRequestRead),
			handler.GetPending,
		)

		requests.GET("/history",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermRequestRead),
			handler.GetHistory,
		)

		// Setiap pemegang token boleh melihat request miliknya sendiri.
		requests.GET("/my",
			middleware.RateLimitByUser(3, 10),
			handler.GetMine,
		)

		requests.POST("/approve/:requestId/:assetId",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermRequestResolve),
			handler.Approve,
		)

		requests.POST("/reject/:requestId/:assetId",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermRequestResolve),
			handler.Reject,
		)
	}
}
