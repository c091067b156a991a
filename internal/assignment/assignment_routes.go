package assignment

import (
	"go-assettrack/internal/middleware"
	"go-assettrack/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	physical := r.Group("/employeephysicalasset")
	physical.Use(middleware.AuthMiddleware())
	physical.Use(middleware.ContextLogger(logger))
	{
		physical.GET("/all",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermAssignmentRead),
			handler.GetAllPhysical,
		)

		physical.GET("/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermAssignmentRead),
			handler.GetPhysicalByEmployee,
		)

		physical.POST("/assign-multiple",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermAssignmentCreate),
			middleware.Idempotency(rdb),
			handler.AssignPhysical,
		)

		physical.POST("/transfer",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermAssignmentTransfer),
			handler.Transfer,
		)

		physical.DELETE("/:employeeId/:assetId",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermAssignmentDelete),
			handler.UnassignPhysical,
		)
	}

	software := r.Group("/employeesoftwareasset")
	software.Use(middleware.AuthMiddleware())
	software.Use(middleware.ContextLogger(logger))
	{
		software.GET("/all",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermAssignmentRead),
			handler.GetAllSoftware,
		)

		software.GET("/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermAssignmentRead),
			handler.GetSoftwareByEmployee,
		)

		software.POST("/assign-multiple",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermAssignmentCreate),
			handler.AssignSoftware,
		)

		software.DELETE("/:employeeId/:softwareId",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermAssignmentDelete),
			handler.UnassignSoftware,
		)
	}
}
