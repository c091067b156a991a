package transaction

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
	transactions := r.Group("/transactions")
	transactions.Use(middleware.AuthMiddleware())
	transactions.Use(middleware.ContextLogger(logger))
	{
		transactions.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermTransactionRead),
			handler.GetAll,
		)

		transactions.GET("/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RequirePermission(tenant.PermTransactionRead),
			handler.GetByEmployee,
		)

		transactions.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequirePermission(tenant.PermTransactionWrite),
			handler.Record,
		)
	}
}
