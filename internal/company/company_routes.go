package company

import (
	"go-assettrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	companies := r.Group("/companies")
	companies.Use(middleware.ContextLogger(logger))
	{
		companies.POST("",
			middleware.RateLimitByIP(0.2, 2),
			handler.Create,
		)

		companies.GET("",
			middleware.RateLimitByIP(3, 10),
			handler.GetAll,
		)

		companies.GET("/:id",
			middleware.RateLimitByIP(3, 10),
			handler.GetById,
		)
	}
}
