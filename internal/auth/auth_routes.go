package auth

import (
	"go-assettrack/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Semua endpoint auth terbuka; pembatasan di sini pakai IP, bukan user.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	authGroup := r.Group("/users")
	authGroup.Use(middleware.ContextLogger(logger))
	{
		authGroup.POST("/register",
			middleware.RateLimitByIP(0.2, 3),
			handler.Register,
		)

		authGroup.POST("/login",
			middleware.RateLimitByIP(0.5, 5),
			handler.Login,
		)

		authGroup.POST("/verify-otp",
			middleware.RateLimitByIP(0.5, 5),
			handler.VerifyOTP,
		)

		authGroup.POST("/forgot-password",
			middleware.RateLimitByIP(0.2, 2),
			handler.ForgotPassword,
		)

		authGroup.POST("/reset-password",
			middleware.RateLimitByIP(0.2, 2),
			handler.ResetPassword,
		)
	}
}
