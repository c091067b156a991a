package app

import (
	"database/sql"
	"net/http"

	"go-assettrack/internal/asset"
	"go-assettrack/internal/assetrequest"
	"go-assettrack/internal/assignment"
	"go-assettrack/internal/auth"
	"go-assettrack/internal/company"
	"go-assettrack/internal/employee"
	"go-assettrack/internal/messaging/kafka"
	"go-assettrack/internal/middleware"
	"go-assettrack/internal/role"
	"go-assettrack/internal/shared/counter"
	"go-assettrack/internal/shared/mailer"
	"go-assettrack/internal/software"
	"go-assettrack/internal/transaction"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	// --- Repositories ---
	assetRepo := asset.NewRepository(gormDB)
	softwareRepo := software.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	assignmentRepo := assignment.NewRepository(db)
	assetRequestRepo := assetrequest.NewRepository(gormDB)
	companyRepo := company.NewRepository(gormDB)
	roleRepo := role.NewRepository(gormDB)
	userRepo := auth.NewUserRepository(gormDB)
	otpRepo := auth.NewOTPRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	transactionRepo := transaction.NewRepository(gormDB)

	mail := mailer.NewFromEnv(logger)

	// --- Services ---
	assetService := asset.NewService(assetRepo, counterRepo, rdb, logger)
	softwareService := software.NewService(softwareRepo, logger)
	// assignment.Repository memenuhi employee.AssignmentChecker
	employeeService := employee.NewService(employeeRepo, assignmentRepo, logger)
	assignmentService := assignment.NewService(db, assignmentRepo, assetRepo, softwareRepo, employeeRepo, outboxRepo, logger)
	assetRequestService := assetrequest.NewService(assetRequestRepo, employeeRepo, assetRepo, outboxRepo, logger)
	companyService := company.NewService(companyRepo, logger)
	roleService := role.NewService(roleRepo, logger)
	authService := auth.NewService(userRepo, otpRepo, companyRepo, employeeRepo, mail, logger)
	transactionService := transaction.NewService(transactionRepo, logger)

	// --- Handlers ---
	assetHandler := asset.NewHandler(assetService, logger)
	softwareHandler := software.NewHandler(softwareService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	assignmentHandler := assignment.NewHandler(assignmentService, logger)
	assetRequestHandler := assetrequest.NewHandler(assetRequestService, logger)
	companyHandler := company.NewHandler(companyService, logger)
	roleHandler := role.NewHandler(roleService, logger)
	authHandler := auth.NewHandler(authService, logger)
	transactionHandler := transaction.NewHandler(transactionService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		company.RegisterRoutes(api, companyHandler, logger)
		role.RegisterRoutes(api, roleHandler, logger)
		asset.RegisterRoutes(api, assetHandler, logger)
		software.RegisterRoutes(api, softwareHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, logger)
		assignment.RegisterRoutes(api, assignmentHandler, rdb, logger)
		assetrequest.RegisterRoutes(api, assetRequestHandler, logger)
		transaction.RegisterRoutes(api, transactionHandler, logger)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}
