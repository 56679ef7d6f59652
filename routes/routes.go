package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/skill-swap/api-go/config"
	"github.com/skill-swap/api-go/controllers"
	"github.com/skill-swap/api-go/middleware"
	"github.com/skill-swap/api-go/services"
	"github.com/skill-swap/api-go/utils"
	"gorm.io/gorm"
)

// NewRouter builds the engine with the ambient middleware and every route installed.
func NewRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(), middleware.Metrics())
	SetupRoutes(r, db, cfg)
	return r
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	utils.RegisterValidators()

	var store services.ObjectStore
	if client := config.NewR2Client(cfg.R2); client != nil {
		store = &services.R2Store{Client: client, Bucket: cfg.R2.BucketName}
	}

	// Services
	authService := services.NewAuthService(db, cfg.Auth.JWTSecret)
	userService := services.NewUserService(db)
	swapService := services.NewSwapService(db)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	validationController := controllers.NewValidationController(authService)
	userController := controllers.NewUserController(userService)
	leaderboardController := controllers.NewLeaderboardController(userService)
	uploadController := controllers.NewUploadController(services.NewPhotoService(db, store))
	swapController := controllers.NewSwapController(swapService)
	feedbackController := controllers.NewFeedbackController(services.NewFeedbackService(db))
	messageController := controllers.NewMessageController(services.NewMessageService(db))
	adminController := controllers.NewAdminController(services.NewAdminService(db), swapService)
	reportController := controllers.NewReportController(services.NewReportService(db))

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	limiter := middleware.NewIPRateLimiter(cfg.LoginRatePerMinute)

	// Public routes
	public := r.Group("/api")
	{
		public.GET("/health", healthCheck(db))

		auth := public.Group("/auth")
		auth.Use(middleware.RateLimit(limiter))
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
		}
		public.POST("/admin/login", middleware.RateLimit(limiter), authController.AdminLogin)

		SetupValidationRoutes(public, validationController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))
	{
		SetupUserRoutes(protected, userController, leaderboardController)
		SetupUploadRoutes(protected, uploadController)
		SetupSwapRoutes(protected, swapController)
		SetupFeedbackRoutes(protected, feedbackController)
		SetupMessageRoutes(protected, messageController)
	}

	// Admin routes
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret), middleware.AdminMiddleware(db))
	SetupAdminRoutes(admin, adminController, messageController, reportController)
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "error": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok"})
	}
}
