package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"dompet/internal/cache"
	"dompet/internal/config"
	"dompet/internal/database"
	"dompet/internal/handlers"
	"dompet/internal/logger"
	"dompet/internal/middleware"
	"dompet/internal/services"
	"dompet/internal/validator"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "dompet/internal/docs" // Import swagger docs
)

// @title           Dompet API
// @version         1.0
// @description     Dompet tracks daily food and transport spending against per-day budgets over 28th-to-27th monthly cycles, and keeps a running savings balance.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Optional Redis cache for computed cycle details
	cycleCache := cache.New(appConfig.RedisAddr)

	// Custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	versionService := services.NewConfigVersionService(db)
	settingsService := services.NewSettingsService(db)
	cycleService := services.NewCycleService(db, versionService, appConfig.Location)
	dailyLogService := services.NewDailyLogService(db)
	expenseService := services.NewOtherExpenseService(db)
	balanceService := services.NewBalanceService(db, settingsService, versionService, appConfig.Location)

	// Initialize handlers
	versionHandler := handlers.NewConfigVersionHandler(versionService, cycleCache)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	cycleHandler := handlers.NewCycleHandler(cycleService, cycleCache)
	dailyLogHandler := handlers.NewDailyLogHandler(dailyLogService, cycleCache)
	expenseHandler := handlers.NewOtherExpenseHandler(expenseService, cycleCache)
	balanceHandler := handlers.NewBalanceHandler(balanceService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Configuration versions
	configVersions := v1.Group("/config-versions")
	configVersions.POST("", versionHandler.CreateConfigVersion)
	configVersions.GET("", versionHandler.GetConfigVersions)
	configVersions.PUT("/:id", versionHandler.UpdateConfigVersion)
	configVersions.DELETE("/:id", versionHandler.DeleteConfigVersion)

	// Application settings
	v1.GET("/settings", settingsHandler.GetSettings)
	v1.PUT("/settings", settingsHandler.UpdateSettings)

	// Cycles
	cycles := v1.Group("/cycles")
	cycles.POST("", cycleHandler.CreateCycle)
	cycles.GET("", cycleHandler.GetCycles)
	cycles.GET("/:yearMonth", cycleHandler.GetCycleDetail)
	cycles.DELETE("/:yearMonth", cycleHandler.DeleteCycle)

	// Daily logs
	dailyLogs := v1.Group("/daily-logs")
	dailyLogs.PATCH("/bulk-wfo", dailyLogHandler.BulkSetWFO)
	dailyLogs.PATCH("/:id", dailyLogHandler.UpdateDailyLog)

	// Other expenses
	otherExpenses := v1.Group("/other-expenses")
	otherExpenses.POST("", expenseHandler.CreateOtherExpense)
	otherExpenses.PATCH("/:id", expenseHandler.UpdateOtherExpense)
	otherExpenses.DELETE("/:id", expenseHandler.DeleteOtherExpense)

	// Balance reports
	v1.GET("/savings", balanceHandler.GetSavings)
	v1.GET("/balance/:yearMonth", balanceHandler.GetBalance)

	log.Infof("Starting Dompet backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
