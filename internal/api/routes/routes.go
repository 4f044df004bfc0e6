package routes

import (
	"modelforge-backend/internal/api/handlers"
	"modelforge-backend/internal/api/middleware"
	"modelforge-backend/internal/auth"
	"modelforge-backend/internal/config"
	"modelforge-backend/internal/repository"
	"modelforge-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	gameSystemRepo := repository.NewGameSystemRepository(db)
	armyRepo := repository.NewArmyRepository(db)
	modelRepo := repository.NewModelRepository(db)
	paintRepo := repository.NewPaintRepository(db)
	sessionRepo := repository.NewPaintingSessionRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	adminRepo := repository.NewAdminRepository(db)

	// Initialize services
	gameSystemService := service.NewGameSystemService(gameSystemRepo, validator)
	armyService := service.NewArmyService(armyRepo, gameSystemRepo, validator)
	modelService := service.NewModelService(modelRepo, armyRepo, gameSystemRepo, validator)
	settingsService := service.NewSettingsService(settingRepo, adminRepo)
	paintService := service.NewPaintService(paintRepo, settingsService, validator)
	sessionService := service.NewPaintingSessionService(sessionRepo, modelRepo, gameSystemRepo, validator)
	importerService := service.NewImporterService(modelRepo, armyRepo, gameSystemRepo)
	exporterService := service.NewExporterService(modelRepo, gameSystemRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	gameSystemHandler := handlers.NewGameSystemHandler(gameSystemService)
	armyHandler := handlers.NewArmyHandler(armyService)
	modelHandler := handlers.NewModelHandler(modelService)
	paintHandler := handlers.NewPaintHandler(paintService)
	sessionHandler := handlers.NewPaintingSessionHandler(sessionService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	importExportHandler := handlers.NewImportExportHandler(importerService, exporterService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth is optional: a single shared password exchanged for a bearer
	// token. Without a configured JWT secret the API is open.
	var authService *auth.Service
	if cfg.AuthEnabled() {
		authService = auth.NewService(cfg)
		router.POST("/api/auth/token", authService.TokenHandler)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")

	if authService != nil {
		v1.Use(authService.RequireAuth())
	}

	{
		// Game system routes
		gameSystems := v1.Group("/game-systems")
		{
			gameSystems.GET("", gameSystemHandler.ListGameSystems)
			gameSystems.POST("", gameSystemHandler.CreateGameSystem)
			gameSystems.GET("/:id", gameSystemHandler.GetGameSystem)
			gameSystems.PUT("/:id", gameSystemHandler.UpdateGameSystem)
			gameSystems.DELETE("/:id", gameSystemHandler.DeleteGameSystem)
		}

		// Army routes
		armies := v1.Group("/armies")
		{
			armies.GET("", armyHandler.ListArmies) // Optional game_system_id parameter
			armies.POST("", armyHandler.CreateArmy)
			armies.GET("/:id", armyHandler.GetArmy)
			armies.PUT("/:id", armyHandler.UpdateArmy)
			armies.DELETE("/:id", armyHandler.DeleteArmy)
		}

		// Model routes
		models := v1.Group("/models")
		{
			models.GET("", modelHandler.ListModels)
			models.POST("", modelHandler.CreateModel)
			models.POST("/bulk", modelHandler.BulkAddModels)
			models.PUT("/bulk", modelHandler.BulkUpdateModels)
			models.POST("/bulk-delete", modelHandler.BulkDeleteModels)
			models.GET("/export", importExportHandler.ExportModels)
			models.POST("/import/validate", importExportHandler.ValidateImport)
			models.POST("/import/commit", importExportHandler.CommitImport)
			models.GET("/:id", modelHandler.GetModel)
			models.PUT("/:id", modelHandler.UpdateModel)
			models.DELETE("/:id", modelHandler.DeleteModel)
		}

		// Paint routes
		paints := v1.Group("/paints")
		{
			paints.GET("", paintHandler.ListPaints)
			paints.POST("", paintHandler.CreatePaint)
			paints.GET("/low-stock", paintHandler.GetLowStockPaints)
			paints.GET("/:id", paintHandler.GetPaint)
			paints.PUT("/:id", paintHandler.UpdatePaint)
			paints.DELETE("/:id", paintHandler.DeletePaint)
		}

		// Painting session routes
		sessions := v1.Group("/painting-sessions")
		{
			sessions.GET("", sessionHandler.ListPaintingSessions) // Optional from/to window
			sessions.POST("", sessionHandler.CreatePaintingSession)
			sessions.GET("/:id", sessionHandler.GetPaintingSession)
			sessions.PUT("/:id", sessionHandler.UpdatePaintingSession)
			sessions.DELETE("/:id", sessionHandler.DeletePaintingSession)
		}

		// Settings routes
		settings := v1.Group("/settings")
		{
			settings.GET("/min-stock-threshold", settingsHandler.GetMinStockThreshold)
			settings.PUT("/min-stock-threshold", settingsHandler.SetMinStockThreshold)
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			admin.POST("/clear-all-data", settingsHandler.ClearAllData)
		}
	}

	return router
}
