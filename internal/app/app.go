package app

import (
	"fmt"
	"time"

	"healthatlas_backend/database"
	"healthatlas_backend/internal/auth"
	"healthatlas_backend/internal/config"
	"healthatlas_backend/internal/handlers"
	"healthatlas_backend/internal/logger"
	"healthatlas_backend/internal/middleware"
	"healthatlas_backend/internal/repositories"
	"healthatlas_backend/internal/routes"
	"healthatlas_backend/internal/services"
	"healthatlas_backend/internal/storage"
	"healthatlas_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	// TranslateError maps driver duplicate-key errors to
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter assembles services, handlers, and middleware into a gin
// engine. Tests call it directly against their own database.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	storageInstance, err := storage.NewLocalStorage(storage.Config{
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.Storage.BaseURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	serviceContainer := initializeServices(tokens, storageInstance)
	appHandlers := initializeHandlers(serviceContainer, tokens)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(tokens *auth.TokenManager, storageInstance storage.Storage) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	providerRepo := repositories.NewProviderRepository()
	directoryRepo := repositories.NewDirectoryRepository()

	return &services.ServiceContainer{
		AuthService:      services.NewAuthService(userRepo, tokens),
		ProviderService:  services.NewProviderService(providerRepo, storageInstance),
		DirectoryService: services.NewDirectoryService(directoryRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer, tokens *auth.TokenManager) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, container.AuthService, tokens),
		ProviderHandler:  handlers.NewProviderHandler(baseHandler, container.ProviderService),
		DirectoryHandler: handlers.NewDirectoryHandler(baseHandler, container.DirectoryService),
		HealthHandler:    handlers.NewHealthHandler(),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	router.Use(middleware.DBMiddleware(db))
	return router
}
