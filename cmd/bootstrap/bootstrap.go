package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-food-service/config"
	deliveryHttp "hospital-food-service/internal/delivery/http"
	"hospital-food-service/internal/delivery/http/handler"
	"hospital-food-service/internal/delivery/http/middleware"
	"hospital-food-service/internal/infrastructure/cache"
	"hospital-food-service/internal/infrastructure/database"
	"hospital-food-service/internal/repository"
	"hospital-food-service/internal/service"
	"hospital-food-service/internal/usecase"
	"hospital-food-service/pkg/jwt"
	"hospital-food-service/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations
	if err := database.RunMigrations(cfg.DB, "migrations"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	patientRepo := repository.NewPatientRepository()
	foodChartRepo := repository.NewFoodChartRepository()
	pantryStaffRepo := repository.NewPantryStaffRepository()
	deliveryRepo := repository.NewDeliveryRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	sessions := service.NewRedisSessionStore(redisClient, log)
	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, jwtService, sessions, auditService)
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, auditService)
	foodChartUsecase := usecase.NewFoodChartUsecase(db, log, foodChartRepo, auditService)
	pantryUsecase := usecase.NewPantryUsecase(db, log, pantryStaffRepo, deliveryRepo, auditService)
	deliveryUsecase := usecase.NewDeliveryUsecase(db, log, deliveryRepo, auditService)
	taskUsecase := usecase.NewTaskUsecase(db, log, pantryStaffRepo, deliveryRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	secureCookies := cfg.App.Env == "production"
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, cfg.JWT.TokenExpiry, secureCookies)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	foodChartHandler := handler.NewFoodChartHandler(foodChartUsecase, customValidator)
	pantryHandler := handler.NewPantryHandler(pantryUsecase, customValidator)
	deliveryHandler := handler.NewDeliveryHandler(deliveryUsecase, customValidator)
	taskHandler := handler.NewTaskHandler(taskUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.PublicBaseURL)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		patientHandler,
		foodChartHandler,
		pantryHandler,
		deliveryHandler,
		taskHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
