package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-salon-scheduling/config"
	deliveryHttp "go-salon-scheduling/internal/delivery/http"
	"go-salon-scheduling/internal/delivery/http/handler"
	"go-salon-scheduling/internal/delivery/http/middleware"
	"go-salon-scheduling/internal/domain/entity"
	domainRepo "go-salon-scheduling/internal/domain/repository"
	"go-salon-scheduling/internal/infrastructure/cache"
	"go-salon-scheduling/internal/infrastructure/database"
	"go-salon-scheduling/internal/repository"
	"go-salon-scheduling/internal/service"
	"go-salon-scheduling/internal/usecase"
	"go-salon-scheduling/pkg/clock"
	"go-salon-scheduling/pkg/validator"

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

	// Initialize the appointment store for the configured driver
	store, err := app.initStore(cfg)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Appointment store initialized (driver: %s)", cfg.Storage.Driver)

	// Initialize all layers
	server := initializeServer(cfg, store)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initStore builds the appointment store named by STORAGE_DRIVER.
func (app *App) initStore(cfg *config.Config) (domainRepo.AppointmentStore, error) {
	switch cfg.Storage.Driver {
	case "file":
		return repository.NewFileAppointmentStore(cfg.Storage.DataDir, cfg.Storage.Namespace), nil
	case "redis":
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		return repository.NewRedisAppointmentStore(redisClient, cfg.Storage.Namespace), nil
	case "postgres":
		db, err := database.NewPostgresConnection(cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.AutoMigrate(&entity.Appointment{}); err != nil {
			return nil, fmt.Errorf("failed to migrate appointments table: %w", err)
		}
		app.DB = db
		return repository.NewGormAppointmentStore(db), nil
	case "memory":
		return repository.NewMemoryAppointmentStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, store domainRepo.AppointmentStore) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Wall clock shared by availability and scheduling
	clk := clock.New()

	// Initialize scheduling components
	catalog := service.NewSlotCatalog(clk, cfg.Scheduling.TimeLabels)
	availability := service.NewAvailabilityService(store, catalog, clk, cfg.Scheduling.ClosedWeekdays, log)
	schedulingUsecase := usecase.NewSchedulingUsecase(store, availability, clk, log)

	// Initialize the professional directory
	directory := repository.NewStaticDirectory(nil)

	// Initialize handlers
	appointmentHandler := handler.NewAppointmentHandler(schedulingUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availability, cfg.Scheduling.HorizonDays)
	professionalHandler := handler.NewProfessionalHandler(directory)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(appointmentHandler, availabilityHandler, professionalHandler, corsMiddleware)
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
