package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/josephsae/healthhub-app/config"
	deliveryHttp "github.com/josephsae/healthhub-app/internal/delivery/http"
	"github.com/josephsae/healthhub-app/internal/delivery/http/handler"
	"github.com/josephsae/healthhub-app/internal/delivery/http/middleware"
	"github.com/josephsae/healthhub-app/internal/infrastructure/cache"
	"github.com/josephsae/healthhub-app/internal/infrastructure/database"
	"github.com/josephsae/healthhub-app/internal/repository"
	"github.com/josephsae/healthhub-app/internal/service"
	"github.com/josephsae/healthhub-app/internal/usecase"
	"github.com/josephsae/healthhub-app/pkg/jwt"
	"github.com/josephsae/healthhub-app/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	Log          *logrus.Logger
	DB           *gorm.DB
	RedisClient  *redis.Client
	CatalogCache *service.CatalogCache
	Server       *http.Server
}

// Connect loads configuration and opens the database and the optional Redis
// client. It is enough for the migrate and seed commands.
func Connect() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := setupLogger(cfg.App.LogLevel)
	log.Info("Configuration loaded successfully")

	app := &App{Config: cfg, Log: log}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	app.CatalogCache = service.NewCatalogCache(redisClient, cfg.Cache.TTL, log)

	return app, nil
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app, err := Connect()
	if err != nil {
		return nil, err
	}

	if app.Config.DB.AutoMigrate {
		if err := app.Migrate(); err != nil {
			app.Close()
			return nil, err
		}
	}

	server, err := app.initializeServer()
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// Migrate applies pending schema migrations.
func (app *App) Migrate() error {
	migrator, err := database.NewMigrator(app.Config.DB, app.Log)
	if err != nil {
		return err
	}
	defer migrator.Close()

	return migrator.Up()
}

// setupLogger configures the logrus logger
func setupLogger(level string) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return logrus.StandardLogger()
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() (*http.Server, error) {
	cfg, db, log := app.Config, app.DB, app.Log

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	specialistRepo := repository.NewSpecialistRepository()
	medicationRepo := repository.NewMedicationRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	resultRepo := repository.NewExaminationResultRepository()
	medicationRequestRepo := repository.NewMedicationRequestRepository()
	authorizationRepo := repository.NewAuthorizationRepository()
	recordRepo := repository.NewMedicalRecordRepository()

	// Initialize usecases
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, jwtService)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, specialistRepo, medicationRepo, app.CatalogCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, resultRepo, userRepo, specialistRepo)
	authorizationUsecase := usecase.NewAuthorizationUsecase(db, log, authorizationRepo, medicationRequestRepo, userRepo)
	resultUsecase := usecase.NewExaminationResultUsecase(db, log, resultRepo)
	medicationRequestUsecase := usecase.NewMedicationRequestUsecase(db, log, medicationRequestRepo, medicationRepo, userRepo)
	recordUsecase := usecase.NewMedicalRecordUsecase(
		db, log, recordRepo, appointmentRepo, resultRepo, medicationRequestRepo,
		service.NewMedicalRecordRenderer(),
	)

	handlers := deliveryHttp.Handlers{
		User:              handler.NewUserHandler(userUsecase, customValidator, log),
		Catalog:           handler.NewCatalogHandler(catalogUsecase, log),
		Appointment:       handler.NewAppointmentHandler(appointmentUsecase, customValidator, log),
		Authorization:     handler.NewAuthorizationHandler(authorizationUsecase, customValidator, log),
		ExaminationResult: handler.NewExaminationResultHandler(resultUsecase, log),
		MedicalRecord:     handler.NewMedicalRecordHandler(recordUsecase, log),
		MedicationRequest: handler.NewMedicationRequestHandler(medicationRequestUsecase, customValidator, log),
	}

	loginRateLimit := middleware.NewRateLimitMiddleware(
		app.RedisClient, "login", cfg.RateLimit.LoginMax, cfg.RateLimit.LoginWindow, log,
	)

	middlewares := deliveryHttp.Middlewares{
		Auth:           middleware.NewAuthMiddleware(jwtService),
		CORS:           middleware.NewCORSMiddleware(cfg.App.CORSOrigins),
		Logging:        middleware.NewLoggingMiddleware(log),
		Recovery:       middleware.NewRecoveryMiddleware(log),
		LoginRateLimit: loginRateLimit,
	}

	router := deliveryHttp.NewRouter(handlers, middlewares, sqlDB)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

// Run starts the HTTP server and blocks until it stops or a shutdown signal
// arrives.
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
