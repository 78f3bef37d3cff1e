package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/cuadrantes/backend/docs"
	"github.com/cuadrantes/backend/internal/auth"
	"github.com/cuadrantes/backend/internal/config"
	"github.com/cuadrantes/backend/internal/handlers"
	"github.com/cuadrantes/backend/internal/logger"
	"github.com/cuadrantes/backend/internal/middleware"
	"github.com/cuadrantes/backend/internal/models"
	"github.com/cuadrantes/backend/internal/repositories"
	"github.com/cuadrantes/backend/internal/seed"
	"github.com/cuadrantes/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Cuadrantes API
// @version 1.0
// @description API for venue staffing across electoral quadrants

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Cuadrantes backend")

	// Connect to database
	db, err := connectDB(cfg.DSN())
	if err != nil {
		logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Run migrations
	if err := runMigrations(db); err != nil {
		logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, logger.Logger)
	venueRepo := repositories.NewVenueRepository(db, logger.Logger)
	personnelRepo := repositories.NewPersonnelRepository(db, logger.Logger)
	seedRepo := repositories.NewSeedRepository(db, logger.Logger)

	// Load the initial dataset on an empty database
	if err := runSeed(cfg.Seed.Path, services.NewSeedService(seedRepo, logger.Logger)); err != nil {
		logger.Logger.Fatal("Failed to seed database", zap.Error(err))
	}

	// Initialize JWT token generator; without a secret no tokens are issued
	var tokenIssuer services.TokenIssuer
	var tokenGenerator *auth.TokenGenerator
	if cfg.Auth.Secret != "" {
		tokenGenerator = auth.NewTokenGenerator(cfg.Auth.Secret, cfg.Auth.AccessTokenExpiry)
		tokenIssuer = tokenGenerator
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenIssuer, logger.Logger)
	venueService := services.NewVenueService(venueRepo, logger.Logger)
	personnelService := services.NewPersonnelService(personnelRepo, logger.Logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, logger.Logger)
	dataHandler := handlers.NewDataHandler(venueService, logger.Logger)
	personnelHandler := handlers.NewPersonnelHandler(personnelService, logger.Logger)
	healthHandler := handlers.NewHealthHandler(db, logger.Logger)

	// Initialize auth middleware
	authMiddleware, adminMiddleware := middleware.Passthrough, middleware.Passthrough
	if cfg.Auth.Required {
		authMiddleware = middleware.AuthMiddleware(tokenGenerator)
		adminMiddleware = middleware.RoleMiddleware(models.RoleAdmin)
	} else {
		logger.Logger.Warn("Access control disabled, every route is open")
	}

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Register routes
	healthHandler.RegisterRoutes(r)
	authHandler.RegisterRoutes(r)
	dataHandler.RegisterRoutes(r, authMiddleware, adminMiddleware)
	personnelHandler.RegisterRoutes(r, authMiddleware)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "cuadrantes_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Get the working directory or use migrations folder relative to the binary
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// seeder applies a dataset to the database
type seeder interface {
	Run(ctx context.Context, ds *seed.Dataset) (*services.SeedResult, error)
}

// runSeed loads the dataset from path, or the embedded one when path is empty, and applies it
func runSeed(path string, svc seeder) error {
	ds, err := seed.Load(path)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	_, err = svc.Run(ctx, ds)
	return err
}
