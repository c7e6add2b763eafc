package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/Dosada05/fixture-planner/brackets"
	"github.com/Dosada05/fixture-planner/config"
	"github.com/Dosada05/fixture-planner/db"
	"github.com/Dosada05/fixture-planner/handlers"
	"github.com/Dosada05/fixture-planner/repositories"
	api "github.com/Dosada05/fixture-planner/routes"
	"github.com/Dosada05/fixture-planner/services"
	"github.com/Dosada05/fixture-planner/storage"
)

// @title Fixture Planner API
// @version 1.0
// @description Tournament fixture generation and match scheduling.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Database
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	migrateCtx, cancelMigrate := context.WithTimeout(context.Background(), 30*time.Second)
	err = db.Migrate(migrateCtx, dbConn)
	cancelMigrate()
	if err != nil {
		logger.Error("failed to apply database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Cloudflare R2 only backs CSV exports; without it /exports answers 503
	var uploader storage.FileUploader
	if cfg.R2Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(context.Background(), storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2BucketName))
	} else {
		logger.Warn("R2 is not configured, fixture exports are disabled")
	}

	// WebSocket hub
	wsHub := brackets.NewHub(logger)
	go wsHub.Run()

	// Repositories
	userRepo := repositories.NewPostgresUserRepository(dbConn)
	tournamentRepo := repositories.NewPostgresTournamentRepository(dbConn)
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	fieldRepo := repositories.NewPostgresFieldRepository(dbConn)
	calendarRepo := repositories.NewPostgresCalendarRepository(dbConn)
	matchRepo := repositories.NewPostgresMatchRepository(dbConn)

	// Services
	tx := services.NewSQLTransactor(dbConn, logger)
	authService := services.NewAuthService(userRepo)
	tournamentService := services.NewTournamentService(
		tx,
		tournamentRepo,
		teamRepo,
		fieldRepo,
		calendarRepo,
		matchRepo,
		uploader,
		logger,
	)
	fixtureService := services.NewFixtureService(
		tx,
		tournamentRepo,
		teamRepo,
		fieldRepo,
		calendarRepo,
		matchRepo,
		wsHub,
		logger,
	)
	exportService := services.NewExportService(fixtureService, tournamentRepo, uploader, wsHub, logger)

	// HTTP handlers
	authHandler := handlers.NewAuthHandler(authService, cfg.JWTSecretKey)
	tournamentHandler := handlers.NewTournamentHandler(tournamentService)
	fixtureHandler := handlers.NewFixtureHandler(fixtureService, exportService)
	webSocketHandler := handlers.NewWebSocketHandler(wsHub, tournamentService, logger)

	// Router
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		authHandler,
		tournamentHandler,
		fixtureHandler,
		webSocketHandler,
		cfg.JWTSecretKey,
		cfg.CORSAllowedOrigins,
	)

	// HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
