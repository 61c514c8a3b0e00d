package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carelog/health-info-app/internal/api"
	"carelog/health-info-app/internal/config"
	"carelog/health-info-app/internal/logger"
	"carelog/health-info-app/internal/repository/mongo"
	"carelog/health-info-app/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	// --- Logger ---
	appLogger, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	defer appLogger.Sync()
	appLogger.Info("starting health information service",
		zap.String("address", cfg.Server.Address),
		zap.String("mode", cfg.Server.Mode),
	)

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		appLogger.Fatal("could not connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			appLogger.Error("failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	appLogger.Info("database connection established", zap.String("database", cfg.Database.Name))

	// --- Ensure Indexes ---
	// The unique indexes carry the integrity rules (program name,
	// (client, program) pair), so a failure here is fatal rather than
	// a warning.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureIndexes(ctx, appDB); err != nil {
			appLogger.Fatal("failed to create database indexes", zap.Error(err))
		}
		appLogger.Info("database indexes ensured")
	}()

	// --- Initialize Repositories ---
	clientRepo := mongo.NewMongoClientRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	enrollmentRepo := mongo.NewMongoEnrollmentRepository(appDB)

	// --- Initialize Services ---
	clientService := service.NewClientService(clientRepo)
	programService := service.NewProgramService(programRepo)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, clientRepo, programRepo)

	// --- Initialize Gin Engine ---
	if cfg.Server.Mode == "release" || cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		api.RequestIDMiddleware(),
		api.RequestLoggerMiddleware(appLogger),
		api.RecoveryMiddleware(appLogger, cfg.Server.Mode),
		cors.New(cors.Config{
			AllowOrigins: cfg.CORS.AllowedOrigins,
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", api.RequestIDHeader},
			MaxAge:       12 * time.Hour,
		}),
	)

	// --- Setup Routes ---
	api.SetupRoutes(router, clientService, programService, enrollmentService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		appLogger.Info("server listening", zap.String("address", cfg.Server.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("listen and serve failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		appLogger.Fatal("server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("server exiting")
}
