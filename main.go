package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/fsa-drive/admin-service/internal/config"
	"github.com/fsa-drive/admin-service/internal/directory"
	"github.com/fsa-drive/admin-service/internal/handlers"
	"github.com/fsa-drive/admin-service/internal/repositories/casdoor"
	"github.com/fsa-drive/admin-service/internal/repositories/postgres"
	"github.com/fsa-drive/admin-service/internal/services"
	"github.com/fsa-drive/admin-service/internal/utils"
	"github.com/fsa-drive/admin-service/internal/validator"
	"github.com/fsa-drive/admin-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	slogLogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	logger := utils.NewSlogLogger(slogLogger)

	// Initialize database
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Initialize Redis (if configured)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			log.Printf("Warning: Failed to initialize Redis: %v", err)
		}
	}

	// Snapshot bus: the store publishes the full user collection after
	// every mutation, the directory index consumes it.
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 16,
	}, watermill.NewSlogLogger(slogLogger))

	// Initialize repositories
	store := postgres.NewUserPostgres(db, pubSub)
	identity := casdoor.NewIdentityCasdoor(casdoor.CasdoorConfig{
		Endpoint:         cfg.Casdoor.Endpoint,
		ClientID:         cfg.Casdoor.ClientID,
		ClientSecret:     cfg.Casdoor.ClientSecret,
		Certificate:      cfg.Casdoor.Cert,
		OrganizationName: cfg.Casdoor.Organization,
		ApplicationName:  cfg.Casdoor.Application,
	}, redisClient)

	// Directory index subscribes before the first snapshot is published.
	runCtx, cancelRun := context.WithCancel(context.Background())
	defer cancelRun()

	index := directory.NewIndex(logger)
	go func() {
		if err := index.Run(runCtx, pubSub); err != nil {
			logger.Error("directory index stopped", "error", err)
		}
	}()

	// Seed the index with the current collection.
	if err := store.PublishSnapshot(runCtx); err != nil {
		log.Printf("Warning: Failed to publish initial user snapshot: %v", err)
	}

	// Initialize services
	v := validator.New()
	serviceManager := services.NewServiceManager(store, identity, redisClient, v, cfg.DefaultImportPassword, slogLogger)

	// Drive folder links
	driveLinks, err := cfg.LoadDriveLinks()
	if err != nil {
		log.Fatalf("Failed to load drive links: %v", err)
	}

	// Initialize handlers
	handlerManager := handlers.NewHandlerManager(serviceManager, index, driveLinks, logger, cfg.Casdoor, store)

	// Setup Gin router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Setup middleware
	handlers.SetupMiddleware(router, logger)

	// Setup routes
	handlerManager.SetupRoutes(router)

	// Create HTTP server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	// Stop the snapshot consumer and close the bus
	cancelRun()
	if err := pubSub.Close(); err != nil {
		log.Printf("Failed to close snapshot bus: %v", err)
	}

	// Close database connection
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	// Close Redis connection
	if redisClient != nil {
		redisClient.Close()
	}

	logger.Info("Server exited")
}
