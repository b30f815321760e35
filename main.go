package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mvtechguy/faseyha-portal/config"
	"github.com/mvtechguy/faseyha-portal/handler"
	"github.com/mvtechguy/faseyha-portal/middleware"
	"github.com/mvtechguy/faseyha-portal/pkg/logger"
	"github.com/mvtechguy/faseyha-portal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize blob storage for uploads
	storage, err := newBlobStorage(cfg)
	if err != nil {
		slog.Error("failed to initialize blob storage", "error", err)
		os.Exit(1)
	}

	// Initialize submission store
	store, err := service.NewSubmissionStore(&cfg.Database)
	if err != nil {
		slog.Error("failed to initialize submission store", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	submissionHandler := handler.NewSubmissionHandler(store)
	uploadHandler := handler.NewUploadHandler(storage, &cfg.Upload)
	categoryHandler := handler.NewCategoryHandler()

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())     // Request ID for tracing
	router.Use(middleware.Recovery())      // Panic recovery
	router.Use(middleware.RequestLogger()) // Access logging
	router.Use(corsMiddleware())           // CORS
	router.Use(middleware.RateLimit(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// API routes
	api := router.Group("/api")
	{
		api.GET("/categories", categoryHandler.List)
		api.POST("/submit", submissionHandler.Submit)
		api.POST("/upload", uploadHandler.Upload)
		api.GET("/submissions/:id", submissionHandler.Track)
	}

	// Serve locally stored uploads at their public base path
	if cfg.Storage.Backend == "local" {
		router.Static(cfg.Upload.PublicBase, cfg.Upload.Dir)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// newBlobStorage selects the upload backend from configuration
func newBlobStorage(cfg *config.Config) (service.BlobStorage, error) {
	switch cfg.Storage.Backend {
	case "minio":
		storage, err := service.NewMinioStorage(&cfg.Storage.Minio)
		if err != nil {
			return nil, err
		}
		if err := storage.EnsureBucket(context.Background()); err != nil {
			return nil, err
		}
		return storage, nil
	default:
		return service.NewDiskStorage(&cfg.Upload), nil
	}
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
