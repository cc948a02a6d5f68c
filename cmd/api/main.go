package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/talentlens/talentlens/pkg/validator"

	"github.com/talentlens/talentlens/internal/adapter/handler"
	"github.com/talentlens/talentlens/internal/infrastructure/cache"
	"github.com/talentlens/talentlens/internal/infrastructure/storage"
	"github.com/talentlens/talentlens/internal/render/dashboard"
	"github.com/talentlens/talentlens/internal/usecase/review"
	"github.com/talentlens/talentlens/pkg/config"
	"github.com/talentlens/talentlens/pkg/insight"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize MinIO storage
	log.Println("📦 Connecting to object storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Initialize analysis engine client
	log.Println("🤖 Initializing analysis engine client...")
	engineClient := insight.NewClient(&cfg.Engine)

	// Initialize session store
	sessionStore := cache.NewSessionStore(cfg.Session.TTL)

	// Initialize review service
	log.Println("✨ Initializing review service...")
	reviewService := review.NewService(minioClient, engineClient, sessionStore, logger)

	// Initialize HTML renderer
	renderer, err := dashboard.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to parse templates: %v", err)
	}
	e.Renderer = renderer

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	reviewHandler := handler.NewReview(reviewService, logger)
	router := handler.NewRouter(cfg, reviewHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Server.Addr()
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
