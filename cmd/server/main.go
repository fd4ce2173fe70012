package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lovehampers/lovehampers-backend/config"
	"github.com/lovehampers/lovehampers-backend/internal/app/controller"
	"github.com/lovehampers/lovehampers-backend/internal/app/repository"
	"github.com/lovehampers/lovehampers-backend/internal/app/service"
	"github.com/lovehampers/lovehampers-backend/internal/db"
	"github.com/lovehampers/lovehampers-backend/internal/middleware"
	"github.com/lovehampers/lovehampers-backend/internal/router"
	"github.com/lovehampers/lovehampers-backend/internal/scheduler"
	"github.com/lovehampers/lovehampers-backend/internal/storage"
	"github.com/lovehampers/lovehampers-backend/internal/websocket"
	"github.com/lovehampers/lovehampers-backend/pkg/logger"
	"github.com/lovehampers/lovehampers-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting LoveHampers Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Seed the catalog and the admin account (optional)
	if err := db.Seed(&cfg.Admin); err != nil {
		logger.Warn("Failed to seed database", map[string]interface{}{
			"error": err.Error(),
		})
	}

	// The checkout guard runs on Redis when available so multiple server
	// instances share one lock; otherwise it falls back to process memory.
	var checkoutGuard service.CheckoutGuard
	if cfg.Redis.Enabled {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Fatal("Failed to initialize Redis", err)
		}
		defer func() {
			if err := redis.Close(); err != nil {
				logger.Error("Failed to close Redis connection", err)
			}
		}()
		checkoutGuard = redis.NewCheckoutGuard(cfg.Checkout.InFlightTTL)
	} else {
		logger.Info("Redis disabled, using in-memory checkout guard")
		checkoutGuard = service.NewMemoryCheckoutGuard(cfg.Checkout.InFlightTTL)
	}

	// Order feed for the admin dashboard
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	cartRepo := repository.NewCartRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(
		userRepo,
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)
	productService := service.NewProductService(productRepo)
	cartService := service.NewCartService(cartRepo, productRepo)
	bundleService := service.NewBundleService(productRepo, cartService)
	orderService := service.NewOrderService(orderRepo, cartRepo, checkoutGuard, hub)
	reportService := service.NewReportService(orderRepo)

	// Initialize storage
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	productController := controller.NewProductController(productService)
	cartController := controller.NewCartController(cartService)
	bundleController := controller.NewBundleController(bundleService)
	orderController := controller.NewOrderController(orderService, reportService)
	uploadController := controller.NewUploadController(s3Storage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Nightly purge of abandoned device carts
	cartCleanup := scheduler.NewCartCleanupScheduler(cartRepo)
	if err := cartCleanup.Start(); err != nil {
		logger.Error("Failed to start cart cleanup scheduler", err)
	}
	defer cartCleanup.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		productController,
		cartController,
		bundleController,
		orderController,
		uploadController,
		authMiddleware,
		hub,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
