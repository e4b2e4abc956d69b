package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/seller_hub/internal/cache"
	"github.com/GTDGit/seller_hub/internal/config"
	"github.com/GTDGit/seller_hub/internal/database"
	"github.com/GTDGit/seller_hub/internal/handler"
	"github.com/GTDGit/seller_hub/internal/marketplace"
	"github.com/GTDGit/seller_hub/internal/middleware"
	"github.com/GTDGit/seller_hub/internal/repository"
	"github.com/GTDGit/seller_hub/internal/service"
	"github.com/GTDGit/seller_hub/internal/utils"
	"github.com/GTDGit/seller_hub/internal/worker"
)

// main is the application entrypoint for the Seller Hub API.
func main() {
	// 1. Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Setup logger
	setupLogger(cfg.Env)
	log.Info().Str("env", cfg.Env).Msg("starting seller hub api")

	// 3. Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 4. Connect database
	db, err := database.Connect(ctx, &cfg.DB)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		fmt.Fprintf(os.Stderr, "database connection failed: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	// 4a. Run migrations
	if err := database.Migrate(db.DB, cfg.DB.MigrationsPath); err != nil {
		log.Error().Err(err).Msg("migration failed")
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	log.Info().Msg("migrations completed successfully")

	// 4b. Connect to Redis (optional)
	var statsCache service.StatsCache
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, &cfg.Redis, "seller_hub:")
		if err != nil {
			log.Warn().Err(err).Msg("redis connection failed - dashboard stats will not be cached")
		} else {
			defer redisClient.Close()
			statsCache = cache.NewStatsCache(redisClient, cfg.Dashboard.StatsTTL)
			log.Info().Msg("redis connected successfully")
		}
	}

	// 4c. Secret box for marketplace credentials
	box, err := utils.NewSecretBox(cfg.SecretKey)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid settings secret key")
	}
	if cfg.SecretKey == nil {
		log.Warn().Msg("SETTINGS_SECRET_KEY not set - marketplace secrets stored unencrypted")
	}

	// 5. Initialize repositories
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	returnRepo := repository.NewReturnRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)

	// 6. Initialize marketplace integration
	var invoices marketplace.InvoiceStore
	if cfg.Invoice.Bucket != "" {
		s3Store, err := marketplace.NewS3InvoiceStore(ctx, &cfg.Invoice)
		if err != nil {
			log.Warn().Err(err).Msg("S3 invoice store initialization failed - placeholder invoices will be used")
		} else {
			invoices = s3Store
			log.Info().Str("bucket", cfg.Invoice.Bucket).Msg("S3 invoice store enabled")
		}
	}
	seedSvc := service.NewSeedService(productRepo, orderRepo, settingsRepo)
	settingsSvc := service.NewSettingsService(settingsRepo, box)
	market := marketplace.NewMock(seedSvc, invoices).WithCredentials(settingsSvc)

	// 7. Initialize services
	dashboardSvc := service.NewDashboardService(dashboardRepo, statsCache)
	productSvc := service.NewProductService(productRepo, dashboardSvc)
	orderSvc := service.NewOrderService(orderRepo, market, dashboardSvc)
	returnSvc := service.NewReturnService(returnRepo, dashboardSvc)
	intelligenceSvc := service.NewIntelligenceService(productRepo, orderRepo)

	// 7a. Seed demo data on an empty database
	if cfg.Marketplace.SeedOnStart {
		n, err := seedSvc.Seed(ctx)
		if err != nil {
			log.Error().Err(err).Msg("seeding failed")
		} else if n > 0 {
			dashboardSvc.Invalidate(ctx)
			log.Info().Int("orders", n).Msg("database seeded")
		}
	}

	// 8. Initialize handlers
	handlers := &handler.Handlers{
		Dashboard:    handler.NewDashboardHandler(dashboardSvc, cfg.Dashboard.FallbackZero),
		Product:      handler.NewProductHandler(productSvc),
		Order:        handler.NewOrderHandler(orderSvc),
		Return:       handler.NewReturnHandler(returnSvc),
		Settings:     handler.NewSettingsHandler(settingsSvc),
		Intelligence: handler.NewIntelligenceHandler(intelligenceSvc),
	}

	// 9. Setup router
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	metrics := middleware.NewMetrics("seller_hub")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.CORSAllowedHosts))
	router.Use(middleware.LoggingMiddleware())
	router.Use(metrics.Handle())

	router.GET("/health", handler.NewHealthHandler(db).GetHealth)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/")
	if cfg.JWTSecret != "" {
		rateLimiter := middleware.NewInvalidAuthRateLimiter()
		go rateLimiter.Run(ctx, 5*time.Minute)
		api.Use(middleware.NewJWTMiddleware(cfg.JWTSecret, rateLimiter).Handle())
	} else {
		log.Warn().Msg("JWT_SECRET not set - API is served without authentication")
	}
	if err := handler.RegisterRoutes(api, handlers); err != nil {
		log.Fatal().Err(err).Msg("route registration failed")
	}

	// 10. Start workers
	if cfg.Marketplace.SyncSchedule != "" {
		syncWorker, err := worker.NewSyncWorker(orderSvc, cfg.Marketplace.SyncSchedule, cfg.Marketplace.SyncTimeout)
		if err != nil {
			log.Fatal().Err(err).Msg("sync worker configuration failed")
		}
		go syncWorker.Start(ctx)
	}

	// 11. Start HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// 12. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// 13. Cancel context to stop workers
	cancel()

	// 14. Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	log.Info().Msg("Server exited")
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
