package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/config"
	"github.com/kanata-kan/explorekg-backend-sub001/cron"
	"github.com/kanata-kan/explorekg-backend-sub001/database"
	bookingRepoPkg "github.com/kanata-kan/explorekg-backend-sub001/database/repository/booking"
	catalogRepoPkg "github.com/kanata-kan/explorekg-backend-sub001/database/repository/catalog"
	"github.com/kanata-kan/explorekg-backend-sub001/handlers"
	"github.com/kanata-kan/explorekg-backend-sub001/middleware"
	"github.com/kanata-kan/explorekg-backend-sub001/routes"
	"github.com/kanata-kan/explorekg-backend-sub001/services/booking"
	"github.com/kanata-kan/explorekg-backend-sub001/services/catalog"
	"github.com/kanata-kan/explorekg-backend-sub001/services/notification"
	"github.com/kanata-kan/explorekg-backend-sub001/services/pricing"
	"github.com/kanata-kan/explorekg-backend-sub001/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	// Repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := catalogRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure catalog indexes: %v", err)
	}

	// Notification pipeline: dispatcher with its channels, fed by the
	// asynq queue so HTTP requests never wait on delivery.
	dispatcher := notification.NewDispatcher(logger)
	dispatcher.Register(notification.NewEmailChannel(
		config.AppConfig.SendgridAPIKey,
		config.AppConfig.EmailFrom,
		config.AppConfig.EmailFromName,
	))
	dispatcher.Register(notification.NewPushChannel(utils.FCMClient))
	cron.InitNotificationWorker(dispatcher)
	publisher := cron.NewAsynqPublisher(logger)
	defer publisher.Close()

	// Services.
	pricingEngine := pricing.NewEngine(logger)
	catalogService := &catalog.DefaultCatalogService{
		Repo:        catalogRepo,
		CacheClient: utils.GetCatalogCacheClient(),
		Logger:      logger,
	}
	bookingService := &booking.DefaultBookingService{
		CatalogSvc:  catalogService,
		Repo:        bookingRepo,
		Engine:      pricingEngine,
		CacheClient: utils.GetSessionCacheClient(),
		Events:      publisher,
		Logger:      logger,

		SessionTTL: time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute,
		HoldWindow: time.Duration(config.AppConfig.BookingHoldMinutes) * time.Minute,
		MinDays:    config.AppConfig.MinBookingDays,
		MaxDays:    config.AppConfig.MaxBookingDays,
		StrictMode: config.AppConfig.PricingStrict,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := handlers.NewHandlerBundle(bookingService, catalogService)
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionCacheClient(), utils.GetCatalogCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
