// File: roomi/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomi/config"
	"roomi/cron"
	"roomi/database"
	bookingRepo "roomi/database/repository/booking"
	roomRepo "roomi/database/repository/room"
	"roomi/handlers"
	"roomi/middleware"
	"roomi/routes"
	"roomi/services/agent"
	"roomi/services/booking"
	"roomi/services/notification"
	"roomi/services/room"
	"roomi/services/storage"
	"roomi/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// The store must be reachable at startup; per-request failures later are
	// absorbed at the tool boundary instead.
	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Sugar().Warnf("main: failed to disconnect MongoDB: %v", err)
		}
	}()
	utils.InitRedis()
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetAgentContextClient()}, mongoClient)

	// Repositories.
	bkRepo, err := bookingRepo.NewMongoBookingRepo(mongoClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking repository: %v", err)
	}
	rtRepo, err := roomRepo.NewMongoRoomTypeRepo(mongoClient)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize room type repository: %v", err)
	}

	// Services.
	catalogService := &room.DefaultCatalogService{Repo: rtRepo, Logger: logger}
	// Seed the catalog before the listener starts; the read path never seeds.
	if err := catalogService.Bootstrap(); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:   bkRepo,
		Queue:  queueClient,
		Logger: logger,
	}

	notifService := &notification.LogNotificationService{Logger: logger}
	cron.InitFollowUpWorker(notifService)

	var archive storage.ArchiveService
	if config.AppConfig.CloudinaryURL != "" {
		cloudArchive, err := storage.NewCloudinaryArchive(config.AppConfig.CloudinaryURL)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize call audio archive: %v", err)
		}
		archive = cloudArchive
	}

	llm, err := agent.NewGeminiClient(config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}
	toolResolver := agent.NewDualPathResolver(config.AppConfig.BookingAPIBaseURL, logger)
	ctxStore := agent.NewRedisContextStore(utils.GetAgentContextClient(), 30*time.Minute)
	agentService := agent.NewDefaultAgentService(llm, toolResolver, ctxStore, logger)

	// Handlers.
	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	roomHandler := handlers.NewRoomHandler(catalogService)
	agentHandler := handlers.NewAgentHandler(agentService, logger)
	voiceHandler := handlers.NewVoiceHandler(agentService, archive, config.AppConfig.SpeechAPIKey, logger)
	adminHandler := handlers.NewAdminHandler(bookingService, catalogService)

	handlerBundle := &handlers.HandlerBundle{
		CreateBooking:  bookingHandler.CreateBooking,
		GetBooking:     bookingHandler.GetBooking,
		SearchBookings: bookingHandler.SearchBookings,
		CancelBooking:  bookingHandler.CancelBooking,
		ListBookings:   bookingHandler.ListBookings,

		GetRoomTypes:      roomHandler.GetRoomTypes,
		CheckAvailability: roomHandler.CheckAvailability,
		GetHotelInfo:      roomHandler.GetHotelInfo,

		AgentChat:  agentHandler.Chat,
		AgentVoice: voiceHandler.HandleVoiceTurn,

		AdminListBookings: adminHandler.ListBookings,
		AdminReseed:       adminHandler.ReseedCatalog,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle)

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
