package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"carebook/config"
	"carebook/cron"
	"carebook/database"
	bookingRepo "carebook/database/repository/booking"
	busyRepo "carebook/database/repository/busy"
	scheduleRepo "carebook/database/repository/schedule"
	"carebook/handlers"
	"carebook/middleware"
	"carebook/routes"
	"carebook/services/scheduling"
	"carebook/services/tasks"
	"carebook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	schedules := scheduleRepo.NewMongoScheduleRepo()
	busyBlocks := busyRepo.NewMongoBusyRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	for _, ensure := range []func(context.Context) error{
		schedules.EnsureIndexes,
		busyBlocks.EnsureIndexes,
		bookings.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}
	cancel()

	// services.
	reminderScheduler := tasks.NewReminderScheduler()
	defer reminderScheduler.Close()

	schedulingService := &scheduling.DefaultSchedulingService{
		ScheduleRepo: schedules,
		BusyRepo:     busyBlocks,
		BookingRepo:  bookings,
		Reminders:    reminderScheduler,
		Slots: scheduling.SlotConfig{
			DurationMin: config.AppConfig.SlotDurationMin,
			GapMin:      config.AppConfig.SlotGapMin,
			GridStart:   config.AppConfig.DefaultGridStart,
			GridEnd:     config.AppConfig.DefaultGridEnd,
			GridStepMin: config.AppConfig.DefaultGridStepMin,
		},
	}

	scheduleHandler := handlers.NewScheduleHandler(schedulingService)
	routes.RegisterRoutes(router, scheduleHandler)

	// Background reminder consumer and health monitor.
	cron.InitReminderWorker()
	utils.StartHealthMonitor(utils.GetReminderQueueClient(), database.MongoClient)

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
