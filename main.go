package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"vedicjivan/config"
	"vedicjivan/cron"
	"vedicjivan/database"
	bookingRepoPkg "vedicjivan/database/repository/booking"
	paymentRepoPkg "vedicjivan/database/repository/payment"
	settingsRepoPkg "vedicjivan/database/repository/settings"
	unavailRepoPkg "vedicjivan/database/repository/unavailability"
	userRepoPkg "vedicjivan/database/repository/user"
	"vedicjivan/handlers"
	"vedicjivan/middleware"
	"vedicjivan/models"
	"vedicjivan/routes"
	"vedicjivan/services/admin"
	"vedicjivan/services/availability"
	"vedicjivan/services/booking"
	"vedicjivan/services/notification"
	"vedicjivan/services/payment"
	"vedicjivan/services/scheduling"
	"vedicjivan/services/user"
	"vedicjivan/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := database.Connect(ctx)
	cancel()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to mongodb: %v", err)
	}
	db := mongoClient.Database(config.AppConfig.DatabaseName)

	utils.InitLockClient()
	utils.StartHealthMonitor(utils.GetLockClient(), mongoClient)

	// Create the Gin router.
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)
	unavailRepo := unavailRepoPkg.NewMongoUnavailabilityRepo(db)
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo(db)

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}

	schedulingEngine := &scheduling.DefaultSchedulingEngine{
		Settings: settingsRepo,
		Blocks:   unavailRepo,
		Bookings: bookingRepo,
		Clock:    scheduling.SystemClock(),
		Logger:   logger,
	}

	notificationService := &notification.DefaultNotificationService{
		Logger: logger,
	}

	// The reminder scheduler enqueues in the business timezone so the
	// pre-appointment lead is computed against local appointment times.
	location, err := time.LoadLocation(models.DefaultBusinessHours().Timezone)
	if err != nil {
		location = time.UTC
	}
	reminderScheduler := cron.NewScheduler(location)
	defer reminderScheduler.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:      bookingRepo,
		Scheduler: schedulingEngine,
		Lock:      utils.GetLockClient(),
		Notifier:  notificationService,
		Reminders: reminderScheduler,
		Logger:    logger,
	}

	paymentService := &payment.DefaultPaymentService{
		Payments: paymentRepo,
		Bookings: bookingRepo,
		Booking:  bookingService,
		Gateway:  payment.NewRazorpayGateway(),
		Logger:   logger,
	}

	availabilityService := &availability.DefaultAvailabilityService{
		Engine:   schedulingEngine,
		Blocks:   unavailRepo,
		Settings: settingsRepo,
		Logger:   logger,
	}

	adminService := &admin.DefaultAdminService{
		Users:    userRepo,
		Bookings: bookingRepo,
		Payments: paymentRepo,
	}

	// Background worker that delivers reminder emails.
	cron.InitReminderWorker(bookingRepo, notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(userService),
		Bookings:     handlers.NewBookingHandler(bookingService),
		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Payments:     handlers.NewPaymentHandler(paymentService),
		Admin:        handlers.NewAdminHandler(adminService),
		UserRepo:     userRepo,
	}

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

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	if err := database.Close(mongoClient); err != nil {
		logger.Sugar().Warnf("main: failed to close mongodb client: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
