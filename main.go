// File: hospital/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital/config"
	"hospital/cron"
	"hospital/database"
	"hospital/database/repository"
	"hospital/handlers"
	"hospital/middleware"
	"hospital/routes"
	"hospital/services/appointment"
	"hospital/services/schedule"
	"hospital/services/slotcache"
	"hospital/utils"
	"hospital/validators"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	utils.InitRedis()
	if err := validators.RegisterWithGin(); err != nil {
		logger.Sugar().Fatalf("main: failed to register validators: %v", err)
	}

	// repositories.
	scheduleRepo := repository.NewMongoScheduleRepo()
	appointmentRepo := repository.NewMongoAppointmentRepo()

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 20*time.Second)
	if err := scheduleRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	if err := appointmentRepo.EnsureIndexes(indexCtx); err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}
	cancelIndexes()

	// services.
	locker := utils.NewRedisLocker(utils.GetLockClient(), config.AppConfig.ScheduleLockTTL, config.AppConfig.ScheduleLockWait)
	slotCache := slotcache.NewRedisSlotCache(utils.GetCacheClient(), config.AppConfig.SlotCacheTTL)

	scheduleService, err := schedule.NewDefaultScheduleService(
		scheduleRepo,
		appointmentRepo,
		locker,
		slotCache,
		config.AppConfig.DefaultSlotMinutes,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	appointmentService, err := appointment.NewDefaultAppointmentService(
		appointmentRepo,
		scheduleRepo,
		locker,
		slotCache,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	stopWorker, err := cron.InitHousekeepingWorker(appointmentService)
	if err != nil {
		logger.Sugar().Fatalf("main: %v", err)
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	utils.StartHealthMonitor(monitorCtx, []*redis.Client{utils.GetCacheClient(), utils.GetLockClient()}, database.MongoClient)

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(config.AppConfig.TrustedProxies); err != nil {
		logger.Sugar().Fatalf("main: invalid TRUSTED_PROXIES: %v", err)
	}
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := handlers.NewHandlerBundle(
		handlers.NewScheduleHandler(scheduleService),
		handlers.NewAppointmentHandler(appointmentService),
	)
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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stopWorker()
	stopMonitor()
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Warnf("main: mongo disconnect: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
