package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tourbook/config"
	"tourbook/cron"
	"tourbook/database"
	bookingRepoPkg "tourbook/database/repository/booking"
	catalogRepoPkg "tourbook/database/repository/catalog"
	recordsRepoPkg "tourbook/database/repository/records"
	userRepoPkg "tourbook/database/repository/user"
	"tourbook/handlers"
	"tourbook/middleware"
	"tourbook/routes"
	"tourbook/services/booking"
	"tourbook/services/catalog"
	"tourbook/services/records"
	"tourbook/services/storage"
	"tourbook/services/tasks"
	"tourbook/services/user"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	db := database.DB()
	authCache := utils.NewAuthCache(utils.GetAuthCacheClient())

	imageStore, err := storage.NewCloudinaryStore(
		config.AppConfig.CloudinaryCloudName,
		config.AppConfig.CloudinaryAPIKey,
		config.AppConfig.CloudinaryAPISecret,
	)
	if err != nil {
		logger.Fatal("main: failed to initialize image store", zap.Error(err))
	}

	queueOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
	dispatcher, queueClient := tasks.NewRedisDispatcher(queueOpts)
	defer queueClient.Close()
	mailWorker := cron.InitMailWorker(cron.LogMailer{From: config.AppConfig.MailFrom})

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	packageRepo := catalogRepoPkg.NewMongoPackageRepo(db)
	groupRepo := catalogRepoPkg.NewMongoGroupRepo(db)
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo(db)
	inquiryRepo := recordsRepoPkg.NewMongoInquiryRepo(db)
	reviewRepo := recordsRepoPkg.NewMongoReviewRepo(db)

	// services.
	userService := &user.DefaultUserService{
		Repo:     userRepo,
		Cache:    authCache,
		OTP:      dispatcher,
		TokenTTL: config.AppConfig.TokenTTL,
		OTPTTL:   config.AppConfig.OTPTTL,
	}
	catalogService := &catalog.DefaultCatalogService{
		Packages: packageRepo,
		Groups:   groupRepo,
		Images:   imageStore,
		Listing:  catalog.NewRedisListingCache(utils.GetListingCacheClient()),
	}
	bookingService := &booking.DefaultBookingService{
		Bookings: bookingRepo,
		Packages: packageRepo,
		Users:    userRepo,
		Gateway:  booking.NewStripeGateway(config.AppConfig.StripeKey, nil),
		Currency: config.AppConfig.PaymentCurrency,
	}
	recordsService := &records.DefaultRecordsService{
		Inquiries: inquiryRepo,
		Reviews:   reviewRepo,
		Images:    imageStore,
	}

	handlerBundle := &handlers.HandlerBundle{
		UserRepo:  userRepo,
		AuthCache: authCache,
		Auth:      handlers.NewAuthHandler(userService),
		Catalog:   handlers.NewCatalogHandler(catalogService),
		Bookings:  handlers.NewBookingHandler(bookingService),
		Records:   handlers.NewRecordsHandler(recordsService),
	}

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	queueHealth := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueHealth.Close()
	utils.StartHealthMonitor(monitorCtx, 30*time.Second,
		[]*redis.Client{utils.GetAuthCacheClient(), utils.GetListingCacheClient(), queueHealth}, database.MongoClient)

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              "0.0.0.0:" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", srv.Addr))
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("main: server failed to start", zap.Error(err))
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: server is shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	mailWorker.Shutdown()
	if err := database.Disconnect(ctx); err != nil {
		logger.Warn("main: failed to disconnect from MongoDB", zap.Error(err))
	}

	logger.Info("main: server stopped gracefully")
}
