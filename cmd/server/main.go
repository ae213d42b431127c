package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"schedulink-backend/config"
	"schedulink-backend/internal/cache"
	"schedulink-backend/internal/database"
	"schedulink-backend/internal/handler"
	"schedulink-backend/internal/repository"
	"schedulink-backend/internal/router"
	"schedulink-backend/internal/service"
	"schedulink-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.SetLevel(cfg.LogLevel)
	defer logger.Sync()

	log := logger.WithComponent("main")
	gin.SetMode(cfg.Server.Mode)

	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration", zap.Error(err))
	}
	if cfg.Auth.JWTSecret == config.DefaultJWTSecret {
		log.Warn("Using default JWT secret, set JWT_SECRET before deploying")
	}

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(&cfg.Database); err != nil {
			log.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	eventRepo := repository.NewEventRepository(pool)
	registrationRepo := repository.NewRegistrationRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	resourceRepo := repository.NewResourceRepository(pool)
	reportRepo := repository.NewReportRepository(pool)
	userRepo := repository.NewUserRepository(pool)

	authService := service.NewAuthService(userRepo, cache.NewRedisTokenStore(rdb), cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if cfg.Auth.AdminUsername != "" {
		if err := authService.EnsureAdmin(context.Background(), service.RegisterParams{
			Username: cfg.Auth.AdminUsername,
			Email:    cfg.Auth.AdminEmail,
			Password: cfg.Auth.AdminPassword,
		}); err != nil {
			log.Fatal("Failed to seed admin user", zap.Error(err))
		}
	}

	opts := router.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Events:         handler.NewEventHandler(service.NewEventService(eventRepo)),
		Registrations:  handler.NewRegistrationHandler(service.NewRegistrationService(registrationRepo, eventRepo)),
		Notifications:  handler.NewNotificationHandler(service.NewNotificationService(notificationRepo)),
		Resources:      handler.NewResourceHandler(service.NewResourceService(resourceRepo)),
		Reports:        handler.NewReportHandler(service.NewReportService(reportRepo)),
		Auth:           handler.NewAuthHandler(authService),
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimiter = cache.NewRedisRateLimiter(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
		opts.RateLimit = cfg.RateLimit.Requests
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router.New(opts),
	}

	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}
