package router

import (
	"net/http"

	"schedulink-backend/internal/cache"
	"schedulink-backend/internal/handler"
	"schedulink-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Options 組裝路由所需的依賴；RateLimiter 為 nil 時不啟用限流
type Options struct {
	AllowedOrigins []string
	RateLimiter    cache.RateLimiter
	RateLimit      int

	Events        *handler.EventHandler
	Registrations *handler.RegistrationHandler
	Notifications *handler.NotificationHandler
	Resources     *handler.ResourceHandler
	Reports       *handler.ReportHandler
	Auth          *handler.AuthHandler
}

func New(opts Options) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Recovery(), middleware.CORS(opts.AllowedOrigins))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	api := r.Group("/api")
	api.GET("/health", handler.Health)

	if opts.RateLimiter != nil {
		api.Use(middleware.RateLimit(opts.RateLimiter, opts.RateLimit))
	}

	opts.Events.RegisterRoutes(api)
	opts.Registrations.RegisterRoutes(api)
	opts.Notifications.RegisterRoutes(api)
	opts.Resources.RegisterRoutes(api)
	opts.Reports.RegisterRoutes(api)
	opts.Auth.RegisterRoutes(api)

	return r
}
