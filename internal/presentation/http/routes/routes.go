package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/tally-bridge/internal/config"
	"github.com/sangkips/tally-bridge/internal/presentation/http/handler"
	"github.com/sangkips/tally-bridge/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Voucher *handler.VoucherHandler
	Company *handler.CompanyHandler
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))

	// Health check endpoint, includes Tally connectivity status
	router.GET("/health", h.Company.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
			BurstSize:         cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		v1.GET("/companies", h.Company.List)
		v1.POST("/vouchers", h.Voucher.Create)
	}

	return router
}
