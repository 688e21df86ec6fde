package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prasetyow/nota-spbu-api/internal/config"
	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/handler"
	"github.com/prasetyow/nota-spbu-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Station     *handler.StationHandler
	Transaction *handler.TransactionHandler
	Receipt     *handler.ReceiptHandler
	Product     *handler.ProductHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.Use(middleware.SessionMiddleware())

		// Per-session rate limiter
		rateLimiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerStationRoutes(v1, h)
		registerTransactionRoutes(v1, h)
		registerReceiptRoutes(v1, h)

		v1.GET("/products", h.Product.ListProducts)
	}

	return router
}

func registerStationRoutes(v1 *gin.RouterGroup, h *Handlers) {
	stations := v1.Group("/stations")
	{
		stations.GET("", h.Station.ListStations)
		stations.POST("", h.Station.CreateStation)
		stations.GET("/:id", h.Station.GetStation)
		stations.PUT("/:id", h.Station.UpdateStation)
		stations.DELETE("/:id", h.Station.DeleteStation)
	}
}

func registerTransactionRoutes(v1 *gin.RouterGroup, h *Handlers) {
	transaction := v1.Group("/transaction")
	{
		transaction.GET("", h.Transaction.GetTransaction)
		transaction.PATCH("", h.Transaction.UpdateTransaction)
		transaction.PUT("/station", h.Transaction.SelectStation)
	}
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers) {
	receipt := v1.Group("/receipt")
	{
		receipt.GET("/preview", h.Receipt.Preview)
		receipt.POST("/export", h.Receipt.Export)
		receipt.GET("/export/status", h.Receipt.ExportStatus)
	}
}
