package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/config"
	domainRepo "github.com/sudipjangam/tasty-bite-harbor-sub001/internal/domain/repository"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/handler"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/middleware"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Room     *handler.RoomHandler
	Checkout *handler.CheckoutHandler
	Billing  *handler.BillingHandler
	Settings *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
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
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.Refresh)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewRestaurantRateLimiter(deps.Cfg.RateLimit)
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/auth/profile", h.Auth.Profile)

	// Rooms and check-in
	rooms := protected.Group("/rooms")
	{
		rooms.GET("", h.Room.List)
		rooms.GET("/:id", h.Room.Get)
		rooms.GET("/:id/reservation", h.Room.ActiveReservation)
		rooms.POST("/:id/cleaned", h.Room.MarkCleaned)
	}
	reservations := protected.Group("/reservations")
	{
		reservations.GET("", h.Room.ListReservations)
		reservations.GET("/:id", h.Room.GetReservation)
		reservations.POST("", h.Room.CheckIn)
	}

	// Checkout flow. Confirm settles the bill and must never run twice
	// for one key, so it sits behind the idempotency guard.
	checkout := protected.Group("/checkout")
	{
		checkout.POST("/preview", h.Checkout.Preview)
		checkout.POST("/promotions/validate", h.Checkout.ValidatePromotion)
		checkout.POST("/confirm",
			middleware.IdempotencyRequired(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Checkout.Confirm,
		)
	}
	protected.GET("/promotions", h.Checkout.ListPromotions)

	// Billing history and receipts
	billings := protected.Group("/billings")
	{
		billings.GET("", h.Billing.List)
		billings.GET("/:id", h.Billing.Get)
		billings.GET("/:id/receipt", h.Billing.Receipt)
		billings.POST("/:id/receipt/print", h.Billing.PrintReceipt)
		billings.GET("/:id/receipt/pdf", h.Billing.ReceiptPDF)
		billings.POST("/:id/receipt/email", h.Billing.EmailReceipt)
	}

	// Restaurant settings
	protected.GET("/settings", h.Settings.Get)
	protected.PUT("/settings", h.Settings.Update)

	// Printer
	protected.GET("/printer/status", h.Billing.PrinterStatus)
	protected.POST("/printer/test", h.Billing.TestPrint)
}
