package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"vedicjivan/config"
	"vedicjivan/handlers"
	"vedicjivan/middleware"
	"vedicjivan/utils"
)

// RegisterAuthRoutes registers account and token endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)
		api.POST("/refresh", hb.Auth.RefreshHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.MeHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.GET("", hb.Bookings.ListBookingsHandler)
		api.GET("/:id", hb.Bookings.GetBookingHandler)
		api.POST("/:id/cancel", hb.Bookings.CancelBookingHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.PATCH("/:id/status", hb.Bookings.OverrideStatusHandler)
	}
}

// RegisterAvailabilityRoutes registers slot lookup and schedule management.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		// Public endpoints so the booking page works before login.
		api.GET("/slots", hb.Availability.SlotsHandler)
		api.GET("/holidays", hb.Availability.HolidaysHandler)
		api.GET("/business-hours", hb.Availability.GetBusinessHoursHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireAdmin())
		admin.GET("/blocks", hb.Availability.ListBlocksHandler)
		admin.POST("/blocks", hb.Availability.AddBlockHandler)
		admin.DELETE("/blocks/:id", hb.Availability.RemoveBlockHandler)
		admin.PUT("/business-hours", hb.Availability.UpdateBusinessHoursHandler)
	}
}

// RegisterPaymentRoutes registers gateway order, verification and webhook
// endpoints. The webhook is unauthenticated; it carries its own signature.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.POST("/webhook", hb.Payments.WebhookHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/order", hb.Payments.CreateOrderHandler)
		protected.POST("/verify", hb.Payments.VerifyPaymentHandler)

		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())
		admin.GET("", hb.Payments.ListPaymentsHandler)
	}
}

// RegisterAdminRoutes registers the reporting endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireAdmin())
		api.GET("/dashboard", hb.Admin.DashboardHandler)
		api.GET("/stats", hb.Admin.StatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"mongo":   status.Mongo,
			"redis":   status.Redis,
			"checked": status.CheckedAt,
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := []string{"*"}
	if config.AppConfig.FrontendURL != "" {
		origins = []string{config.AppConfig.FrontendURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Razorpay-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
