package routes

import (
	"net/http"
	"time"

	"github.com/kanishkk18/events/config"
	"github.com/kanishkk18/events/handlers"
	"github.com/kanishkk18/events/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
	}
}

// RegisterEventRoutes registers event template management and the public
// profile listings.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/event")
	{
		// Public booking-page endpoints: a guest browses a host's profile.
		api.GET("/public/:username", hb.ListPublicEventsHandler)
		api.GET("/public/:username/:slug", hb.GetPublicEventHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateEventHandler)
		api.GET("", hb.ListUserEventsHandler)
		api.PUT("/toggle-privacy", hb.ToggleEventPrivacyHandler)
		api.DELETE("/:eventId", hb.DeleteEventHandler)
	}
}

// RegisterAvailabilityRoutes registers the host's weekly schedule endpoints
// and the public slot listing.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		// Public: the slots guests pick from when booking.
		api.GET("/public/:eventId", hb.GetEventAvailabilityHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetMyAvailabilityHandler)
		api.PUT("/me", hb.UpdateAvailabilityHandler)
	}
}

// RegisterMeetingRoutes registers the booking endpoints.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/meeting")
	{
		// Public: guests book without an account.
		api.POST("/public", hb.CreateMeetingHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/user/all", hb.ListUserMeetingsHandler)
		api.PUT("/cancel/:meetingId", hb.CancelMeetingHandler)
	}
}

// RegisterIntegrationRoutes registers the calendar provider connection flow.
func RegisterIntegrationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/integration")
	{
		// Public: the OAuth provider redirects here.
		api.GET("/google/callback", hb.GoogleCallbackHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/check/:appType", hb.CheckIntegrationHandler)
		api.POST("/connect/:appType", hb.ConnectIntegrationHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := []string{"*"}
	if config.AppConfig.FrontendOrigin != "" {
		origins = []string{config.AppConfig.FrontendOrigin}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterIntegrationRoutes(r, hb)
}
