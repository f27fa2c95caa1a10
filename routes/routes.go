package routes

import (
	"time"

	"carebook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers read-side availability endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/availability")
	{
		api.GET("/:providerID", h.GetAvailabilityHandler)
	}
}

// RegisterProviderScheduleRoutes registers schedule and busy-block management.
func RegisterProviderScheduleRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/providers")
	{
		api.PUT("/:providerID/weekly-availability", h.UpsertWeeklyAvailabilityHandler)
		api.GET("/:providerID/weekly-window", h.GetWeeklyWindowHandler)
		api.POST("/:providerID/busy", h.BlockSlotHandler)
		api.DELETE("/:providerID/busy", h.ClearBusyHandler)
	}
}

// RegisterBookingRoutes registers the reservation endpoint.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	api := r.Group("/api/bookings")
	{
		api.POST("/reserve", h.ReserveSlotHandler)
	}
}

// RegisterHealthRoute registers the health snapshot endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes wires CORS and all endpoint groups onto the router.
func RegisterRoutes(r *gin.Engine, h *handlers.ScheduleHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, h)
	RegisterProviderScheduleRoutes(r, h)
	RegisterBookingRoutes(r, h)
	RegisterHealthRoute(r)
}
