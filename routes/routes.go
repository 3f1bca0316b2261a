package routes

import (
	"net/http"
	"time"

	"roomi/config"
	"roomi/handlers"
	"roomi/middleware"
	"roomi/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the reservation endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/bookings")
	{
		api.POST("", hb.CreateBooking)
		api.GET("", hb.ListBookings)
		api.GET("/search/by-name", hb.SearchBookings)
		api.GET("/:confirmationNumber", hb.GetBooking)
		api.DELETE("/:confirmationNumber", hb.CancelBooking)
	}
}

// RegisterRoomRoutes registers the room catalog endpoints.
func RegisterRoomRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/rooms")
	{
		api.GET("/types", hb.GetRoomTypes)
		api.GET("/availability", hb.CheckAvailability)
		api.GET("/info", hb.GetHotelInfo)
	}
}

// RegisterAgentRoutes registers the conversational endpoints.
func RegisterAgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/agent")
	{
		api.POST("/chat", hb.AgentChat)
		api.POST("/voice", hb.AgentVoice)
	}
}

// RegisterAdminRoutes registers back-office endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/v1/admin")
	{
		api.Use(middleware.AdminAuthMiddleware(config.AppConfig.AdminToken))
		api.GET("/bookings", hb.AdminListBookings)
		api.POST("/rooms/seed", hb.AdminReseed)
	}
}

// RegisterHealthRoute registers health and welcome endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Roomi Hotel Reservation API",
			"version": "1.0.0",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
	RegisterRoomRoutes(r, hb)
	RegisterAgentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
