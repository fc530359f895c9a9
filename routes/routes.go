package routes

import (
	"time"

	"carcare/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.Booking.ListBookingsHandler)
		api.POST("", hb.Booking.CreateBookingHandler)
		api.PUT("", hb.Booking.UpdateBookingStatusHandler)
		api.DELETE("", hb.Booking.DeleteBookingHandler)
		api.GET("/grouped", hb.Booking.GroupedBookingsHandler)
	}
}

// RegisterCatalogRoutes registers one endpoint family per catalog entity
// kind; every family shares the same verb shape.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	for _, ch := range hb.Catalogs {
		api := r.Group("/api/" + ch.Path)
		{
			api.GET("", ch.ListHandler)
			api.POST("", ch.CreateHandler)
			api.PUT("", ch.UpdateHandler)
			api.DELETE("", ch.DeleteHandler)
		}
	}
}

// RegisterMediaRoutes registers the upload-ticket and asset endpoints.
func RegisterMediaRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/upload-signature", hb.Media.UploadSignatureHandler)
		api.POST("/upload", hb.Media.UploadHandler)
		api.POST("/cloudinary-delete", hb.Media.DeleteAssetHandler)
	}
}

// RegisterRoutes wires up CORS and all endpoint groups.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}))

	r.GET("/health", handlers.HealthHandler)

	RegisterBookingRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterMediaRoutes(r, hb)
}
