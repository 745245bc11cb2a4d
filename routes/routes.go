package routes

import (
	"net/http"
	"time"

	"github.com/kanata-kan/explorekg-backend-sub001/handlers"
	"github.com/kanata-kan/explorekg-backend-sub001/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the read-only catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/:itemType", hb.ListCatalogItems)
		api.GET("/:itemType/:id", hb.GetCatalogItem)
	}
}

// RegisterInternalRoutes registers operational endpoints not meant for
// guest-facing clients.
func RegisterInternalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	internal := r.Group("/api/internal")
	{
		internal.POST("/bookings/expire-sweep", hb.ExpireSweep)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterInternalRoutes(r, hb)
}
