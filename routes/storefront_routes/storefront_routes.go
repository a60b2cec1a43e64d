package storefront_routes

import (
	"github.com/StickerShuttle/shuttle-cms-backend/controllers/storefront/content_controller"
	customer_orders "github.com/StickerShuttle/shuttle-cms-backend/controllers/storefront/customer_controller/order_controller"
	"github.com/StickerShuttle/shuttle-cms-backend/controllers/storefront/tracking_controller"
	"github.com/StickerShuttle/shuttle-cms-backend/middleware"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// SetupStorefrontRoutes registers the public content endpoints and the
// signed-in customer endpoints.
func SetupStorefrontRoutes(rg *gin.RouterGroup, verifier services.SessionVerifier) {
	// Public
	rg.GET("/tracking/:number", tracking_controller.GetTracking)
	rg.GET("/alerts/active", content_controller.GetActiveAlerts)
	rg.GET("/seo", content_controller.GetPageSEO)
	rg.GET("/blog", content_controller.GetPublishedPosts)
	rg.GET("/blog/:slug", content_controller.GetPostBySlug)

	// Signed-in customers
	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(verifier))
	{
		orders.POST("/:id/items/:itemId/replacement-file", customer_orders.UploadReplacementFile)
	}
}
