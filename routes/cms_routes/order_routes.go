package cms_routes

import (
	"github.com/StickerShuttle/shuttle-cms-backend/controllers/cms/order_controller"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(admin *gin.RouterGroup) {
	orders := admin.Group("/orders")
	{
		orders.GET("", order_controller.GetOrders)
		orders.GET("/stats", order_controller.GetOrderStats)
		orders.GET("/:id", order_controller.GetOrderByID)
		orders.PATCH("/:id/status", order_controller.UpdateOrderStatus)
		orders.POST("/:id/proofs", order_controller.SendProofs)
		orders.DELETE("/:id/proofs", order_controller.ClearProofs)
		orders.GET("/:id/packing-slip", order_controller.DownloadPackingSlip)
	}
}
