package order_controller

import (
	"net/http"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// GetOrderByID godoc
// @Summary Get order details
// @Description Full order with items, proofs, derived display status and tracking link
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.OrderView}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders/{id} [get]
func GetOrderByID(c *gin.Context) {
	order, ok := loadOrder(c, "[admin.order.details]")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", services.BuildOrderView(*order)))
}
