package order_controller

import (
	"net/http"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetOrderStats godoc
// @Summary Get order stats (CMS)
// @Description All-time total, a count for every display status, and this month vs last month.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.OrderStatsResponse}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/stats [get]
func GetOrderStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := services.LoadOrders(ctx, config.DB, nil)
	if err != nil {
		config.Log.Error("[admin.order.stats] load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch order stats"))
		return
	}

	stats := services.ComputeOrderStats(orders, services.CurrentSamplePackMatcher(), storeNow())
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order stats fetched successfully", stats))
}
