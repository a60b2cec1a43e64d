package order_controller

import (
	"net/http"
	"strings"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UpdateOrderStatus godoc
// @Summary Update order status (CMS)
// @Description Set any of order_status, proof_status, fulfillment_status, tracking_number, tracking_company. The tracking URL is derived from the number and carrier; an empty tracking_number clears tracking.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Param payload body models.UpdateOrderStatusRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.OrderView}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	const tag = "[admin.order.update]"

	if _, ok := parseOrderID(c, tag); !ok {
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		config.Log.Info(tag+" bad request: bind json", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if req.OrderStatus == nil && req.ProofStatus == nil && req.FulfillmentStatus == nil &&
		req.TrackingNumber == nil && req.TrackingCompany == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Nothing to update"))
		return
	}

	order, ok := loadOrder(c, tag)
	if !ok {
		return
	}

	updates := buildStatusUpdates(*order, req)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Model(&models.Order{ID: order.ID}).Updates(updates).Error; err != nil {
		config.Log.Error(tag+" update failed", zap.String("id", order.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	if err := services.GetAnalyticsCache().Invalidate(ctx); err != nil {
		config.Log.Warn(tag+" analytics cache invalidation failed", zap.Error(err))
	}

	updated, err := services.FindOrder(ctx, config.DB, order.ID)
	if err != nil {
		config.Log.Error(tag+" reload failed", zap.String("id", order.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Order updated but could not be reloaded"))
		return
	}

	view := services.BuildOrderView(*updated)
	config.Log.Info(tag+" updated",
		zap.String("id", order.ID),
		zap.Any("fields", keys(updates)),
		zap.String("display_status", string(view.DisplayStatus)))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", view))
}

// buildStatusUpdates turns the request into a column map. Tracking URL and
// carrier always come from ResolveTracking so they cannot drift from the
// number.
func buildStatusUpdates(order models.Order, req models.UpdateOrderStatusRequest) map[string]any {
	updates := map[string]any{}

	if req.OrderStatus != nil {
		updates["order_status"] = strings.TrimSpace(*req.OrderStatus)
	}
	if req.ProofStatus != nil {
		updates["proof_status"] = *req.ProofStatus
	}
	if req.FulfillmentStatus != nil {
		updates["fulfillment_status"] = *req.FulfillmentStatus
	}

	number := ""
	if order.TrackingNumber != nil {
		number = *order.TrackingNumber
	}
	carrier := ""
	if order.TrackingCompany != nil {
		carrier = *order.TrackingCompany
	}
	if req.TrackingNumber != nil {
		number = *req.TrackingNumber
	}
	if req.TrackingCompany != nil {
		carrier = *req.TrackingCompany
	}

	if req.TrackingNumber == nil && req.TrackingCompany == nil {
		return updates
	}

	if strings.TrimSpace(number) == "" {
		updates["tracking_number"] = nil
		updates["tracking_company"] = nil
		updates["tracking_url"] = nil
		return updates
	}

	link := services.ResolveTracking(number, carrier)
	updates["tracking_number"] = link.Number
	updates["tracking_company"] = link.Carrier
	updates["tracking_url"] = link.URL
	return updates
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
