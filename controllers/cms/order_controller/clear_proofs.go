package order_controller

import (
	"net/http"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// ClearProofs godoc
// @Summary Clear design proofs
// @Description Remove every proof of the order from storage and send the order back to building proof.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse{data=models.OrderView}
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 503 {object} models.ApiResponse "File storage not configured"
// @Router /admin/orders/{id}/proofs [delete]
func ClearProofs(c *gin.Context) {
	const tag = "[admin.order.proofs.clear]"

	order, ok := loadOrder(c, tag)
	if !ok {
		return
	}

	uploader, err := services.GetFileUploader()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "File storage is not configured"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := uploader.DeleteFolder(ctx, "proofs/"+order.ID); err != nil {
		config.Log.Error(tag+" storage cleanup failed", zap.String("id", order.ID), zap.Error(err))
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to delete proof files"))
		return
	}

	updates := map[string]any{
		"proofs":       datatypes.NewJSONSlice([]models.ProofFile{}),
		"proof_status": models.ProofBuilding,
		"proof_notes":  nil,
	}
	if err := config.DB.WithContext(ctx).Model(&models.Order{ID: order.ID}).Updates(updates).Error; err != nil {
		config.Log.Error(tag+" save failed", zap.String("id", order.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	status := models.ProofBuilding
	order.Proofs = nil
	order.ProofStatus = &status
	order.ProofNotes = nil

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Proofs cleared", services.BuildOrderView(*order)))
}
