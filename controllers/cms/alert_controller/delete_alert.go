package alert_controller

import (
	"net/http"

	content_cache "github.com/StickerShuttle/shuttle-cms-backend/cache"
	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeleteAlert godoc
// @Summary Delete a sitewide alert
// @Tags Admin - Alerts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/alerts/{id} [delete]
func DeleteAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid alert ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	res := config.DB.WithContext(ctx).Delete(&models.SitewideAlert{}, "id = ?", id)
	if res.Error != nil {
		config.Log.Error("[admin.alerts] delete failed", zap.String("id", id.String()), zap.Error(res.Error))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete alert"))
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Alert not found"))
		return
	}

	content_cache.InvalidateAlerts()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alert deleted successfully", gin.H{"id": id}))
}
