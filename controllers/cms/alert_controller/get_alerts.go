package alert_controller

import (
	"net/http"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAlerts godoc
// @Summary List sitewide alerts
// @Description All alerts, active or not, newest first.
// @Tags Admin - Alerts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=[]models.SitewideAlert}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/alerts [get]
func GetAlerts(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	alerts := []models.SitewideAlert{}
	if err := config.DB.WithContext(ctx).Order("created_at DESC").Find(&alerts).Error; err != nil {
		config.Log.Error("[admin.alerts] list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch alerts"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alerts fetched successfully", alerts))
}
