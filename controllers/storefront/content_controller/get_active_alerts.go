package content_controller

import (
	"net/http"
	"time"

	content_cache "github.com/StickerShuttle/shuttle-cms-backend/cache"
	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// GetActiveAlerts godoc
// @Summary Active sitewide alerts
// @Description Alerts flagged active whose schedule window contains now.
// @Tags Storefront - Content
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.SitewideAlert}
// @Failure 500 {object} models.ApiResponse
// @Router /alerts/active [get]
func GetActiveAlerts(c *gin.Context) {
	alerts, ok := content_cache.GetAlerts()
	if !ok {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		alerts = []models.SitewideAlert{}
		if err := config.DB.WithContext(ctx).
			Where("is_active = ?", true).
			Order("created_at DESC").
			Find(&alerts).Error; err != nil {
			config.Log.Error("[storefront.alerts] load failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch alerts"))
			return
		}
		content_cache.SetAlerts(alerts)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alerts fetched successfully", services.ActiveAlerts(alerts, nowFunc())))
}
