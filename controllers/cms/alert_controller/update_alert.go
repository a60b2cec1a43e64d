package alert_controller

import (
	"errors"
	"net/http"

	content_cache "github.com/StickerShuttle/shuttle-cms-backend/cache"
	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UpdateAlert godoc
// @Summary Update a sitewide alert
// @Description Partial update; omitted fields are unchanged.
// @Tags Admin - Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Alert ID"
// @Param alert body models.UpdateAlertRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse{data=models.SitewideAlert}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/alerts/{id} [patch]
func UpdateAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid alert ID"))
		return
	}

	var req models.UpdateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var alert models.SitewideAlert
	if err := config.DB.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Alert not found"))
			return
		}
		config.Log.Error("[admin.alerts] find failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}

	updates := alertUpdates(req)
	if len(updates) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", alert))
		return
	}

	starts, ends := alert.StartsAt, alert.EndsAt
	if req.StartsAt != nil {
		starts = req.StartsAt
	}
	if req.EndsAt != nil {
		ends = req.EndsAt
	}
	if starts != nil && ends != nil && !ends.After(*starts) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "ends_at must be after starts_at"))
		return
	}

	if err := config.DB.WithContext(ctx).Model(&alert).Updates(updates).Error; err != nil {
		config.Log.Error("[admin.alerts] update failed", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update alert"))
		return
	}

	content_cache.InvalidateAlerts()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Alert updated successfully", alert))
}

func alertUpdates(req models.UpdateAlertRequest) map[string]any {
	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Message != nil {
		updates["message"] = *req.Message
	}
	if req.BackgroundColor != nil {
		updates["background_color"] = *req.BackgroundColor
	}
	if req.TextColor != nil {
		updates["text_color"] = *req.TextColor
	}
	if req.LinkURL != nil {
		updates["link_url"] = emptyToNil(*req.LinkURL)
	}
	if req.LinkText != nil {
		updates["link_text"] = emptyToNil(*req.LinkText)
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.StartsAt != nil {
		updates["starts_at"] = *req.StartsAt
	}
	if req.EndsAt != nil {
		updates["ends_at"] = *req.EndsAt
	}
	return updates
}

func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
