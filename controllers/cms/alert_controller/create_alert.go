package alert_controller

import (
	"net/http"
	"strings"

	content_cache "github.com/StickerShuttle/shuttle-cms-backend/cache"
	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/middleware"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	defaultBackground = "#FFD713"
	defaultText       = "#030140"
)

// CreateAlert godoc
// @Summary Create a sitewide alert
// @Tags Admin - Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param alert body models.CreateAlertRequest true "Alert"
// @Success 201 {object} models.ApiResponse{data=models.SitewideAlert}
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/alerts [post]
func CreateAlert(c *gin.Context) {
	var req models.CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if req.StartsAt != nil && req.EndsAt != nil && !req.EndsAt.After(*req.StartsAt) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "ends_at must be after starts_at"))
		return
	}

	_, email, _ := middleware.SessionFromContext(c)
	alert := models.SitewideAlert{
		Title:           strings.TrimSpace(req.Title),
		Message:         strings.TrimSpace(req.Message),
		BackgroundColor: orDefault(req.BackgroundColor, defaultBackground),
		TextColor:       orDefault(req.TextColor, defaultText),
		LinkURL:         req.LinkURL,
		LinkText:        req.LinkText,
		IsActive:        req.IsActive,
		StartsAt:        req.StartsAt,
		EndsAt:          req.EndsAt,
		CreatedBy:       email,
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := config.DB.WithContext(ctx).Create(&alert).Error; err != nil {
		config.Log.Error("[admin.alerts] create failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create alert"))
		return
	}

	content_cache.InvalidateAlerts()
	c.Set(middleware.CtxActivityResourceID, alert.ID.String())

	config.Log.Info("[admin.alerts] created", zap.String("id", alert.ID.String()), zap.Bool("active", alert.IsActive))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Alert created successfully", alert))
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
