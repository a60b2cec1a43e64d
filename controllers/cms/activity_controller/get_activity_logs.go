package activity_controller

import (
	"math"
	"net/http"
	"strconv"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetActivityLogs godoc
// @Summary List admin activity
// @Description Every admin write request, newest first.
// @Tags Admin - Activity
// @Produce json
// @Security BearerAuth
// @Param admin_email query string false "Only this admin"
// @Param resource_type query string false "order, alert, seo or blog"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.ActivityLog,meta=models.Pagination}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/activity [get]
func GetActivityLogs(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	logs, total, err := services.ListActivity(ctx, config.DB, services.ActivityQuery{
		AdminEmail:   c.Query("admin_email"),
		ResourceType: c.Query("resource_type"),
		Page:         page,
		Limit:        limit,
	})
	if err != nil {
		config.Log.Error("[admin.activity] list failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch activity logs"))
		return
	}

	meta := models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs fetched successfully", logs, &meta))
}
