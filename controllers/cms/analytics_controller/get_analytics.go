package analytics_controller

import (
	"net/http"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// GetAnalytics godoc
// @Summary Get sales analytics
// @Description Revenue, paid order count, average order value, units and a zero-filled daily revenue series for the selected window. Unknown ranges fall back to all.
// @Tags Admin - Analytics
// @Produce json
// @Security BearerAuth
// @Param time_range query string false "today, 7d, mtd, 30d, 90d, 365d or all" default(30d)
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsData}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/analytics [get]
func GetAnalytics(c *gin.Context) {
	timeRange := services.ParseTimeRange(c.DefaultQuery("time_range", string(models.RangeLast30Days)))
	now := nowFunc().In(config.App.StoreLocation())
	day := now.Format("2006-01-02")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	cache := services.GetAnalyticsCache()
	if cached, ok := cache.Get(ctx, timeRange, day); ok {
		config.Log.Debug("[admin.analytics] cache hit", zap.String("time_range", string(timeRange)))
		c.Header("X-Cache", "HIT")
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics fetched successfully", cached))
		return
	}

	var since *time.Time
	if cutoff, ok := services.RangeStart(timeRange, now); ok {
		since = &cutoff
	}

	orders, err := services.LoadOrders(ctx, config.DB, since)
	if err != nil {
		config.Log.Error("[admin.analytics] load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	data := services.ComputeAnalytics(orders, timeRange, now)

	if err := cache.Set(ctx, timeRange, day, data); err != nil {
		config.Log.Warn("[admin.analytics] cache set failed", zap.Error(err))
	}

	config.Log.Info("[admin.analytics] computed",
		zap.String("time_range", string(timeRange)),
		zap.Int("orders", data.TotalOrders),
		zap.Float64("sales", data.TotalSales))

	c.Header("X-Cache", "MISS")
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics fetched successfully", data))
}
