package order_controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetOrders godoc
// @Summary Get orders (CMS)
// @Description List orders with their derived display status, grouped items and tracking link. Status filtering uses the derived label, so filtering happens after derivation.
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 50)" default(10)
// @Param time_range query string false "today, 7d, mtd, 30d, 90d, 365d or all" default(all)
// @Param status query string false "Display status label, e.g. Awaiting Approval"
// @Param q query string false "Search by order number, email, name or tracking number"
// @Param sort query string false "newest, oldest, total_desc, total_asc" default(newest)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderView,meta=models.Pagination}
// @Failure 400 {object} models.ApiResponse "Unknown status or malformed page/limit"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 403 {object} models.ApiResponse "Forbidden"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	var query models.OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid query parameters"))
		return
	}
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 || query.Limit > 50 {
		if query.Limit != 0 {
			config.Log.Debug("[admin.orders] limit out of range, using 10", zap.Int("limit", query.Limit))
		}
		query.Limit = 10
	}

	var status models.DisplayStatus
	if raw := strings.TrimSpace(query.Status); raw != "" {
		parsed, ok := services.ParseDisplayStatus(raw)
		if !ok {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unknown status: "+raw))
			return
		}
		status = parsed
	}

	timeRange := services.ParseTimeRange(query.TimeRange)
	now := storeNow()

	var since *time.Time
	if cutoff, ok := services.RangeStart(timeRange, now); ok {
		since = &cutoff
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := services.LoadOrders(ctx, config.DB, since)
	if err != nil {
		config.Log.Error("[admin.orders] load failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	views := services.FilterViews(services.BuildOrderViews(orders), status, query.Q)
	services.SortViews(views, query.Sort)
	pageRows, meta := services.Paginate(views, query.Page, query.Limit)

	config.Log.Debug("[admin.orders] respond",
		zap.String("time_range", string(timeRange)),
		zap.String("status", string(status)),
		zap.Int("total", meta.Total))

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", pageRows, &meta))
}
