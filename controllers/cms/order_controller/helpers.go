package order_controller

import (
	"net/http"
	"strings"
	"time"

	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

func storeNow() time.Time {
	return nowFunc().In(config.App.StoreLocation())
}

// parseOrderID validates the :id param, writing a 400 when it is not a UUID.
func parseOrderID(c *gin.Context, tag string) (string, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Order ID is required"))
		return "", false
	}
	if _, err := uuid.Parse(raw); err != nil {
		config.Log.Info(tag+" bad request: invalid order id", zap.String("id", raw))
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return "", false
	}
	return raw, true
}

// loadOrder fetches the order for :id and answers 400/404/500 itself.
func loadOrder(c *gin.Context, tag string) (*models.Order, bool) {
	id, ok := parseOrderID(c, tag)
	if !ok {
		return nil, false
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := services.FindOrder(ctx, config.DB, id)
	if err != nil {
		status, msg := services.ResponseFor(err, "Failed to fetch order")
		if status >= http.StatusInternalServerError {
			config.Log.Error(tag+" find order failed", zap.String("id", id), zap.Error(err))
		}
		c.JSON(status, models.ErrorResponse(c, msg))
		return nil, false
	}
	return order, true
}
