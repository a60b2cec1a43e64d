package tracking_controller

import (
	"net/http"
	"strings"

	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/services"
	"github.com/gin-gonic/gin"
)

// GetTracking godoc
// @Summary Resolve a tracking link
// @Description Detect the carrier for a tracking number and build its tracking page URL. An explicit carrier wins; unrecognised numbers fall back to UPS.
// @Tags Storefront - Tracking
// @Produce json
// @Param number path string true "Tracking number"
// @Param carrier query string false "UPS, FedEx or USPS"
// @Success 200 {object} models.ApiResponse{data=models.TrackingLink}
// @Failure 400 {object} models.ApiResponse
// @Router /tracking/{number} [get]
func GetTracking(c *gin.Context) {
	number := services.NormalizeTrackingNumber(c.Param("number"))
	if number == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Tracking number is required"))
		return
	}

	carrier := strings.TrimSpace(c.Query("carrier"))
	if carrier != "" && services.NormalizeCarrier(carrier) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Unsupported carrier: "+carrier))
		return
	}

	link := services.ResolveTracking(number, carrier)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tracking link resolved", link))
}
