package content_controller

import (
	"errors"
	"net/http"

	content_cache "github.com/StickerShuttle/shuttle-cms-backend/cache"
	"github.com/StickerShuttle/shuttle-cms-backend/config"
	"github.com/StickerShuttle/shuttle-cms-backend/models"
	"github.com/StickerShuttle/shuttle-cms-backend/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetPageSEO godoc
// @Summary SEO metadata for a path
// @Tags Storefront - Content
// @Produce json
// @Param path query string true "Storefront path, e.g. /products/vinyl-stickers"
// @Success 200 {object} models.ApiResponse{data=models.PageSEO}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /seo [get]
func GetPageSEO(c *gin.Context) {
	raw := c.Query("path")
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "path is required"))
		return
	}
	path := utils.NormalizePath(raw)

	page, cached := content_cache.GetSEO(path)
	if !cached {
		ctx, cancel := config.WithTimeout()
		defer cancel()

		var found models.PageSEO
		err := config.DB.WithContext(ctx).First(&found, "page_path = ?", path).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			page = nil
		case err != nil:
			config.Log.Error("[storefront.seo] load failed", zap.String("path", path), zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch page SEO"))
			return
		default:
			page = &found
		}
		content_cache.SetSEO(path, page)
	}

	if page == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "No SEO entry for "+path))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Page SEO fetched successfully", page))
}
